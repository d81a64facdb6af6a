package search

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/blugelabs/bluge"

	chat "go-chatline/internal/pkg/chat/application/domain"
)

// Hit is one search match, hydrated from the index's stored fields.
type Hit struct {
	MessageID int64     `json:"messageId"`
	Content   string    `json:"content"`
	SenderID  string    `json:"senderId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Index is a full-text index over text message bodies. Media messages are
// not indexed, there is nothing to match on.
type Index struct {
	writer *bluge.Writer
}

// Open creates or reopens an index at dir. An empty dir yields an in-memory
// index, used by tests.
func Open(dir string) (*Index, error) {
	var cfg bluge.Config
	if dir == "" {
		cfg = bluge.InMemoryOnlyConfig()
	} else {
		cfg = bluge.DefaultConfig(dir)
	}
	writer, err := bluge.OpenWriter(cfg)
	if err != nil {
		return nil, fmt.Errorf("search: open index: %w", err)
	}
	return &Index{writer: writer}, nil
}

// Close releases the underlying writer.
func (ix *Index) Close() error {
	return ix.writer.Close()
}

// Add indexes a persisted message. Non-text messages are skipped.
func (ix *Index) Add(m chat.Message) error {
	if m.IsMedia() {
		return nil
	}
	docID := strconv.FormatInt(m.ID, 10)
	doc := bluge.NewDocument(docID).
		AddField(bluge.NewKeywordField("conversation_id", m.ConversationID)).
		AddField(bluge.NewTextField("content", m.Content).StoreValue()).
		AddField(bluge.NewKeywordField("sender_id", m.SenderID).StoreValue()).
		AddField(bluge.NewStoredOnlyField("created_at", []byte(m.CreatedAt.UTC().Format(time.RFC3339Nano))))
	return ix.writer.Update(doc.ID(), doc)
}

// Search matches query against message bodies within one conversation and
// returns up to limit hits, newest first.
func (ix *Index) Search(ctx context.Context, conversationID, query string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = 25
	}
	reader, err := ix.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("search: reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	q := bluge.NewBooleanQuery().
		AddMust(bluge.NewTermQuery(conversationID).SetField("conversation_id")).
		AddMust(bluge.NewMatchQuery(query).SetField("content"))

	iter, err := reader.Search(ctx, bluge.NewTopNSearch(limit, q))
	if err != nil {
		return nil, fmt.Errorf("search: query: %w", err)
	}

	var hits []Hit
	for {
		match, err := iter.Next()
		if err != nil {
			return nil, fmt.Errorf("search: iterate: %w", err)
		}
		if match == nil {
			break
		}
		var hit Hit
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.MessageID, _ = strconv.ParseInt(string(value), 10, 64)
			case "content":
				hit.Content = string(value)
			case "sender_id":
				hit.SenderID = string(value)
			case "created_at":
				hit.CreatedAt, _ = time.Parse(time.RFC3339Nano, string(value))
			}
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("search: stored fields: %w", err)
		}
		hits = append(hits, hit)
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].CreatedAt.After(hits[j].CreatedAt) })
	return hits, nil
}
