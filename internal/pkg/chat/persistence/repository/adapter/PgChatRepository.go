package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	chat "go-chatline/internal/pkg/chat/application/domain"
	repository "go-chatline/internal/pkg/chat/persistence/repository/port"
)

type PgChatRepository struct {
	pool *pgxpool.Pool
}

func NewPgChatRepository(pool *pgxpool.Pool) *PgChatRepository {
	return &PgChatRepository{pool: pool}
}

// Ensure interface compliance at compile time
var _ repository.ChatRepository = (*PgChatRepository)(nil)

// CreateOrGetConversation relies on the unique index over the canonical
// ordered pair (party_min, party_max). The no-op DO UPDATE makes the
// statement return the surviving row's id whether this call won the insert
// race or lost it.
func (r *PgChatRepository) CreateOrGetConversation(ctx context.Context, a, b string) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgChatRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO conversations (id, sender_id, recipient_id, party_min, party_max, created_at)
		VALUES ($1, $2, $3, LEAST($2, $3), GREATEST($2, $3), $4)
		ON CONFLICT (party_min, party_max)
		DO UPDATE SET party_min = EXCLUDED.party_min
		RETURNING id
	`, uuid.NewString(), a, b, time.Now().UTC()).Scan(&id)
	return id, err
}

const conversationColumns = `
	c.id, c.created_at,
	s.id, s.first_name, s.last_name, s.last_seen,
	r.id, r.first_name, r.last_name, r.last_seen
`

func (r *PgChatRepository) FindConversation(ctx context.Context, id string) (*chat.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	row := r.pool.QueryRow(ctx, `
		SELECT `+conversationColumns+`
		FROM conversations c
		JOIN users s ON s.id = c.sender_id
		JOIN users r ON r.id = c.recipient_id
		WHERE c.id = $1
	`, id)

	conv, err := scanConversation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return conv, nil
}

func (r *PgChatRepository) ListConversations(ctx context.Context, userID string) ([]chat.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+conversationColumns+`
		FROM conversations c
		JOIN users s ON s.id = c.sender_id
		JOIN users r ON r.id = c.recipient_id
		WHERE c.sender_id = $1 OR c.recipient_id = $1
		ORDER BY c.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var convs []chat.Conversation
	for rows.Next() {
		conv, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		convs = append(convs, *conv)
	}
	return convs, rows.Err()
}

func (r *PgChatRepository) MessagesAsc(ctx context.Context, conversationID string) ([]chat.Message, error) {
	return r.messages(ctx, conversationID, "ASC")
}

func (r *PgChatRepository) MessagesDesc(ctx context.Context, conversationID string) ([]chat.Message, error) {
	return r.messages(ctx, conversationID, "DESC")
}

func (r *PgChatRepository) messages(ctx context.Context, conversationID string, order string) ([]chat.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, conversation_id, sender_id, recipient_id, content, media_path, msg_type, state, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY id `+order, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []chat.Message
	for rows.Next() {
		var (
			m       chat.Message
			content *string
			media   *string
		)
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.RecipientID, &content, &media, &m.Type, &m.State, &m.CreatedAt); err != nil {
			return nil, err
		}
		if content != nil {
			m.Content = *content
		}
		if media != nil {
			m.MediaPath = *media
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *PgChatRepository) SaveMessage(ctx context.Context, m chat.Message) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgChatRepository: nil pool")
	}
	createdAt := m.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO messages (conversation_id, sender_id, recipient_id, content, media_path, msg_type, state, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8)
		RETURNING id
	`, m.ConversationID, m.SenderID, m.RecipientID, m.Content, m.MediaPath, m.Type, m.State, createdAt).Scan(&id)
	return id, err
}

func (r *PgChatRepository) MarkMessagesSeen(ctx context.Context, conversationID, recipientID string) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgChatRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE messages
		SET state = $3
		WHERE conversation_id = $1 AND recipient_id = $2 AND state = $4
	`, conversationID, recipientID, chat.MessageStateSeen, chat.MessageStateSent)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}

func scanConversation(row pgx.Row) (*chat.Conversation, error) {
	var c chat.Conversation
	err := row.Scan(
		&c.ID, &c.CreatedAt,
		&c.Sender.ID, &c.Sender.FirstName, &c.Sender.LastName, &c.Sender.LastSeen,
		&c.Recipient.ID, &c.Recipient.FirstName, &c.Recipient.LastName, &c.Recipient.LastSeen,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
