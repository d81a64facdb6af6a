package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	chat "go-chatline/internal/pkg/chat/application/domain"
	repository "go-chatline/internal/pkg/chat/persistence/repository/port"
	"go-chatline/internal/pkg/chat/search"
	user "go-chatline/internal/pkg/user/domain"
	userrepo "go-chatline/internal/pkg/user/persistence/repository/port"
)

// fakeChatRepo is an in-memory ChatRepository honoring the same invariants
// as the Postgres adapter: one conversation per unordered pair, sequential
// message ids, set-based seen updates.
type fakeChatRepo struct {
	mu     sync.Mutex
	convs  map[string]chat.Conversation
	pairs  map[string]string
	msgs   map[string][]chat.Message
	nextID int64

	failSaveMessage bool
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{
		convs: make(map[string]chat.Conversation),
		pairs: make(map[string]string),
		msgs:  make(map[string][]chat.Message),
	}
}

// seedAliceBob wires a repo holding one conversation between alice and bob.
func seedAliceBob() (*fakeChatRepo, chat.Conversation) {
	conv := chat.Conversation{
		ID:        "conv-ab",
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		Sender:    chat.Party{ID: "alice", FirstName: "Alice", LastName: "Almeida"},
		Recipient: chat.Party{ID: "bob", FirstName: "Bob", LastName: "Barbosa"},
	}
	repo := newFakeChatRepo()
	repo.seedConversation(conv)
	return repo, conv
}

func pairKey(a, b string) string {
	if a < b {
		return a + "|" + b
	}
	return b + "|" + a
}

func (f *fakeChatRepo) seedConversation(c chat.Conversation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.convs[c.ID] = c
	f.pairs[pairKey(c.Sender.ID, c.Recipient.ID)] = c.ID
}

func (f *fakeChatRepo) CreateOrGetConversation(_ context.Context, a, b string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := pairKey(a, b)
	if id, ok := f.pairs[key]; ok {
		return id, nil
	}
	id := fmt.Sprintf("conv-%d", len(f.convs)+1)
	f.convs[id] = chat.Conversation{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		Sender:    chat.Party{ID: a},
		Recipient: chat.Party{ID: b},
	}
	f.pairs[key] = id
	return id, nil
}

func (f *fakeChatRepo) FindConversation(_ context.Context, id string) (*chat.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.convs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (f *fakeChatRepo) ListConversations(_ context.Context, userID string) ([]chat.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []chat.Conversation
	for _, c := range f.convs {
		if c.HasParticipant(userID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeChatRepo) MessagesAsc(_ context.Context, conversationID string) ([]chat.Message, error) {
	return f.sorted(conversationID, true), nil
}

func (f *fakeChatRepo) MessagesDesc(_ context.Context, conversationID string) ([]chat.Message, error) {
	return f.sorted(conversationID, false), nil
}

func (f *fakeChatRepo) sorted(conversationID string, asc bool) []chat.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	msgs := append([]chat.Message(nil), f.msgs[conversationID]...)
	sort.Slice(msgs, func(i, j int) bool {
		if asc {
			return msgs[i].ID < msgs[j].ID
		}
		return msgs[i].ID > msgs[j].ID
	})
	return msgs
}

func (f *fakeChatRepo) SaveMessage(_ context.Context, m chat.Message) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSaveMessage {
		return 0, fmt.Errorf("disk on fire")
	}
	f.nextID++
	m.ID = f.nextID
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	f.msgs[m.ConversationID] = append(f.msgs[m.ConversationID], m)
	return m.ID, nil
}

func (f *fakeChatRepo) MarkMessagesSeen(_ context.Context, conversationID, recipientID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var changed int64
	msgs := f.msgs[conversationID]
	for i := range msgs {
		if msgs[i].RecipientID == recipientID && msgs[i].State == chat.MessageStateSent {
			msgs[i].State = chat.MessageStateSeen
			changed++
		}
	}
	return changed, nil
}

var _ repository.ChatRepository = (*fakeChatRepo)(nil)

// fakeUserRepo holds a fixed user set.
type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo(ids ...string) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]user.User)}
	for _, id := range ids {
		f.users[id] = user.User{ID: id}
	}
	return f
}

func (f *fakeUserRepo) Upsert(_ context.Context, u user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) FindByPublicID(_ context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userrepo.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) ListExcept(_ context.Context, userID string) ([]user.User, error) {
	var out []user.User
	for id, u := range f.users {
		if id != userID {
			out = append(out, u)
		}
	}
	return out, nil
}

var _ userrepo.UserRepository = (*fakeUserRepo)(nil)

// recordingNotifier captures dispatched events in order.
type recordingNotifier struct {
	mu     sync.Mutex
	events []dispatched
}

type dispatched struct {
	userID string
	event  chat.Notification
}

func (r *recordingNotifier) Dispatch(userID string, n chat.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, dispatched{userID: userID, event: n})
}

func (r *recordingNotifier) all() []dispatched {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]dispatched(nil), r.events...)
}

// recordingIndexer captures indexed messages; optionally errors.
type recordingIndexer struct {
	added []chat.Message
	err   error
}

func (r *recordingIndexer) Add(m chat.Message) error {
	if r.err != nil {
		return r.err
	}
	r.added = append(r.added, m)
	return nil
}

// stubSearcher returns canned hits.
type stubSearcher struct {
	hits   []search.Hit
	gotID  string
	gotQ   string
	gotLim int
}

func (s *stubSearcher) Search(_ context.Context, conversationID, query string, limit int) ([]search.Hit, error) {
	s.gotID, s.gotQ, s.gotLim = conversationID, query, limit
	return s.hits, nil
}

// fakeBlobStore stores blobs in a map; optionally fails Save.
type fakeBlobStore struct {
	saved    map[string][]byte
	failSave bool
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{saved: make(map[string][]byte)}
}

func (f *fakeBlobStore) Save(_ context.Context, data []byte, ownerID, filename string) (string, error) {
	if f.failSave {
		return "", fmt.Errorf("volume detached")
	}
	ref := fmt.Sprintf("users/%s/%s", ownerID, filename)
	f.saved[ref] = data
	return ref, nil
}

func (f *fakeBlobStore) Read(ref string) []byte {
	return f.saved[ref]
}
