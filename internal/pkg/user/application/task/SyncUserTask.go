package task

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	qport "go-chatline/internal/infrastructure/queue/port"
	"go-chatline/internal/pkg/user/application/usecase"
)

// TypeSyncUser is the queue task type for mirroring identity claims.
const TypeSyncUser = "user:sync"

// syncUniqueWindow dedupes bursts of requests from the same user. One sync
// per window is enough to keep last_seen fresh within the presence window.
const syncUniqueWindow = 30 * time.Second

// EnqueueSyncUser schedules a user mirror refresh. Callers treat failures as
// non-fatal; the next request enqueues again.
func EnqueueSyncUser(ctx context.Context, client qport.Client, in usecase.SyncUserInput) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("sync task payload: %w", err)
	}
	_, err = client.Enqueue(ctx, qport.Task{Type: TypeSyncUser, Payload: payload}, qport.EnqueueOption{
		Queue:     "users",
		UniqueTTL: syncUniqueWindow,
		MaxRetry:  3,
	})
	return err
}

// RegisterSyncUser wires the handler that applies the upsert.
func RegisterSyncUser(server qport.Server, uc *usecase.SyncUserUseCase) {
	server.Register(TypeSyncUser, func(ctx context.Context, t qport.Task) error {
		var in usecase.SyncUserInput
		if err := json.Unmarshal(t.Payload, &in); err != nil {
			return fmt.Errorf("sync task decode: %w", err)
		}
		return uc.Execute(ctx, in)
	})
}
