package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	user "go-chatline/internal/pkg/user/domain"
	repository "go-chatline/internal/pkg/user/persistence/repository/port"
)

type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

// Ensure interface compliance at compile time
var _ repository.UserRepository = (*PgUserRepository)(nil)

func (r *PgUserRepository) Upsert(ctx context.Context, u user.User) error {
	if r == nil || r.pool == nil {
		return errors.New("PgUserRepository: nil pool")
	}
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, first_name, last_name, email, last_seen, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id)
		DO UPDATE SET first_name = EXCLUDED.first_name,
		              last_name  = EXCLUDED.last_name,
		              email      = EXCLUDED.email,
		              last_seen  = EXCLUDED.last_seen
	`, u.ID, u.FirstName, u.LastName, u.Email, u.LastSeen, createdAt)
	return err
}

func (r *PgUserRepository) FindByPublicID(ctx context.Context, id string) (*user.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	var u user.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, last_seen, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.LastSeen, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PgUserRepository) ListExcept(ctx context.Context, userID string) ([]user.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, email, last_seen, created_at
		FROM users
		WHERE id != $1
		ORDER BY first_name, last_name
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.LastSeen, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
