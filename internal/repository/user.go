package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rishiboppana/stayhub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (name, email, role, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	now := time.Now().UTC()
	err := r.db.Master.QueryRowContext(ctx, query, user.Name, user.Email, string(user.Role), now).Scan(&user.ID)
	if err != nil {
		return translateWrite("insert user", err)
	}
	user.CreatedAt = now

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, name, email, role, created_at
			  FROM users
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, classify("get user", err)
	}

	var (
		u    domain.User
		role string
	)
	if err = row.Scan(&u.ID, &u.Name, &u.Email, &role, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, classify("scan user", err)
	}
	u.Role = domain.Role(role)

	return &u, nil
}
