package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"darak/internal/domain/user"
)

type UserRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewUserRepository(storage *Storage, log *slog.Logger) *UserRepository {
	return &UserRepository{
		storage: storage,
		log:     log,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return err
	}

	friends, err := json.Marshal(u.Friends)
	if err != nil {
		return fmt.Errorf("encode friends: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO users (id, password_hash, friends, created_at) VALUES (?, ?, ?, ?)`,
		u.ID, u.PasswordHash, string(friends), u.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (*user.User, error) {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return nil, err
	}

	var u user.User
	var friends, createdAt string
	err = db.QueryRowContext(ctx,
		`SELECT id, password_hash, friends, created_at FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.PasswordHash, &friends, &createdAt)
	if err == sql.ErrNoRows {
		return nil, user.ErrUnknownUser
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := json.Unmarshal([]byte(friends), &u.Friends); err != nil {
		return nil, fmt.Errorf("parse friends: %w", err)
	}
	if u.Friends == nil {
		u.Friends = []string{}
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return err
	}

	friends, err := json.Marshal(u.Friends)
	if err != nil {
		return fmt.Errorf("encode friends: %w", err)
	}

	res, err := db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, friends = ? WHERE id = ?`,
		u.PasswordHash, string(friends), u.ID)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return user.ErrUnknownUser
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id, password_hash, friends, created_at FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		var friends, createdAt string
		if err := rows.Scan(&u.ID, &u.PasswordHash, &friends, &createdAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		if err := json.Unmarshal([]byte(friends), &u.Friends); err != nil {
			return nil, fmt.Errorf("parse friends: %w", err)
		}
		u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}
