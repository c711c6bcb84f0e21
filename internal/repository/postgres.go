package repository

import (
	"context"
	"database/sql"
	"errors"

	"gotodo/internal/models"

	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

type PostgresAccountStore struct {
	db *sql.DB
}

func NewPostgresAccountStore(db *sql.DB) *PostgresAccountStore {
	return &PostgresAccountStore{db: db}
}

func (s *PostgresAccountStore) Create(ctx context.Context, name, email, passwordHash string) (models.Account, error) {
	account := models.Account{
		Name:     name,
		Email:    email,
		Password: passwordHash,
	}
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO accounts (name, email, password) VALUES ($1, $2, $3) RETURNING id, created_at",
		name, email, passwordHash,
	).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return models.Account{}, ErrDuplicateEmail
		}
		return models.Account{}, err
	}
	return account, nil
}

func (s *PostgresAccountStore) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	var account models.Account
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, password, created_at FROM accounts WHERE email = $1",
		email,
	).Scan(&account.ID, &account.Name, &account.Email, &account.Password, &account.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrNotFound
	}
	if err != nil {
		return models.Account{}, err
	}
	return account, nil
}

type PostgresTodoStore struct {
	db *sql.DB
}

func NewPostgresTodoStore(db *sql.DB) *PostgresTodoStore {
	return &PostgresTodoStore{db: db}
}

func (s *PostgresTodoStore) Create(ctx context.Context, userID int, text string) (models.Todo, error) {
	todo := models.Todo{
		UserID: userID,
		Text:   text,
	}
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO todos (user_id, todo) VALUES ($1, $2) RETURNING id, created_at",
		userID, text,
	).Scan(&todo.ID, &todo.CreatedAt)
	if err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

func (s *PostgresTodoStore) ListByOwner(ctx context.Context, userID int) ([]models.Todo, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, todo, created_at FROM todos WHERE user_id = $1 ORDER BY created_at DESC, id DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(&todo.ID, &todo.UserID, &todo.Text, &todo.CreatedAt); err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return todos, nil
}

func (s *PostgresTodoStore) FindByID(ctx context.Context, id int) (models.Todo, error) {
	var todo models.Todo
	err := s.db.QueryRowContext(ctx,
		"SELECT id, user_id, todo, created_at FROM todos WHERE id = $1",
		id,
	).Scan(&todo.ID, &todo.UserID, &todo.Text, &todo.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Todo{}, ErrNotFound
	}
	if err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

func (s *PostgresTodoStore) UpdateText(ctx context.Context, id int, text string) (models.Todo, error) {
	var todo models.Todo
	err := s.db.QueryRowContext(ctx,
		"UPDATE todos SET todo = $1 WHERE id = $2 RETURNING id, user_id, todo, created_at",
		text, id,
	).Scan(&todo.ID, &todo.UserID, &todo.Text, &todo.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Todo{}, ErrNotFound
	}
	if err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

func (s *PostgresTodoStore) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM todos WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
