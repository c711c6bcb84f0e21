package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"gotodo/internal/models"
)

// MemoryAccountStore is a mutex-guarded in-memory AccountStore used in tests.
type MemoryAccountStore struct {
	mu       sync.Mutex
	nextID   int
	accounts map[int]models.Account
}

func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{
		nextID:   1,
		accounts: make(map[int]models.Account),
	}
}

func (s *MemoryAccountStore) Create(ctx context.Context, name, email, passwordHash string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.Email == email {
			return models.Account{}, ErrDuplicateEmail
		}
	}

	account := models.Account{
		ID:        s.nextID,
		Name:      name,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: time.Now(),
	}
	s.accounts[account.ID] = account
	s.nextID++
	return account, nil
}

func (s *MemoryAccountStore) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return models.Account{}, ErrNotFound
}

// MemoryTodoStore is a mutex-guarded in-memory TodoStore used in tests.
type MemoryTodoStore struct {
	mu     sync.Mutex
	nextID int
	todos  map[int]models.Todo
}

func NewMemoryTodoStore() *MemoryTodoStore {
	return &MemoryTodoStore{
		nextID: 1,
		todos:  make(map[int]models.Todo),
	}
}

func (s *MemoryTodoStore) Create(ctx context.Context, userID int, text string) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo := models.Todo{
		ID:        s.nextID,
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	s.todos[todo.ID] = todo
	s.nextID++
	return todo, nil
}

func (s *MemoryTodoStore) ListByOwner(ctx context.Context, userID int) ([]models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos := []models.Todo{}
	for _, todo := range s.todos {
		if todo.UserID == userID {
			todos = append(todos, todo)
		}
	}
	// Newest first; ties (same timestamp) broken by id so ordering is stable.
	sort.Slice(todos, func(i, j int) bool {
		if !todos[i].CreatedAt.Equal(todos[j].CreatedAt) {
			return todos[i].CreatedAt.After(todos[j].CreatedAt)
		}
		return todos[i].ID > todos[j].ID
	})
	return todos, nil
}

func (s *MemoryTodoStore) FindByID(ctx context.Context, id int) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	if !ok {
		return models.Todo{}, ErrNotFound
	}
	return todo, nil
}

func (s *MemoryTodoStore) UpdateText(ctx context.Context, id int, text string) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	if !ok {
		return models.Todo{}, ErrNotFound
	}
	todo.Text = text
	s.todos[id] = todo
	return todo, nil
}

func (s *MemoryTodoStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		return ErrNotFound
	}
	delete(s.todos, id)
	return nil
}
