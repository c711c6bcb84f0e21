package cache

import (
	"context"
	"sync"

	"gotodo/internal/models"
)

// TodoCache is a best-effort by-id cache in front of the todo store. Failures
// are swallowed by implementations; a miss just falls through to the store.
type TodoCache interface {
	GetTodo(ctx context.Context, id int) (models.Todo, bool)
	SetTodo(ctx context.Context, todo models.Todo)
	DeleteTodo(ctx context.Context, id int)
}

// MemoryTodoCache is an in-process TodoCache used in tests.
type MemoryTodoCache struct {
	mu    sync.Mutex
	todos map[int]models.Todo
}

func NewMemoryTodoCache() *MemoryTodoCache {
	return &MemoryTodoCache{todos: make(map[int]models.Todo)}
}

func (c *MemoryTodoCache) GetTodo(ctx context.Context, id int) (models.Todo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	todo, ok := c.todos[id]
	return todo, ok
}

func (c *MemoryTodoCache) SetTodo(ctx context.Context, todo models.Todo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.todos[todo.ID] = todo
}

func (c *MemoryTodoCache) DeleteTodo(ctx context.Context, id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.todos, id)
}
