package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gotodo/internal/models"
	"gotodo/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const todoCacheTTL = time.Hour

// RedisTodoCache caches todos under "todo:<id>" keys with a 1-hour expiry.
type RedisTodoCache struct {
	client *redis.Client
}

func NewRedisTodoCache(client *redis.Client) *RedisTodoCache {
	return &RedisTodoCache{client: client}
}

func (c *RedisTodoCache) key(id int) string {
	return fmt.Sprintf("todo:%d", id)
}

func (c *RedisTodoCache) GetTodo(ctx context.Context, id int) (models.Todo, bool) {
	cached, err := c.client.Get(ctx, c.key(id)).Result()
	if err != nil {
		return models.Todo{}, false
	}
	var todo models.Todo
	if err := json.Unmarshal([]byte(cached), &todo); err != nil {
		return models.Todo{}, false
	}
	return todo, true
}

func (c *RedisTodoCache) SetTodo(ctx context.Context, todo models.Todo) {
	jsonData, err := json.Marshal(todo)
	if err != nil {
		return
	}
	if err := c.client.SetEX(ctx, c.key(todo.ID), jsonData, todoCacheTTL).Err(); err != nil {
		logger.ErrorLogger.Error("Error caching todo", zap.Error(err), zap.Int("todo_id", todo.ID))
	}
}

func (c *RedisTodoCache) DeleteTodo(ctx context.Context, id int) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		logger.ErrorLogger.Error("Error evicting todo from cache", zap.Error(err), zap.Int("todo_id", id))
	}
}
