package handlers

import (
	"github.com/go-playground/validator/v10"

	"gotodo/internal/cache"
	"gotodo/internal/repository"
	"gotodo/internal/token"
)

// Handler carries the dependencies every endpoint needs. Everything here is
// read-only after startup; requests never share mutable state through it.
type Handler struct {
	Accounts repository.AccountStore
	Todos    repository.TodoStore
	Cache    cache.TodoCache
	Tokens   *token.Service
	Validate *validator.Validate

	// StrictTodoOwnership makes single-todo GET enforce ownership like
	// update/delete do. The original behavior (any authenticated account can
	// read any todo by id) is kept as the default.
	StrictTodoOwnership bool
}

func New(accounts repository.AccountStore, todos repository.TodoStore, todoCache cache.TodoCache, tokens *token.Service, strictOwnership bool) *Handler {
	return &Handler{
		Accounts:            accounts,
		Todos:               todos,
		Cache:               todoCache,
		Tokens:              tokens,
		Validate:            validator.New(),
		StrictTodoOwnership: strictOwnership,
	}
}

// fieldErrors flattens validator failures into a field -> message map for
// 400 responses.
func fieldErrors(err error) map[string]string {
	errs := map[string]string{}
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range validationErrs {
			errs[fe.Field()] = "failed on '" + fe.Tag() + "' validation"
		}
	}
	return errs
}
