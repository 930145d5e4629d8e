package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	acltodo "github.com/jsamuelsen11/todo-client/internal/adapters/clients/acl/todo"
	"github.com/jsamuelsen11/todo-client/internal/domain/todo"
	"github.com/jsamuelsen11/todo-client/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-client/internal/ports"
)

// ServiceName identifies the remote API in health checks, spans and metrics.
const ServiceName = "todo-api"

// Compile-time interface checks.
var (
	_ ports.TodoClient    = (*TodoClient)(nil)
	_ ports.HealthChecker = (*TodoClient)(nil)
)

// TodoClient is the outbound adapter for the remote to-do API. It implements
// [ports.TodoClient].
//
// List endpoints answer {"data": [...]} and GET /todos/{id} answers
// {"data": {...}}. Create and update replies are accepted bare or wrapped.
// HTTP errors are mapped to domain errors by [TranslateHTTPError].
type TodoClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewTodoClient creates a TodoClient that sends requests through the given
// [httpclient.Client], whose BaseURL points at the API root
// (e.g. "https://calm-plum-jaguar-tutu.cyclic.app").
func NewTodoClient(client *httpclient.Client, logger *slog.Logger) *TodoClient {
	return &TodoClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// ListTodos fetches every item from GET /todos.
func (c *TodoClient) ListTodos(ctx context.Context) ([]todo.Item, error) {
	var dto acltodo.ListEnvelopeDTO
	if err := c.req.Do(ctx, http.MethodGet, "/todos", nil, &dto); err != nil {
		return nil, err
	}
	return acltodo.ToDomainItemList(dto), nil
}

// ListTodosBetween fetches items from GET /todos/from/{start}/to/{end}.
func (c *TodoClient) ListTodosBetween(ctx context.Context, r todo.DateRange) ([]todo.Item, error) {
	path := "/todos/from/" + url.PathEscape(r.Start) + "/to/" + url.PathEscape(r.End)

	var dto acltodo.ListEnvelopeDTO
	if err := c.req.Do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return nil, err
	}
	return acltodo.ToDomainItemList(dto), nil
}

// GetTodo fetches a single item from GET /todos/{id}.
// Returns [domain.ErrNotFound] if the API returns 404.
func (c *TodoClient) GetTodo(ctx context.Context, id string) (*todo.Item, error) {
	var raw json.RawMessage
	if err := c.req.Do(ctx, http.MethodGet, itemPath(id), nil, &raw); err != nil {
		return nil, err
	}

	dto, err := acltodo.DecodeRecord(raw)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", itemPath(id), err)
	}
	result := acltodo.ToDomainItem(&dto)
	return &result, nil
}

// CreateTodo sends POST /todos with {todoName, isComplete} and returns the
// created record. When the API replies without a record the draft is returned
// as an item with no ID.
func (c *TodoClient) CreateTodo(ctx context.Context, d todo.Draft) (*todo.Item, error) {
	var raw json.RawMessage
	if err := c.req.Do(ctx, http.MethodPost, "/todos", acltodo.ToCreateTodoRequest(d), &raw); err != nil {
		return nil, err
	}

	dto, err := acltodo.DecodeRecord(raw)
	if errors.Is(err, acltodo.ErrEmptyRecord) {
		return &todo.Item{Name: d.Name, Complete: d.Complete}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("POST /todos: %w", err)
	}
	result := acltodo.ToDomainItem(&dto)
	return &result, nil
}

// UpdateTodo sends PUT /todos/{id} with the full record. When the API replies
// without a record the sent item is returned.
func (c *TodoClient) UpdateTodo(ctx context.Context, id string, item todo.Item) (*todo.Item, error) {
	var raw json.RawMessage
	if err := c.req.Do(ctx, http.MethodPut, itemPath(id), acltodo.ToUpdateTodoRequest(item), &raw); err != nil {
		return nil, err
	}

	dto, err := acltodo.DecodeRecord(raw)
	if errors.Is(err, acltodo.ErrEmptyRecord) {
		return &item, nil
	}
	if err != nil {
		return nil, fmt.Errorf("PUT %s: %w", itemPath(id), err)
	}
	result := acltodo.ToDomainItem(&dto)
	return &result, nil
}

// DeleteTodo sends DELETE /todos/{id}. The response body is ignored.
func (c *TodoClient) DeleteTodo(ctx context.Context, id string) error {
	return c.req.Do(ctx, http.MethodDelete, itemPath(id), nil, nil)
}

func itemPath(id string) string {
	return "/todos/" + url.PathEscape(id)
}
