package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-client/internal/domain/todo"
)

// TodoClient defines the client port for the remote to-do API.
// Implemented by the ACL adapter; called by the application layer.
// Methods map 1:1 to remote endpoints using domain terminology.
type TodoClient interface {
	// ListTodos returns every item (GET /todos).
	ListTodos(ctx context.Context) ([]todo.Item, error)

	// ListTodosBetween returns items created inside the inclusive range
	// (GET /todos/from/{start}/to/{end}).
	ListTodosBetween(ctx context.Context, r todo.DateRange) ([]todo.Item, error)

	// GetTodo returns a single item by ID.
	// Returns domain.ErrNotFound if the item does not exist.
	GetTodo(ctx context.Context, id string) (*todo.Item, error)

	// CreateTodo creates a new item and returns the record the server stored,
	// or the draft without an ID when the server replies with no body.
	CreateTodo(ctx context.Context, draft todo.Draft) (*todo.Item, error)

	// UpdateTodo sends the full record for id and returns the server's reply.
	// Returns domain.ErrNotFound if the item does not exist.
	UpdateTodo(ctx context.Context, id string, item todo.Item) (*todo.Item, error)

	// DeleteTodo deletes an item by ID. The response body is ignored.
	DeleteTodo(ctx context.Context, id string) error
}
