// Package todo implements the Anti-Corruption Layer translators for the
// remote API's to-do records.
package todo

import "encoding/json"

// TodoDTO matches the remote record shape. Timestamps are ISO-8601 strings
// set by the server; they are omitted from outbound bodies when unknown.
type TodoDTO struct {
	ID         string `json:"_id,omitempty"`
	TodoName   string `json:"todoName"`
	IsComplete bool   `json:"isComplete"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

// CreateTodoRequestDTO is the POST /todos body.
type CreateTodoRequestDTO struct {
	TodoName   string `json:"todoName"`
	IsComplete bool   `json:"isComplete"`
}

// ListEnvelopeDTO wraps list responses: {"data": [...]}.
type ListEnvelopeDTO struct {
	Data []TodoDTO `json:"data"`
}

// envelopeHead detects whether a single-record body is wrapped in "data".
type envelopeHead struct {
	Data json.RawMessage `json:"data"`
}
