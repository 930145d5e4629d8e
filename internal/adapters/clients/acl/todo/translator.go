package todo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/todo-client/internal/domain/todo"
)

// ErrEmptyRecord is returned when a single-record response has no body.
var ErrEmptyRecord = errors.New("empty record body")

// ToDomainItem converts a TodoDTO to a domain Item. Unparseable timestamps
// become the zero time.
func ToDomainItem(dto *TodoDTO) todo.Item {
	return todo.Item{
		ID:        dto.ID,
		Name:      dto.TodoName,
		Complete:  dto.IsComplete,
		CreatedAt: parseTime(dto.CreatedAt),
		UpdatedAt: parseTime(dto.UpdatedAt),
	}
}

// ToDomainItemList converts a list envelope to domain items. A missing or
// null "data" yields an empty, non-nil slice.
func ToDomainItemList(dto ListEnvelopeDTO) []todo.Item {
	items := make([]todo.Item, len(dto.Data))
	for i := range dto.Data {
		items[i] = ToDomainItem(&dto.Data[i])
	}
	return items
}

// ToCreateTodoRequest converts a Draft to the POST body.
func ToCreateTodoRequest(d todo.Draft) CreateTodoRequestDTO {
	return CreateTodoRequestDTO{
		TodoName:   d.Name,
		IsComplete: d.Complete,
	}
}

// ToUpdateTodoRequest converts an Item to the full-record PUT body.
func ToUpdateTodoRequest(item todo.Item) TodoDTO {
	return TodoDTO{
		ID:         item.ID,
		TodoName:   item.Name,
		IsComplete: item.Complete,
		CreatedAt:  formatTime(item.CreatedAt),
		UpdatedAt:  formatTime(item.UpdatedAt),
	}
}

// DecodeRecord decodes a single record that may arrive bare or wrapped as
// {"data": {...}}.
func DecodeRecord(raw json.RawMessage) (TodoDTO, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return TodoDTO{}, ErrEmptyRecord
	}

	var head envelopeHead
	if err := json.Unmarshal(raw, &head); err != nil {
		return TodoDTO{}, fmt.Errorf("decoding record: %w", err)
	}
	if len(head.Data) > 0 && !bytes.Equal(head.Data, []byte("null")) {
		raw = head.Data
	}

	var dto TodoDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return TodoDTO{}, fmt.Errorf("decoding record: %w", err)
	}
	return dto, nil
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
