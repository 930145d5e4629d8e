package todo

import (
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-client/internal/domain"
)

// Item is a task record as held by the remote API. The ID is assigned by the
// server and never generated client-side.
type Item struct {
	ID        string
	Name      string
	Complete  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Status returns the display status of the item.
func (i Item) Status() Status {
	return StatusOf(i.Complete)
}

// WithComplete returns a copy of the item carrying the given completion flag.
func (i Item) WithComplete(complete bool) Item {
	i.Complete = complete
	return i
}

// Draft is the payload of a create request.
type Draft struct {
	Name     string
	Complete bool
}

// Validate checks business rules for a Draft.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"todoName": domain.MsgRequired}}
	}
	return nil
}

// FindByID returns the index of the item with the given ID, or -1.
func FindByID(items []Item, id string) int {
	return slices.IndexFunc(items, func(it Item) bool { return it.ID == id })
}
