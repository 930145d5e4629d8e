package ports

import (
	"context"
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-client/internal/domain/todo"
)

// TodoBoard defines the service port for the to-do list view: the cached rows,
// the active filter and the dialog flows that mutate them.
// Implemented by the application layer; called by the terminal UI and the
// HTTP shell.
type TodoBoard interface {
	// Refresh re-fetches the rows under the current filter together with the
	// unfiltered list. On failure the previous rows are kept.
	Refresh(ctx context.Context) error

	// SetFilter replaces the active date range (nil clears it) and refreshes.
	SetFilter(ctx context.Context, r *todo.DateRange) error

	// OpenAdd opens the add dialog.
	OpenAdd()

	// SubmitAdd creates an item from the form, appends it and re-fetches.
	// Returns domain.ErrValidation without sending anything if the form is
	// not ready.
	SubmitAdd(ctx context.Context, form AddForm) (*todo.Item, error)

	// OpenEdit captures a copy of item and opens the edit dialog.
	OpenEdit(item todo.Item)

	// SubmitEdit sends the captured copy with the chosen flag and patches the
	// matching row in place. A nil flag is rejected.
	SubmitEdit(ctx context.Context, complete *bool) (*todo.Item, error)

	// EditItem opens the edit dialog for item and submits it in one call, so
	// the record sent cannot be swapped by a concurrent OpenEdit.
	EditItem(ctx context.Context, item todo.Item, complete *bool) (*todo.Item, error)

	// OpenDetail captures a copy of item and opens the detail dialog.
	OpenDetail(item todo.Item)

	// LoadDetail looks the selected item up again by ID. On failure the
	// dialog stays open with no detail.
	LoadDetail(ctx context.Context) (*todo.Item, error)

	// LookupItem opens the detail dialog for item and looks it up by ID in
	// one call.
	LookupItem(ctx context.Context, item todo.Item) (*todo.Item, error)

	// Close dismisses any open dialog and clears the selection.
	Close()

	// Delete removes the item with id once confirmed. An unconfirmed call is
	// a no-op.
	Delete(ctx context.Context, id string, confirmed bool) error

	// Snapshot returns a copy of the current board state.
	Snapshot() BoardState
}

// Dialog identifies which modal is open.
type Dialog int

const (
	DialogNone Dialog = iota
	DialogAdd
	DialogEdit
	DialogDetail
)

// String implements fmt.Stringer.
func (d Dialog) String() string {
	switch d {
	case DialogAdd:
		return "add"
	case DialogEdit:
		return "edit"
	case DialogDetail:
		return "detail"
	default:
		return "none"
	}
}

// Notice is the last success notification.
type Notice struct {
	Text string
	At   time.Time
}

// Visible reports whether the notice should still be shown at now.
func (n Notice) Visible(now time.Time, ttl time.Duration) bool {
	return n.Text != "" && now.Before(n.At.Add(ttl))
}

// BoardState is a point-in-time copy of the board.
// Selected is set exactly when Dialog is DialogEdit or DialogDetail.
type BoardState struct {
	Items    []todo.Item
	All      []todo.Item
	Filter   *todo.DateRange
	Dialog   Dialog
	Selected *todo.Item
	Detail   *todo.Item
	Notice   Notice
	Loaded   bool
}

// AddForm holds the add dialog inputs. Complete stays nil until a status is
// explicitly chosen.
type AddForm struct {
	Name     string
	Complete *bool
}

// Ready reports whether the form may be submitted.
func (f AddForm) Ready() bool {
	return strings.TrimSpace(f.Name) != "" && f.Complete != nil
}

// Draft converts a ready form into a create payload.
func (f AddForm) Draft() todo.Draft {
	d := todo.Draft{Name: strings.TrimSpace(f.Name)}
	if f.Complete != nil {
		d.Complete = *f.Complete
	}
	return d
}
