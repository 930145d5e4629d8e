// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel/metric"

	appctx "github.com/jsamuelsen11/todo-client/internal/app/context"
	"github.com/jsamuelsen11/todo-client/internal/app/fanout"
	"github.com/jsamuelsen11/todo-client/internal/domain"
	"github.com/jsamuelsen11/todo-client/internal/domain/todo"
	"github.com/jsamuelsen11/todo-client/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-client/internal/ports"
)

// Compile-time check that Board implements ports.TodoBoard.
var _ ports.TodoBoard = (*Board)(nil)

// Success notices shown after a completed mutation.
const (
	NoticeAdded   = "Todo added successfully!"
	NoticeEdited  = "Todo edited successfully!"
	NoticeDeleted = "Todo deleted successfully!"
)

// refreshWorkers covers the filtered and the unfiltered fetch.
const refreshWorkers = 2

// Flow names recorded on the todo.flow.total counter.
const (
	flowRefresh = "refresh"
	flowAdd     = "add"
	flowEdit    = "edit"
	flowDetail  = "detail"
	flowDelete  = "delete"
)

// errNoSelection is returned when an edit or detail flow runs without a
// captured item.
var errNoSelection = fmt.Errorf("no item selected: %w", domain.ErrValidation)

// Board implements ports.TodoBoard. It owns the view state (rows, filter,
// dialog, selection, notice) and runs every flow against the TodoClient port.
// State lives behind a SafeRef so the UI goroutine and in-flight requests can
// share it; overlapping requests are not cancelled and the last completion
// wins.
type Board struct {
	todoClient ports.TodoClient
	state      *appctx.SafeRef[ports.BoardState]
	metrics    *telemetry.Metrics
	now        func() time.Time
	logger     *slog.Logger
}

// BoardOption configures optional Board collaborators.
type BoardOption func(*Board)

// WithMetrics records one todo.flow.total increment per completed flow.
func WithMetrics(m *telemetry.Metrics) BoardOption {
	return func(b *Board) { b.metrics = m }
}

// WithClock overrides the clock used to stamp notices.
func WithClock(now func() time.Time) BoardOption {
	return func(b *Board) { b.now = now }
}

// NewBoard creates an empty Board. A nil logger discards all output.
func NewBoard(client ports.TodoClient, logger *slog.Logger, opts ...BoardOption) *Board {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	b := &Board{
		todoClient: client,
		state:      appctx.NewRef(ports.BoardState{}),
		now:        time.Now,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Refresh re-fetches the rows. Without a filter one list call feeds both the
// rows and the unfiltered totals. With a filter the range query and the
// unfiltered list run concurrently and each result is applied on its own, so
// a failure of one keeps the previous value of that half.
func (b *Board) Refresh(ctx context.Context) error {
	filter := b.state.Get().Filter
	if filter == nil {
		b.logger.DebugContext(ctx, "refreshing todos")

		items, err := b.todoClient.ListTodos(ctx)
		b.record(ctx, flowRefresh, err)
		if err != nil {
			b.logger.ErrorContext(ctx, "failed to list todos",
				slog.String("operation", "Refresh"),
				slog.Any("error", err),
			)
			return err
		}

		b.state.Update(func(s *ports.BoardState) {
			s.Items = items
			s.All = slices.Clone(items)
			s.Loaded = true
		})
		return nil
	}

	r := *filter
	b.logger.DebugContext(ctx, "refreshing todos", slog.String("range", r.String()))

	fetches := []func(context.Context) ([]todo.Item, error){
		func(ctx context.Context) ([]todo.Item, error) { return b.todoClient.ListTodosBetween(ctx, r) },
		b.todoClient.ListTodos,
	}
	results := fanout.Run(ctx, refreshWorkers, fetches,
		func(ctx context.Context, fetch func(context.Context) ([]todo.Item, error)) ([]todo.Item, error) {
			return fetch(ctx)
		},
	)
	filtered, all := results[0], results[1]

	if filtered.Err != nil {
		b.logger.ErrorContext(ctx, "failed to list todos in range",
			slog.String("operation", "Refresh"),
			slog.String("range", r.String()),
			slog.Any("error", filtered.Err),
		)
	}
	if all.Err != nil {
		b.logger.ErrorContext(ctx, "failed to list all todos",
			slog.String("operation", "Refresh"),
			slog.Any("error", all.Err),
		)
	}

	b.state.Update(func(s *ports.BoardState) {
		if filtered.Err == nil {
			s.Items = filtered.Value
			s.Loaded = true
		}
		if all.Err == nil {
			s.All = all.Value
		}
	})

	err := fanout.Join(results)
	b.record(ctx, flowRefresh, err)
	return err
}

// SetFilter stores the range (nil clears it) and refreshes under it.
func (b *Board) SetFilter(ctx context.Context, r *todo.DateRange) error {
	var next *todo.DateRange
	if r != nil {
		cp := *r
		next = &cp
	}
	b.state.Update(func(s *ports.BoardState) { s.Filter = next })

	if next == nil {
		b.logger.InfoContext(ctx, "clearing date filter")
	} else {
		b.logger.InfoContext(ctx, "applying date filter", slog.String("range", next.String()))
	}
	return b.Refresh(ctx)
}

// OpenAdd opens the add dialog.
func (b *Board) OpenAdd() {
	b.state.Update(func(s *ports.BoardState) {
		s.Dialog = ports.DialogAdd
		s.Selected = nil
		s.Detail = nil
	})
}

// SubmitAdd creates an item from the form. On success the created record is
// appended, the add dialog closes if it is still open, the rows are
// re-fetched under the current filter and a notice is posted. A reply without
// an ID is left to the re-fetch. On failure the dialog stays open.
func (b *Board) SubmitAdd(ctx context.Context, form ports.AddForm) (*todo.Item, error) {
	if !form.Ready() {
		return nil, formError(form)
	}
	draft := form.Draft()
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	b.logger.InfoContext(ctx, "creating todo", slog.String("name", draft.Name))

	created, err := b.todoClient.CreateTodo(ctx, draft)
	b.record(ctx, flowAdd, err)
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "SubmitAdd"),
			slog.Any("error", err),
		)
		return nil, err
	}

	b.state.Update(func(s *ports.BoardState) {
		if created.ID != "" {
			s.Items = append(slices.Clone(s.Items), *created)
		}
		if s.Dialog == ports.DialogAdd {
			s.Dialog = ports.DialogNone
		}
		s.Notice = ports.Notice{Text: NoticeAdded, At: b.now()}
	})

	// The create already succeeded; a failed re-fetch only leaves the
	// appended row in place.
	_ = b.Refresh(ctx)

	return created, nil
}

// formError reports which add-form inputs are missing.
func formError(form ports.AddForm) error {
	fields := map[string]string{}
	if form.Draft().Name == "" {
		fields["todoName"] = domain.MsgRequired
	}
	if form.Complete == nil {
		fields["isComplete"] = domain.MsgNotChosen
	}
	return &domain.ValidationError{Fields: fields}
}

// OpenEdit captures a copy of item and opens the edit dialog.
func (b *Board) OpenEdit(item todo.Item) {
	b.state.Update(func(s *ports.BoardState) {
		s.Dialog = ports.DialogEdit
		s.Selected = &item
		s.Detail = nil
	})
}

// SubmitEdit sends the captured copy carrying the chosen flag. On success the
// row with the same ID is patched in place from the local copy (no re-fetch),
// the dialog closes and a notice is posted.
func (b *Board) SubmitEdit(ctx context.Context, complete *bool) (*todo.Item, error) {
	st := b.state.Get()
	if st.Dialog != ports.DialogEdit || st.Selected == nil {
		return nil, errNoSelection
	}
	return b.submitEdit(ctx, *st.Selected, complete)
}

// EditItem opens the edit dialog for item and submits it with the chosen flag
// in one step. The record sent is item itself, not whatever is selected when
// the request goes out.
func (b *Board) EditItem(ctx context.Context, item todo.Item, complete *bool) (*todo.Item, error) {
	b.OpenEdit(item)
	return b.submitEdit(ctx, item, complete)
}

func (b *Board) submitEdit(ctx context.Context, item todo.Item, complete *bool) (*todo.Item, error) {
	if complete == nil {
		return nil, &domain.ValidationError{Fields: map[string]string{"isComplete": domain.MsgNotChosen}}
	}

	updated := item.WithComplete(*complete)
	b.logger.InfoContext(ctx, "updating todo",
		slog.String("id", updated.ID),
		slog.Bool("complete", updated.Complete),
	)

	if _, err := b.todoClient.UpdateTodo(ctx, updated.ID, updated); err != nil {
		b.record(ctx, flowEdit, err)
		b.logger.ErrorContext(ctx, "failed to update todo",
			slog.String("operation", "SubmitEdit"),
			slog.String("id", updated.ID),
			slog.Any("error", err),
		)
		return nil, err
	}
	b.record(ctx, flowEdit, nil)

	b.state.Update(func(s *ports.BoardState) {
		if idx := todo.FindByID(s.Items, updated.ID); idx >= 0 {
			s.Items = slices.Clone(s.Items)
			s.Items[idx] = updated
		}
		if s.Dialog == ports.DialogEdit && s.Selected != nil && s.Selected.ID == updated.ID {
			s.Dialog = ports.DialogNone
			s.Selected = nil
		}
		s.Notice = ports.Notice{Text: NoticeEdited, At: b.now()}
	})

	return &updated, nil
}

// OpenDetail captures a copy of item and opens the detail dialog with no
// detail loaded yet.
func (b *Board) OpenDetail(item todo.Item) {
	b.state.Update(func(s *ports.BoardState) {
		s.Dialog = ports.DialogDetail
		s.Selected = &item
		s.Detail = nil
	})
}

// LoadDetail fetches the selected item by ID. The result is stored only while
// the detail dialog for that item is still open.
func (b *Board) LoadDetail(ctx context.Context) (*todo.Item, error) {
	st := b.state.Get()
	if st.Dialog != ports.DialogDetail || st.Selected == nil {
		return nil, errNoSelection
	}
	return b.loadDetail(ctx, st.Selected.ID)
}

// LookupItem opens the detail dialog for item and fetches it by ID in one
// step.
func (b *Board) LookupItem(ctx context.Context, item todo.Item) (*todo.Item, error) {
	b.OpenDetail(item)
	return b.loadDetail(ctx, item.ID)
}

func (b *Board) loadDetail(ctx context.Context, id string) (*todo.Item, error) {
	b.logger.DebugContext(ctx, "fetching todo", slog.String("id", id))

	got, err := b.todoClient.GetTodo(ctx, id)
	b.record(ctx, flowDetail, err)
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to fetch todo",
			slog.String("operation", "LoadDetail"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	detail := *got
	b.state.Update(func(s *ports.BoardState) {
		if s.Dialog == ports.DialogDetail && s.Selected != nil && s.Selected.ID == id {
			s.Detail = &detail
		}
	})
	return got, nil
}

// Close dismisses any open dialog and clears the selection.
func (b *Board) Close() {
	b.state.Update(func(s *ports.BoardState) {
		s.Dialog = ports.DialogNone
		s.Selected = nil
		s.Detail = nil
	})
}

// Delete removes the item once confirmed: the remote record is deleted, the
// row is filtered out locally and a notice is posted. An unconfirmed call
// sends nothing.
func (b *Board) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		b.logger.DebugContext(ctx, "delete cancelled", slog.String("id", id))
		return nil
	}

	b.logger.InfoContext(ctx, "deleting todo", slog.String("id", id))

	err := b.todoClient.DeleteTodo(ctx, id)
	b.record(ctx, flowDelete, err)
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to delete todo",
			slog.String("operation", "Delete"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return err
	}

	b.state.Update(func(s *ports.BoardState) {
		s.Items = slices.DeleteFunc(slices.Clone(s.Items), func(it todo.Item) bool { return it.ID == id })
		s.Notice = ports.Notice{Text: NoticeDeleted, At: b.now()}
	})
	return nil
}

// Snapshot returns a deep copy of the board state.
func (b *Board) Snapshot() ports.BoardState {
	st := b.state.Get()
	st.Items = slices.Clone(st.Items)
	st.All = slices.Clone(st.All)
	st.Filter = clonePtr(st.Filter)
	st.Selected = clonePtr(st.Selected)
	st.Detail = clonePtr(st.Detail)
	return st
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func (b *Board) record(ctx context.Context, flow string, err error) {
	if b.metrics == nil || b.metrics.FlowTotal == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	b.metrics.FlowTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrFlow.String(flow),
		telemetry.AttrResult.String(result),
	))
}
