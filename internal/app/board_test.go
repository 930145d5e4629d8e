package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/todo-client/internal/domain"
	"github.com/jsamuelsen11/todo-client/internal/domain/todo"
	"github.com/jsamuelsen11/todo-client/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-client/internal/ports"
	"github.com/jsamuelsen11/todo-client/mocks"
)

var (
	testTime = time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)
	fixedNow = time.Date(2023, 6, 2, 9, 30, 0, 0, time.UTC)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func boolPtr(v bool) *bool { return &v }

func item(id, name string, complete bool) todo.Item {
	return todo.Item{ID: id, Name: name, Complete: complete, CreatedAt: testTime, UpdatedAt: testTime}
}

func newBoard(t *testing.T) (*Board, *mocks.MockTodoClient) {
	t.Helper()
	client := mocks.NewMockTodoClient(t)
	b := NewBoard(client, discardLogger(), WithClock(func() time.Time { return fixedNow }))
	return b, client
}

// seed loads rows through an unfiltered refresh.
func seed(t *testing.T, b *Board, client *mocks.MockTodoClient, items ...todo.Item) {
	t.Helper()
	client.EXPECT().ListTodos(mock.Anything).Return(items, nil).Once()
	if err := b.Refresh(context.Background()); err != nil {
		t.Fatalf("seed Refresh() error = %v", err)
	}
}

func mustRange(t *testing.T, start, end string) *todo.DateRange {
	t.Helper()
	r, err := todo.NewDateRange(start, end)
	if err != nil {
		t.Fatalf("NewDateRange(%q, %q) error = %v", start, end, err)
	}
	return &r
}

func ids(items []todo.Item) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}

func equalIDs(got []todo.Item, want ...string) bool {
	g := ids(got)
	if len(g) != len(want) {
		return false
	}
	for i := range g {
		if g[i] != want[i] {
			return false
		}
	}
	return true
}

// --- NewBoard ---

func TestNewBoard_NilLogger(t *testing.T) {
	t.Parallel()
	client := mocks.NewMockTodoClient(t)

	b := NewBoard(client, nil)
	if b.logger == nil {
		t.Fatal("NewBoard(nil logger) should create a no-op logger, got nil")
	}
}

func TestNewBoard_EmptyState(t *testing.T) {
	t.Parallel()
	b, _ := newBoard(t)

	st := b.Snapshot()
	if st.Loaded || st.Dialog != ports.DialogNone || st.Filter != nil || len(st.Items) != 0 {
		t.Errorf("initial state = %+v, want empty", st)
	}
}

// --- Refresh ---

func TestRefresh_Unfiltered(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)

	rows := []todo.Item{item("a", "A", false), item("b", "B", true)}
	client.EXPECT().ListTodos(mock.Anything).Return(rows, nil).Once()

	if err := b.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	st := b.Snapshot()
	if !equalIDs(st.Items, "a", "b") {
		t.Errorf("Items = %v, want [a b]", ids(st.Items))
	}
	if !equalIDs(st.All, "a", "b") {
		t.Errorf("All = %v, want [a b]", ids(st.All))
	}
	if !st.Loaded {
		t.Error("Loaded = false, want true")
	}
}

func TestRefresh_Filtered(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)
	r := mustRange(t, "2023-06-01", "2023-06-30")

	client.EXPECT().ListTodosBetween(mock.Anything, *r).Return([]todo.Item{item("b", "B", false)}, nil).Once()
	client.EXPECT().ListTodos(mock.Anything).Return([]todo.Item{item("a", "A", false), item("b", "B", false)}, nil).Once()

	if err := b.SetFilter(context.Background(), r); err != nil {
		t.Fatalf("SetFilter() error = %v", err)
	}

	st := b.Snapshot()
	if !equalIDs(st.Items, "b") {
		t.Errorf("Items = %v, want [b]", ids(st.Items))
	}
	if !equalIDs(st.All, "a", "b") {
		t.Errorf("All = %v, want [a b]", ids(st.All))
	}
	if st.Filter == nil || *st.Filter != *r {
		t.Errorf("Filter = %v, want %v", st.Filter, r)
	}
}

func TestRefresh_FailureKeepsPreviousRows(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)
	seed(t, b, client, item("a", "A", false))

	client.EXPECT().ListTodos(mock.Anything).Return(nil, domain.ErrUnavailable).Once()

	err := b.Refresh(context.Background())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("Refresh() error = %v, want ErrUnavailable", err)
	}
	if st := b.Snapshot(); !equalIDs(st.Items, "a") {
		t.Errorf("Items = %v, want previous rows [a]", ids(st.Items))
	}
}

func TestRefresh_FilteredPartialFailure(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)
	seed(t, b, client, item("a", "A", false), item("b", "B", false))
	r := mustRange(t, "2023-06-01", "2023-06-01")

	client.EXPECT().ListTodosBetween(mock.Anything, *r).Return([]todo.Item{item("a", "A", false)}, nil).Once()
	client.EXPECT().ListTodos(mock.Anything).Return(nil, domain.ErrUnavailable).Once()

	err := b.SetFilter(context.Background(), r)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("SetFilter() error = %v, want ErrUnavailable", err)
	}

	st := b.Snapshot()
	if !equalIDs(st.Items, "a") {
		t.Errorf("Items = %v, want [a]", ids(st.Items))
	}
	if !equalIDs(st.All, "a", "b") {
		t.Errorf("All = %v, want previous [a b]", ids(st.All))
	}
}

func TestSetFilter_ClearRefetchesAll(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)
	r := mustRange(t, "2023-06-01", "2023-06-30")

	client.EXPECT().ListTodosBetween(mock.Anything, *r).Return([]todo.Item{}, nil).Once()
	client.EXPECT().ListTodos(mock.Anything).Return([]todo.Item{item("a", "A", false)}, nil).Twice()

	if err := b.SetFilter(context.Background(), r); err != nil {
		t.Fatalf("SetFilter() error = %v", err)
	}
	if err := b.SetFilter(context.Background(), nil); err != nil {
		t.Fatalf("SetFilter(nil) error = %v", err)
	}

	st := b.Snapshot()
	if st.Filter != nil {
		t.Errorf("Filter = %v, want nil", st.Filter)
	}
	if !equalIDs(st.Items, "a") {
		t.Errorf("Items = %v, want [a]", ids(st.Items))
	}
}

func TestSetFilter_CopiesRange(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)
	r := mustRange(t, "2023-06-01", "2023-06-30")

	client.EXPECT().ListTodosBetween(mock.Anything, mock.Anything).Return([]todo.Item{}, nil)
	client.EXPECT().ListTodos(mock.Anything).Return([]todo.Item{}, nil)

	if err := b.SetFilter(context.Background(), r); err != nil {
		t.Fatalf("SetFilter() error = %v", err)
	}
	r.Start = "1999-01-01"

	if got := b.Snapshot().Filter.Start; got != "2023-06-01" {
		t.Errorf("Filter.Start = %q, want caller mutation not to leak", got)
	}
}

// --- SubmitAdd ---

func TestSubmitAdd_Success(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)
	seed(t, b, client, item("a", "A", false))
	b.OpenAdd()

	created := item("new", "Buy milk", true)
	client.EXPECT().CreateTodo(mock.Anything, todo.Draft{Name: "Buy milk", Complete: true}).
		Return(&created, nil).Once()
	client.EXPECT().ListTodos(mock.Anything).
		Return([]todo.Item{item("a", "A", false), created}, nil).Once()

	got, err := b.SubmitAdd(context.Background(), ports.AddForm{Name: "  Buy milk ", Complete: boolPtr(true)})
	if err != nil {
		t.Fatalf("SubmitAdd() error = %v", err)
	}
	if got.ID != "new" {
		t.Errorf("ID = %q, want %q", got.ID, "new")
	}

	st := b.Snapshot()
	if st.Dialog != ports.DialogNone {
		t.Errorf("Dialog = %v, want none", st.Dialog)
	}
	if !equalIDs(st.Items, "a", "new") {
		t.Errorf("Items = %v, want [a new]", ids(st.Items))
	}
	if st.Notice.Text != NoticeAdded || !st.Notice.At.Equal(fixedNow) {
		t.Errorf("Notice = %+v, want %q at %v", st.Notice, NoticeAdded, fixedNow)
	}
}

func TestSubmitAdd_RefreshUsesFilter(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)
	r := mustRange(t, "2023-06-01", "2023-06-30")

	client.EXPECT().ListTodosBetween(mock.Anything, *r).Return([]todo.Item{}, nil).Twice()
	client.EXPECT().ListTodos(mock.Anything).Return([]todo.Item{}, nil).Twice()
	if err := b.SetFilter(context.Background(), r); err != nil {
		t.Fatalf("SetFilter() error = %v", err)
	}

	created := item("new", "N", false)
	client.EXPECT().CreateTodo(mock.Anything, mock.Anything).Return(&created, nil).Once()

	b.OpenAdd()
	if _, err := b.SubmitAdd(context.Background(), ports.AddForm{Name: "N", Complete: boolPtr(false)}); err != nil {
		t.Fatalf("SubmitAdd() error = %v", err)
	}
}

func TestSubmitAdd_RefreshFailureKeepsAppendedRow(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)

	created := item("new", "N", false)
	client.EXPECT().CreateTodo(mock.Anything, mock.Anything).Return(&created, nil).Once()
	client.EXPECT().ListTodos(mock.Anything).Return(nil, domain.ErrUnavailable).Once()

	b.OpenAdd()
	if _, err := b.SubmitAdd(context.Background(), ports.AddForm{Name: "N", Complete: boolPtr(false)}); err != nil {
		t.Fatalf("SubmitAdd() error = %v, want nil when only the re-fetch fails", err)
	}
	if st := b.Snapshot(); !equalIDs(st.Items, "new") {
		t.Errorf("Items = %v, want [new]", ids(st.Items))
	}
}

func TestSubmitAdd_IncompleteForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		form       ports.AddForm
		wantFields []string
	}{
		{name: "empty", form: ports.AddForm{}, wantFields: []string{"todoName", "isComplete"}},
		{name: "blank name", form: ports.AddForm{Name: "   ", Complete: boolPtr(true)}, wantFields: []string{"todoName"}},
		{name: "status not chosen", form: ports.AddForm{Name: "X"}, wantFields: []string{"isComplete"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, _ := newBoard(t)
			b.OpenAdd()

			_, err := b.SubmitAdd(context.Background(), tt.form)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("SubmitAdd() error = %v, want ErrValidation", err)
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error type = %T, want *domain.ValidationError", err)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Errorf("Fields = %v, want keys %v", verr.Fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("Fields missing %q: %v", f, verr.Fields)
				}
			}
			if st := b.Snapshot(); st.Dialog != ports.DialogAdd {
				t.Errorf("Dialog = %v, want add to stay open", st.Dialog)
			}
		})
	}
}

func TestSubmitAdd_ClientError(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)
	b.OpenAdd()

	client.EXPECT().CreateTodo(mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable).Once()

	_, err := b.SubmitAdd(context.Background(), ports.AddForm{Name: "X", Complete: boolPtr(false)})
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("SubmitAdd() error = %v, want ErrUnavailable", err)
	}

	st := b.Snapshot()
	if st.Dialog != ports.DialogAdd {
		t.Errorf("Dialog = %v, want add to stay open", st.Dialog)
	}
	if st.Notice.Text != "" {
		t.Errorf("Notice = %q, want none", st.Notice.Text)
	}
}

// --- SubmitEdit ---

func TestSubmitEdit_PatchesRowInPlace(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)
	seed(t, b, client, item("a", "A", false), item("b", "B", false))

	b.OpenEdit(item("b", "B", false))
	want := item("b", "B", true)
	server := item("b", "renamed on server", true)
	client.EXPECT().UpdateTodo(mock.Anything, "b", want).Return(&server, nil).Once()

	got, err := b.SubmitEdit(context.Background(), boolPtr(true))
	if err != nil {
		t.Fatalf("SubmitEdit() error = %v", err)
	}
	if *got != want {
		t.Errorf("SubmitEdit() = %+v, want %+v", *got, want)
	}

	st := b.Snapshot()
	if st.Items[1] != want {
		t.Errorf("Items[1] = %+v, want local copy %+v", st.Items[1], want)
	}
	if st.Items[0] != item("a", "A", false) {
		t.Errorf("Items[0] changed: %+v", st.Items[0])
	}
	if st.Dialog != ports.DialogNone || st.Selected != nil {
		t.Errorf("Dialog = %v Selected = %v, want closed", st.Dialog, st.Selected)
	}
	if st.Notice.Text != NoticeEdited {
		t.Errorf("Notice = %q, want %q", st.Notice.Text, NoticeEdited)
	}
}

func TestSubmitEdit_RowGoneStillCloses(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)
	seed(t, b, client, item("a", "A", false))

	b.OpenEdit(item("zzz", "Z", false))
	client.EXPECT().UpdateTodo(mock.Anything, "zzz", mock.Anything).Return(nil, nil).Once()

	if _, err := b.SubmitEdit(context.Background(), boolPtr(true)); err != nil {
		t.Fatalf("SubmitEdit() error = %v", err)
	}
	if st := b.Snapshot(); !equalIDs(st.Items, "a") || st.Items[0].Complete {
		t.Errorf("Items = %+v, want untouched", st.Items)
	}
}

func TestSubmitEdit_NilFlag(t *testing.T) {
	t.Parallel()
	b, _ := newBoard(t)
	b.OpenEdit(item("a", "A", false))

	_, err := b.SubmitEdit(context.Background(), nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("SubmitEdit(nil) error = %v, want ErrValidation", err)
	}
	if st := b.Snapshot(); st.Dialog != ports.DialogEdit {
		t.Errorf("Dialog = %v, want edit to stay open", st.Dialog)
	}
}

func TestSubmitEdit_NoSelection(t *testing.T) {
	t.Parallel()
	b, _ := newBoard(t)

	_, err := b.SubmitEdit(context.Background(), boolPtr(true))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("SubmitEdit() error = %v, want ErrValidation", err)
	}
}

func TestSubmitEdit_ClientError(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)
	seed(t, b, client, item("a", "A", false))
	b.OpenEdit(item("a", "A", false))

	client.EXPECT().UpdateTodo(mock.Anything, "a", mock.Anything).Return(nil, domain.ErrNotFound).Once()

	_, err := b.SubmitEdit(context.Background(), boolPtr(true))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("SubmitEdit() error = %v, want ErrNotFound", err)
	}

	st := b.Snapshot()
	if st.Dialog != ports.DialogEdit {
		t.Errorf("Dialog = %v, want edit to stay open", st.Dialog)
	}
	if st.Items[0].Complete {
		t.Error("row patched despite failure")
	}
}

func TestSubmitEdit_LateReplyKeepsNewDialog(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)
	seed(t, b, client, item("a", "A", false))
	b.OpenEdit(item("a", "A", false))

	// The edit dialog is dismissed and the add dialog opened while the
	// update is in flight.
	client.EXPECT().UpdateTodo(mock.Anything, "a", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, it todo.Item) (*todo.Item, error) {
			b.Close()
			b.OpenAdd()
			return &it, nil
		}).Once()

	if _, err := b.SubmitEdit(context.Background(), boolPtr(true)); err != nil {
		t.Fatalf("SubmitEdit() error = %v", err)
	}

	st := b.Snapshot()
	if st.Dialog != ports.DialogAdd {
		t.Errorf("Dialog = %v, want add to stay open", st.Dialog)
	}
	if !st.Items[0].Complete {
		t.Error("row not patched")
	}
	if st.Notice.Text != NoticeEdited {
		t.Errorf("Notice = %q, want %q", st.Notice.Text, NoticeEdited)
	}
}

func TestEditItem_SendsGivenItem(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)
	seed(t, b, client, item("a", "A", false), item("b", "B", false))

	client.EXPECT().UpdateTodo(mock.Anything, "a", item("a", "A", true)).
		RunAndReturn(func(_ context.Context, _ string, it todo.Item) (*todo.Item, error) {
			b.OpenEdit(item("b", "B", false))
			return &it, nil
		}).Once()

	got, err := b.EditItem(context.Background(), item("a", "A", false), boolPtr(true))
	if err != nil {
		t.Fatalf("EditItem() error = %v", err)
	}
	if got.ID != "a" || !got.Complete {
		t.Errorf("EditItem() = %+v, want a complete", *got)
	}

	st := b.Snapshot()
	if !st.Items[0].Complete || st.Items[1].Complete {
		t.Errorf("Items = %+v, want only a complete", st.Items)
	}
	if st.Dialog != ports.DialogEdit || st.Selected == nil || st.Selected.ID != "b" {
		t.Errorf("Dialog = %v Selected = %+v, want edit on b", st.Dialog, st.Selected)
	}
}

func TestEditItem_NilFlag(t *testing.T) {
	t.Parallel()
	b, _ := newBoard(t)

	_, err := b.EditItem(context.Background(), item("a", "A", false), nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("EditItem(nil) error = %v, want ErrValidation", err)
	}
}

func TestSubmitAdd_LateReplyKeepsNewDialog(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)
	b.OpenAdd()

	created := item("new", "N", false)
	client.EXPECT().CreateTodo(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, todo.Draft) (*todo.Item, error) {
			b.OpenEdit(item("x", "X", false))
			return &created, nil
		}).Once()
	client.EXPECT().ListTodos(mock.Anything).Return([]todo.Item{created}, nil).Once()

	if _, err := b.SubmitAdd(context.Background(), ports.AddForm{Name: "N", Complete: boolPtr(false)}); err != nil {
		t.Fatalf("SubmitAdd() error = %v", err)
	}
	if st := b.Snapshot(); st.Dialog != ports.DialogEdit {
		t.Errorf("Dialog = %v, want edit to stay open", st.Dialog)
	}
}

func TestSubmitAdd_ReplyWithoutID(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)
	b.OpenAdd()

	echoed := todo.Item{Name: "N"}
	client.EXPECT().CreateTodo(mock.Anything, mock.Anything).Return(&echoed, nil).Once()
	client.EXPECT().ListTodos(mock.Anything).Return(nil, domain.ErrUnavailable).Once()

	if _, err := b.SubmitAdd(context.Background(), ports.AddForm{Name: "N", Complete: boolPtr(false)}); err != nil {
		t.Fatalf("SubmitAdd() error = %v", err)
	}

	st := b.Snapshot()
	if len(st.Items) != 0 {
		t.Errorf("Items = %+v, want no row without an ID", st.Items)
	}
	if st.Dialog != ports.DialogNone || st.Notice.Text != NoticeAdded {
		t.Errorf("Dialog = %v Notice = %q, want closed with notice", st.Dialog, st.Notice.Text)
	}
}

// --- Detail ---

func TestDetail_Success(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)

	fresh := item("a", "A fresh", true)
	client.EXPECT().GetTodo(mock.Anything, "a").Return(&fresh, nil).Once()

	b.OpenDetail(item("a", "A", false))
	if st := b.Snapshot(); st.Dialog != ports.DialogDetail || st.Detail != nil {
		t.Fatalf("after OpenDetail: Dialog = %v Detail = %v, want detail dialog with nothing loaded", st.Dialog, st.Detail)
	}

	if _, err := b.LoadDetail(context.Background()); err != nil {
		t.Fatalf("LoadDetail() error = %v", err)
	}

	st := b.Snapshot()
	if st.Detail == nil || st.Detail.Name != "A fresh" {
		t.Errorf("Detail = %+v, want fetched record", st.Detail)
	}
	if st.Selected == nil || st.Selected.Name != "A" {
		t.Errorf("Selected = %+v, want captured copy", st.Selected)
	}
}

func TestDetail_FailureLeavesDialogOpen(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)

	client.EXPECT().GetTodo(mock.Anything, "a").Return(nil, domain.ErrNotFound).Once()

	b.OpenDetail(item("a", "A", false))
	_, err := b.LoadDetail(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("LoadDetail() error = %v, want ErrNotFound", err)
	}

	st := b.Snapshot()
	if st.Dialog != ports.DialogDetail || st.Detail != nil {
		t.Errorf("Dialog = %v Detail = %v, want open with no detail", st.Dialog, st.Detail)
	}
}

func TestDetail_ClosedBeforeReply(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)

	fresh := item("a", "A", false)
	client.EXPECT().GetTodo(mock.Anything, "a").
		Run(func(context.Context, string) { b.Close() }).
		Return(&fresh, nil).Once()

	b.OpenDetail(item("a", "A", false))
	if _, err := b.LoadDetail(context.Background()); err != nil {
		t.Fatalf("LoadDetail() error = %v", err)
	}
	if st := b.Snapshot(); st.Detail != nil || st.Dialog != ports.DialogNone {
		t.Errorf("Dialog = %v Detail = %v, want late reply dropped", st.Dialog, st.Detail)
	}
}

func TestLookupItem(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)

	fresh := item("a", "A (server)", true)
	client.EXPECT().GetTodo(mock.Anything, "a").Return(&fresh, nil).Once()

	got, err := b.LookupItem(context.Background(), item("a", "A", false))
	if err != nil {
		t.Fatalf("LookupItem() error = %v", err)
	}
	if *got != fresh {
		t.Errorf("LookupItem() = %+v, want %+v", *got, fresh)
	}

	st := b.Snapshot()
	if st.Dialog != ports.DialogDetail || st.Detail == nil || *st.Detail != fresh {
		t.Errorf("Dialog = %v Detail = %+v, want detail for a", st.Dialog, st.Detail)
	}
}

func TestLoadDetail_NoSelection(t *testing.T) {
	t.Parallel()
	b, _ := newBoard(t)

	if _, err := b.LoadDetail(context.Background()); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("LoadDetail() error = %v, want ErrValidation", err)
	}
}

// --- Close / dialogs ---

func TestDialogTransitions(t *testing.T) {
	t.Parallel()
	b, _ := newBoard(t)

	b.OpenEdit(item("a", "A", false))
	if st := b.Snapshot(); st.Dialog != ports.DialogEdit || st.Selected == nil {
		t.Fatalf("OpenEdit: %+v", st)
	}

	b.OpenAdd()
	if st := b.Snapshot(); st.Dialog != ports.DialogAdd || st.Selected != nil {
		t.Fatalf("OpenAdd: Dialog = %v Selected = %v", st.Dialog, st.Selected)
	}

	b.Close()
	if st := b.Snapshot(); st.Dialog != ports.DialogNone || st.Selected != nil || st.Detail != nil {
		t.Fatalf("Close: %+v", st)
	}
}

func TestOpenEdit_CapturesCopy(t *testing.T) {
	t.Parallel()
	b, _ := newBoard(t)

	it := item("a", "A", false)
	b.OpenEdit(it)
	it.Name = "mutated"

	if got := b.Snapshot().Selected.Name; got != "A" {
		t.Errorf("Selected.Name = %q, want %q", got, "A")
	}
}

// --- Delete ---

func TestDelete_Confirmed(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)
	seed(t, b, client, item("a", "A", false), item("b", "B", false))

	client.EXPECT().DeleteTodo(mock.Anything, "a").Return(nil).Once()

	if err := b.Delete(context.Background(), "a", true); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	st := b.Snapshot()
	if !equalIDs(st.Items, "b") {
		t.Errorf("Items = %v, want [b]", ids(st.Items))
	}
	if st.Notice.Text != NoticeDeleted {
		t.Errorf("Notice = %q, want %q", st.Notice.Text, NoticeDeleted)
	}
}

func TestDelete_NotConfirmedSendsNothing(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)
	seed(t, b, client, item("a", "A", false))

	if err := b.Delete(context.Background(), "a", false); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if st := b.Snapshot(); !equalIDs(st.Items, "a") {
		t.Errorf("Items = %v, want unchanged", ids(st.Items))
	}
}

func TestDelete_ClientError(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)
	seed(t, b, client, item("a", "A", false))

	client.EXPECT().DeleteTodo(mock.Anything, "a").Return(domain.ErrUnavailable).Once()

	if err := b.Delete(context.Background(), "a", true); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("Delete() error = %v, want ErrUnavailable", err)
	}
	if st := b.Snapshot(); !equalIDs(st.Items, "a") {
		t.Errorf("Items = %v, want unchanged", ids(st.Items))
	}
}

// --- Snapshot ---

func TestSnapshot_IsIndependentCopy(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)
	seed(t, b, client, item("a", "A", false))

	st := b.Snapshot()
	st.Items[0].Name = "mutated"

	if got := b.Snapshot().Items[0].Name; got != "A" {
		t.Errorf("Items[0].Name = %q, want %q", got, "A")
	}
}

func TestBoard_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	b, client := newBoard(t)

	client.EXPECT().ListTodos(mock.Anything).Return([]todo.Item{item("a", "A", false)}, nil)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = b.Refresh(context.Background())
		}()
		go func() {
			defer wg.Done()
			b.OpenDetail(item("a", "A", false))
			_ = b.Snapshot()
			b.Close()
		}()
	}
	wg.Wait()

	if st := b.Snapshot(); !equalIDs(st.Items, "a") {
		t.Errorf("Items = %v, want [a]", ids(st.Items))
	}
}

// --- metrics ---

func TestBoard_RecordsFlowMetric(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := telemetry.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	client := mocks.NewMockTodoClient(t)
	b := NewBoard(client, discardLogger(), WithMetrics(m))

	client.EXPECT().ListTodos(mock.Anything).Return([]todo.Item{}, nil).Once()
	client.EXPECT().DeleteTodo(mock.Anything, "a").Return(domain.ErrNotFound).Once()

	_ = b.Refresh(context.Background())
	_ = b.Delete(context.Background(), "a", true)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if md.Name != "todo.flow.total" {
				continue
			}
			sum, ok := md.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("todo.flow.total data = %T, want Sum[int64]", md.Data)
			}
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	if total != 2 {
		t.Errorf("todo.flow.total = %d, want 2", total)
	}
}
