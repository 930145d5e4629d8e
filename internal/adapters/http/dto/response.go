// Package dto provides the HTTP shell's request/response shapes and RFC 9457
// Problem Details error responses.
package dto

import (
	"time"

	"github.com/jsamuelsen11/todo-client/internal/domain/todo"
	"github.com/jsamuelsen11/todo-client/internal/ports"
)

// TodoResponse is one row as the board shows it. Created is the display
// date (DD-MM-YYYY in the configured zone); the raw timestamps follow the
// remote API's field names.
type TodoResponse struct {
	ID         string `json:"_id"`
	TodoName   string `json:"todoName"`
	IsComplete bool   `json:"isComplete"`
	Status     string `json:"status"`
	Created    string `json:"created"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

// ToTodoResponse converts a domain item, formatting dates in loc.
func ToTodoResponse(it *todo.Item, loc *time.Location) TodoResponse {
	return TodoResponse{
		ID:         it.ID,
		TodoName:   it.Name,
		IsComplete: it.Complete,
		Status:     it.Status().String(),
		Created:    todo.FormatDate(it.CreatedAt, loc),
		CreatedAt:  rfc3339(it.CreatedAt),
		UpdatedAt:  rfc3339(it.UpdatedAt),
	}
}

// ToTodoListResponse converts items; the result is never nil.
func ToTodoListResponse(items []todo.Item, loc *time.Location) []TodoResponse {
	out := make([]TodoResponse, len(items))
	for i := range items {
		out[i] = ToTodoResponse(&items[i], loc)
	}
	return out
}

func rfc3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// FilterResponse echoes the active date range.
type FilterResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// BoardResponse is the GET / view: the rows under the current filter, totals
// over the unfiltered list, and the dialog state.
type BoardResponse struct {
	Todos     []TodoResponse  `json:"todos"`
	Count     int             `json:"count"`
	Total     int             `json:"total"`
	Completed int             `json:"completed"`
	Filter    *FilterResponse `json:"filter,omitempty"`
	Dialog    string          `json:"dialog"`
	Selected  *TodoResponse   `json:"selected,omitempty"`
	Detail    *TodoResponse   `json:"detail,omitempty"`
	Notice    string          `json:"notice,omitempty"`
	Loaded    bool            `json:"loaded"`
}

// BoardView carries the presentation settings for ToBoardResponse.
type BoardView struct {
	Location  *time.Location
	Now       time.Time
	NoticeTTL time.Duration
}

// ToBoardResponse renders a board snapshot. The notice is included only while
// it is younger than v.NoticeTTL.
func ToBoardResponse(st ports.BoardState, v BoardView) BoardResponse {
	resp := BoardResponse{
		Todos:  ToTodoListResponse(st.Items, v.Location),
		Count:  len(st.Items),
		Total:  len(st.All),
		Dialog: st.Dialog.String(),
		Loaded: st.Loaded,
	}
	for i := range st.All {
		if st.All[i].Complete {
			resp.Completed++
		}
	}
	if st.Filter != nil {
		resp.Filter = &FilterResponse{From: st.Filter.Start, To: st.Filter.End}
	}
	if st.Selected != nil {
		sel := ToTodoResponse(st.Selected, v.Location)
		resp.Selected = &sel
	}
	if st.Detail != nil {
		det := ToTodoResponse(st.Detail, v.Location)
		resp.Detail = &det
	}
	if st.Notice.Visible(v.Now, v.NoticeTTL) {
		resp.Notice = st.Notice.Text
	}
	return resp
}

// DeleteResponse reports whether a delete was sent.
type DeleteResponse struct {
	ID      string `json:"_id"`
	Deleted bool   `json:"deleted"`
}

// HealthResponse is the body of GET /health/live and GET /health/ready.
type HealthResponse struct {
	Status string                   `json:"status"`
	Checks map[string]CheckResponse `json:"checks,omitempty"`
}

// CheckResponse reports one dependency: "ok", "degraded" or "failing", with
// the check's error text when it is not ok.
type CheckResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
