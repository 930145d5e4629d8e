package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/todo-client/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-client/internal/domain"
	"github.com/jsamuelsen11/todo-client/internal/domain/todo"
	"github.com/jsamuelsen11/todo-client/internal/ports"
)

// BoardHandler exposes the board flows over HTTP for headless use. Every
// request drives the same shared board the terminal UI would.
type BoardHandler struct {
	board     ports.TodoBoard
	loc       *time.Location
	noticeTTL time.Duration
	now       func() time.Time
}

// NewBoardHandler creates a BoardHandler. Dates are rendered in loc (UTC when
// nil) and notices are shown for noticeTTL.
func NewBoardHandler(board ports.TodoBoard, loc *time.Location, noticeTTL time.Duration) *BoardHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &BoardHandler{board: board, loc: loc, noticeTTL: noticeTTL, now: time.Now}
}

// View handles GET /. With ?from=&to= the filter is applied, with
// ?clear=true it is removed; otherwise the rows are refreshed under the
// current filter.
func (h *BoardHandler) View(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseFilterQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if q.Set {
		rng, err := q.Range()
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		err = h.board.SetFilter(r.Context(), rng)
	} else {
		err = h.board.Refresh(r.Context())
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.render())
}

// CreateTodo handles POST /todos.
func (h *BoardHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.board.OpenAdd()
	created, err := h.board.SubmitAdd(r.Context(), req.Form())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTodoResponse(created, h.loc))
}

// GetTodo handles GET /todos/{id}. The row is taken from the board when
// present and then looked up again remotely.
func (h *BoardHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	row, ok := h.row(id)
	if !ok {
		row = todo.Item{ID: id}
	}
	got, err := h.board.LookupItem(r.Context(), row)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(got, h.loc))
}

// EditTodo handles PUT /todos/{id}. The edit applies to the board's copy of
// the row, so the row must be loaded. The copy taken here is the one sent,
// even when other requests open dialogs on the same board meanwhile.
func (h *BoardHandler) EditTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.EditTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	row, ok := h.row(id)
	if !ok {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound)
		return
	}
	updated, err := h.board.EditItem(r.Context(), row, req.IsComplete)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(updated, h.loc))
}

// DeleteTodo handles DELETE /todos/{id}. Nothing is sent unless
// ?confirm=true is given.
func (h *BoardHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	confirmed, err := dto.ParseConfirm(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.board.Delete(r.Context(), id, confirmed); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DeleteResponse{ID: id, Deleted: confirmed})
}

func (h *BoardHandler) row(id string) (todo.Item, bool) {
	items := h.board.Snapshot().Items
	if idx := todo.FindByID(items, id); idx >= 0 {
		return items[idx], true
	}
	return todo.Item{}, false
}

func (h *BoardHandler) render() dto.BoardResponse {
	return dto.ToBoardResponse(h.board.Snapshot(), dto.BoardView{
		Location:  h.loc,
		Now:       h.now(),
		NoticeTTL: h.noticeTTL,
	})
}
