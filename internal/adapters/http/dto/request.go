package dto

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/todo-client/internal/domain"
	"github.com/jsamuelsen11/todo-client/internal/domain/todo"
	"github.com/jsamuelsen11/todo-client/internal/ports"
)

// CreateTodoRequest is the JSON body of POST /todos. The status is given
// either as the isComplete flag or as the label the board shows
// ("Complete" / "Incomplete"). IsComplete is a pointer so that an omitted
// status can be told apart from false.
type CreateTodoRequest struct {
	TodoName   string `json:"todoName"`
	IsComplete *bool  `json:"isComplete"`
	Status     string `json:"status,omitempty"`
}

// Validate requires a non-blank name and an explicit status. A valid Status
// label is resolved into IsComplete.
func (r *CreateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.TodoName) == "" {
		fields["todoName"] = domain.MsgRequired
	}
	complete, field, msg := chooseStatus(r.IsComplete, r.Status)
	if field != "" {
		fields[field] = msg
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	r.IsComplete = complete
	return nil
}

// Form converts the request into the add dialog's inputs.
func (r *CreateTodoRequest) Form() ports.AddForm {
	return ports.AddForm{Name: r.TodoName, Complete: r.IsComplete}
}

// EditTodoRequest is the JSON body of PUT /todos/{id}. Only the completion
// flag can change, given as isComplete or as a status label.
type EditTodoRequest struct {
	IsComplete *bool  `json:"isComplete"`
	Status     string `json:"status,omitempty"`
}

// Validate requires an explicit status and resolves a Status label into
// IsComplete.
func (r *EditTodoRequest) Validate() error {
	complete, field, msg := chooseStatus(r.IsComplete, r.Status)
	if field != "" {
		return &domain.ValidationError{Fields: map[string]string{field: msg}}
	}
	r.IsComplete = complete
	return nil
}

// chooseStatus merges the isComplete flag and the status label. On failure
// it returns the offending field and message.
func chooseStatus(flag *bool, label string) (complete *bool, field, msg string) {
	if label == "" {
		if flag == nil {
			return nil, "isComplete", domain.MsgNotChosen
		}
		return flag, "", ""
	}

	v, ok := todo.ParseStatus(label)
	switch {
	case !ok:
		return nil, "status", "must be " + todo.StatusComplete.String() + " or " + todo.StatusIncomplete.String()
	case flag != nil && *flag != v:
		return nil, "status", "conflicts with isComplete"
	}
	return &v, "", ""
}

// FilterQuery is the query string of GET /.
type FilterQuery struct {
	From  string
	To    string
	Clear bool
	// Set is true when from/to or clear was supplied at all.
	Set bool
}

// ParseFilterQuery reads from, to and clear. Supplying only one bound is a
// validation error.
func ParseFilterQuery(q url.Values) (FilterQuery, error) {
	f := FilterQuery{
		From: strings.TrimSpace(q.Get("from")),
		To:   strings.TrimSpace(q.Get("to")),
	}
	fields := make(map[string]string)

	if raw := q.Get("clear"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			fields["clear"] = "must be true or false"
		}
		f.Clear = v
	}
	if (f.From == "") != (f.To == "") {
		if f.From == "" {
			fields["from"] = domain.MsgRequired
		} else {
			fields["to"] = domain.MsgRequired
		}
	}
	if len(fields) > 0 {
		return FilterQuery{}, &domain.ValidationError{Fields: fields}
	}

	f.Set = f.Clear || f.From != ""
	return f, nil
}

// Range returns the requested date range, or nil when the filter is being
// cleared.
func (f FilterQuery) Range() (*todo.DateRange, error) {
	if f.Clear || f.From == "" {
		return nil, nil
	}
	r, err := todo.NewDateRange(f.From, f.To)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ParseConfirm reads the confirm flag of DELETE /todos/{id}. Absent means
// not confirmed.
func ParseConfirm(q url.Values) (bool, error) {
	raw := q.Get("confirm")
	if raw == "" {
		return false, nil
	}
	ok, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &domain.ValidationError{Fields: map[string]string{"confirm": "must be true or false"}}
	}
	return ok, nil
}
