package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/jsamuelsen11/todo-client/internal/domain/todo"
	"github.com/jsamuelsen11/todo-client/internal/ports"
)

const (
	focusName = iota
	focusStatus
)

// addForm holds the add dialog inputs. The status starts unchosen.
type addForm struct {
	name     textinput.Model
	complete *bool
	focus    int
}

func newAddForm() addForm {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 200
	ti.Width = 40
	ti.Focus()
	return addForm{name: ti, focus: focusName}
}

func (f *addForm) toggleFocus() {
	if f.focus == focusName {
		f.focus = focusStatus
		f.name.Blur()
		return
	}
	f.focus = focusName
	f.name.Focus()
}

func (f addForm) value() ports.AddForm {
	return ports.AddForm{Name: f.name.Value(), Complete: f.complete}
}

// pick sets a status choice. A nil choice toggles, starting from Complete.
func pick(cur *bool, choice *bool) *bool {
	if choice != nil {
		v := *choice
		return &v
	}
	v := cur == nil || !*cur
	return &v
}

// filterForm holds the two date inputs of the filter bar.
type filterForm struct {
	active bool
	from   textinput.Model
	to     textinput.Model
	focus  int
	err    string
}

func newFilterForm(cur *todo.DateRange) filterForm {
	from := dateInput("from YYYY-MM-DD")
	to := dateInput("to YYYY-MM-DD")
	if cur != nil {
		from.SetValue(cur.Start)
		to.SetValue(cur.End)
	}
	from.Focus()
	return filterForm{active: true, from: from, to: to}
}

func dateInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = len(todo.DateLayout)
	ti.Width = len(placeholder)
	return ti
}

func (f *filterForm) toggleFocus() {
	if f.focus == 0 {
		f.focus = 1
		f.from.Blur()
		f.to.Focus()
		return
	}
	f.focus = 0
	f.to.Blur()
	f.from.Focus()
}

// rangeValue parses the inputs. Two blank inputs clear the filter.
func (f filterForm) rangeValue() (*todo.DateRange, error) {
	start := strings.TrimSpace(f.from.Value())
	end := strings.TrimSpace(f.to.Value())
	if start == "" && end == "" {
		return nil, nil
	}
	r, err := todo.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
