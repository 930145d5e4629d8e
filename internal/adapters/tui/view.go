package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/todo-client/internal/domain/todo"
	"github.com/jsamuelsen11/todo-client/internal/ports"
)

// View implements tea.Model.
func (m Model) View() string {
	switch m.route {
	case RouteLogin:
		return m.stubView("Login")
	case RouteRegister:
		return m.stubView("Register")
	}

	sections := []string{m.headerView(), m.filterView(), m.table.View()}

	if d := m.dialogView(); d != "" {
		sections = append(sections, d)
	}
	if m.confirm != nil {
		sections = append(sections, dialogStyle.Render(fmt.Sprintf(
			"Delete %q?\n\n%s",
			m.confirm.Name,
			mutedStyle.Render("y yes · n no"),
		)))
	}

	sections = append(sections, m.footerView(), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) headerView() string {
	completed := 0
	for i := range m.state.All {
		if m.state.All[i].Complete {
			completed++
		}
	}
	counts := fmt.Sprintf("%d shown · %d total · %d complete",
		len(m.state.Items), len(m.state.All), completed)
	return titleStyle.Render("Todo List") + "  " + mutedStyle.Render(counts)
}

func (m Model) filterView() string {
	if m.filter.active {
		line := "Filter " + m.filter.from.View() + " " + m.filter.to.View() +
			mutedStyle.Render("  enter apply · tab switch · esc cancel")
		if m.filter.err != "" {
			line += "\n" + errorStyle.Render(m.filter.err)
		}
		return panelStyle.Render(line)
	}
	if m.state.Filter != nil {
		return mutedStyle.Render(fmt.Sprintf("Filter: %s (%s to clear)",
			m.state.Filter, m.keys.ClearFilter.Help().Key))
	}
	return mutedStyle.Render("No filter")
}

func (m Model) dialogView() string {
	switch m.state.Dialog {
	case ports.DialogAdd:
		return m.addView()
	case ports.DialogEdit:
		return m.editView()
	case ports.DialogDetail:
		return m.detailView()
	default:
		return ""
	}
}

func (m Model) addView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Add Todo") + "\n\n")
	b.WriteString(labelStyle.Render("Name") + m.form.name.View() + "\n")
	b.WriteString(labelStyle.Render("Status") + statusPicker(m.form.complete, m.form.focus == focusStatus) + "\n\n")

	hint := "tab next field · ←/→/space status · esc cancel"
	if m.form.value().Ready() {
		hint = "enter submit · " + hint
	}
	b.WriteString(mutedStyle.Render(hint))
	return dialogStyle.Render(b.String())
}

func (m Model) editView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Edit Todo") + "\n\n")
	if sel := m.state.Selected; sel != nil {
		b.WriteString(labelStyle.Render("Name") + sel.Name + "\n")
	}
	b.WriteString(labelStyle.Render("Status") + statusPicker(m.editPick, true) + "\n\n")

	hint := "←/→/space status · esc cancel"
	if m.editPick != nil {
		hint = "enter submit · " + hint
	}
	b.WriteString(mutedStyle.Render(hint))
	return dialogStyle.Render(b.String())
}

// detailView renders the looked-up record. Fields stay empty until the lookup
// succeeds.
func (m Model) detailView() string {
	var name, created, status, id string
	if d := m.state.Detail; d != nil {
		name = d.Name
		created = todo.FormatDate(d.CreatedAt, m.loc)
		status = statusLabel(d.Status())
		id = d.ID
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Todo Detail") + "\n\n")
	b.WriteString(labelStyle.Render("Name") + name + "\n")
	b.WriteString(labelStyle.Render("Created") + created + "\n")
	b.WriteString(labelStyle.Render("Status") + status + "\n")
	b.WriteString(labelStyle.Render("ID") + mutedStyle.Render(id) + "\n\n")
	b.WriteString(mutedStyle.Render("esc close"))
	return dialogStyle.Render(b.String())
}

func (m Model) footerView() string {
	var parts []string
	if m.busy > 0 {
		parts = append(parts, m.spin.View()+" loading")
	}
	if m.state.Notice.Visible(m.now(), m.ttl) {
		parts = append(parts, successStyle.Render(m.state.Notice.Text))
	}
	return strings.Join(parts, "  ")
}

func (m Model) stubView(title string) string {
	body := titleStyle.Render(title) + "\n\n" +
		"This page is not available yet.\n\n" +
		mutedStyle.Render("esc back to todos · f1 todos · f2 login · f3 register")
	return dialogStyle.Render(body)
}

func statusPicker(cur *bool, focused bool) string {
	opt := func(label string, on bool) string {
		mark := "( )"
		if on {
			mark = "(•)"
		}
		return mark + " " + label
	}
	s := opt(todo.StatusComplete.String(), cur != nil && *cur) + "   " +
		opt(todo.StatusIncomplete.String(), cur != nil && !*cur)
	if focused {
		return focusStyle.Render(s)
	}
	return s
}

func statusLabel(s todo.Status) string {
	if s == todo.StatusComplete {
		return completeStyle.Render(s.String())
	}
	return pendingStyle.Render(s.String())
}
