package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"

	"github.com/jsamuelsen11/todo-client/internal/platform/config"
)

// KeyMap holds the list bindings (configurable) and the fixed dialog and
// navigation bindings.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Add         key.Binding
	Edit        key.Binding
	Detail      key.Binding
	Delete      key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
	Refresh     key.Binding
	Help        key.Binding
	Quit        key.Binding

	Submit  key.Binding
	Cancel  key.Binding
	Focus   key.Binding
	Pick    key.Binding
	Left    key.Binding
	Right   key.Binding
	Yes     key.Binding
	No      key.Binding
	GoHome  key.Binding
	GoLogin key.Binding
	GoReg   key.Binding
}

// NewKeyMap builds the bindings from the configured key names.
func NewKeyMap(cfg config.KeyConfig) KeyMap {
	return KeyMap{
		Up:          binding(cfg.Up, "up"),
		Down:        binding(cfg.Down, "down"),
		Add:         binding(cfg.Add, "add"),
		Edit:        binding(cfg.Edit, "edit"),
		Detail:      binding(cfg.Detail, "detail"),
		Delete:      binding(cfg.Delete, "delete"),
		Filter:      binding(cfg.Filter, "filter"),
		ClearFilter: binding(cfg.ClearFilter, "clear filter"),
		Refresh:     binding(cfg.Refresh, "refresh"),
		Help:        binding(cfg.Help, "help"),
		Quit:        binding(cfg.Quit, "quit"),

		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Focus:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		Pick:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle status")),
		Left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "complete")),
		Right:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "incomplete")),
		Yes:     key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:      key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
		GoHome:  key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "todos")),
		GoLogin: key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "login")),
		GoReg:   key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "register")),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(strings.Join(keys, "/"), desc))
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Detail, k.Delete, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Detail},
		{k.Add, k.Edit, k.Delete},
		{k.Filter, k.ClearFilter, k.Refresh},
		{k.GoHome, k.GoLogin, k.GoReg},
		{k.Help, k.Quit},
	}
}

// tableKeys restricts the table to line movement so list actions are not
// shadowed by its default page bindings.
func (k KeyMap) tableKeys() table.KeyMap {
	km := table.DefaultKeyMap()
	km.LineUp = k.Up
	km.LineDown = k.Down
	km.PageUp = key.NewBinding(key.WithKeys("pgup"))
	km.PageDown = key.NewBinding(key.WithKeys("pgdown"))
	km.HalfPageUp = key.NewBinding(key.WithDisabled())
	km.HalfPageDown = key.NewBinding(key.WithDisabled())
	km.GotoTop = key.NewBinding(key.WithKeys("home"))
	km.GotoBottom = key.NewBinding(key.WithKeys("end"))
	return km
}
