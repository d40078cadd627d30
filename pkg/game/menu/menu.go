// Package menu provides a generic menu system for the game. Menus never block:
// the session feeds them navigation and activation as inputs arrive, and the
// host draws them from Lines each frame.
package menu

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler handles menu item selection and activation.
type MenuHandler interface {
	// OnSelect is called when an item is selected (navigated to).
	OnSelect(item MenuItem, index int)
	// OnActivate is called when an item is activated.
	// Returns true if the menu should close, and any help text to display.
	OnActivate(item MenuItem, index int) (shouldClose bool, helpText string)
	// OnExit is called when the menu is exited.
	OnExit()
	// GetTitle returns the menu title.
	GetTitle() string
	// GetInstructions returns the menu instructions.
	GetInstructions(selected MenuItem) string
	// GetMenuItems returns the current items. It is called whenever the menu
	// is read so labels follow the state they describe.
	GetMenuItems() []MenuItem
}

// Menu is an open menu and its selection.
type Menu struct {
	handler  MenuHandler
	items    []MenuItem
	selected int
	helpText string
	closed   bool
}

// New opens a menu on the first selectable item.
func New(handler MenuHandler) *Menu {
	m := &Menu{handler: handler, selected: -1}
	m.refresh()
	return m
}

// refresh reloads the items, keeping the selection while it is still valid.
func (m *Menu) refresh() {
	m.items = m.handler.GetMenuItems()
	if m.selected >= 0 && m.selected < len(m.items) && m.items[m.selected].IsSelectable() {
		return
	}
	m.selected = -1
	for i, item := range m.items {
		if item.IsSelectable() {
			m.selected = i
			break
		}
	}
}

// MoveUp moves the selection to the previous selectable item, wrapping around.
func (m *Menu) MoveUp() {
	m.move(-1)
}

// MoveDown moves the selection to the next selectable item, wrapping around.
func (m *Menu) MoveDown() {
	m.move(1)
}

func (m *Menu) move(step int) {
	m.refresh()
	n := len(m.items)
	if m.closed || m.selected < 0 || n == 0 {
		return
	}
	for i := 1; i < n; i++ {
		next := ((m.selected+step*i)%n + n) % n
		if m.items[next].IsSelectable() {
			m.selected = next
			m.helpText = ""
			m.handler.OnSelect(m.items[next], next)
			return
		}
	}
}

// Activate activates the selected item. It reports whether the menu closed.
func (m *Menu) Activate() bool {
	m.refresh()
	if m.closed {
		return true
	}
	item, index := m.Selected()
	if item == nil {
		return false
	}
	shouldClose, helpText := m.handler.OnActivate(item, index)
	m.helpText = helpText
	if shouldClose {
		m.Close()
	}
	return shouldClose
}

// Close exits the menu. Closing twice is a no-op.
func (m *Menu) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.handler.OnExit()
}

// Closed reports whether the menu has been exited.
func (m *Menu) Closed() bool {
	return m.closed
}

// Selected returns the selected item and its index, or nil and -1 when no
// item is selectable.
func (m *Menu) Selected() (MenuItem, int) {
	if m.selected < 0 || m.selected >= len(m.items) {
		return nil, -1
	}
	return m.items[m.selected], m.selected
}

// SetHelpText replaces the help text shown under the items.
func (m *Menu) SetHelpText(text string) {
	m.helpText = text
}

// HelpText returns the current help text, falling back to the selected
// item's own help.
func (m *Menu) HelpText() string {
	if m.helpText != "" {
		return m.helpText
	}
	if item, _ := m.Selected(); item != nil {
		return item.GetHelpText()
	}
	return ""
}

// Title returns the handler's title.
func (m *Menu) Title() string {
	return m.handler.GetTitle()
}

// Instructions returns the handler's instructions for the current selection.
func (m *Menu) Instructions() string {
	item, _ := m.Selected()
	return m.handler.GetInstructions(item)
}

// Line is one rendered menu item.
type Line struct {
	Label      string
	Selected   bool
	Selectable bool
}

// Lines returns the items for drawing.
func (m *Menu) Lines() []Line {
	m.refresh()
	lines := make([]Line, len(m.items))
	for i, item := range m.items {
		lines[i] = Line{
			Label:      item.GetLabel(),
			Selected:   i == m.selected,
			Selectable: item.IsSelectable(),
		}
	}
	return lines
}

// String renders a line with a selection marker.
func (l Line) String() string {
	if l.Selected {
		return "> " + l.Label
	}
	return "  " + l.Label
}
