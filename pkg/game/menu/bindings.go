package menu

import (
	"strings"

	"github.com/leonelquinteros/gotext"

	"rebind/pkg/engine/input"
	"rebind/pkg/game/controls"
)

// BindingMenuItem represents a menu item for one control's bindings.
type BindingMenuItem struct {
	Binding       controls.Binding
	Codes         []input.Code
	NonRebindable bool
}

// GetLabel returns the display label for this binding menu item.
func (b *BindingMenuItem) GetLabel() string {
	names := make([]string, len(b.Codes))
	for i, c := range b.Codes {
		names[i] = c.String()
	}
	codeText := strings.Join(names, ", ")
	if codeText == "" {
		codeText = gotext.Get("(unbound)")
	}

	if b.NonRebindable {
		return gotext.Get("%s: %s (fixed)", controls.Name(b.Binding), codeText)
	}
	return gotext.Get("%s: %s", controls.Name(b.Binding), codeText)
}

// IsSelectable returns whether this binding can be selected.
func (b *BindingMenuItem) IsSelectable() bool {
	return !b.NonRebindable
}

// GetHelpText returns help text for this binding.
func (b *BindingMenuItem) GetHelpText() string {
	if b.NonRebindable {
		return ""
	}
	return gotext.Get("Editing binding for: %s", controls.Name(b.Binding))
}

// BindingsMenuHandler handles the bindings menu. Activating a button arms a
// capture through arm; the next input the session sees is bound to it.
type BindingsMenuHandler struct {
	manager *controls.Manager
	arm     func(controls.Button)
}

// NewBindingsMenuHandler creates a new bindings menu handler.
func NewBindingsMenuHandler(m *controls.Manager, arm func(controls.Button)) *BindingsMenuHandler {
	return &BindingsMenuHandler{
		manager: m,
		arm:     arm,
	}
}

// GetTitle returns the menu title.
func (h *BindingsMenuHandler) GetTitle() string {
	return gotext.Get("Bindings Menu")
}

// GetInstructions returns the menu instructions.
func (h *BindingsMenuHandler) GetInstructions(selected MenuItem) string {
	if selected == nil {
		return gotext.Get("Rebind or Quit to exit.")
	}
	return gotext.Get("Use up/down to select, Fire to edit, Rebind or Quit to exit.")
}

// OnSelect is called when an item is selected.
func (h *BindingsMenuHandler) OnSelect(item MenuItem, index int) {
	// Nothing to do on selection
}

// OnActivate arms a capture for the selected button.
func (h *BindingsMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	bindingItem, ok := item.(*BindingMenuItem)
	if !ok || bindingItem.NonRebindable {
		return false, ""
	}

	h.arm(bindingItem.Binding.Button)
	return false, gotext.Get("Press a key to bind to %s", controls.Name(bindingItem.Binding))
}

// OnExit is called when the menu is exited.
func (h *BindingsMenuHandler) OnExit() {
	// Nothing to do on exit
}

// GetMenuItems returns one item per control in display order.
func (h *BindingsMenuHandler) GetMenuItems() []MenuItem {
	entries := controls.Listing(h.manager)
	items := make([]MenuItem, len(entries))
	for i, e := range entries {
		items[i] = &BindingMenuItem{
			Binding:       e.Binding,
			Codes:         e.Codes,
			NonRebindable: !controls.Rebindable(e.Binding),
		}
	}
	return items
}
