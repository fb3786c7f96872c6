package gui

import "strings"

// Hotkey is a key with an optional Ctrl modifier.
type Hotkey struct {
	Key  Key
	Ctrl bool
}

// String formats the hotkey as "Ctrl+S".
func (h Hotkey) String() string {
	if h.Ctrl {
		return "Ctrl+" + KeyName(h.Key)
	}
	return KeyName(h.Key)
}

// ParseHotkey parses the String form, case-insensitively.
func ParseHotkey(s string) (Hotkey, bool) {
	var h Hotkey
	name := strings.TrimSpace(s)
	if rest, ok := cutPrefixFold(name, "ctrl+"); ok {
		h.Ctrl = true
		name = rest
	}
	for k := KeyNone + 1; k < KeyCount; k++ {
		if strings.EqualFold(KeyName(k), name) {
			h.Key = k
			return h, true
		}
	}
	return Hotkey{}, false
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return s, false
}

type ActionHandler func()

// ActionCondition gates an action, e.g. on there being a selection.
type ActionCondition func() bool

type ActionEntry struct {
	Name      string
	Hotkey    Hotkey
	Handler   ActionHandler
	Condition ActionCondition // nil means always
}

// ActionRegistry maps hotkeys to editor actions. Actions never fire while
// a text field or a numeric entry is taking keystrokes, or while a popup
// is open.
type ActionRegistry struct {
	actions []ActionEntry
}

func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{actions: make([]ActionEntry, 0, 16)}
}

func (r *ActionRegistry) Register(name string, hk Hotkey, handler ActionHandler) {
	r.RegisterWithCondition(name, hk, handler, nil)
}

// RegisterWithCondition adds an action that only runs while condition
// returns true.
func (r *ActionRegistry) RegisterWithCondition(name string, hk Hotkey, handler ActionHandler, condition ActionCondition) {
	r.actions = append(r.actions, ActionEntry{
		Name:      name,
		Hotkey:    hk,
		Handler:   handler,
		Condition: condition,
	})
}

// HandleActions runs the first action whose hotkey was pressed this
// frame and returns its name, or "" when nothing ran.
func (r *ActionRegistry) HandleActions(ctx *Context) string {
	if ctx.key == KeyNone || ctx.inputBlocked || ctx.editingText() {
		return ""
	}
	ctrl := ctx.Input != nil && (ctx.Input.ModCtrl || ctx.Input.KeyDown(KeyLeftCtrl) || ctx.Input.KeyDown(KeyRightCtrl))

	for i := range r.actions {
		a := &r.actions[i]
		if a.Hotkey.Key != ctx.key || a.Hotkey.Ctrl != ctrl {
			continue
		}
		if a.Condition != nil && !a.Condition() {
			continue
		}
		guiLogger.Debug("action", "name", a.Name, "hotkey", a.Hotkey.String())
		a.Handler()
		return a.Name
	}
	return ""
}

// editingText reports whether the focused widget consumes keystrokes.
func (ctx *Context) editingText() bool {
	if ctx.focusedID == InvalidID {
		return false
	}
	if ctx.textEdits.Lookup(ctx.focusedID) != nil {
		return true
	}
	ne := ctx.numbers.Lookup(ctx.focusedID)
	return ne != nil && ne.editingText
}
