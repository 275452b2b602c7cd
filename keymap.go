package menu

import "maps"

// KeyAction is what LineEngine does with a key while a menu answer is typed.
type KeyAction int

// Actions a key can be bound to. Up, Down, Right and Enter double as
// navigation for the completion list while it is open.
const (
	ActionNone           KeyAction = iota
	ActionSubmit                   // Send the line, or accept the highlighted candidate
	ActionCancel                   // Abort the question with ErrInterrupted
	ActionMoveLeft                 // Cursor one rune left
	ActionMoveRight                // Cursor one rune right, or accept the highlighted candidate
	ActionMoveUp                   // Previous candidate
	ActionMoveDown                 // Next candidate
	ActionMoveHome                 // Start of line
	ActionMoveEnd                  // End of line
	ActionMoveWordLeft             // Start of the previous word
	ActionMoveWordRight            // End of the next word
	ActionDeleteChar               // Backspace or forward delete, depending on the key
	ActionDeleteLine               // Clear the typed answer; the default shows again
	ActionDeleteToEnd              // Drop everything right of the cursor
	ActionDeleteWordBack           // Drop the word left of the cursor
	ActionComplete                 // Offer the menu items matching the typed text
)

// defaultKeys are the single-rune bindings of NewDefaultKeyMap.
var defaultKeys = map[rune]KeyAction{
	'\r':   ActionSubmit,
	'\n':   ActionSubmit,
	'\x03': ActionCancel,         // Ctrl+C
	'\x01': ActionMoveHome,       // Ctrl+A
	'\x05': ActionMoveEnd,        // Ctrl+E
	'\x02': ActionMoveLeft,       // Ctrl+B
	'\x06': ActionMoveRight,      // Ctrl+F
	'\x10': ActionMoveUp,         // Ctrl+P
	'\x0E': ActionMoveDown,       // Ctrl+N
	'\x0B': ActionDeleteToEnd,    // Ctrl+K
	'\x15': ActionDeleteLine,     // Ctrl+U
	'\x17': ActionDeleteWordBack, // Ctrl+W
	'\t':   ActionComplete,
	'\x7f': ActionDeleteChar, // Backspace
	'\b':   ActionDeleteChar, // Ctrl+H
}

// defaultSequences are the escape sequence bindings of NewDefaultKeyMap,
// without the leading ESC. Both CSI and SS3 forms of Home and End are
// listed because terminals disagree on them.
var defaultSequences = map[string]KeyAction{
	"[A":    ActionMoveUp,
	"[B":    ActionMoveDown,
	"[C":    ActionMoveRight,
	"[D":    ActionMoveLeft,
	"OA":    ActionMoveUp,
	"OB":    ActionMoveDown,
	"OC":    ActionMoveRight,
	"OD":    ActionMoveLeft,
	"[H":    ActionMoveHome,
	"[F":    ActionMoveEnd,
	"OH":    ActionMoveHome,
	"OF":    ActionMoveEnd,
	"[1~":   ActionMoveHome,
	"[4~":   ActionMoveEnd,
	"[1;5C": ActionMoveWordRight, // Ctrl+Right
	"[1;5D": ActionMoveWordLeft,  // Ctrl+Left
	"[3~":   ActionDeleteChar,    // Delete
	"[Z":    ActionMoveUp,        // Shift+Tab
}

// KeyMap maps keys to actions. The zero value and a nil *KeyMap bind nothing.
type KeyMap struct {
	bindings  map[rune]KeyAction
	sequences map[string]KeyAction
}

// NewDefaultKeyMap returns emacs-style bindings suited to answering a menu:
// type a label or the start of an item, Tab lists the matching items,
// Up/Down (or Ctrl+P/Ctrl+N) pick one, Right or Enter accepts it and a
// second Enter submits. Ctrl+U clears the typed text so the default answer
// shows again.
//
// The returned map is a fresh copy and may be changed freely:
//
//	keyMap := menu.NewDefaultKeyMap()
//	keyMap.Bind('\x0C', menu.ActionDeleteLine) // Ctrl+L also clears
//	engine, err := menu.NewLineEngine(menu.WithKeyMap(keyMap))
func NewDefaultKeyMap() *KeyMap {
	return &KeyMap{
		bindings:  maps.Clone(defaultKeys),
		sequences: maps.Clone(defaultSequences),
	}
}

// Bind sets the action for a single key, replacing any earlier binding.
// Binding ActionNone makes a printable key insert itself again.
func (km *KeyMap) Bind(key rune, action KeyAction) {
	if km.bindings == nil {
		km.bindings = make(map[rune]KeyAction)
	}
	km.bindings[key] = action
}

// BindSequence sets the action for an escape sequence given without its
// leading ESC, for example "[Z" for Shift+Tab.
func (km *KeyMap) BindSequence(seq string, action KeyAction) {
	if km.sequences == nil {
		km.sequences = make(map[string]KeyAction)
	}
	km.sequences[seq] = action
}

// GetAction returns the action bound to key, or ActionNone.
func (km *KeyMap) GetAction(key rune) KeyAction {
	if km == nil {
		return ActionNone
	}
	return km.bindings[key]
}

// GetSequenceAction returns the action bound to seq, or ActionNone.
func (km *KeyMap) GetSequenceAction(seq string) KeyAction {
	if km == nil {
		return ActionNone
	}
	return km.sequences[seq]
}
