package models

import "fmt"

// ActionKind enumerates the remote mutations the sync plan can propose.
type ActionKind int

const (
	// ActionAdd creates the term remotely and sets its translation
	ActionAdd ActionKind = iota

	// ActionUpdate replaces the remote translation with the local text
	ActionUpdate

	// ActionRemove deletes the term from the remote store
	ActionRemove
)

// String returns a short human-readable name for the kind.
func (k ActionKind) String() string {
	switch k {
	case ActionAdd:
		return "add"
	case ActionUpdate:
		return "update"
	case ActionRemove:
		return "remove"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is one proposed remote mutation for one term. Actions are
// independent of each other: any subset of a plan can be applied.
type Action struct {
	Kind     ActionKind
	Key      string
	Text     string // desired translation; unused for ActionRemove
	RemoteID string // remote handle; empty for ActionAdd (term does not exist yet)
}

// String renders the action the way the review list displays it.
func (a Action) String() string {
	switch a.Kind {
	case ActionRemove:
		return fmt.Sprintf("- %s", a.Key)
	case ActionAdd:
		return fmt.Sprintf("+ %s => %q", a.Key, a.Text)
	default:
		return fmt.Sprintf("~ %s => %q", a.Key, a.Text)
	}
}
