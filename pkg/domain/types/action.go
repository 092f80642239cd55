package types

// Action represents a blocklist operation on the panel
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
)

// String returns the string representation of the action
func (a Action) String() string {
	return string(a)
}

// IsValid checks if the action is supported by the panel
func (a Action) IsValid() bool {
	switch a {
	case ActionAdd, ActionRemove:
		return true
	default:
		return false
	}
}

// RequiresReason reports whether the panel expects a context text for the action
func (a Action) RequiresReason() bool {
	return a == ActionAdd
}
