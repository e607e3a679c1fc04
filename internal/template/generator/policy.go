package generator

import "path"

// EnvExampleFile is merged key by key instead of being overwritten.
const EnvExampleFile = ".env.example"

// Action is how a single file entry is applied.
type Action int

const (
	// ActionWrite writes a file that does not exist yet.
	ActionWrite Action = iota
	// ActionMerge appends missing keys to an existing env-example file.
	ActionMerge
	// ActionConfirm asks before replacing an existing file.
	ActionConfirm
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionWrite:
		return "write"
	case ActionMerge:
		return "merge"
	case ActionConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// DecideAction maps a target's identity to the policy applied to it.
// The env-example file is matched by exact base name.
func DecideAction(exists bool, target string) Action {
	switch {
	case !exists:
		return ActionWrite
	case IsEnvExample(target):
		return ActionMerge
	default:
		return ActionConfirm
	}
}

// IsEnvExample reports whether target names an env-example file.
func IsEnvExample(target string) bool {
	return path.Base(toSlash(target)) == EnvExampleFile
}
