package scaffold

import "fmt"

// Stage identifies where a run failed.
type Stage string

const (
	StageSettings Stage = "settings"
	StageResolve  Stage = "resolve"
	StageClone    Stage = "clone"
	StageWrite    Stage = "write"
)

// Error is a failed run tagged with the stage that failed.
type Error struct {
	Stage Stage
	Err   error
}

// Error returns a message specific to the failing stage.
func (e *Error) Error() string {
	switch e.Stage {
	case StageSettings:
		return fmt.Sprintf("loading prompt settings: %v", e.Err)
	case StageResolve:
		return fmt.Sprintf("resolving configuration: %v", e.Err)
	case StageClone:
		return fmt.Sprintf("failed to clone the repository: %v", e.Err)
	case StageWrite:
		return fmt.Sprintf("failed to create .env file: %v", e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap tags err with stage. A nil err stays nil.
func Wrap(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Stage: stage, Err: err}
}
