package service

import "errors"

// ErrPromptAborted marks a run ended by the user abandoning a prompt. It is
// reported neutrally instead of as an unexpected error.
var ErrPromptAborted = errors.New("canceled by user")

// Action is one of the two top-level workflows the session offers.
type Action string

const (
	ActionUpdateTag Action = "update"
	ActionBumpRoot  Action = "bump"
)

// Prompter collects interactive input for a session. It has no state of its
// own; every answer is consumed immediately by the session driver.
type Prompter interface {
	// SelectAction presents the two top-level workflow choices.
	SelectAction() (Action, error)
	// SelectTag presents a single-choice selection over tag names.
	SelectTag(title string, tags []string) (string, error)
	// Confirm asks a yes/no question, defaulting to yes.
	Confirm(message string) (bool, error)
}
