package service

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// huhPrompter is the terminal implementation of Prompter.
type huhPrompter struct{}

// NewPrompter creates the interactive terminal prompter.
func NewPrompter() Prompter {
	return &huhPrompter{}
}

// SelectAction presents the two top-level workflow choices.
func (p *huhPrompter) SelectAction() (Action, error) {
	var action Action
	err := huh.NewSelect[Action]().
		Title("What would you like to do?").
		Options(
			huh.NewOption("Update a Tag", ActionUpdateTag),
			huh.NewOption("Bump a Root Tag", ActionBumpRoot),
		).
		Value(&action).
		Run()
	if err != nil {
		return "", mapPromptErr(err)
	}
	return action, nil
}

// SelectTag presents a single-choice selection over tag names.
func (p *huhPrompter) SelectTag(title string, tags []string) (string, error) {
	var selected string
	err := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(tags...)...).
		Value(&selected).
		Run()
	if err != nil {
		return "", mapPromptErr(err)
	}
	return selected, nil
}

// Confirm asks a yes/no question with yes preselected.
func (p *huhPrompter) Confirm(message string) (bool, error) {
	confirmed := true
	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, mapPromptErr(err)
	}
	return confirmed, nil
}

// mapPromptErr translates an abandoned prompt into the neutral cancellation
// error; everything else stays an unexpected prompt failure.
func mapPromptErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrPromptAborted
	}
	return err
}
