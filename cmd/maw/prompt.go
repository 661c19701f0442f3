package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/conn-castle/multi-agent-kit/internal/messages"
	"github.com/conn-castle/multi-agent-kit/internal/terminal"
)

var isInteractive = terminal.IsInteractive

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// confirmForce asks before replacing assets that already exist. Aborting the
// form counts as declining.
func confirmForce(existing []string) (bool, error) {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(messages.InitForceConfirmTitle).
				Description(fmt.Sprintf(messages.InitForceConfirmFmt, bulletList(existing))).
				Affirmative("Overwrite").
				Negative("Cancel").
				Value(&confirmed),
		),
	)
	if err := runFormFunc(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf(messages.PromptFailedFmt, err)
	}
	return confirmed, nil
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "  - "+item)
	}
	return strings.Join(lines, "\n")
}
