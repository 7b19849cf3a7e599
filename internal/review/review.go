// Package review presents a computed sync plan for human review. Every
// action is independently selectable; whatever the user deselects is simply
// not applied.
package review

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"termsync/internal/models"
)

// ErrAborted is returned when the user cancels the review form.
var ErrAborted = errors.New("review aborted")

var (
	addStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	updateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	removeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// Select shows the interactive multi-select over the plan and returns the
// actions the user left selected, preserving plan order. All actions start
// selected.
func Select(actions []models.Action) ([]models.Action, error) {
	if len(actions) == 0 {
		return nil, nil
	}

	options := make([]huh.Option[int], len(actions))
	for i, a := range actions {
		options[i] = huh.NewOption(a.String(), i).Selected(true)
	}

	var picked []int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Review sync actions").
				Description("Deselect anything that should not be applied").
				Options(options...).
				Value(&picked),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrAborted
		}
		return nil, fmt.Errorf("review form failed: %w", err)
	}

	slices.Sort(picked)
	selected := make([]models.Action, 0, len(picked))
	for _, i := range picked {
		selected = append(selected, actions[i])
	}
	return selected, nil
}

// Render formats the plan as a colored action list, one line per action.
func Render(actions []models.Action) string {
	var b strings.Builder
	for _, a := range actions {
		b.WriteString(styleFor(a.Kind).Render(a.String()))
		b.WriteString("\n")
	}
	return b.String()
}

// Summary formats the per-kind counts of a plan in one line.
func Summary(added, updated, removed int) string {
	parts := []string{
		addStyle.Render(fmt.Sprintf("%d to add", added)),
		updateStyle.Render(fmt.Sprintf("%d to update", updated)),
		removeStyle.Render(fmt.Sprintf("%d to remove", removed)),
	}
	return strings.Join(parts, faintStyle.Render(" | "))
}

func styleFor(kind models.ActionKind) lipgloss.Style {
	switch kind {
	case models.ActionAdd:
		return addStyle
	case models.ActionRemove:
		return removeStyle
	default:
		return updateStyle
	}
}
