package service

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/retagger/retag/internal/domain"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#10B981"))

	tagStyle = lipgloss.NewStyle().Bold(true)

	hashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// RenderSummary renders the end-of-run change table. Callers only print it
// when at least one retarget completed.
func RenderSummary(changes domain.ChangeSet) string {
	var b strings.Builder
	b.WriteString(summaryTitleStyle.Render("Changes:"))
	b.WriteString("\n")
	for _, c := range changes {
		fmt.Fprintf(&b, "  %s: %s -> %s\n",
			tagStyle.Render(c.TagName),
			hashStyle.Render(domain.ShortHash(c.OldCommit)),
			hashStyle.Render(domain.ShortHash(c.NewCommit)),
		)
	}
	return b.String()
}
