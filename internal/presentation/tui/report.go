package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/painter"
)

// PlanMarkdown describes a planned session as a markdown document.
// With verbose set every pose of every segment is listed.
func PlanMarkdown(name string, reference domain.Pose, segments []painter.Segment, verbose bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Plan: %s\n\n", name)
	fmt.Fprintf(&sb, "Reference pose `%s`, %d motions.\n\n", reference, len(segments))

	sb.WriteString("| # | Phase | Path | Poses | Ends at |\n")
	sb.WriteString("|---|-------|------|-------|---------|\n")
	for i, seg := range segments {
		path := "-"
		if seg.PathIndex >= 0 {
			path = fmt.Sprint(seg.PathIndex)
		}
		last := seg.Waypoints[len(seg.Waypoints)-1]
		fmt.Fprintf(&sb, "| %d | %s | %s | %d | `%s` |\n", i, seg.Phase, path, len(seg.Waypoints), last)
	}

	if verbose {
		for i, seg := range segments {
			fmt.Fprintf(&sb, "\n## %d. %s\n\n", i, seg.Phase)
			for j, wp := range seg.Waypoints {
				fmt.Fprintf(&sb, "%d. `%s`\n", j+1, wp)
			}
		}
	}
	return sb.String()
}

// ProgressMarkdown describes a stored checkpoint.
func ProgressMarkdown(p *domain.Progress) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Session %s\n\n", p.SessionID)
	fmt.Fprintf(&sb, "- **Phase:** %s\n", p.Phase)
	if p.PathIndex >= 0 {
		fmt.Fprintf(&sb, "- **Path:** %d of %d\n", p.PathIndex+1, p.PathsTotal)
	} else {
		fmt.Fprintf(&sb, "- **Paths:** %d\n", p.PathsTotal)
	}
	fmt.Fprintf(&sb, "- **Motions:** %d\n", p.Motions)
	fmt.Fprintf(&sb, "- **Reference:** `%s`\n", p.Reference)
	fmt.Fprintf(&sb, "- **Updated:** %s\n", p.UpdatedAt.Format("2006-01-02 15:04:05"))
	if p.Error != "" {
		fmt.Fprintf(&sb, "\n> %s\n", p.Error)
	}
	return sb.String()
}
