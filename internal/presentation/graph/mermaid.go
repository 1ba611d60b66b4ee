package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/painter"
)

// Overlay marks how far a session got through a plan.
type Overlay struct {
	// Done is the number of segments already executed.
	Done int
	// Failed marks the segment at index Done as the one that aborted.
	Failed bool
}

// OverlayFromProgress derives an overlay from a stored checkpoint.
func OverlayFromProgress(p *domain.Progress) *Overlay {
	if p == nil {
		return nil
	}
	return &Overlay{Done: p.Motions, Failed: p.Phase == domain.PhaseAborted}
}

// GenerateMermaid produces a Mermaid flowchart of a planned session.
// Shapes follow the phase of each segment:
// - Start/End: ((Circle))
// - Dip: [[Subroutine]]
// - Painting: [/Parallelogram/]
// - Return home: [Rectangle]
func GenerateMermaid(segments []painter.Segment, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString("    start((\"start\"))\n")

	prev := "start"
	for i, seg := range segments {
		id := fmt.Sprintf("s%d", i)
		opener, closer := "[", "]"
		switch seg.Phase {
		case domain.PhaseDippingBrush:
			opener, closer = "[[", "]]"
		case domain.PhasePainting:
			opener, closer = "[/", "/]"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", id, opener, label(seg), closer)
		fmt.Fprintf(&sb, "    %s --> %s\n", prev, id)
		prev = id
	}
	sb.WriteString("    done((\"done\"))\n")
	fmt.Fprintf(&sb, "    %s --> done\n", prev)

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef failed fill:#ffcdd2,stroke:#b71c1c,stroke-width:4px,color:#000;\n")

		for i := 0; i < overlay.Done && i < len(segments); i++ {
			fmt.Fprintf(&sb, "    class s%d visited;\n", i)
		}
		switch {
		case overlay.Done >= len(segments):
			sb.WriteString("    class done current;\n")
		case overlay.Failed:
			fmt.Fprintf(&sb, "    class s%d failed;\n", overlay.Done)
		default:
			fmt.Fprintf(&sb, "    class s%d current;\n", overlay.Done)
		}
	}

	return sb.String()
}

func label(seg painter.Segment) string {
	n := len(seg.Waypoints)
	switch {
	case seg.Phase == domain.PhaseReturningHome:
		return "return home"
	case seg.PathIndex < 0:
		return fmt.Sprintf("%s (final) <br/> %d poses", seg.Phase, n)
	default:
		return fmt.Sprintf("%s #%d <br/> %d poses", seg.Phase, seg.PathIndex, n)
	}
}
