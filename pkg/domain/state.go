package domain

import "time"

// Phase is the orchestrator state of a painting session.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseDippingBrush  Phase = "dipping_brush"
	PhasePainting      Phase = "painting"
	PhaseReturningHome Phase = "returning_home"
	PhaseDone          Phase = "done"    // Sink state, all paths painted
	PhaseAborted       Phase = "aborted" // Sink state, arm left where it stopped
)

// Terminal reports whether no further motion follows this phase.
func (p Phase) Terminal() bool {
	return p == PhaseDone || p == PhaseAborted
}

// Session is one painting run.
type Session struct {
	ID string `json:"id"`

	// Reference is captured from the arm when the session starts and is the
	// origin of every canvas-relative offset. Read-only afterwards.
	Reference Pose `json:"reference"`

	Paths     []CanvasPath `json:"paths"`
	CreatedAt time.Time    `json:"created_at"`
}

// NewSession creates a session anchored at reference.
func NewSession(id string, reference Pose, paths []CanvasPath) *Session {
	return &Session{
		ID:        id,
		Reference: reference,
		Paths:     paths,
		CreatedAt: time.Now(),
	}
}

// Progress is the checkpoint recorded after each phase transition.
type Progress struct {
	SessionID  string    `json:"session_id" msgpack:"session_id"`
	Phase      Phase     `json:"phase" msgpack:"phase"`
	PathIndex  int       `json:"path_index" msgpack:"path_index"` // -1 outside of the per-path loop
	PathsTotal int       `json:"paths_total" msgpack:"paths_total"`
	Motions    int       `json:"motions" msgpack:"motions"` // Motions executed so far
	Reference  Pose      `json:"reference" msgpack:"reference"`
	Error      string    `json:"error,omitempty" msgpack:"error,omitempty"`
	UpdatedAt  time.Time `json:"updated_at" msgpack:"updated_at"`

	// History lists the phases entered, in order.
	History []Phase `json:"history,omitempty" msgpack:"history,omitempty"`
}

// NewProgress creates an idle checkpoint for a session.
func NewProgress(s *Session) *Progress {
	return &Progress{
		SessionID:  s.ID,
		Phase:      PhaseIdle,
		PathIndex:  -1,
		PathsTotal: len(s.Paths),
		Reference:  s.Reference,
		UpdatedAt:  time.Now(),
		History:    []Phase{PhaseIdle},
	}
}

// Clone returns a copy that shares no slices with p.
func (p *Progress) Clone() *Progress {
	c := *p
	c.History = append([]Phase(nil), p.History...)
	return &c
}

// StoppedIn returns the last phase entered before the session ended.
// For an aborted session that is the phase that failed, not PhaseAborted.
func (p *Progress) StoppedIn() Phase {
	for i := len(p.History) - 1; i >= 0; i-- {
		if p.History[i] != PhaseAborted {
			return p.History[i]
		}
	}
	return p.Phase
}
