package domain

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrEmptyPath is returned for a canvas path without points.
var ErrEmptyPath = errors.New("canvas path has no points")

// ErrPlanningShortfall is returned when the planner resolved less than the whole waypoint list.
var ErrPlanningShortfall = errors.New("planning shortfall")

// ErrExecutionFailed is returned when the arm did not complete a motion.
var ErrExecutionFailed = errors.New("motion execution failed")

// ErrInterrupted is returned when a session stops on cancellation.
var ErrInterrupted = errors.New("session interrupted")

// ErrArmBusy is returned when another session holds the arm.
var ErrArmBusy = errors.New("arm is busy")

// ShortfallError describes a partially planned motion that was not executed.
type ShortfallError struct {
	Phase     Phase
	PathIndex int
	Fraction  float64
}

func (e *ShortfallError) Error() string {
	return fmt.Sprintf("%s: only %.1f%% of the %s motion (path %d) could be planned",
		ErrPlanningShortfall, e.Fraction*100, e.Phase, e.PathIndex)
}

func (e *ShortfallError) Unwrap() error {
	return ErrPlanningShortfall
}

// MotionError wraps an executor failure with the phase it happened in.
type MotionError struct {
	Phase     Phase
	PathIndex int
	Err       error
}

func (e *MotionError) Error() string {
	return fmt.Sprintf("%s during %s (path %d): %v", ErrExecutionFailed, e.Phase, e.PathIndex, e.Err)
}

// Unwrap exposes both the sentinel and the executor error to errors.Is.
func (e *MotionError) Unwrap() []error {
	return []error{ErrExecutionFailed, e.Err}
}
