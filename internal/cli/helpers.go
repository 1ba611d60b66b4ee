package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/easel/pkg/domain"
)

// printSystemMessage prints a standardized system message to w.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPhaseEnter: func(ctx context.Context, e *domain.PhaseEvent) {
			logger.Debug("Enter Phase", "session_id", e.SessionID, "phase", e.Phase, "path", e.PathIndex)
		},
		OnMotion: func(ctx context.Context, e *domain.MotionEvent) {
			if e.Err != nil {
				logger.Debug("Motion (Error)", "phase", e.Phase, "fraction", e.Fraction, "err", e.Err)
			} else {
				logger.Debug("Motion (Success)", "phase", e.Phase, "waypoints", e.Waypoints, "duration", e.Duration)
			}
		},
	}
}

func isInterrupted(err error) bool {
	return errors.Is(err, domain.ErrInterrupted) || errors.Is(err, context.Canceled)
}

func handleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}

func logCompletion(w io.Writer, progress *domain.Progress, err error, sig os.Signal) {
	if err == nil {
		printSystemMessage(w, "Finished: %d paths, %d motions.", progress.PathsTotal, progress.Motions)
		return
	}

	phase := progress.StoppedIn()
	where := string(phase)
	if progress.PathIndex >= 0 {
		where = fmt.Sprintf("%s (path %d)", phase, progress.PathIndex+1)
	}

	switch {
	case !isInterrupted(err):
		printSystemMessage(w, "Aborted during %s: %v", where, err)
	case sig == os.Interrupt:
		fmt.Fprintf(w, "[CTRL+C]\n")
		printSystemMessage(w, "Interrupted during %s. The arm stays where it stopped.", where)
	case sig != nil:
		printSystemMessage(w, "Terminated during %s. The arm stays where it stopped.", where)
	default:
		printSystemMessage(w, "Interrupted during %s.", where)
	}
}
