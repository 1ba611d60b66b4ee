/*
Package painter implements the painting orchestrator.

A Painter drives one session at a time through

	idle → dipping_brush → painting → … → dipping_brush → returning_home → done

issuing a single blocking motion at a time. Each motion is planned first;
a plan that covers less than the whole waypoint list aborts the session
before anything moves. Cancellation of the context is observed before every
motion and during settle pauses, and no motion is launched after it.

On abort the arm stays wherever the last successful motion left it.
*/
package painter
