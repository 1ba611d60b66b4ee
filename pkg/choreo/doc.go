/*
Package choreo synthesizes the waypoint lists the orchestrator executes.

Synthesize turns a canvas path into a hover-in, touch-down, trace and
lift-off segment. Dip produces the fixed five-pose brush-dipping maneuver.
Both are pure functions of the session frame and the live arm pose.
*/
package choreo
