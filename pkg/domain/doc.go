/*
Package domain contains the core value types of the painting choreography.

It is kept pure and free of I/O, following the same Hexagonal Architecture
split as the rest of the module: the robot, the persistence backends and the
CLI all live behind ports and adapters.

# Key Entities

  - Pose: an end-effector position (meters) plus a unit quaternion orientation.
  - CanvasPoint / CanvasPath: planar strokes expressed in canvas units (mm).
  - WaypointList: an ordered motion segment executed as a unit.
  - Session: the reference pose captured at start plus the paths to paint.
  - Progress: the checkpoint the orchestrator records after each phase.
*/
package domain
