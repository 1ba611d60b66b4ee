/*
Package ports defines the driven ports (interfaces) of the painting core.

These interfaces decouple the choreography from the robot stack and from the
persistence backends, so the orchestrator runs unchanged against a real arm,
a simulated arm, or a test double.

# Key Interfaces

  - MotionExecutor: plans and executes Cartesian waypoint lists on the arm.
  - StateStore: persists session progress checkpoints.
  - ArmLocker: grants an exclusive lease on the arm across processes.
*/
package ports
