/*
Package easel choreographs a robotic arm to paint canvas paths with a physical brush.

A painting session turns each 2D canvas path into a list of end-effector poses
(hover in, touch down, trace, lift off), re-dips the brush in a paint source
before every path, and returns the arm to where it started.

# Architecture

The core is free of hardware concerns. Motion is delegated to a
ports.MotionExecutor, which plans a Cartesian path and executes it:

  - pkg/transform maps canvas units onto poses relative to a reference pose.
  - pkg/choreo synthesizes painting waypoints and the five-pose dip.
  - pkg/painter sequences dips, strokes, settle pauses and the return home.
  - pkg/adapters holds the simulated arm, progress stores and the status server.

A planned motion that covers less than the whole path aborts the session
before anything moves.

# Usage

	arm := sim.New(domain.NewPose(0.3, 0, 0.5, domain.IdentityOrientation))
	p := painter.New(arm, config.Default(), painter.WithLogger(logger))

	square := domain.CanvasPath{
		domain.Pt(0, 0), domain.Pt(100, 0), domain.Pt(100, 100), domain.Pt(0, 100),
	}
	session, err := p.Run(ctx, []domain.CanvasPath{square})

The easel command wraps the same flow with configuration files, job files,
persistent progress and a status server.
*/
package easel
