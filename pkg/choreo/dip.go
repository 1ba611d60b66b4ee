package choreo

import (
	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/transform"
)

// DipLength is the number of poses in a dip maneuver.
const DipLength = 5

// DipSpec locates the paint source relative to the reference pose.
type DipSpec struct {
	OffsetX float64 `yaml:"offset_x" mapstructure:"offset_x"`
	OffsetY float64 `yaml:"offset_y" mapstructure:"offset_y"`
	// Retreat is the clearance height for transit moves.
	Retreat float64 `yaml:"retreat" mapstructure:"retreat"`
}

// Dip builds the brush-dipping maneuver.
//
// The first and last poses are relative to current, so a dip can start
// anywhere; the three poses at the paint source are relative to the frame's
// reference pose.
func Dip(frame transform.Frame, current domain.Pose, spec DipSpec) domain.WaypointList {
	retreat := transform.ToPose(current, 0, 0, spec.Retreat)
	return domain.WaypointList{
		retreat,
		frame.Offset(spec.OffsetX, spec.OffsetY, spec.Retreat),
		frame.Offset(spec.OffsetX, spec.OffsetY, 0),
		frame.Offset(spec.OffsetX, spec.OffsetY, spec.Retreat),
		retreat,
	}
}
