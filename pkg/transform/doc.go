/*
Package transform converts canvas coordinates into motion-frame poses.

Canvas points are scaled by a fixed linear factor (canvas millimeters to
meters by default) and placed relative to a reference pose. ToPose is the
single place where the brush orientation is decided: positions are offset,
the orientation is taken from the reference unchanged.
*/
package transform
