package core

import "gonum.org/v1/gonum/spatial/r2"

// Kinetic holds the integrated state of a body
type Kinetic struct {
	// Pos is position in meters
	Pos r2.Vec
	// Vel is velocity in meters per second
	Vel r2.Vec
}
