package core

import "gonum.org/v1/gonum/spatial/r2"

func vec(x, y float64) r2.Vec { return r2.Vec{X: x, Y: y} }
