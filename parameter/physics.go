package parameter

// Unit scales for scenario input
const (
	// AU is one astronomical unit in meters
	AU = 149.6e6 * 1000

	// EarthMass in kilograms
	EarthMass = 5.9742e24
)

// Gravity & Integration
const (
	// G is the gravitational constant used by the simulation (m³ kg⁻¹ s⁻²)
	G = 6.7428e-11

	// Timestep is the simulated duration of one tick in seconds (500 days)
	Timestep = 3600 * 24 * 500.0

	// MinSeparation clamps pairwise distance in force calculation (meters)
	// Coincident bodies would otherwise divide by zero
	MinSeparation = 1.0
)

// Collision & Lifecycle
const (
	// RadiusScale multiplies the larger radius of a pair for the overlap test
	RadiusScale = 500.0

	// DivisionCooldown is the tick count before a new body may split
	DivisionCooldown = 5

	// SmartMassRatio is the heavier:lighter ratio at which smart policy absorbs instead of splitting
	SmartMassRatio = 100.0

	// SplitJitter offsets one axis of each child position to avoid exact overlap
	SplitJitter = 1.0001

	// SplitMassFactor is the fraction of parent mass each child receives
	SplitMassFactor = 0.25

	// SplitRadiusFactor is the fraction of parent radius each child receives
	SplitRadiusFactor = 2.0 / 3.0

	// SplitVelocityFactor scales parent velocity components for children
	SplitVelocityFactor = 0.25
)

// Orbit trail
const (
	// MaxOrbit is the maximum number of stored trail points per body
	MaxOrbit = 1000
)
