package physics

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/planet-sim/parameter"
)

// Policy selects how overlapping bodies are resolved, fixed for a run
type Policy uint8

const (
	// PolicyAbsorb merges the lighter body into the heavier
	PolicyAbsorb Policy = iota
	// PolicyDivide splits the heavier body into two children
	PolicyDivide
	// PolicySmart absorbs at large mass ratios and divides otherwise
	PolicySmart
	// PolicyNone ignores overlaps; bodies only interact through gravity
	PolicyNone
)

// ErrUnknownPolicy is returned by ParsePolicy
var ErrUnknownPolicy = errors.New("unknown collision policy")

var policyNames = [...]string{
	PolicyAbsorb: "absorb",
	PolicyDivide: "divide",
	PolicySmart:  "smart",
	PolicyNone:   "none",
}

func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return "unknown"
}

// ParsePolicy maps a case-insensitive name to a Policy
func ParsePolicy(s string) (Policy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range policyNames {
		if n == name {
			return Policy(i), nil
		}
	}
	return PolicyAbsorb, errors.Wrapf(ErrUnknownPolicy, "%q", s)
}

// Environment carries the constants collision resolution depends on
type Environment struct {
	G              float64
	Timestep       float64
	SmartMassRatio float64
}

// DefaultEnvironment uses the compiled-in physical constants
var DefaultEnvironment = Environment{
	G:              parameter.G,
	Timestep:       parameter.Timestep,
	SmartMassRatio: parameter.SmartMassRatio,
}
