package physics

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/planet-sim/core"
	"github.com/lixenwraith/planet-sim/parameter"
)

func TestOverlapsUsesLargerRadiusOnly(t *testing.T) {
	a := mustBody(t, r2.Vec{}, r2.Vec{}, 1, 1)
	b := mustBody(t, r2.Vec{X: 9}, r2.Vec{}, 2, 1)

	// Sum of radii scaled would be 15; the larger radius scaled is 10
	if !Overlaps(a, b, 5) {
		t.Error("Expected overlap at distance 9 < 5*max(1,2)")
	}

	b.Pos.X = 10
	if Overlaps(a, b, 5) {
		t.Error("Expected no overlap at distance 10, boundary is exclusive")
	}

	b.Pos.X = 12
	if Overlaps(a, b, 5) {
		t.Error("Expected no overlap at 12 even though 12 < 5*(1+2)")
	}
}

func TestResolveAbsorbConservesMass(t *testing.T) {
	heavy := mustBody(t, r2.Vec{}, r2.Vec{X: 10}, 2, 1e10*parameter.EarthMass)
	light := mustBody(t, r2.Vec{X: 1e9}, r2.Vec{Y: 5}, 0.5, 10*parameter.EarthMass)
	heavy.ID, light.ID = 1, 2

	before := *heavy
	out := Resolve(PolicyAbsorb, heavy, light, DefaultEnvironment)

	if out.Kind != OutcomeAbsorb {
		t.Fatalf("Expected absorb outcome, got %v", out.Kind)
	}
	if heavy.Mass != before.Mass || heavy.Vel != before.Vel || heavy.Radius != before.Radius {
		t.Error("Resolve must not mutate the heavier body")
	}
	if heavy.Mass+out.MassDelta != heavy.Mass+light.Mass {
		t.Errorf("Mass not conserved: %g + %g", heavy.Mass, out.MassDelta)
	}
	if out.RadiusDelta != light.Radius {
		t.Errorf("Expected radius delta %g, got %g", light.Radius, out.RadiusDelta)
	}
	if len(out.Removed) != 1 || out.Removed[0] != light.ID {
		t.Errorf("Expected lighter removed, got %v", out.Removed)
	}
	if len(out.Added) != 0 {
		t.Errorf("Absorb must not add bodies, got %d", len(out.Added))
	}
}

func TestResolveAbsorbImpulseUsesCombinedMass(t *testing.T) {
	env := Environment{G: 1, Timestep: 2, SmartMassRatio: 100}
	heavy := mustBody(t, r2.Vec{}, r2.Vec{}, 1, 30)
	light := mustBody(t, r2.Vec{X: 10}, r2.Vec{}, 1, 10)

	out := Resolve(PolicyAbsorb, heavy, light, env)

	// F = 1*40*10/100 = 4 toward +X; dv = 2*4/40 = 0.2
	if !approx(out.VelocityDelta.X, 0.2, 1e-12) || out.VelocityDelta.Y != 0 {
		t.Errorf("Expected impulse {0.2 0}, got %v", out.VelocityDelta)
	}
}

func TestResolveAtUsesGivenPositions(t *testing.T) {
	env := Environment{G: 1, Timestep: 2, SmartMassRatio: 100}
	heavy := mustBody(t, r2.Vec{X: 500}, r2.Vec{}, 1, 30)
	light := mustBody(t, r2.Vec{X: 10}, r2.Vec{}, 1, 10)

	out := ResolveAt(PolicyAbsorb, heavy, light, r2.Vec{}, r2.Vec{X: 10}, env)

	// Same geometry as the combined-mass case; the bodies' own positions are ignored
	if !approx(out.VelocityDelta.X, 0.2, 1e-12) || out.VelocityDelta.Y != 0 {
		t.Errorf("Expected impulse {0.2 0}, got %v", out.VelocityDelta)
	}

	heavy.DivisionCooldown = 0
	smart := ResolveAt(PolicySmart, heavy, light, r2.Vec{}, r2.Vec{X: 10}, env)
	if smart.Kind != OutcomeDivide {
		t.Errorf("Expected smart divide below the ratio, got %v", smart.Kind)
	}
}

func TestResolveDivideChildren(t *testing.T) {
	x, y := 100.0, 200.0
	parent := mustBody(t, r2.Vec{X: x, Y: y}, r2.Vec{X: 8, Y: -4}, 3, 40)
	parent.Color = core.RGB{R: 10, G: 20, B: 30}
	parent.ID = 7
	parent.DivisionCooldown = 0
	other := mustBody(t, r2.Vec{}, r2.Vec{}, 1, 1)
	other.ID = 8

	out := Resolve(PolicyDivide, parent, other, DefaultEnvironment)

	if out.Kind != OutcomeDivide {
		t.Fatalf("Expected divide outcome, got %v", out.Kind)
	}
	if len(out.Removed) != 1 || out.Removed[0] != parent.ID {
		t.Errorf("Expected heavier removed, got %v", out.Removed)
	}
	if len(out.Added) != 2 {
		t.Fatalf("Expected two children, got %d", len(out.Added))
	}

	c1, c2 := out.Added[0], out.Added[1]
	for i, c := range out.Added {
		if c.Mass != parent.Mass/4 {
			t.Errorf("Child %d: expected mass %g, got %g", i, parent.Mass/4, c.Mass)
		}
		if !approx(c.Radius, 2*parent.Radius/3, 1e-15) {
			t.Errorf("Child %d: expected radius %g, got %g", i, 2*parent.Radius/3, c.Radius)
		}
		if c.Color != parent.Color {
			t.Errorf("Child %d: expected inherited color, got %v", i, c.Color)
		}
		if c.DivisionCooldown != parameter.DivisionCooldown {
			t.Errorf("Child %d: expected cooldown %d, got %d", i, parameter.DivisionCooldown, c.DivisionCooldown)
		}
		if c.ID != 0 {
			t.Errorf("Child %d: expected unassigned ID, got %d", i, c.ID)
		}
	}

	if c1.Pos != (r2.Vec{X: parameter.SplitJitter * x, Y: y}) {
		t.Errorf("Child 1 position %v", c1.Pos)
	}
	if c2.Pos != (r2.Vec{X: x, Y: parameter.SplitJitter * y}) {
		t.Errorf("Child 2 position %v", c2.Pos)
	}
	if c1.Vel != (r2.Vec{X: -2, Y: -1}) {
		t.Errorf("Child 1 velocity expected {-2 -1}, got %v", c1.Vel)
	}
	if c2.Vel != (r2.Vec{X: 2, Y: 1}) {
		t.Errorf("Child 2 velocity expected {2 1}, got %v", c2.Vel)
	}
}

func TestResolveDivideSuppressedByHeavierCooldown(t *testing.T) {
	heavy := mustBody(t, r2.Vec{}, r2.Vec{}, 1, 10)
	light := mustBody(t, r2.Vec{X: 1}, r2.Vec{}, 1, 1)
	light.DivisionCooldown = 0

	out := Resolve(PolicyDivide, heavy, light, DefaultEnvironment)
	if out.Kind != OutcomeSuppressed {
		t.Fatalf("Expected suppressed, got %v", out.Kind)
	}
	if out.Resolved() {
		t.Error("Suppressed divide must not count as resolved")
	}
	if len(out.Removed) != 0 || len(out.Added) != 0 {
		t.Errorf("Suppressed divide must not change the body set: %+v", out)
	}
}

func TestResolveSmartThreshold(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  OutcomeKind
	}{
		{"at threshold absorbs", 100, OutcomeAbsorb},
		{"above threshold absorbs", 1e9, OutcomeAbsorb},
		{"below threshold divides", 99.9, OutcomeDivide},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			heavy := mustBody(t, r2.Vec{}, r2.Vec{}, 1, tt.ratio)
			heavy.DivisionCooldown = 0
			light := mustBody(t, r2.Vec{X: 1}, r2.Vec{}, 1, 1)

			out := Resolve(PolicySmart, heavy, light, DefaultEnvironment)
			if out.Kind != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, out.Kind)
			}
		})
	}
}

func TestResolveNone(t *testing.T) {
	a := mustBody(t, r2.Vec{}, r2.Vec{}, 1, 10)
	b := mustBody(t, r2.Vec{}, r2.Vec{}, 1, 1)

	if out := Resolve(PolicyNone, a, b, DefaultEnvironment); out.Kind != OutcomeNone {
		t.Errorf("Expected none, got %v", out.Kind)
	}
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{PolicyAbsorb, PolicyDivide, PolicySmart, PolicyNone} {
		got, err := ParsePolicy(" " + p.String() + " ")
		if err != nil || got != p {
			t.Errorf("ParsePolicy(%q) = %v, %v", p.String(), got, err)
		}
	}

	if got, err := ParsePolicy("SMART"); err != nil || got != PolicySmart {
		t.Errorf("Expected case-insensitive match, got %v, %v", got, err)
	}

	if _, err := ParsePolicy("explode"); !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("Expected ErrUnknownPolicy, got %v", err)
	}
}
