package kynex

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestNewDynamicBody(t *testing.T) {
	tests := []struct {
		name            string
		shape           Shape
		mass            float32
		wantM, wantInvM float32
		wantI, wantInvI float32
	}{
		{"circle", Circle(0.5), 1, 1, 1, 0.125, 8},
		{"heavy circle", Circle(1), 4, 4, 0.25, 2, 0.5},
		{"box", Box(0.5, 0.5), 6, 6, 1.0 / 6, 1, 1},
		{"zero mass", Circle(1), 0, 0, 0, 0, 0},
		{"negative mass", Box(1, 1), -2, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewDynamicBody(tt.shape, tt.mass, V2(0, 2))
			if b.Static {
				t.Error("dynamic body reported Static")
			}
			if b.P != V2(0, 2) {
				t.Errorf("P = %v, want Vec2(0, 2)", b.P)
			}
			if b.M != tt.wantM || !approx32(b.InvM, tt.wantInvM, 1e-6) {
				t.Errorf("M, InvM = %v, %v; want %v, %v", b.M, b.InvM, tt.wantM, tt.wantInvM)
			}
			if !approx32(b.I, tt.wantI, 1e-5) || !approx32(b.InvI, tt.wantInvI, 1e-5) {
				t.Errorf("I, InvI = %v, %v; want %v, %v", b.I, b.InvI, tt.wantI, tt.wantInvI)
			}
			if b.Material != DefaultMaterial() {
				t.Errorf("Material = %+v, want default", b.Material)
			}
			if !b.V.IsZero() || b.W != 0 || !b.F.IsZero() || b.T != 0 || b.A != 0 {
				t.Errorf("new body not at rest: %+v", b)
			}
		})
	}
}

func TestNewDynamicBodyWarnsOnNonPositiveMass(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	NewDynamicBody(Circle(1), 1, Zero)
	if buf.Len() != 0 {
		t.Errorf("unexpected log output for valid mass: %s", buf.String())
	}

	NewDynamicBody(Circle(1), 0, Zero)
	if !strings.Contains(buf.String(), "non-positive body mass") {
		t.Errorf("expected warning for zero mass, got: %s", buf.String())
	}
}

func TestNewStaticBody(t *testing.T) {
	b := NewStaticBody(Circle(1000), V2(0, -1000), WithVelocity(V2(5, 5)), WithAngularVelocity(3))
	if !b.Static {
		t.Error("static body not Static")
	}
	if b.M != 0 || b.InvM != 0 || b.I != 0 || b.InvI != 0 {
		t.Errorf("static mass properties = %v %v %v %v, want all zero", b.M, b.InvM, b.I, b.InvI)
	}
	if !b.V.IsZero() || b.W != 0 {
		t.Errorf("static body has velocity %v, %v", b.V, b.W)
	}
	if b.P != V2(0, -1000) {
		t.Errorf("P = %v", b.P)
	}
}

func TestBody_ApplyForce(t *testing.T) {
	b := NewDynamicBody(Circle(1), 1, Zero)
	b.ApplyForce(V2(1, 2))
	b.ApplyForce(V2(3, -1))
	if b.F != V2(4, 1) {
		t.Errorf("F = %v, want Vec2(4, 1)", b.F)
	}

	b.ApplyTorque(2)
	b.ApplyTorque(-0.5)
	if b.T != 1.5 {
		t.Errorf("T = %v, want 1.5", b.T)
	}

	b.ClearForces()
	if !b.F.IsZero() || b.T != 0 {
		t.Errorf("after ClearForces F, T = %v, %v", b.F, b.T)
	}
}

func TestBody_ApplyForceStatic(t *testing.T) {
	b := NewStaticBody(Box(1, 1), Zero)
	b.ApplyForce(V2(1, 1))
	b.ApplyTorque(1)
	b.ApplyForceAt(V2(0, 1), V2(1, 0))
	if !b.F.IsZero() || b.T != 0 {
		t.Errorf("static body accumulated F, T = %v, %v", b.F, b.T)
	}
}

func TestBody_ApplyForceAt(t *testing.T) {
	b := NewDynamicBody(Box(1, 1), 1, V2(2, 0))
	// Upward push on the right edge spins the body counter-clockwise.
	b.ApplyForceAt(V2(0, 1), V2(3, 0))
	if b.F != V2(0, 1) {
		t.Errorf("F = %v, want Vec2(0, 1)", b.F)
	}
	if b.T != 1 {
		t.Errorf("T = %v, want 1", b.T)
	}

	// Force through the center produces no torque.
	b.ClearForces()
	b.ApplyForceAt(V2(5, 5), V2(2, 0))
	if b.T != 0 {
		t.Errorf("T = %v, want 0 for central force", b.T)
	}
}

func TestBody_VelocityAt(t *testing.T) {
	b := NewDynamicBody(Circle(1), 1, V2(1, 1), WithVelocity(V2(1, 0)), WithAngularVelocity(2))
	got := b.VelocityAt(V2(1, 2))
	if got != V2(-1, 0) {
		t.Errorf("VelocityAt = %v, want Vec2(-1, 0)", got)
	}
	if got := b.VelocityAt(b.P); got != b.V {
		t.Errorf("VelocityAt(center) = %v, want %v", got, b.V)
	}
}

func TestBody_TransformAndBounds(t *testing.T) {
	b := NewDynamicBody(Box(2, 1), 1, V2(1, 1), WithAngle(halfPi))
	xf := b.Transform()
	if xf.P != V2(1, 1) {
		t.Errorf("Transform().P = %v", xf.P)
	}
	if got := xf.Apply(UnitX); !got.Approx(V2(1, 2), 1e-6) {
		t.Errorf("Transform().Apply(UnitX) = %v, want Vec2(1, 2)", got)
	}

	bb := b.Bounds()
	want := Aabb{Min: V2(0, -1), Max: V2(2, 3)}
	if !bb.Min.Approx(want.Min, 1e-5) || !bb.Max.Approx(want.Max, 1e-5) {
		t.Errorf("Bounds() = %+v, want %+v", bb, want)
	}
}

func TestBody_Validate(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(-1))

	tests := []struct {
		name    string
		mutate  func(*Body)
		wantErr error
	}{
		{"valid", func(*Body) {}, nil},
		{"nan position", func(b *Body) { b.P.X = nan }, ErrNonFinite},
		{"inf angle", func(b *Body) { b.A = inf }, ErrNonFinite},
		{"nan velocity", func(b *Body) { b.V.Y = nan }, ErrNonFinite},
		{"inf angular velocity", func(b *Body) { b.W = inf }, ErrNonFinite},
		{"nan force", func(b *Body) { b.F = V2(nan, nan) }, ErrNonFinite},
		{"inf torque", func(b *Body) { b.T = inf }, ErrNonFinite},
		{"bad material", func(b *Body) { b.Material.Restitution = 2 }, ErrInvalidMaterial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewDynamicBody(Circle(1), 1, Zero)
			tt.mutate(&b)
			err := b.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func approx32(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}
