package lighting

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/lumen/internal/config"
)

func TestPointLightSetActiveTruncates(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{count: -1, want: 0},
		{count: 0, want: 0},
		{count: 2, want: 2},
		{count: 3, want: 3},
		{count: 5, want: 3},
	}

	for _, tt := range tests {
		var set PointLightSet
		set.Count = tt.count
		if got := len(set.Active()); got != tt.want {
			t.Errorf("Count=%d: Active() returned %d lights, want %d", tt.count, got, tt.want)
		}
	}
}

func TestPointLightSetAdd(t *testing.T) {
	var set PointLightSet
	for i := 0; i < MaxPointLights; i++ {
		if !set.Add(PointLight{Position: mgl32.Vec3{float32(i), 0, 0}}) {
			t.Fatalf("Add %d should succeed", i)
		}
	}
	if set.Add(PointLight{}) {
		t.Error("Add past capacity should fail")
	}
	if set.Count != MaxPointLights {
		t.Errorf("Count = %d, want %d", set.Count, MaxPointLights)
	}
	if set.Lights[2].Position.X() != 2 {
		t.Errorf("third light position = %v, want x=2", set.Lights[2].Position)
	}
}

func TestSetLightsReportsDropped(t *testing.T) {
	var set SpotLightSet
	lights := make([]SpotLight, 5)
	for i := range lights {
		lights[i].Edge = float32(i)
	}

	if dropped := set.SetLights(lights); dropped != 2 {
		t.Errorf("dropped = %d, want 2", dropped)
	}
	if set.Count != MaxSpotLights {
		t.Errorf("Count = %d, want %d", set.Count, MaxSpotLights)
	}
	for i, l := range set.Active() {
		if l.Edge != float32(i) {
			t.Errorf("light %d edge = %v, want %d (first entries kept)", i, l.Edge, i)
		}
	}

	// Replacing with fewer lights clears the stale tail
	set.SetLights(lights[:1])
	if set.Count != 1 || set.Lights[1].Edge != 0 {
		t.Errorf("expected tail cleared, got count=%d lights=%v", set.Count, set.Lights)
	}
}

func TestNewSpotLightEdge(t *testing.T) {
	s := NewSpotLight(PointLight{}, mgl32.Vec3{0, -2, 0}, 20)

	want := float32(gomath.Cos(20 * gomath.Pi / 180))
	if gomath.Abs(float64(s.Edge-want)) > 1e-6 {
		t.Errorf("Edge = %v, want %v", s.Edge, want)
	}
	if !s.Direction.ApproxEqual(mgl32.Vec3{0, -1, 0}) {
		t.Errorf("Direction = %v, want normalized (0,-1,0)", s.Direction)
	}
}

func TestSetFlash(t *testing.T) {
	s := NewSpotLight(PointLight{}, mgl32.Vec3{0, -1, 0}, 20)
	s.SetFlash(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, -5})

	if s.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Position = %v", s.Position)
	}
	if !s.Direction.ApproxEqual(mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Direction = %v, want (0,0,-1)", s.Direction)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default().Scene.Lights
	cfg.Points = append(cfg.Points, cfg.Points[0], cfg.Points[1])

	rig := FromConfig(cfg)

	if rig.Points.Count != MaxPointLights {
		t.Errorf("point count = %d, want %d", rig.Points.Count, MaxPointLights)
	}
	if rig.Spots.Count != 1 {
		t.Errorf("spot count = %d, want 1", rig.Spots.Count)
	}

	red := rig.Points.Lights[0]
	if red.Color != (mgl32.Vec3{1, 0, 0}) || red.Position != (mgl32.Vec3{-8, 0, 8}) {
		t.Errorf("unexpected first point light %+v", red)
	}
	if red.Constant != 0.3 || red.Linear != 0.2 || red.Exponent != 0.2 {
		t.Errorf("unexpected attenuation %+v", red)
	}
	if rig.Directional.AmbientIntensity != 0.3 || rig.Directional.DiffuseIntensity != 0.6 {
		t.Errorf("unexpected directional light %+v", rig.Directional)
	}
}
