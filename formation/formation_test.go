package formation

import (
	"math"
	"math/rand"
	"testing"
)

func TestBuildAssembledCount(t *testing.T) {
	f := BuildAssembled(4000)
	if len(f.Points) != 4000 {
		t.Fatalf("expected 4000 points, got %d", len(f.Points))
	}
	if f.Name != "assembled" {
		t.Errorf("expected name 'assembled', got %q", f.Name)
	}
}

func TestAssembledRadiusTapers(t *testing.T) {
	f := BuildAssembled(1000)

	prev := math.Inf(1)
	for i, p := range f.Points {
		r := math.Sqrt(float64(p.X*p.X + p.Z*p.Z))
		if r > prev+1e-6 {
			t.Fatalf("radius increased at slot %d: %f > %f", i, r, prev)
		}
		prev = r
	}
}

func TestAssembledHeightSpan(t *testing.T) {
	f := BuildAssembled(100)

	if got := f.Points[0].Y; math.Abs(float64(got)+3.5) > 1e-6 {
		t.Errorf("bottom slot Y = %f, want -3.5", got)
	}

	// Height climbs monotonically with slot index.
	for i := 1; i < len(f.Points); i++ {
		if f.Points[i].Y <= f.Points[i-1].Y {
			t.Fatalf("height not increasing at slot %d", i)
		}
	}

	// Top slot approaches but never reaches +3.5 (ratio < 1).
	top := f.Points[len(f.Points)-1].Y
	if top >= 3.5 || top < 3.3 {
		t.Errorf("top slot Y = %f, want just under 3.5", top)
	}
}

func TestAssembledDeterministic(t *testing.T) {
	a := BuildAssembled(500)
	b := BuildAssembled(500)
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("slot %d differs between builds: %v vs %v", i, a.Points[i], b.Points[i])
		}
	}
}

func TestDispersedMagnitudeBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	f := BuildDispersed(4000, rng)

	if len(f.Points) != 4000 {
		t.Fatalf("expected 4000 points, got %d", len(f.Points))
	}
	for i, p := range f.Points {
		mag := p.Length()
		if mag < 0 || float64(mag) >= ScatterMaxRadius {
			t.Fatalf("slot %d magnitude %f outside [0, %f)", i, mag, ScatterMaxRadius)
		}
	}
}

func TestDispersedStablePerSeed(t *testing.T) {
	a := BuildDispersed(200, rand.New(rand.NewSource(7)))
	b := BuildDispersed(200, rand.New(rand.NewSource(7)))
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("slot %d differs for identical seeds", i)
		}
	}
}

func TestDispersedCoversAllOctants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := BuildDispersed(4000, rng)

	var octants [8]int
	for _, p := range f.Points {
		idx := 0
		if p.X > 0 {
			idx |= 1
		}
		if p.Y > 0 {
			idx |= 2
		}
		if p.Z > 0 {
			idx |= 4
		}
		octants[idx]++
	}
	for i, count := range octants {
		if count == 0 {
			t.Errorf("octant %d empty: directions are not spread over the sphere", i)
		}
	}
}
