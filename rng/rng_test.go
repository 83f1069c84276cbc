package rng

import (
	"testing"

	"github.com/gonum/matrix/mat64"
)

func TestDeterminism(t *testing.T) {
	s1 := New(42)
	s2 := New(42)
	for i := 0; i < 100; i++ {
		if s1.Float64() != s2.Float64() {
			t.Fatal("uniform draws differ for equal seeds")
		}
		if s1.NormFloat64() != s2.NormFloat64() {
			t.Fatal("normal draws differ for equal seeds")
		}
	}
}

func TestEffectiveSeed(t *testing.T) {
	s := New(7)
	if s.Seed() != 7 {
		t.Errorf("expected seed 7, got %v", s.Seed())
	}
	s = New(TimeSeed)
	if s.Seed() == TimeSeed {
		t.Error("time-based seed was not resolved")
	}
}

func TestDerive(t *testing.T) {
	s := New(42)
	d1 := s.Derive(0)
	d2 := s.Derive(0)
	if d1.Float64() != d2.Float64() {
		t.Error("equal labels should give identical sub-streams")
	}

	a := s.Derive(0)
	b := s.Derive(1)
	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			same = false
			break
		}
	}
	if same {
		t.Error("different labels should give different sub-streams")
	}

	parent := New(42)
	child := New(42).Derive(0)
	same = true
	for i := 0; i < 10; i++ {
		if parent.Float64() != child.Float64() {
			same = false
			break
		}
	}
	if same {
		t.Error("sub-stream should differ from the parent stream")
	}
}

func TestNormal(t *testing.T) {
	a := New(1).Normal(10, 2)
	b := 10 + New(1).NormFloat64()*2
	if a != b {
		t.Error("scaled normal draw mismatch")
	}
}

func TestNormVec(t *testing.T) {
	v := New(3).NormVec(make([]float64, 4))
	w := New(3)
	for i := range v {
		if v[i] != w.NormFloat64() {
			t.Fatal("vector draws should match sequential draws")
		}
	}
}

func TestMultiNormal(t *testing.T) {
	cov := mat64.NewSymDense(2, []float64{
		2, 0.5,
		0.5, 1,
	})
	mean := []float64{1, -1}

	x, err := New(11).MultiNormal(mean, cov)
	if err != nil {
		t.Fatal("Error: ", err)
	}
	y, err := New(11).MultiNormal(mean, cov)
	if err != nil {
		t.Fatal("Error: ", err)
	}
	if len(x) != 2 {
		t.Errorf("expected dimension 2, got %v", len(x))
	}
	for i := range x {
		if x[i] != y[i] {
			t.Error("multivariate draws differ for equal seeds")
		}
	}
}

func TestMultiNormalIdentity(t *testing.T) {
	// With an identity covariance the draw is the standard normal
	// vector shifted by the mean.
	cov := mat64.NewSymDense(2, []float64{
		1, 0,
		0, 1,
	})
	x, err := New(5).MultiNormal([]float64{3, 4}, cov)
	if err != nil {
		t.Fatal("Error: ", err)
	}
	z := New(5).NormVec(make([]float64, 2))
	if x[0] != 3+z[0] || x[1] != 4+z[1] {
		t.Error("identity covariance draw mismatch")
	}
}

func TestMultiNormalErrors(t *testing.T) {
	// not positive definite
	cov := mat64.NewSymDense(2, []float64{
		1, 2,
		2, 1,
	})
	_, err := New(1).MultiNormal([]float64{0, 0}, cov)
	if err == nil {
		t.Error("expected error for a non positive definite covariance")
	}

	_, err = New(1).MultiNormal([]float64{0, 0, 0}, cov)
	if err == nil {
		t.Error("expected error for dimension mismatch")
	}
}
