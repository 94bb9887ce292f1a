package utils

import (
	"carrier-defense/internal/defs"
	"math"
	"testing"
)

// scripted отдаёт заранее заданные значения по кругу.
type scripted struct {
	ints   []int
	floats []float64
	i, f   int
}

func (s *scripted) Intn(n int) int {
	v := s.ints[s.i%len(s.ints)] % n
	s.i++
	return v
}

func (s *scripted) Float64() float64 {
	v := s.floats[s.f%len(s.floats)]
	s.f++
	return v
}

func TestChooseWeighted(t *testing.T) {
	entries := []defs.SpawnWeight{{EnemyID: "melee", Weight: 70}, {EnemyID: "shooter", Weight: 30}}

	if got := ChooseWeighted(&scripted{ints: []int{69}}, entries); got != "melee" {
		t.Errorf("Expected melee for roll 69, got %s", got)
	}
	if got := ChooseWeighted(&scripted{ints: []int{70}}, entries); got != "shooter" {
		t.Errorf("Expected shooter for roll 70, got %s", got)
	}
	if got := ChooseWeighted(&scripted{ints: []int{0}}, nil); got != "" {
		t.Errorf("Expected empty id for empty table, got %s", got)
	}
	zero := []defs.SpawnWeight{{EnemyID: "a"}, {EnemyID: "b"}}
	if got := ChooseWeighted(&scripted{ints: []int{0}}, zero); got != "a" {
		t.Errorf("Expected first entry when weights are zero, got %s", got)
	}
}

func TestChooseWeightedDistribution(t *testing.T) {
	rng := NewPRNGService(42)
	entries := []defs.SpawnWeight{{EnemyID: "melee", Weight: 70}, {EnemyID: "shooter", Weight: 30}}
	melee := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if ChooseWeighted(rng, entries) == "melee" {
			melee++
		}
	}
	ratio := float64(melee) / n
	if ratio < 0.67 || ratio > 0.73 {
		t.Errorf("Expected about 70%% melee, got %.3f", ratio)
	}
}

func TestSeededServiceIsReproducible(t *testing.T) {
	a, b := NewPRNGService(7), NewPRNGService(7)
	for i := 0; i < 20; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
	if a.Seed() != 7 {
		t.Errorf("Expected seed 7, got %d", a.Seed())
	}
}

func TestRotateTowards(t *testing.T) {
	got := RotateTowards(0, math.Pi/2, 0.1)
	if math.Abs(got-0.1) > 1e-9 {
		t.Errorf("Expected step of 0.1, got %v", got)
	}
	got = RotateTowards(0, 0.05, 0.1)
	if math.Abs(got-0.05) > 1e-9 {
		t.Errorf("Expected to snap onto target, got %v", got)
	}
	// Кратчайший путь через -π/π
	got = RotateTowards(3.0, -3.0, 0.1)
	if got < 3.0 && got > -3.0 {
		t.Errorf("Expected rotation across π, got %v", got)
	}
}

func TestChance(t *testing.T) {
	r := &scripted{floats: []float64{0.5}}
	if !Chance(r, 0.8) {
		t.Error("Expected 0.5 < 0.8 to succeed")
	}
	if Chance(r, 0.2) {
		t.Error("Expected 0.5 < 0.2 to fail")
	}
	if Chance(r, 0) || !Chance(r, 1) {
		t.Error("Expected hard bounds for p=0 and p=1")
	}
}

func TestLerpAngleTakesShortestPath(t *testing.T) {
	if got := Lerp(2, 4, 0.25); got != 2.5 {
		t.Errorf("Expected 2.5, got %v", got)
	}
	got := LerpAngle(3.0, -3.0, 0.5)
	if math.Abs(math.Abs(got)-math.Pi) > 1e-9 {
		t.Errorf("Expected halfway across π, got %v", got)
	}
}
