package store

import "testing"

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()
	if _, ok := m.Get(WaveCurrent); ok {
		t.Fatal("Expected empty store")
	}

	m.Set(WaveCurrent, 3)
	if got := Int(m, WaveCurrent); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
	if got := Int(m, " Wave.Current. "); got != 3 {
		t.Errorf("Expected path normalization to find the value, got %d", got)
	}
}

func TestAddAndBool(t *testing.T) {
	m := NewMemory()
	Add(m, EnemiesKilled, 1)
	Add(m, EnemiesKilled, 2)
	if got := Float(m, EnemiesKilled); got != 3 {
		t.Errorf("Expected 3, got %v", got)
	}

	if Bool(m, GameOver) {
		t.Error("Expected missing flag to be false")
	}
	m.Set(GameOver, true)
	if !Bool(m, GameOver) {
		t.Error("Expected flag to be true")
	}
	m.Set("label", "text")
	if Float(m, "label") != 0 {
		t.Error("Expected non-numeric value to read as 0")
	}
}

func TestPathsSorted(t *testing.T) {
	m := NewMemory()
	m.Set("b", 1)
	m.Set("a", 1)
	paths := m.Paths()
	if len(paths) != 2 || paths[0] != "a" || paths[1] != "b" {
		t.Errorf("Expected [a b], got %v", paths)
	}
}
