// Package store — хранилище счётчиков по путям вида "wave.current".
// Ядро знает о нём только Get/Set и не предполагает никакой структуры.
package store

import (
	"sort"
	"strings"
)

// Store — контракт хранилища.
type Store interface {
	Get(path string) (interface{}, bool)
	Set(path string, value interface{})
}

// Memory — хранилище в памяти на время сессии.
type Memory struct {
	values map[string]interface{}
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]interface{})}
}

func (m *Memory) Get(path string) (interface{}, bool) {
	v, ok := m.values[normalize(path)]
	return v, ok
}

func (m *Memory) Set(path string, value interface{}) {
	m.values[normalize(path)] = value
}

// Paths возвращает все записанные пути в алфавитном порядке.
func (m *Memory) Paths() []string {
	paths := make([]string, 0, len(m.values))
	for p := range m.values {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func normalize(path string) string {
	return strings.Trim(strings.ToLower(path), ". ")
}

// Float читает число по пути; нечисловое или отсутствующее значение даёт 0.
func Float(s Store, path string) float64 {
	v, ok := s.Get(path)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case bool:
		if n {
			return 1
		}
	}
	return 0
}

// Int — то же самое, что Float, с усечением.
func Int(s Store, path string) int {
	return int(Float(s, path))
}

// Bool читает флаг по пути.
func Bool(s Store, path string) bool {
	v, ok := s.Get(path)
	if !ok {
		return false
	}
	b, isBool := v.(bool)
	return isBool && b
}

// Add прибавляет delta к числу по пути и возвращает новое значение.
func Add(s Store, path string, delta float64) float64 {
	v := Float(s, path) + delta
	s.Set(path, v)
	return v
}

// Пути, которые пишет игра.
const (
	WaveCurrent   = "wave.current"
	WaveProgress  = "wave.progress"
	WaveCountdown = "wave.countdown"
	EnemiesAlive  = "enemies.alive"
	EnemiesKilled = "enemies.killed"
	ResourcesOre  = "resources.ore"
	TurretsCount  = "turrets.count"
	GameOver      = "game.over"
)
