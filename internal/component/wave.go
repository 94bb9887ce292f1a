// internal/component/wave.go
package component

// Wave — компонент для волны врагов
type Wave struct {
	ID                   int
	Number               int     // Номер волны
	Size                 int     // Сколько врагов в волне всего
	DifficultyMultiplier float64 // Множитель здоровья и урона
	EnemiesSpawned       int
	EnemiesRemaining     int
	StartTime            float64
	Completed            bool
}

// Progress — доля уничтоженных врагов волны, (size - remaining) / size
func (w *Wave) Progress() float64 {
	if w.Size <= 0 {
		return 1
	}
	return float64(w.Size-w.EnemiesRemaining) / float64(w.Size)
}

// FullySpawned — все враги волны уже на поле
func (w *Wave) FullySpawned() bool {
	return w.EnemiesSpawned >= w.Size
}
