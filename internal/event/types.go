// internal/event/types.go
package event

const (
	EnemySpawned      EventType = "EnemySpawned"      // Враг появился
	EnemyKilled       EventType = "EnemyKilled"       // Враг уничтожен или снят с поля
	WaveStarted       EventType = "WaveStarted"       // Волна началась
	WaveCompleted     EventType = "WaveCompleted"     // Волна закончилась
	WaveCountdown     EventType = "WaveCountdown"     // Отсчёт до следующей волны
	AllWavesCompleted EventType = "AllWavesCompleted" // Все волны пройдены
	TurretFired       EventType = "TurretFired"
	TurretPlaced      EventType = "TurretPlaced"
	TurretDestroyed   EventType = "TurretDestroyed"
	DrillPlaced       EventType = "DrillPlaced"
	TargetDestroyed   EventType = "TargetDestroyed"  // Любая цель врагов разрушена
	TerrainExplosion  EventType = "TerrainExplosion" // Взрыв по грунту
	CarrierDestroyed  EventType = "CarrierDestroyed" // Носитель уничтожен, игра окончена
)
