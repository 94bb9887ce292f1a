// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	TileSize     = 10.0
	MaxDeltaTime = 0.06
	// Высота HUD сверху экрана, мир рисуется под ним
	HUDHeight = 40

	CarrierHealth       = 2000.0
	CarrierRadius       = 36.0
	CarrierAltitude     = 0.3 // доля высоты мира, на которой висит носитель
	HardpointHealth     = 300.0
	HardpointOffsetX    = 48.0
	HardpointOffsetY    = 14.0
	DrillHealth         = 120.0
	DrillRadius         = 8.0
	DrillInterval       = 1.5 // секунд между ударами бура
	TurretRadius        = 10.0
	EnemyRadius         = 9.0
	ProjectileRadius    = 3.0
	FlashDuration       = 0.12
	InitialOre          = 200.0
	PointDefenseCost    = 50.0
	MacroTurretCost     = 120.0
	DrillCost           = 40.0
	SpeedButtonOffsetX  = 80
	SpeedButtonY        = 20
	SpeedButtonSize     = 12.0
	WaveIndicatorX      = ScreenWidth / 2
	WaveIndicatorY      = 8
	TextCharWidth       = 7
	ClickDebounceMillis = 100
)

// WaveConfig — параметры темпа волн.
type WaveConfig struct {
	BaseSize       int     // размер первой волны
	SizeScaling    int     // прирост размера за волну
	ScalingFactor  float64 // множитель сложности за волну, сложность = 1 + (n-1)*(ScalingFactor-1)
	MaxWaves       int
	WaveCooldown   float64 // секунд между окончанием волны и следующей
	FirstWaveDelay float64
	BatchSize      int     // сколько врагов появляется за одну партию
	BatchDelay     float64 // пауза между партиями
	SafetyDistance float64 // минимальная дистанция точки появления от носителя
	SpawnRetries   int
}

func DefaultWaveConfig() WaveConfig {
	return WaveConfig{
		BaseSize:       5,
		SizeScaling:    2,
		ScalingFactor:  1.15,
		MaxWaves:       20,
		WaveCooldown:   15,
		FirstWaveDelay: 10,
		BatchSize:      4,
		BatchDelay:     1.5,
		SafetyDistance: 300,
		SpawnRetries:   10,
	}
}

// EngagementConfig — параметры выбора целей и боя.
type EngagementConfig struct {
	// HardpointBias — вероятность выбрать ближайшую огневую точку, пока они живы.
	HardpointBias float64
	// CarrierBias — вероятность выбрать сам носитель, когда огневых точек не осталось.
	CarrierBias float64

	CollateralRadius   float64 // радиус урона по грунту от ближнего удара
	CollateralStrength float64

	PatrolSpeedFactor float64
	PatrolTurnRate    float64 // рад/с случайного дрейфа курса
	PatrolDownBias    float64 // насколько сильно курс тянет к базе
	PatrolEdgeMargin  float64

	AimTolerance     float64 // рад, допуск наведения турели
	ProjectileSpeed  float64
	EnemyShotSpeed   float64
	ShotCraterRadius float64
}

func DefaultEngagementConfig() EngagementConfig {
	return EngagementConfig{
		HardpointBias:      0.8,
		CarrierBias:        0.8,
		CollateralRadius:   18,
		CollateralStrength: 0.6,
		PatrolSpeedFactor:  0.5,
		PatrolTurnRate:     1.2,
		PatrolDownBias:     0.6,
		PatrolEdgeMargin:   20,
		AimTolerance:       0.08,
		ProjectileSpeed:    480,
		EnemyShotSpeed:     260,
		ShotCraterRadius:   8,
	}
}

// TerrainConfig — параметры генерации грунта.
type TerrainConfig struct {
	Seed         int64
	SurfaceRatio float64 // средняя высота поверхности как доля высоты мира
	LooseDepth   int     // рыхлый слой, подвержен гравитации
	SoftDepth    int
	MediumDepth  int
	// Амплитуды (в строках) и частоты синусов профиля поверхности
	Amplitudes  []float64
	Frequencies []float64
}

func DefaultTerrainConfig() TerrainConfig {
	return TerrainConfig{
		Seed:         0,
		SurfaceRatio: 0.62,
		LooseDepth:   3,
		SoftDepth:    6,
		MediumDepth:  10,
		Amplitudes:   []float64{6, 3, 1.5},
		Frequencies:  []float64{0.021, 0.057, 0.13},
	}
}

var (
	BackgroundColor  = color.RGBA{12, 14, 28, 255}
	SkyColor         = color.RGBA{24, 28, 52, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDimColor     = color.RGBA{150, 150, 170, 255}
	CarrierColor     = color.RGBA{90, 110, 140, 255}
	HardpointColor   = color.RGBA{140, 170, 210, 255}
	DrillColor       = color.RGBA{255, 215, 0, 255}
	TurretColor      = color.RGBA{50, 205, 50, 255}
	MacroColor       = color.RGBA{180, 50, 230, 255}
	MeleeColor       = color.RGBA{220, 60, 60, 255}
	ShooterColor     = color.RGBA{255, 140, 40, 255}
	FlashColor       = color.RGBA{255, 255, 255, 255}
	EnemyShotColor   = color.RGBA{255, 90, 60, 255}
	TurretShotColor  = color.RGBA{255, 255, 120, 255}
	HealthBarColor   = color.RGBA{80, 220, 80, 255}
	HealthBackColor  = color.RGBA{60, 20, 20, 255}
	WaveTextColor    = color.RGBA{70, 130, 180, 255}
	BossWaveColor    = color.RGBA{220, 60, 60, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
	LooseColor       = color.RGBA{194, 178, 128, 255}
	SoftColor        = color.RGBA{139, 101, 60, 255}
	MediumColor      = color.RGBA{110, 100, 95, 255}
	HardColor        = color.RGBA{60, 58, 66, 255}
	SpeedButtonColor = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4
	}
	SpeedMultipliers = []float64{1, 2, 4}
)
