// internal/system/wave.go
package system

import (
	"carrier-defense/internal/component"
	"carrier-defense/internal/config"
	"carrier-defense/internal/defs"
	"carrier-defense/internal/event"
	"carrier-defense/internal/store"
	"carrier-defense/internal/utils"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
)

// WaveDirector задаёт темп волн: когда начать следующую, сколько в ней врагов,
// где и каких спавнить и когда волна закончилась.
type WaveDirector struct {
	ctx *Context
	cfg config.WaveConfig
	log *logrus.Entry

	active       bool // менеджер включён
	waveActive   bool
	waveNumber   int
	nextWaveID   int
	nextWaveTime float64
	waves        map[int]*component.Wave
}

func NewWaveDirector(ctx *Context) *WaveDirector {
	return &WaveDirector{
		ctx:   ctx,
		cfg:   ctx.Waves,
		log:   ctx.logFor("wave"),
		waves: make(map[int]*component.Wave),
	}
}

// WaveSize — размер волны с номером n, не меньше одного врага.
func WaveSize(cfg config.WaveConfig, n int) int {
	if n < 1 {
		n = 1
	}
	size := cfg.BaseSize + cfg.SizeScaling*(n-1)
	if size < 1 {
		return 1
	}
	return size
}

// Difficulty — множитель здоровья и урона врагов волны n.
func Difficulty(cfg config.WaveConfig, n int) float64 {
	if n < 1 {
		n = 1
	}
	return 1 + float64(n-1)*(cfg.ScalingFactor-1)
}

// Start включает менеджер; первая волна начнётся через FirstWaveDelay.
func (d *WaveDirector) Start() {
	d.active = true
	d.nextWaveTime = d.ctx.Now() + d.cfg.FirstWaveDelay
}

// Stop выключает менеджер. Отложенные партии спавна станут холостыми.
func (d *WaveDirector) Stop() {
	d.active = false
}

func (d *WaveDirector) Active() bool { return d.active }
func (d *WaveDirector) WaveActive() bool { return d.waveActive }
func (d *WaveDirector) WaveNumber() int { return d.waveNumber }
func (d *WaveDirector) NextWaveTime() float64 { return d.nextWaveTime }
func (d *WaveDirector) MaxWaves() int { return d.cfg.MaxWaves }

// Wave возвращает активную волну по id.
func (d *WaveDirector) Wave(id int) (*component.Wave, bool) {
	w, ok := d.waves[id]
	return w, ok
}

// ActiveWaves — активные волны по возрастанию id.
func (d *WaveDirector) ActiveWaves() []*component.Wave {
	ids := make([]int, 0, len(d.waves))
	for id := range d.waves {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]*component.Wave, 0, len(ids))
	for _, id := range ids {
		out = append(out, d.waves[id])
	}
	return out
}

// CallNextWave сдвигает начало следующей волны на текущий момент.
func (d *WaveDirector) CallNextWave() {
	if d.active && !d.waveActive {
		d.nextWaveTime = d.ctx.Now()
	}
}

// Update: если волны нет и лимит не исчерпан, начинаем новую по таймеру,
// иначе публикуем обратный отсчёт.
func (d *WaveDirector) Update() {
	if !d.active || d.waveActive || d.waveNumber >= d.cfg.MaxWaves {
		return
	}
	now := d.ctx.Now()
	if now >= d.nextWaveTime {
		d.StartWave()
		return
	}
	remaining := d.nextWaveTime - now
	d.ctx.counters().Set(store.WaveCountdown, remaining)
	d.ctx.emit(event.WaveCountdown, event.CountdownPayload{
		NextWave:  d.waveNumber + 1,
		Remaining: remaining,
	})
}

// StartWave начинает следующую волну. Ничего не делает, если волна уже идёт
// или менеджер выключен. Возвращает true, если волна началась.
func (d *WaveDirector) StartWave() bool {
	if d.waveActive || !d.active {
		return false
	}
	d.waveNumber++
	if d.waveNumber > d.cfg.MaxWaves {
		d.finish()
		return false
	}

	d.nextWaveID++
	size := WaveSize(d.cfg, d.waveNumber)
	w := &component.Wave{
		ID:                   d.nextWaveID,
		Number:               d.waveNumber,
		Size:                 size,
		DifficultyMultiplier: Difficulty(d.cfg, d.waveNumber),
		EnemiesRemaining:     size,
		StartTime:            d.ctx.Now(),
	}
	d.waves[w.ID] = w
	d.waveActive = true

	counters := d.ctx.counters()
	counters.Set(store.WaveCurrent, d.waveNumber)
	counters.Set(store.WaveProgress, 0.0)
	counters.Set(store.WaveCountdown, 0.0)

	d.log.WithFields(logrus.Fields{
		"wave":       w.Number,
		"size":       w.Size,
		"difficulty": w.DifficultyMultiplier,
	}).Info("wave started")
	d.ctx.emit(event.WaveStarted, event.WavePayload{
		WaveID:     w.ID,
		Number:     w.Number,
		Size:       w.Size,
		Difficulty: w.DifficultyMultiplier,
	})

	d.spawnBatch(w.ID)
	return true
}

func (d *WaveDirector) finish() {
	d.active = false
	d.log.WithField("waves", d.cfg.MaxWaves).Info("all waves completed")
	d.ctx.emit(event.AllWavesCompleted, event.WavePayload{Number: d.cfg.MaxWaves})
}

// spawnBatch выпускает не больше BatchSize врагов и, если волна ещё не
// заполнена, планирует следующую партию. Отложенный вызов заново проверяет,
// жива ли волна.
func (d *WaveDirector) spawnBatch(waveID int) {
	w, ok := d.waves[waveID]
	if !ok || w.Completed || !d.active {
		return
	}

	batch := d.cfg.BatchSize
	if batch <= 0 {
		batch = w.Size
	}
	for n := 0; n < batch && !w.FullySpawned(); n++ {
		x, y, ok := d.SpawnPoint()
		if !ok {
			d.log.Warn("no world bounds, skipping spawn batch")
			break
		}
		if !d.spawnEnemy(w, x, y) {
			break
		}
	}

	if !w.FullySpawned() {
		d.ctx.Scheduler.At(d.ctx.Now()+d.cfg.BatchDelay, func() {
			d.spawnBatch(waveID)
		})
	}
}

func (d *WaveDirector) spawnEnemy(w *component.Wave, x, y float64) bool {
	def, ok := d.ChooseEnemyType()
	if !ok {
		d.log.Warn("no enemy definitions, cannot spawn")
		return false
	}
	id := d.ctx.ECS.NewEntity()
	e := component.NewEnemy(id, def, w.ID, w.DifficultyMultiplier, x, y)
	e.Heading = math.Pi / 2
	d.ctx.ECS.Enemies[id] = e
	w.EnemiesSpawned++

	store.Add(d.ctx.counters(), store.EnemiesAlive, 1)
	d.ctx.emit(event.EnemySpawned, event.EnemyPayload{
		EnemyID:   id,
		WaveID:    w.ID,
		Archetype: string(def.Archetype),
		X:         x,
		Y:         y,
	})
	return true
}

// ChooseEnemyType — взвешенный случайный выбор типа врага. Сложность на
// выбор не влияет. Неизвестный id в таблице весов даёт первый тип из определений.
func (d *WaveDirector) ChooseEnemyType() (defs.EnemyDefinition, bool) {
	lib := d.ctx.Defs
	if lib == nil {
		return defs.EnemyDefinition{}, false
	}
	id := utils.ChooseWeighted(d.ctx.Rng, lib.SpawnWeights)
	if def, ok := lib.Enemies[id]; ok {
		return def, true
	}
	d.log.WithField("enemy", id).Warn("unknown enemy type, falling back to the first definition")
	return lib.FirstEnemy()
}

// SpawnPoint выбирает точку на случайном краю мира не ближе SafetyDistance
// к носителю. После SpawnRetries неудачных попыток берётся последняя точка,
// чтобы волна не застревала.
func (d *WaveDirector) SpawnPoint() (x, y float64, ok bool) {
	x, y, _, ok = d.pickSpawnPoint()
	return x, y, ok
}

func (d *WaveDirector) pickSpawnPoint() (x, y float64, safe, ok bool) {
	bounds, hasBounds := d.ctx.bounds()
	if !hasBounds || bounds.Empty() {
		return 0, 0, false, false
	}
	cx, cy, hasCarrier := d.ctx.carrierPosition()

	attempts := d.cfg.SpawnRetries
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		x, y = d.edgePoint(bounds.X, bounds.Y, bounds.Width, bounds.Height)
		if !hasCarrier || utils.Distance(x, y, cx, cy) >= d.cfg.SafetyDistance {
			return x, y, true, true
		}
	}
	d.log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("spawn retries exhausted, using last point")
	return x, y, false, true
}

func (d *WaveDirector) edgePoint(bx, by, bw, bh float64) (float64, float64) {
	switch d.ctx.Rng.Intn(4) {
	case 0: // верх
		return bx + d.ctx.Rng.Float64()*bw, by
	case 1: // право
		return bx + bw, by + d.ctx.Rng.Float64()*bh
	case 2: // низ
		return bx + d.ctx.Rng.Float64()*bw, by + bh
	default: // лево
		return bx, by + d.ctx.Rng.Float64()*bh
	}
}

// OnEvent — WaveDirector подписан на EnemyKilled.
func (d *WaveDirector) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	if p, ok := e.Data.(event.EnemyPayload); ok {
		d.OnEnemyKilled(p.WaveID)
	}
}

// OnEnemyKilled уменьшает счётчик волны и закрывает её, когда врагов не осталось.
// Для неизвестной или уже закрытой волны ничего не делает.
func (d *WaveDirector) OnEnemyKilled(waveID int) {
	w, ok := d.waves[waveID]
	if !ok || w.Completed {
		return
	}
	if w.EnemiesRemaining > 0 {
		w.EnemiesRemaining--
	}
	counters := d.ctx.counters()
	counters.Set(store.WaveProgress, w.Progress())
	if w.EnemiesRemaining > 0 {
		return
	}

	w.Completed = true
	delete(d.waves, waveID)
	d.log.WithFields(logrus.Fields{"wave": w.Number, "duration": d.ctx.Now() - w.StartTime}).Info("wave completed")
	d.ctx.emit(event.WaveCompleted, event.WavePayload{
		WaveID:     w.ID,
		Number:     w.Number,
		Size:       w.Size,
		Difficulty: w.DifficultyMultiplier,
		Progress:   1,
	})

	if len(d.waves) > 0 {
		return
	}
	d.waveActive = false
	d.nextWaveTime = d.ctx.Now() + d.cfg.WaveCooldown
	if d.active && d.waveNumber >= d.cfg.MaxWaves {
		d.finish()
	}
}
