package audio

import (
	"math"
	"sync"
	"time"

	"carrier-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
)

const (
	sampleRate  = beep.SampleRate(44100)
	bufferTime  = 100 * time.Millisecond
	minInterval = 40 * time.Millisecond // не чаще одного звука одного типа
)

// tone — параметры короткого сигнала для события
type tone struct {
	freq     float64
	duration time.Duration
	volume   float64
	slide    float64 // изменение частоты за весь сигнал, Гц
}

var tones = map[event.EventType]tone{
	event.TurretFired:       {freq: 880, duration: 40 * time.Millisecond, volume: 0.15},
	event.TerrainExplosion:  {freq: 120, duration: 180 * time.Millisecond, volume: 0.35, slide: -60},
	event.WaveStarted:       {freq: 440, duration: 250 * time.Millisecond, volume: 0.3, slide: 220},
	event.WaveCompleted:     {freq: 660, duration: 300 * time.Millisecond, volume: 0.3, slide: 330},
	event.AllWavesCompleted: {freq: 523, duration: 600 * time.Millisecond, volume: 0.4, slide: 523},
	event.CarrierDestroyed:  {freq: 220, duration: 800 * time.Millisecond, volume: 0.4, slide: -180},
}

// Events — события, на которые стоит подписать SoundManager.
func Events() []event.EventType {
	return []event.EventType{
		event.TurretFired,
		event.TerrainExplosion,
		event.WaveStarted,
		event.WaveCompleted,
		event.AllWavesCompleted,
		event.CarrierDestroyed,
	}
}

// SoundManager озвучивает игровые события.
// Без Initialize все вызовы безопасны и ничего не делают.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	lastPlayed  map[event.EventType]time.Time
	log         *logrus.Entry
	now         func() time.Time
}

func NewSoundManager(log *logrus.Entry) *SoundManager {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &SoundManager{
		mixer:      &beep.Mixer{},
		lastPlayed: make(map[event.EventType]time.Time),
		log:        log,
		now:        time.Now,
	}
}

// Initialize открывает аудиоустройство. Повторный вызов ничего не делает.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferTime)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Info("Audio initialized")
	return nil
}

func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// OnEvent реализует event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	t, ok := tones[e.Type]
	if !ok {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	now := sm.now()
	if last, seen := sm.lastPlayed[e.Type]; seen && now.Sub(last) < minInterval {
		return
	}
	sm.lastPlayed[e.Type] = now

	speaker.Lock()
	sm.mixer.Add(newTone(t, sampleRate))
	speaker.Unlock()
}

// toneStreamer — синус с линейным спадом громкости и сдвигом частоты
type toneStreamer struct {
	t        tone
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
}

func newTone(t tone, rate beep.SampleRate) beep.Streamer {
	return &toneStreamer{t: t, rate: rate, total: rate.N(t.duration)}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.total <= 0 {
		return 0, false
	}
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.total)
		freq := s.t.freq + s.t.slide*progress
		val := math.Sin(2*math.Pi*s.phase) * s.t.volume * (1 - progress)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }
