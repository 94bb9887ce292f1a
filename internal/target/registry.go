// internal/target/registry.go
package target

import "math"

// Registry — живой набор целей. Хранит только ссылки, владеют целями их менеджеры.
// Порядок — порядок регистрации.
type Registry struct {
	targets []Targetable
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register добавляет цель. Повторная регистрация ничего не меняет и возвращает false.
func (r *Registry) Register(t Targetable) bool {
	if t == nil || r.indexOf(t) >= 0 {
		return false
	}
	r.targets = append(r.targets, t)
	return true
}

// Unregister убирает цель. Для отсутствующей цели возвращает false.
func (r *Registry) Unregister(t Targetable) bool {
	i := r.indexOf(t)
	if i < 0 {
		return false
	}
	r.targets = append(r.targets[:i:i], r.targets[i+1:]...)
	return true
}

// Contains — зарегистрирована ли цель.
func (r *Registry) Contains(t Targetable) bool {
	return r.indexOf(t) >= 0
}

func (r *Registry) Len() int {
	return len(r.targets)
}

// GetAll возвращает копию текущего набора.
func (r *Registry) GetAll() []Targetable {
	out := make([]Targetable, len(r.targets))
	copy(out, r.targets)
	return out
}

// Filter возвращает копию целей, для которых keep вернул true.
func (r *Registry) Filter(keep func(Targetable) bool) []Targetable {
	return Filter(r.targets, keep)
}

// Alive — неразрушенные цели.
func (r *Registry) Alive() []Targetable {
	return r.Filter(func(t Targetable) bool { return !t.IsDestroyed() })
}

// ByPriority — живые цели с указанной меткой.
func (r *Registry) ByPriority(p Priority) []Targetable {
	return r.Filter(func(t Targetable) bool {
		return t.Priority() == p && !t.IsDestroyed()
	})
}

func (r *Registry) indexOf(t Targetable) int {
	for i, existing := range r.targets {
		if existing == t {
			return i
		}
	}
	return -1
}

// Filter отбирает цели из произвольного списка.
func Filter(candidates []Targetable, keep func(Targetable) bool) []Targetable {
	out := make([]Targetable, 0, len(candidates))
	for _, t := range candidates {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// FindClosest — ближайшая по евклиду цель из candidates.
// При равных расстояниях побеждает та, что раньше в списке.
func FindClosest(x, y float64, candidates []Targetable) (Targetable, float64) {
	var closest Targetable
	best := math.Inf(1)
	for _, t := range candidates {
		if t == nil {
			continue
		}
		tx, ty := t.Position()
		d := math.Hypot(tx-x, ty-y)
		if d < best {
			best = d
			closest = t
		}
	}
	return closest, best
}
