// internal/system/scheduler.go
package system

import "container/heap"

type task struct {
	due float64
	seq uint64
	fn  func()
}

type taskQueue []task

func (q taskQueue) Len() int { return len(q) }
func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}
func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *taskQueue) Push(x interface{}) {
	*q = append(*q, x.(task))
}
func (q *taskQueue) Pop() interface{} {
	old := *q
	n := len(old)
	t := old[n-1]
	*q = old[:n-1]
	return t
}

// Scheduler откладывает вызовы до заданного игрового времени.
// Отмены нет: отложенный вызов сам проверяет, актуален ли он.
type Scheduler struct {
	queue taskQueue
	seq   uint64
	now   float64
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After планирует fn через delay секунд от последнего Run.
func (s *Scheduler) After(delay float64, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.At(s.now+delay, fn)
}

// At планирует fn на момент due.
func (s *Scheduler) At(due float64, fn func()) {
	if fn == nil {
		return
	}
	s.seq++
	heap.Push(&s.queue, task{due: due, seq: s.seq, fn: fn})
}

// Run выполняет все вызовы со сроком не позже now: по сроку, при равенстве — в порядке планирования.
// Возвращает число выполненных вызовов.
func (s *Scheduler) Run(now float64) int {
	s.now = now
	ran := 0
	for s.queue.Len() > 0 && s.queue[0].due <= now {
		t := heap.Pop(&s.queue).(task)
		t.fn()
		ran++
	}
	return ran
}

// Pending — сколько вызовов ещё ждут.
func (s *Scheduler) Pending() int {
	return s.queue.Len()
}

// Now — время последнего Run.
func (s *Scheduler) Now() float64 {
	return s.now
}
