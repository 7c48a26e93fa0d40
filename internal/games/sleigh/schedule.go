package sleigh

import "container/heap"

// Slot names a piece of transient UI state cleared by a timer.
type Slot int

const (
	SlotDialogue Slot = iota
	SlotWish
	SlotJoyride // Delayed joyride start
)

// Timer fires at At for Slot. Token must still match the slot's current
// token when it fires, otherwise the timer is stale and ignored.
type Timer struct {
	At    float64
	Slot  Slot
	Token int
}

type timerHeap []Timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].At == h[j].At {
		return h[i].Slot < h[j].Slot
	}
	return h[i].At < h[j].At
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(Timer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	*h = old[:n-1]
	return t
}

// Schedule is a priority queue of timers keyed by session clock.
type Schedule struct {
	h      timerHeap
	tokens map[Slot]int
}

func NewSchedule() *Schedule {
	return &Schedule{tokens: make(map[Slot]int)}
}

// Arm bumps the slot token and queues a timer for it. Earlier timers on
// the same slot become stale.
func (s *Schedule) Arm(now, delay float64, slot Slot) int {
	s.tokens[slot]++
	tok := s.tokens[slot]
	heap.Push(&s.h, Timer{At: now + delay, Slot: slot, Token: tok})
	return tok
}

// Cancel invalidates any pending timer for slot.
func (s *Schedule) Cancel(slot Slot) {
	s.tokens[slot]++
}

// Due pops every timer at or before now and returns those whose token
// is still current.
func (s *Schedule) Due(now float64) []Timer {
	var out []Timer
	for s.h.Len() > 0 && s.h[0].At <= now {
		t := heap.Pop(&s.h).(Timer)
		if t.Token == s.tokens[t.Slot] {
			out = append(out, t)
		}
	}
	return out
}

// Pending returns how many timers are queued, stale ones included.
func (s *Schedule) Pending() int {
	return s.h.Len()
}
