package level

import "github.com/vovakirdan/neon-runner/internal/core"

// Platform is one pooled ground segment. Position is the centre of the slab.
type Platform struct {
	Position  core.Vec2
	Width     float64
	Thickness float64
	Active    bool
}

// Left returns the x of the platform's left edge.
func (p Platform) Left() float64 { return p.Position.X - p.Width/2 }

// Right returns the x of the platform's right edge.
func (p Platform) Right() float64 { return p.Position.X + p.Width/2 }

// Top returns the walkable surface height.
func (p Platform) Top() float64 { return p.Position.Y + p.Thickness/2 }

// Bottom returns the underside height.
func (p Platform) Bottom() float64 { return p.Position.Y - p.Thickness/2 }

// Pool is a fixed arena of platform slots with an index free list and an
// ordered active queue. Slots are never destroyed, only toggled between the
// two ownership states.
type Pool struct {
	slots  []Platform
	free   []int // Stack of pooled slot indices
	active ring  // Active slot indices in spawn order
	grown  int   // Slots allocated after pre-fill
}

// NewPool pre-allocates size inactive slots.
func NewPool(size int) *Pool {
	p := &Pool{
		slots:  make([]Platform, size),
		free:   make([]int, 0, size),
		active: newRing(size),
	}
	// Push in reverse so slot 0 is handed out first
	for i := size - 1; i >= 0; i-- {
		p.free = append(p.free, i)
	}
	return p
}

// Acquire activates a slot at the given placement and appends it to the tail
// of the active queue. A new slot is allocated only when the free list is empty.
func (p *Pool) Acquire(pos core.Vec2, width, thickness float64) int {
	var idx int
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		idx = len(p.slots)
		p.slots = append(p.slots, Platform{})
		p.grown++
	}

	p.slots[idx] = Platform{
		Position:  pos,
		Width:     width,
		Thickness: thickness,
		Active:    true,
	}
	p.active.push(idx)
	return idx
}

// Head returns the oldest active platform.
func (p *Pool) Head() (Platform, bool) {
	idx, ok := p.active.peek()
	if !ok {
		return Platform{}, false
	}
	return p.slots[idx], true
}

// ReleaseHead deactivates the oldest active platform and returns it to the free list.
func (p *Pool) ReleaseHead() bool {
	idx, ok := p.active.pop()
	if !ok {
		return false
	}
	p.slots[idx].Active = false
	p.free = append(p.free, idx)
	return true
}

// ReleaseAll returns every active platform to the free list, oldest first.
func (p *Pool) ReleaseAll() {
	for p.ReleaseHead() {
	}
}

// Each calls fn for every active platform in queue order.
// Iteration stops when fn returns false.
func (p *Pool) Each(fn func(Platform) bool) {
	for i := 0; i < p.active.len(); i++ {
		if !fn(p.slots[p.active.at(i)]) {
			return
		}
	}
}

// ActiveCount returns the number of active platforms.
func (p *Pool) ActiveCount() int { return p.active.len() }

// FreeCount returns the number of pooled platforms.
func (p *Pool) FreeCount() int { return len(p.free) }

// Capacity returns the total number of slots.
func (p *Pool) Capacity() int { return len(p.slots) }

// Grown returns how many slots were allocated beyond the pre-fill.
func (p *Pool) Grown() int { return p.grown }

// ring is a growable FIFO of slot indices.
type ring struct {
	buf   []int
	head  int
	count int
}

func newRing(capacity int) ring {
	if capacity < 1 {
		capacity = 1
	}
	return ring{buf: make([]int, capacity)}
}

func (r *ring) len() int { return r.count }

func (r *ring) at(i int) int {
	return r.buf[(r.head+i)%len(r.buf)]
}

func (r *ring) push(v int) {
	if r.count == len(r.buf) {
		grown := make([]int, len(r.buf)*2)
		for i := 0; i < r.count; i++ {
			grown[i] = r.at(i)
		}
		r.buf = grown
		r.head = 0
	}
	r.buf[(r.head+r.count)%len(r.buf)] = v
	r.count++
}

func (r *ring) peek() (int, bool) {
	if r.count == 0 {
		return 0, false
	}
	return r.buf[r.head], true
}

func (r *ring) pop() (int, bool) {
	v, ok := r.peek()
	if !ok {
		return 0, false
	}
	r.head = (r.head + 1) % len(r.buf)
	r.count--
	return v, true
}
