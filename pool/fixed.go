package pool

type fixed[W any] struct {
	available chan W
	// created holds one token per worker built by newFn; its capacity is the pool size.
	created chan struct{}
	newFn   func() W
}

// NewFixed returns a pool of at most capacity workers built lazily by newFn.
// newFn may be called concurrently. A pool of capacity 0 blocks every Get.
func NewFixed[W any](capacity uint, newFn func() W) Pool[W] {
	return &fixed[W]{
		available: make(chan W, capacity),
		created:   make(chan struct{}, capacity),
		newFn:     newFn,
	}
}

func (p *fixed[W]) Get() W {
	select {
	case w := <-p.available:
		return w
	default:
	}

	select {
	case p.created <- struct{}{}:
		return p.newFn()
	default:
		return <-p.available
	}
}

func (p *fixed[W]) Put(w W) {
	p.available <- w
}

// Size returns the number of workers built so far.
func Size[W any](p Pool[W]) int {
	if f, ok := p.(*fixed[W]); ok {
		return len(f.created)
	}
	return 0
}
