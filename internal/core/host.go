package core

import "time"

// FrameQueue is a Scheduler driven by a host loop that calls Run once per
// displayed frame.
type FrameQueue struct {
	next    FrameID
	pending []queuedFrame
	running []queuedFrame
}

type queuedFrame struct {
	id FrameID
	fn FrameFunc
}

// RequestFrame queues fn for the next Run.
func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	q.next++
	q.pending = append(q.pending, queuedFrame{id: q.next, fn: fn})
	return q.next
}

// CancelFrame drops a queued callback. Unknown ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
		}
	}
	for i, f := range q.pending {
		if f.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pending reports how many callbacks wait for the next Run.
func (q *FrameQueue) Pending() int { return len(q.pending) }

// Run invokes the callbacks queued before the call and returns how many ran.
// Callbacks requested while running wait for the following Run.
func (q *FrameQueue) Run(ts time.Duration) int {
	q.running, q.pending = q.pending, nil
	ran := 0
	for i := range q.running {
		fn := q.running[i].fn
		if fn == nil {
			continue
		}
		fn(ts)
		ran++
	}
	q.running = nil
	return ran
}

// Page is an in-process Document and Window. Hosts feed it viewport changes
// and the ready signal; surfaces are registered by identifier.
type Page struct {
	surfaces map[string]Surface
	viewport Size
	reduced  bool
	loading  bool
	ready    []func()

	nextListener ListenerID
	listeners    []resizeListener
}

type resizeListener struct {
	id ListenerID
	fn func()
}

// NewPage constructs a Page with the given viewport. It starts out loading.
func NewPage(viewport Size) *Page {
	return &Page{
		surfaces: map[string]Surface{},
		viewport: viewport,
		loading:  true,
	}
}

// AddSurface registers s under its identifier, replacing any previous one.
func (p *Page) AddSurface(s Surface) {
	if s == nil {
		return
	}
	p.surfaces[s.ID()] = s
}

// SurfaceByID implements Document.
func (p *Page) SurfaceByID(id string) (Surface, bool) {
	s, ok := p.surfaces[id]
	return s, ok
}

// Loading implements Document.
func (p *Page) Loading() bool { return p.loading }

// OnReady implements Document. Callbacks registered after MarkReady run
// immediately.
func (p *Page) OnReady(fn func()) {
	if fn == nil {
		return
	}
	if !p.loading {
		fn()
		return
	}
	p.ready = append(p.ready, fn)
}

// MarkReady ends the loading phase and runs the ready callbacks once.
func (p *Page) MarkReady() {
	if !p.loading {
		return
	}
	p.loading = false
	ready := p.ready
	p.ready = nil
	for _, fn := range ready {
		fn()
	}
}

// SetReducedMotion sets the reduced-motion media preference.
func (p *Page) SetReducedMotion(v bool) { p.reduced = v }

// ReducedMotion implements Window.
func (p *Page) ReducedMotion() bool { return p.reduced }

// Viewport implements Window.
func (p *Page) Viewport() Size { return p.viewport }

// Resize updates the viewport and notifies listeners when it changed.
func (p *Page) Resize(s Size) bool {
	if s == p.viewport {
		return false
	}
	p.viewport = s
	listeners := append([]resizeListener(nil), p.listeners...)
	for _, l := range listeners {
		l.fn()
	}
	return true
}

// AddResizeListener implements Window.
func (p *Page) AddResizeListener(fn func()) ListenerID {
	p.nextListener++
	p.listeners = append(p.listeners, resizeListener{id: p.nextListener, fn: fn})
	return p.nextListener
}

// RemoveResizeListener implements Window.
func (p *Page) RemoveResizeListener(id ListenerID) {
	for i, l := range p.listeners {
		if l.id == id {
			p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
			return
		}
	}
}

// ResizeListeners reports the number of registered resize listeners.
func (p *Page) ResizeListeners() int { return len(p.listeners) }
