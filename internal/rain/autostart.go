package rain

import "neon-rain/internal/core"

// AutoStart initializes r on surfaceID as soon as doc is ready: immediately
// when it has finished loading, otherwise from its ready signal.
func AutoStart(doc core.Document, r *Renderer, surfaceID string) {
	if doc.Loading() {
		doc.OnReady(func() { r.Init(surfaceID) })
		return
	}
	r.Init(surfaceID)
}
