package core

import (
	"image/color"
	"time"
)

// Size describes the pixel dimensions of a surface or viewport.
type Size struct {
	W int
	H int
}

// Canvas is the 2D drawing context of a surface.
type Canvas interface {
	FillRect(x, y, w, h float64, c color.Color)
	ClearRect(x, y, w, h float64)
	SetFont(px float64)
	// SetShadow sets the glow drawn behind subsequent FillText calls.
	SetShadow(c color.Color, blur float64)
	FillText(s string, x, y float64, c color.Color)
}

// Surface is a drawable element addressed by identifier.
type Surface interface {
	ID() string
	Size() Size
	SetSize(s Size)
	// Context2D returns nil when the surface cannot provide a 2D context.
	Context2D() Canvas
	Hide()
}

// FrameFunc receives the host timestamp, measured from a host-defined origin.
type FrameFunc func(ts time.Duration)

// FrameID identifies a pending frame request. Zero is never issued.
type FrameID uint64

// Scheduler runs a callback once, on the host's next frame.
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// ListenerID identifies a registered resize listener. Zero is never issued.
type ListenerID uint64

// Window exposes viewport geometry and media preferences.
type Window interface {
	Viewport() Size
	ReducedMotion() bool
	AddResizeListener(fn func()) ListenerID
	RemoveResizeListener(id ListenerID)
}

// Document locates surfaces and reports whether the host is still loading.
type Document interface {
	SurfaceByID(id string) (Surface, bool)
	Loading() bool
	OnReady(fn func())
}

// VarStore is the shared styling-variable store.
type VarStore interface {
	Get(name string) string
	Set(name, value string)
}
