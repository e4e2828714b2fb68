// Package link defines the narrow interface a driver may use to learn
// that a peer emulator instance wants attention over the (unimplemented)
// websocket link between emulator instances. The core CPU never consults
// this; it's a typed seam a driver can wire a real transport into without
// the core knowing or caring what's on the other end.
package link

// Notifier reports whether a peer instance has raised its signal line.
type Notifier interface {
	// Raised indicates whether the peer link currently wants attention.
	Raised() bool
}
