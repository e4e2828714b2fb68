package memory

import "github.com/shirosaka/shiro51/io"

// port direct addresses, duplicated from package sfr rather than imported
// (sfr has no need to know about memory, and memory stays the single
// place that resolves addresses to storage).
const (
	portP0 = uint8(0x80)
	portP1 = uint8(0x90)
	portP2 = uint8(0xA0)
	portP3 = uint8(0xB0)
)

// Ports holds up to four optionally-attached external pin sources, one
// per port (P0-P3). A program reading a port's latch address observes
// the attachment's value instead of the stored output latch whenever one
// is wired up; writes always go to the stored latch regardless.
type Ports struct {
	attached [4]io.Port8
}

func (p *Ports) attach(port int, src io.Port8) {
	if port < 0 || port > 3 {
		panic("memory: port crossbar attachment index out of range 0-3")
	}
	p.attached[port] = src
}

// readThrough returns (value, true) if addr names a port latch with an
// attachment wired up, else (0, false) to tell the caller to fall back to
// the stored latch byte.
func (p *Ports) readThrough(addr uint8) (uint8, bool) {
	var idx int
	switch addr {
	case portP0:
		idx = 0
	case portP1:
		idx = 1
	case portP2:
		idx = 2
	case portP3:
		idx = 3
	default:
		return 0, false
	}
	src := p.attached[idx]
	if src == nil {
		return 0, false
	}
	return src.Input(), true
}
