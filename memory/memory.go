// Package memory implements the MCS-51 memory model: code flash, internal
// data (with its bit-addressable window and register banks), and external
// data, plus the direct/bit/bank-relative/port-crossbar views laid over
// that storage. Every view dispatches to the same underlying byte arrays;
// handlers never index those arrays directly.
package memory

import (
	"github.com/shirosaka/shiro51/addr"
	"github.com/shirosaka/shiro51/io"
)

const (
	// CodeSize is the size of program memory in bytes: every 16-bit
	// address (0x0000-0xFFFF) must index validly, since PC wraps modulo
	// 65536 rather than stopping short of it.
	CodeSize = 65536
	// IdataSize is the size of internal data in bytes. The upper half
	// (0x80-0xFF) is the SFR window.
	IdataSize = 256
	// XdataSize is the size of external data in bytes.
	XdataSize = 4096

	sfrBase    = 0x80
	bankStride = 8
)

// Ram is the read-only view of code memory a disassembler needs; Memory
// satisfies it.
type Ram interface {
	ReadCode(a uint16) uint8
}

// Memory is the flat backing store for all three MCS-51 address spaces.
// The zero value is ready to use (all bytes zero), matching the CPU's
// zero-initialized power-on state.
type Memory struct {
	code  [CodeSize]uint8
	idata [IdataSize]uint8
	xdata [XdataSize]uint8
	ports Ports
}

// LoadCode writes b contiguously into code memory starting at offset 0,
// the contract the hex loader and CPU.Init rely on.
func (m *Memory) LoadCode(b []byte) {
	n := copy(m.code[:], b)
	for i := n; i < len(m.code); i++ {
		m.code[i] = 0
	}
}

// ReadCode reads a single byte of program memory.
func (m *Memory) ReadCode(a uint16) uint8 {
	return m.code[a]
}

// Read reads a direct-addressed internal data cell. Reads of P0-P3 pass
// through the port crossbar (see Ports) when an external pin source is
// attached there.
func (m *Memory) Read(a uint8) uint8 {
	if v, ok := m.ports.readThrough(a); ok {
		return v
	}
	return m.idata[a]
}

// Write stores val at a direct internal-data address. Writing a port
// latch always updates the stored value, independent of whether a port
// crossbar attachment is shadowing reads of it.
func (m *Memory) Write(a uint8, val uint8) {
	m.idata[a] = val
}

// ReadXdata reads a byte of external data, addressed by the full 16-bit
// DPTR-style address (MOVX A,@DPTR).
func (m *Memory) ReadXdata(a uint16) uint8 {
	return m.xdata[a%XdataSize]
}

// WriteXdata writes a byte of external data (MOVX @DPTR,A).
func (m *Memory) WriteXdata(a uint16, val uint8) {
	m.xdata[a%XdataSize] = val
}

// ReadBit decodes bitAddr per the MCS-51 bit-addressing rule and returns
// the bit's current value, or cpuerr.InvalidBitAddr if the decoded byte
// isn't bit-addressable.
func (m *Memory) ReadBit(bitAddr uint8) (bool, error) {
	byteAddr, bitIdx, err := addr.Decode(bitAddr)
	if err != nil {
		return false, err
	}
	return m.Read(byteAddr)&(1<<bitIdx) != 0, nil
}

// WriteBit decodes bitAddr and sets or clears that single bit, leaving
// every other bit of the underlying byte untouched. Returns
// cpuerr.InvalidBitAddr if the decoded byte isn't bit-addressable.
func (m *Memory) WriteBit(bitAddr uint8, val bool) error {
	byteAddr, bitIdx, err := addr.Decode(bitAddr)
	if err != nil {
		return err
	}
	cur := m.Read(byteAddr)
	if val {
		cur |= 1 << bitIdx
	} else {
		cur &^= 1 << bitIdx
	}
	m.Write(byteAddr, cur)
	return nil
}

// bankOf derives the currently selected register bank (0-3) from PSW's
// RS1:RS0 bits (bits 4 and 3).
func bankOf(psw uint8) uint8 {
	return (psw>>4)&1<<1 | (psw >> 3 & 1)
}

// GPR reads general-purpose register n (0-7) in the bank currently
// selected by PSW.
func (m *Memory) GPR(n uint8) uint8 {
	bank := bankOf(m.idata[sfr_PSW])
	return m.idata[uint16(bank)*bankStride+uint16(n)]
}

// SetGPR writes general-purpose register n (0-7) in the bank currently
// selected by PSW.
func (m *Memory) SetGPR(n uint8, val uint8) {
	bank := bankOf(m.idata[sfr_PSW])
	m.idata[uint16(bank)*bankStride+uint16(n)] = val
}

// sfr_PSW is PSW's direct address, kept inline rather than imported from
// package sfr; keeping the one address this package truly needs to know
// about inline keeps the dependency direction obvious.
const sfr_PSW = 0xD0

// SFRValue reads a direct address in the SFR half of internal data. It's
// a thin, named alias over Read so call sites document intent; any
// direct address works identically regardless of which half it's in.
func (m *Memory) SFRValue(a uint8) uint8 {
	return m.Read(a)
}

// SetSFR writes a direct address in the SFR half of internal data.
func (m *Memory) SetSFR(a uint8, val uint8) {
	m.Write(a, val)
}

// AttachPort wires an external pin source to one of P0-P3 so that reads
// of that port's latch address read through to the attachment instead.
// port must be 0-3; panics otherwise, since this is a wiring-time
// programming error rather than a runtime condition a loaded program can
// trigger.
func (m *Memory) AttachPort(port int, src io.Port8) {
	m.ports.attach(port, src)
}
