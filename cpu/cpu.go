// Package cpu implements the MCS-51 instruction-set-level core: CPU
// state, the fetch-decode-dispatch loop, and the 256-entry opcode table
// that drives it. Handlers live in the other files of this package,
// grouped by instruction family (arithmetic, logical, data movement, bit
// operations, branches).
package cpu

import (
	"fmt"
	"os"

	"github.com/shirosaka/shiro51/cpuerr"
	"github.com/shirosaka/shiro51/io"
	"github.com/shirosaka/shiro51/link"
	"github.com/shirosaka/shiro51/loader"
	"github.com/shirosaka/shiro51/memory"
	"github.com/shirosaka/shiro51/sfr"
)

// PCDisposition tells Cycle how to update PC after a handler returns.
type PCDisposition int

const (
	// Advance means the caller should move PC forward by the
	// instruction's byte length.
	Advance PCDisposition = iota
	// Jump means the handler already wrote PC to its final value.
	Jump
)

// PowerManagementMode records the power mode last requested through
// PCON, for bookkeeping only - no clock gating or wake logic follows
// from it.
type PowerManagementMode int

const (
	// PMMNone is the default: no power mode requested.
	PMMNone PowerManagementMode = iota
	// PMMIdle means PCON bit 0 was set (CPU clock would stop; other
	// clocks continue).
	PMMIdle
	// PMMStop means PCON bit 1 was set (all clocks would stop except
	// the external oscillator).
	PMMStop
)

func (m PowerManagementMode) String() string {
	switch m {
	case PMMIdle:
		return "Idle Mode"
	case PMMStop:
		return "Stop Mode"
	default:
		return "No Mode"
	}
}

// Handler implements one opcode (or a parameterized family of them sharing
// an entry point, such as the eight ADD A,Rn opcodes). op is the fetched
// opcode byte so register-offset families can recover their operand index
// as op-base. arg0/arg1 are the instruction's operand bytes, nil when the
// instruction's length doesn't include them.
type Handler func(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error)

type instrEntry struct {
	mnemonic string
	length   uint16
	handler  Handler
}

// CPU holds all MCS-51 architectural state: the program counter, the
// memory system (code/idata/xdata plus the bit and bank views over it),
// and the handful of lifecycle flags the spec assigns to the core.
type CPU struct {
	PC  uint16
	Mem memory.Memory

	halted      bool
	initialized bool
	pmm         PowerManagementMode
	link        link.Notifier
}

// New returns a CPU with zeroed memory and initialized=false, matching
// the architectural power-on state before any program is loaded.
func New() *CPU {
	return &CPU{}
}

// AttachLink wires an optional inter-emulator link.Notifier. The core
// never consults it; it's a seam a driver may use, see package link.
func (c *CPU) AttachLink(n link.Notifier) {
	c.link = n
}

// AttachPort wires an external pin source to one of P0-P3; see
// memory.Memory.AttachPort.
func (c *CPU) AttachPort(port int, src io.Port8) {
	c.Mem.AttachPort(port, src)
}

// PowerMode returns the power management mode last recorded via a write
// to PCON.
func (c *CPU) PowerMode() PowerManagementMode {
	return c.pmm
}

// Halted reports whether the core has stopped because Cycle returned an
// error: an UnknownInstruction, or any error an opcode handler raised.
func (c *CPU) Halted() bool {
	return c.halted
}

// Init loads the hex-format program image at path into code memory
// starting at offset 0, applies the documented SFR power-on reset
// values, clears halted, and marks the CPU ready to run. Code memory past
// the end of the image is zero-filled; PC and all internal/external data
// besides the reset SFR cells are left at whatever they were (zero, for
// a freshly constructed CPU).
func (c *CPU) Init(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cpu: Init: %w", err)
	}
	defer f.Close()

	code, err := loader.LoadHex(f)
	if err != nil {
		return fmt.Errorf("cpu: Init: %w", err)
	}
	c.Mem.LoadCode(code)

	for addr, val := range sfr.ResetValues() {
		c.Mem.Write(addr, val)
	}

	c.halted = false
	c.initialized = true
	return nil
}

// Reset clears initialized, requiring a subsequent Init before Cycle will
// run again. Memory contents are left untouched.
func (c *CPU) Reset() {
	c.initialized = false
}

// Cycle executes exactly one instruction: fetch the opcode at PC, look up
// its table entry, fetch 0-2 operand bytes, dispatch to the handler, and
// apply the handler's PC disposition. Returns cpuerr.UninitializedCPU if
// called before Init, cpuerr.UnknownInstruction for an opcode with no
// table entry, or whatever error the handler itself raises (including
// cpuerr.UnimplementedInstruction for opcode slots that are valid but
// stubbed).
func (c *CPU) Cycle() error {
	if !c.initialized {
		return cpuerr.UninitializedCPU{}
	}
	if c.halted {
		return nil
	}

	op := c.Mem.ReadCode(c.PC)
	entry := table[op]
	if entry.handler == nil {
		c.halted = true
		return cpuerr.UnknownInstruction{Op: op}
	}

	var arg0, arg1 *uint8
	if entry.length >= 2 {
		v := c.Mem.ReadCode(c.PC + 1)
		arg0 = &v
	}
	if entry.length >= 3 {
		v := c.Mem.ReadCode(c.PC + 2)
		arg1 = &v
	}

	pconBefore := c.Mem.Read(sfr.PCON)
	disp, err := entry.handler(c, op, arg0, arg1)
	if err != nil {
		c.halted = true
		return err
	}
	if pconAfter := c.Mem.Read(sfr.PCON); pconAfter != pconBefore {
		recordPowerMode(c, pconAfter)
	}
	if disp == Advance {
		c.PC += entry.length // uint16 arithmetic wraps modulo 65536
	}
	return nil
}

// psw/acc/dptr helpers shared across handler files.

func (c *CPU) psw() uint8     { return c.Mem.Read(sfr.PSW) }
func (c *CPU) setPSW(v uint8) { c.Mem.Write(sfr.PSW, v) }
func (c *CPU) acc() uint8     { return c.Mem.Read(sfr.ACC) }
func (c *CPU) setAcc(v uint8) { c.Mem.Write(sfr.ACC, v) }
func (c *CPU) dptr() uint16 {
	return uint16(c.Mem.Read(sfr.DPH))<<8 | uint16(c.Mem.Read(sfr.DPL))
}

// setFlag sets or clears a single PSW bit, leaving the rest alone.
func (c *CPU) setFlag(bit uint8, v bool) {
	p := c.psw()
	if v {
		p |= bit
	} else {
		p &^= bit
	}
	c.setPSW(p)
}

// PSW flag bit masks.
const (
	flagCY = uint8(0x80)
	flagAC = uint8(0x40)
	flagOV = uint8(0x04)
)

func (c *CPU) carry() uint8 {
	if c.psw()&flagCY != 0 {
		return 1
	}
	return 0
}

func push(c *CPU, val uint8) {
	sp := c.Mem.Read(sfr.SP) + 1
	c.Mem.Write(sfr.SP, sp)
	c.Mem.Write(sp, val)
}

func pop(c *CPU) uint8 {
	sp := c.Mem.Read(sfr.SP)
	val := c.Mem.Read(sp)
	c.Mem.Write(sfr.SP, sp-1)
	return val
}

func arg0err(op uint8, arg0 *uint8) error {
	if arg0 == nil {
		return cpuerr.InstructionArg0Missing{Op: op}
	}
	return nil
}

func arg1err(op uint8, arg1 *uint8) error {
	if arg1 == nil {
		return cpuerr.InstructionArg1Missing{Op: op}
	}
	return nil
}
