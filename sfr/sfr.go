// Package sfr catalogs the MCS-51 special-function registers as named
// direct addresses, plus the subset of power-on reset values the core
// applies during CPU.Init. It carries no behavior of its own: every name
// here is just a byte address into internal data's upper half (0x80-0xFF).
package sfr

// Direct addresses of the documented special-function registers. Names
// and addresses are taken from the reference register map; peripherals
// beyond the ones the core gives behavior to (ACC, B, PSW, SP, DPL/DPH,
// PCON, the port latches P0-P3) are included so a loaded program can read
// and write them even though the emulator attaches no clocked behavior.
const (
	ACC  = uint8(0xE0) // Accumulator
	B    = uint8(0xF0) // B register (MUL/DIV operand)
	PSW  = uint8(0xD0) // Program status word
	SP   = uint8(0x81) // Stack pointer
	DPL  = uint8(0x82) // Data pointer low
	DPH  = uint8(0x83) // Data pointer high
	PCON = uint8(0x87) // Power control

	P0 = uint8(0x80) // Port 0 latch
	P1 = uint8(0x90) // Port 1 latch
	P2 = uint8(0xA0) // Port 2 latch
	P3 = uint8(0xB0) // Port 3 latch

	IE = uint8(0xA8) // Interrupt enable
	IP = uint8(0xB8) // Interrupt priority

	TCON  = uint8(0x88) // Timer/counter control
	TMOD  = uint8(0x89) // Timer/counter mode
	TL0   = uint8(0x8A) // Timer/counter 0 low
	TL1   = uint8(0x8B) // Timer/counter 1 low
	TH0   = uint8(0x8C) // Timer/counter 0 high
	TH1   = uint8(0x8D) // Timer/counter 1 high
	CKCON = uint8(0x8E) // Clock control
	PSCTL = uint8(0x8F) // Program store R/W control

	SCON0  = uint8(0x98) // UART0 control
	SBUF0  = uint8(0x99) // UART0 data buffer
	CPT1CN = uint8(0x9A) // Comparator1 control
	CPT0CN = uint8(0x9B) // Comparator0 control
	CPT1MD = uint8(0x9C) // Comparator1 mode selection
	CPT0MD = uint8(0x9D) // Comparator0 mode selection
	CPT1MX = uint8(0x9E) // Comparator1 mux selection
	CPT0MX = uint8(0x9F) // Comparator0 mux selection

	SPI0CFG = uint8(0xA1) // SPI configuration
	SPI0CKR = uint8(0xA2) // SPI clock rate control
	SPI0DAT = uint8(0xA3) // SPI data
	P0MDOUT = uint8(0xA4) // Port 0 output mode configuration
	P1MDOUT = uint8(0xA5) // Port 1 output mode configuration; shares the numeric value of the one reserved opcode, a different address space so this isn't a collision
	P2MDOUT = uint8(0xA6) // Port 2 output mode configuration
	P3MDOUT = uint8(0xA7) // Port 3 output mode configuration
	CLKSEL  = uint8(0xA9) // Clock select
	EMI0CN  = uint8(0xAA) // External memory interface control
	SBCON1  = uint8(0xAC) // UART1 baud rate generator control
	P4MDOUT = uint8(0xAE) // Port 4 output mode configuration
	PFE0CN  = uint8(0xAF) // Prefetch engine control

	AMX0N  = uint8(0xBA) // AMUX0 negative channel select
	AMX0P  = uint8(0xBB) // AMUX0 positive channel select
	ADC0CF = uint8(0xBC) // ADC0 configuration
	ADC0H  = uint8(0xBE) // ADC0 high
	ADC0L  = uint8(0xBD) // ADC0 low
	OSCXCN = uint8(0xB1) // External oscillator control
	OSCICN = uint8(0xB2) // Internal oscillator control
	OSCICL = uint8(0xB3) // Internal oscillator calibration
	SBRLL1 = uint8(0xB4) // UART1 baud rate generator low
	SBRLH1 = uint8(0xB5) // UART1 baud rate generator high
	FLSCL  = uint8(0xB6) // Flash scale
	FLKEY  = uint8(0xB7) // Flash lock and key
	CLKMUL = uint8(0xB9) // Clock multiplier

	ADC0GTL = uint8(0xC3) // ADC0 greater-than compare low
	ADC0GTH = uint8(0xC4) // ADC0 greater-than compare high
	ADC0LTL = uint8(0xC5) // ADC0 less-than compare low
	ADC0LTH = uint8(0xC6) // ADC0 less-than compare high
	P4      = uint8(0xC7) // Port 4 latch
	TMR2CN  = uint8(0xC8) // Timer/counter 2 control
	REG0CN  = uint8(0xC9) // Voltage regulator control
	TMR2RLL = uint8(0xCA) // Timer/counter 2 reload low
	TMR2RLH = uint8(0xCB) // Timer/counter 2 reload high
	TMR2L   = uint8(0xCC) // Timer/counter 2 low
	TMR2H   = uint8(0xCD) // Timer/counter 2 high
	SMB0CN  = uint8(0xC0) // SMBus control
	SMB0CF  = uint8(0xC1) // SMBus configuration
	SMB0DAT = uint8(0xC2) // SMBus data

	REF0CN   = uint8(0xD1) // Voltage reference control
	SCON1    = uint8(0xD2) // UART1 control
	SBUF1    = uint8(0xD3) // UART1 data buffer
	P0SKIP   = uint8(0xD4) // Port 0 skip
	P1SKIP   = uint8(0xD5) // Port 1 skip
	P2SKIP   = uint8(0xD6) // Port 2 skip
	USB0XCN  = uint8(0xD7) // USB0 transceiver control
	PCA0CN   = uint8(0xD8) // PCA control
	PCA0MD   = uint8(0xD9) // PCA mode
	PCA0CPM0 = uint8(0xDA) // PCA module 0 mode
	PCA0CPM1 = uint8(0xDB) // PCA module 1 mode
	PCA0CPM2 = uint8(0xDC) // PCA module 2 mode
	PCA0CPM3 = uint8(0xDD) // PCA module 3 mode
	PCA0CPM4 = uint8(0xDE) // PCA module 4 mode
	P3SKIP   = uint8(0xDF) // Port 3 skip

	EIE1     = uint8(0xE6) // Extended interrupt enable 1
	EIE2     = uint8(0xE7) // Extended interrupt enable 2
	IT01CF   = uint8(0xE4) // INT0/INT1 configuration
	SMOD1    = uint8(0xE5) // UART1 mode
	ADC0CN   = uint8(0xE8) // ADC0 control
	PCA0CPL1 = uint8(0xE9) // PCA capture 1 low
	PCA0CPH1 = uint8(0xEA) // PCA capture 1 high
	PCA0CPL2 = uint8(0xEB) // PCA capture 2 low
	PCA0CPH2 = uint8(0xEC) // PCA capture 2 high
	PCA0CPL3 = uint8(0xED) // PCA capture 3 low
	PCA0CPH3 = uint8(0xEE) // PCA capture 3 high
	RSTSRC   = uint8(0xEF) // Reset source configuration/status

	XBR0 = uint8(0xE1) // Port I/O crossbar control 0
	XBR1 = uint8(0xE2) // Port I/O crossbar control 1
	XBR2 = uint8(0xE3) // Port I/O crossbar control 2

	EIP1     = uint8(0xF6) // Extended interrupt priority 1
	EIP2     = uint8(0xF7) // Extended interrupt priority 2
	P0MDIN   = uint8(0xF1) // Port 0 input mode configuration
	P1MDIN   = uint8(0xF2) // Port 1 input mode configuration
	P2MDIN   = uint8(0xF3) // Port 2 input mode configuration
	P3MDIN   = uint8(0xF4) // Port 3 input mode configuration
	P4MDIN   = uint8(0xF5) // Port 4 input mode configuration
	SPI0CN   = uint8(0xF8) // SPI control
	PCA0L    = uint8(0xF9) // PCA counter low
	PCA0H    = uint8(0xFA) // PCA counter high
	PCA0CPL0 = uint8(0xFB) // PCA capture 0 low
	PCA0CPH0 = uint8(0xFC) // PCA capture 0 high
	PCA0CPL4 = uint8(0xFD) // PCA capture 4 low
	PCA0CPH4 = uint8(0xFE) // PCA capture 4 high
	VDM0CN   = uint8(0xFF) // VDD monitor control

	USB0ADR = uint8(0x96) // USB0 indirect address register
	USB0DAT = uint8(0x97) // USB0 data register

	TMR3CN  = uint8(0x91) // Timer/counter 3 control
	TMR3RLL = uint8(0x92) // Timer/counter 3 reload low
	TMR3RLH = uint8(0x93) // Timer/counter 3 reload high
	TMR3L   = uint8(0x94) // Timer/counter 3 low
	TMR3H   = uint8(0x95) // Timer/counter 3 high

	EMI0CF = uint8(0x85) // External memory interface configuration
	EMI0TC = uint8(0x84) // External memory interface timing
	OSCLCN = uint8(0x86) // Internal low-frequency oscillator control
)

// PCON bits recorded (but not acted on beyond bookkeeping) by the core.
const (
	PCONIdle = uint8(0x01)
	PCONStop = uint8(0x02)
)

// ResetValues returns the direct-address -> value map applied by
// CPU.Init after a program is loaded. Every other SFR powers on to zero,
// which is simply the zero value of the underlying byte array.
func ResetValues() map[uint8]uint8 {
	return map[uint8]uint8{
		ADC0CF:  0xF8,
		ADC0GTH: 0xFF,
		ADC0GTL: 0xFF,
		CPT0MD:  0x02,
		CPT1MD:  0x02,
		SP:      0x07,
		IT01CF:  0x01,
		PFE0CN:  0x20,
		ACC:     0x00,
	}
}
