// Package registers implements the W65C816S register file and mode
// state: the accumulator, index registers, direct page, stack
// pointer, bank registers, program counter, status register, and the
// emulation flag. All operations are total; register state never
// fails to update (see cpu.InvalidCPUState for the separate class of
// decode/control errors that can occur above this layer).
package registers

// Flag bits within the status register P. Bit 4 is the index-width
// flag X in native mode and the break flag B in emulation mode; bit 5
// is the accumulator-width flag M. Naming follows the teacher's
// P_NEGATIVE/P_OVERFLOW/... convention from the 6502 core.
const (
	FlagC = uint8(0x01) // Carry
	FlagZ = uint8(0x02) // Zero
	FlagI = uint8(0x04) // IRQ disable
	FlagD = uint8(0x08) // Decimal mode
	FlagX = uint8(0x10) // Index width (native) / Break (emulation)
	FlagB = FlagX
	FlagM = uint8(0x20) // Accumulator width
	FlagV = uint8(0x40) // Overflow
	FlagN = uint8(0x80) // Negative
)

// File holds the complete W65C816S register set and the emulation
// mode bit. It is the process-wide single instance referenced by the
// rest of the core.
type File struct {
	a   uint16 // Accumulator (AL/AH)
	x   uint16 // X index register
	y   uint16 // Y index register
	d   uint16 // Direct page register
	s   uint16 // Stack pointer
	dbr uint8  // Data bank register
	pbr uint8  // Program bank register
	pc  uint16 // Program counter
	p   uint8  // Status register
	e   bool   // Emulation mode flag (not memory mapped)
	md  uint8  // Last bus datum read or written (open-bus buffer)
}

// New returns a File in the state it would be in immediately after the
// reset sequence, with PC left at zero (the caller, normally the
// interrupt controller, loads PC from the reset vector separately).
func New() *File {
	f := &File{}
	f.Reset()
	return f
}

// Reset applies the register-visible effects of §3's reset invariants
// other than loading PC (which requires a bus read the caller performs
// separately via the interrupt controller): E=1, D=0, I=1, M=X=1,
// DB=0, PB=0, DP=0, SP high byte=0x01. A, X, Y are left as-is (reset
// does not clear them).
func (f *File) Reset() {
	f.e = true
	f.p = FlagI | FlagM | FlagX
	f.dbr = 0
	f.pbr = 0
	f.d = 0
	f.s = (f.s & 0x00FF) | 0x0100
}

// --- Accumulator ---

// A returns the full 16-bit accumulator regardless of width.
func (f *File) A() uint16 { return f.a }

// SetA sets the full 16-bit accumulator directly, bypassing the M
// width predicate. Used for register transfers that always move 16
// bits (e.g. TCD) and internal setup; ordinary arithmetic/load opcodes
// should use WriteA instead.
func (f *File) SetA(v uint16) { f.a = v }

// AL returns the low byte of the accumulator.
func (f *File) AL() uint8 { return uint8(f.a) }

// SetAL sets the low byte of the accumulator, leaving AH untouched.
func (f *File) SetAL(v uint8) { f.a = (f.a &^ 0x00FF) | uint16(v) }

// AH returns the high byte of the accumulator.
func (f *File) AH() uint8 { return uint8(f.a >> 8) }

// SetAH sets the high byte of the accumulator, leaving AL untouched.
// Only XBA writes AH directly; normal 8-bit-width writes must never
// touch it.
func (f *File) SetAH(v uint8) { f.a = (f.a & 0x00FF) | (uint16(v) << 8) }

// WriteA stores val into A respecting the current accumulator width:
// at 8-bit width only AL is replaced and AH is left unchanged; at
// 16-bit width the full register is replaced.
func (f *File) WriteA(val uint16) {
	if f.AccumulatorIs8Bit() {
		f.SetAL(uint8(val))
		return
	}
	f.a = val
}

// --- X index register ---

func (f *File) X() uint16     { return f.x }
func (f *File) SetX(v uint16) { f.x = v }
func (f *File) XL() uint8     { return uint8(f.x) }
func (f *File) XH() uint8     { return uint8(f.x >> 8) }

// WriteX stores val into X respecting the current index width: at
// 8-bit width (E=1 or X=1) the high byte is forced to zero.
func (f *File) WriteX(val uint16) {
	if f.IndexIs8Bit() {
		f.x = uint16(uint8(val))
		return
	}
	f.x = val
}

// --- Y index register ---

func (f *File) Y() uint16     { return f.y }
func (f *File) SetY(v uint16) { f.y = v }
func (f *File) YL() uint8     { return uint8(f.y) }
func (f *File) YH() uint8     { return uint8(f.y >> 8) }

// WriteY stores val into Y respecting the current index width, as
// WriteX does for X.
func (f *File) WriteY(val uint16) {
	if f.IndexIs8Bit() {
		f.y = uint16(uint8(val))
		return
	}
	f.y = val
}

// --- Direct page, stack, banks, PC ---

// D returns the 16-bit direct-page register.
func (f *File) D() uint16 { return f.d }

// SetD sets the direct-page register.
func (f *File) SetD(v uint16) { f.d = v }

// DL returns the low byte of the direct-page register, which controls
// whether direct-mode addressing incurs an extra cycle (§4.2).
func (f *File) DL() uint8 { return uint8(f.d) }

// S returns the 16-bit stack pointer.
func (f *File) S() uint16 { return f.s }

// SetS sets the stack pointer. In emulation mode the high byte is
// always pinned to 0x01 (§3), so every write - not just pushes/pulls -
// enforces the pin here rather than relying on callers to remember.
func (f *File) SetS(v uint16) {
	if f.e {
		v = (v & 0x00FF) | 0x0100
		f.s = v
		return
	}
	f.s = v
}

// DBR returns the 8-bit data bank register.
func (f *File) DBR() uint8 { return f.dbr }

// SetDBR sets the data bank register.
func (f *File) SetDBR(v uint8) { f.dbr = v }

// PBR returns the 8-bit program bank register.
func (f *File) PBR() uint8 { return f.pbr }

// SetPBR sets the program bank register.
func (f *File) SetPBR(v uint8) { f.pbr = v }

// PC returns the 16-bit program counter.
func (f *File) PC() uint16 { return f.pc }

// SetPC sets the program counter.
func (f *File) SetPC(v uint16) { f.pc = v }

// IncPC advances PC by n, wrapping within the current program bank.
func (f *File) IncPC(n uint16) { f.pc += n }

// --- Status register and emulation flag ---

// P returns the raw 8-bit status register.
func (f *File) P() uint8 { return f.p }

// SetP replaces the raw status register wholesale. Callers responsible
// for mode-specific masking (SEP/REP emulation masking, PLP/RTI
// emulation-mode forcing) must apply it before calling SetP; this
// method itself performs no masking so it can also be used internally
// by reset/power-on paths that need to set an exact bit pattern.
func (f *File) SetP(v uint8) { f.p = v }

// Flag reports whether every bit in mask is set in P.
func (f *File) Flag(mask uint8) bool { return f.p&mask == mask }

// SetFlag sets the given bits in P.
func (f *File) SetFlag(mask uint8) { f.p |= mask }

// ClearFlag clears the given bits in P.
func (f *File) ClearFlag(mask uint8) { f.p &^= mask }

// AssignFlag sets or clears mask in P according to set.
func (f *File) AssignFlag(mask uint8, set bool) {
	if set {
		f.SetFlag(mask)
		return
	}
	f.ClearFlag(mask)
}

// E returns the emulation-mode flag.
func (f *File) E() bool { return f.e }

// AccumulatorIs8Bit reports whether accumulator operations use the
// 8-bit width (the M status bit).
func (f *File) AccumulatorIs8Bit() bool { return f.Flag(FlagM) }

// IndexIs8Bit reports whether index-register operations use the
// 8-bit width: true whenever in emulation mode or the native X bit is
// set.
func (f *File) IndexIs8Bit() bool { return f.e || f.Flag(FlagX) }

// SetEmulation implements the mode-transition operation from §4.1: on
// transition to emulation it forces M and X, zeroes XH/YH, and pins
// SH to 0x01. Transitioning out of emulation leaves M/X/the index
// registers untouched (native mode starts wide only if software clears
// M/X itself via REP).
func (f *File) SetEmulation(e bool) {
	f.e = e
	if e {
		f.SetFlag(FlagM | FlagX)
		f.x = uint16(f.XL())
		f.y = uint16(f.YL())
		f.SetS(f.s)
	}
}

// MD returns the last byte read or written on the bus. On an unmapped
// read a Bus is free to return anything; the core always updates MD on
// every access, so code that wants open-bus semantics for a read it
// chooses not to forward can simply not update MD and let the
// previous value stand.
func (f *File) MD() uint8 { return f.md }

// SetMD records a new bus datum.
func (f *File) SetMD(v uint8) { f.md = v }

// SetNZ8 sets N and Z from an 8-bit result: N is the result's high
// bit, Z is whether the result is zero.
func (f *File) SetNZ8(v uint8) {
	f.AssignFlag(FlagZ, v == 0)
	f.AssignFlag(FlagN, v&0x80 != 0)
}

// SetNZ16 sets N and Z from a 16-bit result.
func (f *File) SetNZ16(v uint16) {
	f.AssignFlag(FlagZ, v == 0)
	f.AssignFlag(FlagN, v&0x8000 != 0)
}

// SetNZWidth sets N and Z from v, truncated to 8 or 16 bits according
// to is8Bit (the caller supplies AccumulatorIs8Bit() or
// IndexIs8Bit() depending on which unit produced v).
func (f *File) SetNZWidth(v uint16, is8Bit bool) {
	if is8Bit {
		f.SetNZ8(uint8(v))
		return
	}
	f.SetNZ16(v)
}
