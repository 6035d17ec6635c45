package cpu

import (
	"github.com/wdc65816/core/bus"
	"github.com/wdc65816/core/registers"
)

// Source identifies which interrupt sequence the controller is
// running, used both to pick a vector and to decide BRK/emulation-mode
// break-flag handling (§4.4).
type Source int

const (
	SourceReset Source = iota
	SourceNMI
	SourceIRQ
	SourceBRK
	SourceCOP
)

func (s Source) String() string {
	switch s {
	case SourceReset:
		return "RESET"
	case SourceNMI:
		return "NMI"
	case SourceIRQ:
		return "IRQ"
	case SourceBRK:
		return "BRK"
	case SourceCOP:
		return "COP"
	}
	return "UNKNOWN"
}

// Interrupt vectors, fixed 24-bit addresses in bank 0 (§3).
const (
	VectorNativeCOP     = bus.Addr24(0x00FFE4)
	VectorNativeBRK     = bus.Addr24(0x00FFE6)
	VectorNativeAbort   = bus.Addr24(0x00FFE8)
	VectorNativeNMI     = bus.Addr24(0x00FFEA)
	VectorNativeIRQ     = bus.Addr24(0x00FFEE)
	VectorEmulationCOP  = bus.Addr24(0x00FFF4)
	VectorEmulationAbort = bus.Addr24(0x00FFF8)
	VectorEmulationNMI  = bus.Addr24(0x00FFFA)
	VectorReset         = bus.Addr24(0x00FFFC)
	VectorEmulationIRQ  = bus.Addr24(0x00FFFE)
)

// vectorFor selects the interrupt vector per §3/§4.4. In emulation mode
// BRK shares the IRQ vector; native mode has a separate BRK vector. COP
// has its own vector in each mode; reset has a single vector regardless
// of mode.
func vectorFor(native bool, src Source) (bus.Addr24, error) {
	if src == SourceReset {
		return VectorReset, nil
	}
	if native {
		switch src {
		case SourceNMI:
			return VectorNativeNMI, nil
		case SourceIRQ:
			return VectorNativeIRQ, nil
		case SourceBRK:
			return VectorNativeBRK, nil
		case SourceCOP:
			return VectorNativeCOP, nil
		}
	} else {
		switch src {
		case SourceNMI:
			return VectorEmulationNMI, nil
		case SourceIRQ, SourceBRK:
			return VectorEmulationIRQ, nil
		case SourceCOP:
			return VectorEmulationCOP, nil
		}
	}
	return 0, InvalidInterruptSelection{Source: src, Native: native}
}

// doReset performs the reset sequence of §4.4: a fresh instance plus
// loading PC from the reset vector.
func (p *Chip) doReset() {
	p.cycles = 0
	p.reg.Reset()
	p.stopped = false
	p.waiting = false
	vec, _ := vectorFor(true, SourceReset)
	lo := p.Read(vec)
	hi := p.Read(vec + 1)
	p.reg.SetPC(uint16(lo) | uint16(hi)<<8)
	p.reg.SetPBR(0)
}

// runInterrupt performs the interrupt-entry sequence of §4.4 for NMI,
// IRQ, BRK, and COP (reset is handled separately by doReset since it
// doesn't push anything). For BRK/COP the caller has already advanced
// PC past the signature byte before calling this, so the pushed return
// address is correct in both cases.
func (p *Chip) runInterrupt(src Source) error {
	p.Internal()
	p.Internal()
	native := !p.reg.E()
	if native {
		p.pushByte(p.reg.PBR())
	}
	p.pushByte(uint8(p.reg.PC() >> 8))
	p.pushByte(uint8(p.reg.PC()))

	push := p.reg.P()
	if !native {
		if src == SourceBRK {
			push |= registers.FlagB
		} else {
			push &^= registers.FlagB
		}
	}
	p.pushByte(push)

	p.reg.SetFlag(registers.FlagI)
	p.reg.ClearFlag(registers.FlagD)

	vec, err := vectorFor(native, src)
	if err != nil {
		return err
	}
	lo := p.Read(vec)
	hi := p.Read(vec + 1)
	p.reg.SetPC(uint16(lo) | uint16(hi)<<8)
	p.reg.SetPBR(0)
	return nil
}

// checkInterrupts implements the §4.4 priority order evaluated at
// every instruction boundary. It returns true if it consumed this
// instruction slot (reset, a vectored interrupt, or remaining in the
// wait state) so the caller should not also fetch/execute an opcode.
func (p *Chip) checkInterrupts() (bool, error) {
	if p.resetLine.Raised() {
		p.doReset()
		return true, nil
	}
	if p.nmiLine.Raised() {
		p.waiting = false
		if err := p.runInterrupt(SourceNMI); err != nil {
			return true, err
		}
		return true, nil
	}
	if p.irqLine.Raised() && !p.reg.Flag(registers.FlagI) {
		p.waiting = false
		if err := p.runInterrupt(SourceIRQ); err != nil {
			return true, err
		}
		return true, nil
	}
	if p.irqLine.Raised() && p.reg.Flag(registers.FlagI) && p.waiting {
		p.waiting = false
		return true, nil
	}
	if p.waiting {
		return true, nil
	}
	return false, nil
}
