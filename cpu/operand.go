package cpu

import (
	"github.com/wdc65816/core/addrmode"
	"github.com/wdc65816/core/bus"
)

// opcodeFunc implements one opcode's full semantics given the already
// fetched opcode byte; it is responsible for resolving its own
// addressing mode (via p.resolve) when it has one, since not every
// mnemonic fits a uniform load/store/RMW shape (branches, stack ops,
// block moves, and control transfers all resolve their own operands).
type opcodeFunc func(p *Chip) error

// opcodeEntry pairs a mnemonic and addressing mode (used by trace and
// documentation, e.g. the §6 status-snapshot / disassembly tooling)
// with its executor.
type opcodeEntry struct {
	mnemonic string
	mode     addrmode.Mode
	exec     opcodeFunc
}

// nextByteAddr returns the address of the byte following addr,
// wrapping within the same bank - multi-byte memory operands never
// cross a bank boundary on real hardware.
func nextByteAddr(addr bus.Addr24) bus.Addr24 {
	return bus.NewAddr24(addr.Bank(), addr.Offset()+1)
}

// loadWidth reads an operand at the width selected by wide (8 vs 16
// bit), either from the resolved Result directly (Immediate) or from
// memory.
func (p *Chip) loadWidth(res addrmode.Result, wide bool) uint16 {
	if res.Immediate {
		return res.Value
	}
	lo := p.Read(res.Addr)
	if !wide {
		return uint16(lo)
	}
	hi := p.Read(nextByteAddr(res.Addr))
	return uint16(lo) | uint16(hi)<<8
}

// storeWidth writes val to the resolved memory operand at the given
// width. Immediate results are never passed here (stores never target
// immediate mode).
func (p *Chip) storeWidth(res addrmode.Result, val uint16, wide bool) {
	p.Write(res.Addr, uint8(val))
	if wide {
		p.Write(nextByteAddr(res.Addr), uint8(val>>8))
	}
}

// rmwWidth implements the read-modify-write cycle shape shared by
// ASL/LSR/ROL/ROR/INC/DEC/TRB/TSB on a memory operand: read the old
// value, spend the modify-step internal cycle required by §4.3, call
// fn to compute the new value, then write it back.
func (p *Chip) rmwWidth(res addrmode.Result, wide bool, fn func(old uint16) uint16) (old, new uint16) {
	old = p.loadWidth(res, wide)
	p.Internal()
	new = fn(old)
	p.storeWidth(res, new, wide)
	return old, new
}

// loadOperand resolves mode for a load-style access (arithmetic,
// logic, compare, or a plain load) and returns the fetched value at
// the given width.
func (p *Chip) loadOperand(mode addrmode.Mode, wide bool) (uint16, error) {
	res, err := p.resolve(mode, addrmode.Load, wide)
	if err != nil {
		return 0, err
	}
	return p.loadWidth(res, wide), nil
}

// setNZAcc, setNZX, and setNZY set N/Z from the current value of A, X,
// or Y at that register's own width predicate, reading only the
// width's own byte(s) so a stale high byte left over from a prior
// 16-bit value never leaks into the flags while the register is
// narrowed to 8 bits.
func (p *Chip) setNZAcc() {
	if p.reg.AccumulatorIs8Bit() {
		p.reg.SetNZ8(p.reg.AL())
		return
	}
	p.reg.SetNZ16(p.reg.A())
}

func (p *Chip) setNZX() {
	if p.reg.IndexIs8Bit() {
		p.reg.SetNZ8(p.reg.XL())
		return
	}
	p.reg.SetNZ16(p.reg.X())
}

func (p *Chip) setNZY() {
	if p.reg.IndexIs8Bit() {
		p.reg.SetNZ8(p.reg.YL())
		return
	}
	p.reg.SetNZ16(p.reg.Y())
}

// truncateIndexIf8Bit zeroes XH/YH immediately after a flag change that
// may have just narrowed the index width - real hardware does this the
// instant X becomes 1, not lazily on next use.
func (p *Chip) truncateIndexIf8Bit() {
	if p.reg.IndexIs8Bit() {
		p.reg.SetX(uint16(p.reg.XL()))
		p.reg.SetY(uint16(p.reg.YL()))
	}
}
