package cpu

import (
	"github.com/wdc65816/core/bus"
	"github.com/wdc65816/core/registers"
)

func (p *Chip) pushWidth(v uint16, wide bool) {
	if wide {
		p.pushByte(uint8(v >> 8))
	}
	p.pushByte(uint8(v))
}

func (p *Chip) pullWidth(wide bool) uint16 {
	lo := p.pullByte()
	if !wide {
		return uint16(lo)
	}
	hi := p.pullByte()
	return uint16(lo) | uint16(hi)<<8
}

func opPHA(p *Chip) error {
	p.pushWidth(p.reg.A(), !p.reg.AccumulatorIs8Bit())
	return nil
}

func opPHX(p *Chip) error {
	p.pushWidth(p.reg.X(), !p.reg.IndexIs8Bit())
	return nil
}

func opPHY(p *Chip) error {
	p.pushWidth(p.reg.Y(), !p.reg.IndexIs8Bit())
	return nil
}

func opPHB(p *Chip) error { p.pushByte(p.reg.DBR()); return nil }
func opPHD(p *Chip) error { p.pushWidth(p.reg.D(), true); return nil }
func opPHK(p *Chip) error { p.pushByte(p.reg.PBR()); return nil }
func opPHP(p *Chip) error { p.pushByte(p.reg.P()); return nil }

func opPLA(p *Chip) error {
	p.Internal()
	wide := !p.reg.AccumulatorIs8Bit()
	v := p.pullWidth(wide)
	p.reg.WriteA(v)
	p.setNZAcc()
	return nil
}

func opPLX(p *Chip) error {
	p.Internal()
	wide := !p.reg.IndexIs8Bit()
	v := p.pullWidth(wide)
	p.reg.WriteX(v)
	p.setNZX()
	return nil
}

func opPLY(p *Chip) error {
	p.Internal()
	wide := !p.reg.IndexIs8Bit()
	v := p.pullWidth(wide)
	p.reg.WriteY(v)
	p.setNZY()
	return nil
}

func opPLB(p *Chip) error {
	p.Internal()
	v := p.pullByte()
	p.reg.SetDBR(v)
	p.reg.SetNZ8(v)
	return nil
}

func opPLD(p *Chip) error {
	p.Internal()
	v := p.pullWidth(true)
	p.reg.SetD(v)
	p.reg.SetNZ16(v)
	return nil
}

// opPLP pulls the status register, re-forcing M and X if still in
// emulation mode and truncating the index registers if X just became
// 8-bit, mirroring opSEP/opREP (§4.1).
func opPLP(p *Chip) error {
	p.Internal()
	v := p.pullByte()
	if p.reg.E() {
		v |= registers.FlagM | registers.FlagX
	}
	p.reg.SetP(v)
	p.truncateIndexIf8Bit()
	return nil
}

func opPEA(p *Chip) error {
	lo := p.FetchOperand()
	hi := p.FetchOperand()
	p.pushByte(hi)
	p.pushByte(lo)
	return nil
}

// opPEI pushes the raw 16-bit pointer word stored at the direct-page
// location, not the value it points to - distinct from (d) addressing,
// which dereferences through DBR as well.
func opPEI(p *Chip) error {
	r := p.reg
	dp := p.FetchOperand()
	if r.DL() != 0 {
		p.Internal()
	}
	addr := bus.NewAddr24(0, r.D()+uint16(dp))
	lo := p.Read(addr)
	hi := p.Read(nextByteAddr(addr))
	p.pushByte(hi)
	p.pushByte(lo)
	return nil
}

func opPER(p *Chip) error {
	lo := p.FetchOperand()
	hi := p.FetchOperand()
	offset := int16(uint16(lo) | uint16(hi)<<8)
	p.Internal()
	target := uint16(int32(p.reg.PC()) + int32(offset))
	p.pushByte(uint8(target >> 8))
	p.pushByte(uint8(target))
	return nil
}
