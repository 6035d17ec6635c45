package cpu

import (
	"github.com/wdc65816/core/addrmode"
	"github.com/wdc65816/core/bus"
)

func opJMPAbsolute(p *Chip) error {
	lo := p.FetchOperand()
	hi := p.FetchOperand()
	p.reg.SetPC(uint16(lo) | uint16(hi)<<8)
	return nil
}

func opJMPLong(p *Chip) error {
	lo := p.FetchOperand()
	mid := p.FetchOperand()
	hi := p.FetchOperand()
	p.reg.SetPC(uint16(lo) | uint16(mid)<<8)
	p.reg.SetPBR(hi)
	return nil
}

func opJMPIndirect(p *Chip) error {
	addr := addrmode.ResolveAbsoluteIndirect(p)
	p.reg.SetPC(addr.Offset())
	return nil
}

func opJMPIndirectLong(p *Chip) error {
	addr := addrmode.ResolveAbsoluteIndirectLong(p)
	p.reg.SetPC(addr.Offset())
	p.reg.SetPBR(addr.Bank())
	return nil
}

func opJMPIndirectX(p *Chip) error {
	addr := addrmode.ResolveAbsoluteIndirectX(p)
	p.reg.SetPC(addr.Offset())
	return nil
}

// opJSR pushes the address of the last byte of the instruction (return
// address minus one, per §4.3) before the high operand byte is even
// fetched, matching the real 6-cycle bus sequence.
func opJSR(p *Chip) error {
	lo := p.FetchOperand()
	p.Internal()
	ret := p.reg.PC()
	p.pushByte(uint8(ret >> 8))
	p.pushByte(uint8(ret))
	hi := p.FetchOperand()
	p.reg.SetPC(uint16(lo) | uint16(hi)<<8)
	return nil
}

func opJSL(p *Chip) error {
	lo := p.FetchOperand()
	mid := p.FetchOperand()
	p.pushByte(p.reg.PBR())
	p.Internal()
	hi := p.FetchOperand()
	ret := p.reg.PC() - 1
	p.pushByte(uint8(ret >> 8))
	p.pushByte(uint8(ret))
	p.reg.SetPC(uint16(lo) | uint16(mid)<<8)
	p.reg.SetPBR(hi)
	return nil
}

// opJSR_IndirectX implements JSR (a,X): the return address (the last
// byte of the 3-byte instruction) is pushed before the indirect
// pointer fetch, which uses PBR rather than DBR as its base bank.
func opJSR_IndirectX(p *Chip) error {
	lo := p.FetchOperand()
	hi := p.FetchOperand()
	off := uint16(lo) | uint16(hi)<<8
	ret := p.reg.PC() - 1
	p.pushByte(uint8(ret >> 8))
	p.pushByte(uint8(ret))
	p.Internal()
	bank := p.reg.PBR()
	indexed := off + p.reg.X()
	ptrLo := p.Read(bus.NewAddr24(bank, indexed))
	ptrHi := p.Read(bus.NewAddr24(bank, indexed+1))
	p.reg.SetPC(uint16(ptrLo) | uint16(ptrHi)<<8)
	return nil
}

func opRTS(p *Chip) error {
	p.Internal()
	p.Internal()
	lo := p.pullByte()
	hi := p.pullByte()
	p.reg.SetPC((uint16(lo) | uint16(hi)<<8) + 1)
	p.Internal()
	return nil
}

func opRTL(p *Chip) error {
	p.Internal()
	p.Internal()
	lo := p.pullByte()
	hi := p.pullByte()
	bank := p.pullByte()
	p.reg.SetPC((uint16(lo) | uint16(hi)<<8) + 1)
	p.reg.SetPBR(bank)
	return nil
}
