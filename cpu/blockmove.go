package cpu

import "github.com/wdc65816/core/bus"

// opMVN and opMVP each move one byte per invocation and rewind PC back
// onto the same instruction when the transfer count (A+1 bytes) is not
// yet exhausted, so Step naturally re-enters the same MVN/MVP until A
// wraps to 0xFFFF - the same "self-repeating instruction" shape real
// hardware uses instead of looping internally over a variable-length
// operand.
func opMVN(p *Chip) error {
	dest := p.FetchOperand()
	src := p.FetchOperand()
	p.reg.SetDBR(dest)
	v := p.Read(bus.NewAddr24(src, p.reg.X()))
	p.Write(bus.NewAddr24(dest, p.reg.Y()), v)
	p.reg.SetX(p.reg.X() + 1)
	p.reg.SetY(p.reg.Y() + 1)
	p.reg.SetA(p.reg.A() - 1)
	p.truncateIndexIf8Bit()
	p.Internal()
	p.Internal()
	if p.reg.A() != 0xFFFF {
		p.reg.SetPC(p.reg.PC() - 3)
	}
	return nil
}

func opMVP(p *Chip) error {
	dest := p.FetchOperand()
	src := p.FetchOperand()
	p.reg.SetDBR(dest)
	v := p.Read(bus.NewAddr24(src, p.reg.X()))
	p.Write(bus.NewAddr24(dest, p.reg.Y()), v)
	p.reg.SetX(p.reg.X() - 1)
	p.reg.SetY(p.reg.Y() - 1)
	p.reg.SetA(p.reg.A() - 1)
	p.truncateIndexIf8Bit()
	p.Internal()
	p.Internal()
	if p.reg.A() != 0xFFFF {
		p.reg.SetPC(p.reg.PC() - 3)
	}
	return nil
}
