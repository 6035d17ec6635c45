package cpu

import "github.com/wdc65816/core/addrmode"

// doLoad resolves mode for a load access at the width selected by is8,
// writes the result through write (which applies the destination
// register's own width truncation), and sets N/Z from the value
// actually fetched.
func (p *Chip) doLoad(mode addrmode.Mode, is8 bool, write func(uint16)) error {
	v, err := p.loadOperand(mode, !is8)
	if err != nil {
		return err
	}
	write(v)
	p.reg.SetNZWidth(v, is8)
	return nil
}

// doStore resolves mode for a store access and writes val at width.
func (p *Chip) doStore(mode addrmode.Mode, wide bool, val uint16) error {
	res, err := p.resolve(mode, addrmode.Store, wide)
	if err != nil {
		return err
	}
	p.storeWidth(res, val, wide)
	return nil
}

func opLDA(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		return p.doLoad(mode, p.reg.AccumulatorIs8Bit(), p.reg.WriteA)
	}
}

func opLDX(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		return p.doLoad(mode, p.reg.IndexIs8Bit(), p.reg.WriteX)
	}
}

func opLDY(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		return p.doLoad(mode, p.reg.IndexIs8Bit(), p.reg.WriteY)
	}
}

func opSTA(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		wide := !p.reg.AccumulatorIs8Bit()
		return p.doStore(mode, wide, p.reg.A())
	}
}

func opSTX(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		wide := !p.reg.IndexIs8Bit()
		return p.doStore(mode, wide, p.reg.X())
	}
}

func opSTY(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		wide := !p.reg.IndexIs8Bit()
		return p.doStore(mode, wide, p.reg.Y())
	}
}

func opSTZ(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		wide := !p.reg.AccumulatorIs8Bit()
		return p.doStore(mode, wide, 0)
	}
}
