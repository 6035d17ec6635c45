package cpu

// TAX/TAY/TXA/TYA/TSX/TXS/TXY/TYX respect the destination register's
// own width; TCD/TDC/TCS/TSC always move the full 16 bits regardless
// of the M flag, since D and S do not follow the M width (§4.1). In
// emulation mode SetS still pins SH to 0x01, so TCS/TXS load only SL.

func opTAX(p *Chip) error {
	p.reg.WriteX(p.reg.A())
	p.setNZX()
	p.Internal()
	return nil
}

func opTAY(p *Chip) error {
	p.reg.WriteY(p.reg.A())
	p.setNZY()
	p.Internal()
	return nil
}

func opTXA(p *Chip) error {
	p.reg.WriteA(p.reg.X())
	p.setNZAcc()
	p.Internal()
	return nil
}

func opTYA(p *Chip) error {
	p.reg.WriteA(p.reg.Y())
	p.setNZAcc()
	p.Internal()
	return nil
}

func opTSX(p *Chip) error {
	p.reg.WriteX(p.reg.S())
	p.setNZX()
	p.Internal()
	return nil
}

func opTXS(p *Chip) error {
	p.reg.SetS(p.reg.X())
	p.Internal()
	return nil
}

func opTXY(p *Chip) error {
	p.reg.WriteY(p.reg.X())
	p.setNZY()
	p.Internal()
	return nil
}

func opTYX(p *Chip) error {
	p.reg.WriteX(p.reg.Y())
	p.setNZX()
	p.Internal()
	return nil
}

func opTCD(p *Chip) error {
	p.reg.SetD(p.reg.A())
	p.reg.SetNZ16(p.reg.D())
	p.Internal()
	return nil
}

func opTDC(p *Chip) error {
	p.reg.SetA(p.reg.D())
	p.reg.SetNZ16(p.reg.A())
	p.Internal()
	return nil
}

func opTCS(p *Chip) error {
	p.reg.SetS(p.reg.A())
	p.reg.SetNZ16(p.reg.S())
	p.Internal()
	return nil
}

func opTSC(p *Chip) error {
	p.reg.SetA(p.reg.S())
	p.reg.SetNZ16(p.reg.A())
	p.Internal()
	return nil
}
