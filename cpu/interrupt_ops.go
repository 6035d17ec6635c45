package cpu

import "github.com/wdc65816/core/registers"

// opBRK and opCOP each consume a signature byte (the byte conventions
// reserve for a software-assigned break/coprocessor number that this
// core does not interpret) before entering the shared interrupt-entry
// sequence.
func opBRK(p *Chip) error {
	p.FetchOperand()
	return p.runInterrupt(SourceBRK)
}

func opCOP(p *Chip) error {
	p.FetchOperand()
	return p.runInterrupt(SourceCOP)
}

// opRTI pulls P, then PC, then (in native mode only) PBR, reversing
// runInterrupt's push order.
func opRTI(p *Chip) error {
	p.Internal()
	pulled := p.pullByte()
	if p.reg.E() {
		pulled |= registers.FlagM | registers.FlagX
	}
	p.reg.SetP(pulled)
	p.truncateIndexIf8Bit()
	lo := p.pullByte()
	hi := p.pullByte()
	pc := uint16(lo) | uint16(hi)<<8
	if !p.reg.E() {
		bank := p.pullByte()
		p.reg.SetPBR(bank)
	}
	p.reg.SetPC(pc)
	return nil
}
