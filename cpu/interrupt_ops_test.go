package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wdc65816/core/bus"
	"github.com/wdc65816/core/registers"
)

func TestBRKVectorsAndSetsBreakInEmulation(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetEmulation(true)
	p.reg.SetS(0x01FF)
	b.Write(VectorEmulationIRQ, 0x00)
	b.Write(VectorEmulationIRQ+1, 0x50)
	load(b, 0, 0x00, 0xEA) // BRK <signature>
	assert.NoError(t, p.Step())
	assert.Equal(t, uint16(0x5000), p.reg.PC())
	assert.True(t, p.reg.Flag(registers.FlagI))
	pushedP := b.Read(bus.NewAddr24(0, 0x01FD))
	assert.NotEqual(t, uint8(0), pushedP&registers.FlagB, "BRK sets the pushed break flag in emulation mode")
}

func TestCOPVectorsNative(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetEmulation(false)
	p.reg.SetS(0x01FF)
	b.Write(VectorNativeCOP, 0x00)
	b.Write(VectorNativeCOP+1, 0x60)
	load(b, 0, 0x02, 0x00) // COP <signature>
	assert.NoError(t, p.Step())
	assert.Equal(t, uint16(0x6000), p.reg.PC())
	assert.Equal(t, uint8(0x00), p.reg.PBR())
}

func TestRTIRestoresStateAndForcesEmulationFlags(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetEmulation(true)
	p.reg.SetS(0x01FF)
	b.Write(VectorEmulationIRQ, 0x00)
	b.Write(VectorEmulationIRQ+1, 0x50)
	load(b, 0, 0x00, 0xEA) // BRK
	load(b, 0x5000, 0x40)  // RTI
	assert.NoError(t, p.Step()) // BRK
	assert.NoError(t, p.Step()) // RTI
	assert.Equal(t, uint16(0x0002), p.reg.PC())
	assert.True(t, p.reg.Flag(registers.FlagM))
	assert.True(t, p.reg.Flag(registers.FlagX))
}
