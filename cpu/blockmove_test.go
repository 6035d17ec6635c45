package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wdc65816/core/bus"
	"github.com/wdc65816/core/registers"
)

func TestMVNCopiesOneByteAndRepeats(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.ClearFlag(registers.FlagX)
	p.reg.SetA(0x0001) // two bytes to move
	p.reg.SetX(0x2000)
	p.reg.SetY(0x3000)
	b.Write(bus.NewAddr24(0x01, 0x2000), 0xAA)
	b.Write(bus.NewAddr24(0x01, 0x2001), 0xBB)
	load(b, 0, 0x54, 0x02, 0x01) // MVN src=1 dest=2

	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0xAA), b.Read(bus.NewAddr24(0x02, 0x3000)))
	assert.Equal(t, uint16(0x2001), p.reg.X())
	assert.Equal(t, uint16(0x3001), p.reg.Y())
	assert.Equal(t, uint16(0x0000), p.reg.A())
	assert.Equal(t, uint16(0), p.reg.PC(), "instruction rewinds PC while bytes remain")

	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0xBB), b.Read(bus.NewAddr24(0x02, 0x3001)))
	assert.Equal(t, uint16(0xFFFF), p.reg.A())
	assert.Equal(t, uint16(3), p.reg.PC(), "last byte moved: PC finally advances past the instruction")
}

func TestMVPDecrementsIndices(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.ClearFlag(registers.FlagX)
	p.reg.SetA(0x0000) // single byte
	p.reg.SetX(0x2000)
	p.reg.SetY(0x3000)
	b.Write(bus.NewAddr24(0x01, 0x2000), 0x42)
	load(b, 0, 0x44, 0x02, 0x01) // MVP src=1 dest=2

	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0x42), b.Read(bus.NewAddr24(0x02, 0x3000)))
	assert.Equal(t, uint16(0x1FFF), p.reg.X())
	assert.Equal(t, uint16(0x2FFF), p.reg.Y())
	assert.Equal(t, uint16(3), p.reg.PC())
}
