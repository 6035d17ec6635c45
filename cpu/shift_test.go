package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wdc65816/core/registers"
)

func TestASLAccumulator(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM)
	p.reg.SetA(0x0081)
	load(b, 0, 0x0A) // ASL A
	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0x02), p.reg.AL())
	assert.True(t, p.reg.Flag(registers.FlagC), "bit 7 shifted out")
}

func TestASLMemory(t *testing.T) {
	p, b := newTestChip(t)
	b.Write(0x1000, 0x40)
	load(b, 0, 0x0E, 0x00, 0x10) // ASL $1000
	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0x80), b.Read(0x1000))
	assert.True(t, p.reg.Flag(registers.FlagN))
}

func TestLSRShiftsOutCarry(t *testing.T) {
	p, b := newTestChip(t)
	b.Write(0x1000, 0x01)
	load(b, 0, 0x4E, 0x00, 0x10) // LSR $1000
	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0x00), b.Read(0x1000))
	assert.True(t, p.reg.Flag(registers.FlagC))
	assert.True(t, p.reg.Flag(registers.FlagZ))
}

func TestROLUsesCarryIn(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM | registers.FlagC)
	p.reg.SetA(0x0040)
	load(b, 0, 0x2A) // ROL A
	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0x81), p.reg.AL(), "carry-in shifts into bit 0")
	assert.False(t, p.reg.Flag(registers.FlagC))
}

func TestRORUsesCarryIn(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM | registers.FlagC)
	p.reg.SetA(0x0002)
	load(b, 0, 0x6A) // ROR A
	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0x81), p.reg.AL(), "carry-in shifts into bit 7")
	assert.False(t, p.reg.Flag(registers.FlagC))
}

func TestINCDECAccumulator(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM)
	p.reg.SetA(0x00FF)
	load(b, 0, 0x1A, 0x3A) // INC A; DEC A
	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0x00), p.reg.AL())
	assert.True(t, p.reg.Flag(registers.FlagZ))
	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0xFF), p.reg.AL())
	assert.True(t, p.reg.Flag(registers.FlagN))
}

func TestINXIndexWidth(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagX)
	p.reg.SetX(0x00FF)
	load(b, 0, 0xE8) // INX
	assert.NoError(t, p.Step())
	assert.Equal(t, uint16(0x0000), p.reg.X(), "8-bit index wraps and stays zero-extended")
	assert.True(t, p.reg.Flag(registers.FlagZ))
}

func TestINYWrapsAt16BitIndexWidth(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.ClearFlag(registers.FlagX)
	p.reg.SetY(0xFFFF)
	load(b, 0, 0xC8) // INY
	assert.NoError(t, p.Step())
	assert.Equal(t, uint16(0x0000), p.reg.Y())
}
