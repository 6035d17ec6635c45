package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wdc65816/core/registers"
)

func TestADC8Binary(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM) // 8-bit accumulator
	p.reg.SetA(0x0050)
	load(b, 0, 0x69, 0x10) // ADC #$10
	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0x60), p.reg.AL())
	assert.False(t, p.reg.Flag(registers.FlagC))
	assert.False(t, p.reg.Flag(registers.FlagV))
}

func TestADC8Overflow(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM)
	p.reg.SetA(0x007F)
	load(b, 0, 0x69, 0x01) // ADC #$01, 0x7F+1 overflows into negative
	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0x80), p.reg.AL())
	assert.True(t, p.reg.Flag(registers.FlagV))
	assert.True(t, p.reg.Flag(registers.FlagN))
}

func TestADC8Decimal(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM | registers.FlagD)
	p.reg.SetA(0x0058) // BCD 58
	load(b, 0, 0x69, 0x46) // ADC #$46 (BCD 46) -> 104 decimal -> 0x04 with carry
	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0x04), p.reg.AL())
	assert.True(t, p.reg.Flag(registers.FlagC))
}

func TestADC16Decimal(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.ClearFlag(registers.FlagM)
	p.reg.SetFlag(registers.FlagD)
	p.reg.SetA(0x0999)
	load(b, 0, 0x69, 0x01, 0x00) // ADC #$0001 -> BCD 1000
	assert.NoError(t, p.Step())
	assert.Equal(t, uint16(0x1000), p.reg.A())
	assert.False(t, p.reg.Flag(registers.FlagC))
}

func TestSBC8Binary(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM | registers.FlagC) // carry set = no borrow in
	p.reg.SetA(0x0050)
	load(b, 0, 0xE9, 0x10) // SBC #$10
	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0x40), p.reg.AL())
	assert.True(t, p.reg.Flag(registers.FlagC))
}

func TestSBC8Decimal(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM | registers.FlagD | registers.FlagC)
	p.reg.SetA(0x0050) // BCD 50
	load(b, 0, 0xE9, 0x25) // SBC #$25 (BCD 25) -> BCD 25
	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0x25), p.reg.AL())
	assert.True(t, p.reg.Flag(registers.FlagC))
}

func TestCMPSetsCarryWhenAGreaterOrEqual(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM)
	p.reg.SetA(0x0050)
	load(b, 0, 0xC9, 0x10) // CMP #$10
	assert.NoError(t, p.Step())
	assert.True(t, p.reg.Flag(registers.FlagC))
	assert.False(t, p.reg.Flag(registers.FlagZ))
}

func TestCMPEqualSetsZero(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM)
	p.reg.SetA(0x0042)
	load(b, 0, 0xC9, 0x42)
	assert.NoError(t, p.Step())
	assert.True(t, p.reg.Flag(registers.FlagZ))
	assert.True(t, p.reg.Flag(registers.FlagC))
}

func TestCPXWidthRespected(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagX)
	p.reg.SetX(0x00FF)
	load(b, 0, 0xE0, 0xFF) // CPX #$FF
	assert.NoError(t, p.Step())
	assert.True(t, p.reg.Flag(registers.FlagZ))
}
