package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wdc65816/core/registers"
)

func TestREPClearsFlags(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM | registers.FlagX | registers.FlagC)
	load(b, 0, 0xC2, registers.FlagM|registers.FlagX) // REP #$30
	assert.NoError(t, p.Step())
	assert.False(t, p.reg.Flag(registers.FlagM))
	assert.False(t, p.reg.Flag(registers.FlagX))
	assert.True(t, p.reg.Flag(registers.FlagC), "unrelated bits untouched")
}

func TestREPReForcesWidthBitsInEmulation(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetEmulation(true)
	load(b, 0, 0xC2, registers.FlagM|registers.FlagX) // REP #$30
	assert.NoError(t, p.Step())
	assert.True(t, p.reg.Flag(registers.FlagM), "emulation mode cannot widen the accumulator")
	assert.True(t, p.reg.Flag(registers.FlagX))
}

func TestSEPSetsFlagsAndTruncatesIndex(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.ClearFlag(registers.FlagX)
	p.reg.SetX(0x1234)
	load(b, 0, 0xE2, registers.FlagX) // SEP #$10
	assert.NoError(t, p.Step())
	assert.True(t, p.reg.Flag(registers.FlagX))
	assert.Equal(t, uint16(0x0034), p.reg.X(), "narrowing X truncates the high byte immediately")
}

func TestPLPReForcesWidthInEmulation(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetEmulation(true)
	p.reg.SetS(0x01FF)
	p.pushByte(0x00) // pulled P with M/X clear
	load(b, 0, 0x28) // PLP
	assert.NoError(t, p.Step())
	assert.True(t, p.reg.Flag(registers.FlagM))
	assert.True(t, p.reg.Flag(registers.FlagX))
}

func TestCLCClearsCarry(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagC)
	load(b, 0, 0x18) // CLC
	assert.NoError(t, p.Step())
	assert.False(t, p.reg.Flag(registers.FlagC))
}
