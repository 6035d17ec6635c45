package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wdc65816/core/registers"
)

func TestANDMasksAccumulator(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM)
	p.reg.SetA(0x00FF)
	load(b, 0, 0x29, 0x0F) // AND #$0F
	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0x0F), p.reg.AL())
	assert.False(t, p.reg.Flag(registers.FlagZ))
}

func TestORASetsZero(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM)
	p.reg.SetA(0x0000)
	load(b, 0, 0x09, 0x00) // ORA #$00
	assert.NoError(t, p.Step())
	assert.True(t, p.reg.Flag(registers.FlagZ))
}

func TestEORFlipsBits(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM)
	p.reg.SetA(0x00FF)
	load(b, 0, 0x49, 0xFF) // EOR #$FF
	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0x00), p.reg.AL())
	assert.True(t, p.reg.Flag(registers.FlagZ))
}

func TestBITAbsoluteCopiesNAndV(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM)
	p.reg.SetA(0x0001)
	b.Write(0x1000, 0xC0) // N and V bits set in memory operand
	load(b, 0, 0x2C, 0x00, 0x10) // BIT $1000
	assert.NoError(t, p.Step())
	assert.True(t, p.reg.Flag(registers.FlagN))
	assert.True(t, p.reg.Flag(registers.FlagV))
	assert.True(t, p.reg.Flag(registers.FlagZ), "A&operand is 0")
}

func TestBITImmediateOnlyAffectsZero(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM)
	p.reg.SetA(0x0001)
	p.reg.SetFlag(registers.FlagN | registers.FlagV)
	load(b, 0, 0x89, 0xC0) // BIT #$C0
	assert.NoError(t, p.Step())
	assert.True(t, p.reg.Flag(registers.FlagN), "immediate BIT must not touch N")
	assert.True(t, p.reg.Flag(registers.FlagV), "immediate BIT must not touch V")
	assert.True(t, p.reg.Flag(registers.FlagZ))
}

func TestTRBClearsBitsAndTestsPreValue(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM)
	p.reg.SetA(0x000F)
	b.Write(0x1000, 0x0F)
	load(b, 0, 0x1C, 0x00, 0x10) // TRB $1000
	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0x00), b.Read(0x1000))
	assert.False(t, p.reg.Flag(registers.FlagZ), "pre-value 0x0F & A 0x0F is nonzero")
}

func TestTSBSetsBitsAndTestsPreValue(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM)
	p.reg.SetA(0x000F)
	b.Write(0x1000, 0xF0)
	load(b, 0, 0x0C, 0x00, 0x10) // TSB $1000
	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0xFF), b.Read(0x1000))
	assert.True(t, p.reg.Flag(registers.FlagZ), "pre-value 0xF0 & A 0x0F is 0")
}
