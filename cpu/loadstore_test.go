package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wdc65816/core/registers"
)

func TestLDAImmediate8Bit(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM)
	p.reg.SetA(0x1234)
	load(b, 0, 0xA9, 0x00) // LDA #$00
	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0x00), p.reg.AL())
	assert.Equal(t, uint8(0x12), p.reg.AH(), "8-bit load leaves AH untouched")
	assert.True(t, p.reg.Flag(registers.FlagZ))
}

func TestLDAImmediate16Bit(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.ClearFlag(registers.FlagM)
	load(b, 0, 0xA9, 0xCD, 0xAB) // LDA #$ABCD
	assert.NoError(t, p.Step())
	assert.Equal(t, uint16(0xABCD), p.reg.A())
	assert.True(t, p.reg.Flag(registers.FlagN))
}

func TestSTAAbsolute(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM)
	p.reg.SetA(0x0042)
	load(b, 0, 0x8D, 0x00, 0x30) // STA $3000
	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0x42), b.Read(0x3000))
}

func TestSTZWritesZeroRegardlessOfAccumulator(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM)
	p.reg.SetA(0x00FF)
	b.Write(0x3000, 0xFF)
	load(b, 0, 0x9C, 0x00, 0x30) // STZ $3000
	assert.NoError(t, p.Step())
	assert.Equal(t, uint8(0x00), b.Read(0x3000))
}

func TestLDXLDYRespectIndexWidth(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.ClearFlag(registers.FlagX)
	load(b, 0, 0xA2, 0x34, 0x12, 0xA0, 0x78, 0x56) // LDX #$1234; LDY #$5678
	assert.NoError(t, p.Step())
	assert.Equal(t, uint16(0x1234), p.reg.X())
	assert.NoError(t, p.Step())
	assert.Equal(t, uint16(0x5678), p.reg.Y())
}
