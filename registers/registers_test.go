package registers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResetInvariants(t *testing.T) {
	f := New()
	assert.True(t, f.E())
	assert.True(t, f.Flag(FlagI))
	assert.False(t, f.Flag(FlagD))
	assert.True(t, f.AccumulatorIs8Bit())
	assert.True(t, f.IndexIs8Bit())
	assert.Equal(t, uint8(0), f.DBR())
	assert.Equal(t, uint8(0), f.PBR())
	assert.Equal(t, uint16(0), f.D())
	assert.Equal(t, uint8(0x01), uint8(f.S()>>8))
}

func TestWriteAWidth(t *testing.T) {
	f := New()
	f.SetA(0x1234)
	f.SetFlag(FlagM)
	f.WriteA(0x00AB)
	assert.Equal(t, uint8(0xAB), f.AL())
	assert.Equal(t, uint8(0x12), f.AH(), "8-bit write must not disturb AH")

	f.ClearFlag(FlagM)
	f.WriteA(0xBEEF)
	assert.Equal(t, uint16(0xBEEF), f.A())
}

func TestWriteXYWidthZeroesHighByte(t *testing.T) {
	f := New()
	f.SetEmulation(false)
	f.ClearFlag(FlagM | FlagX)
	f.WriteX(0x1234)
	assert.Equal(t, uint16(0x1234), f.X())

	f.SetFlag(FlagX)
	f.WriteX(0xABCD)
	assert.Equal(t, uint16(0x00CD), f.X(), "8-bit index write must zero XH")

	f.WriteY(0xFEED)
	assert.Equal(t, uint16(0x00ED), f.Y())
}

func TestSetEmulationForcesInvariants(t *testing.T) {
	f := New()
	f.SetEmulation(false)
	f.ClearFlag(FlagM | FlagX)
	f.SetX(0x1234)
	f.SetY(0x5678)
	f.SetS(0x01FF)

	f.SetEmulation(true)
	assert.True(t, f.Flag(FlagM))
	assert.True(t, f.Flag(FlagX))
	assert.Equal(t, uint8(0), f.XH())
	assert.Equal(t, uint8(0), f.YH())
	assert.Equal(t, uint8(0x01), uint8(f.S()>>8))
}

func TestSetSPinsHighByteInEmulation(t *testing.T) {
	f := New()
	f.SetS(0x03AA)
	assert.Equal(t, uint16(0x01AA), f.S())
}

func TestSetNZWidth(t *testing.T) {
	f := New()
	f.SetNZWidth(0x0080, true)
	assert.True(t, f.Flag(FlagN))
	assert.False(t, f.Flag(FlagZ))

	f.SetNZWidth(0x8000, false)
	assert.True(t, f.Flag(FlagN))

	f.SetNZWidth(0x0000, false)
	assert.True(t, f.Flag(FlagZ))
	assert.False(t, f.Flag(FlagN))
}
