package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/wdc65816/core/bus"
)

func TestJMPAbsolute(t *testing.T) {
	p, b := newTestChip(t)
	load(b, 0, 0x4C, 0x00, 0x20) // JMP $2000
	assert.NoError(t, p.Step())
	assert.Equal(t, uint16(0x2000), p.reg.PC())
}

func TestJSRPushesReturnAddressMinusOne(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetEmulation(false)
	p.reg.SetS(0x01FF)
	load(b, 0, 0x20, 0x00, 0x20) // JSR $2000
	assert.NoError(t, p.Step())
	assert.Equal(t, uint16(0x2000), p.reg.PC())
	hi := b.Read(0x0000 + 0x1FF)
	lo := b.Read(0x0000 + 0x1FE)
	ret := uint16(lo) | uint16(hi)<<8
	assert.Equal(t, uint16(0x0002), ret, "pushed address is the last byte of the 3-byte JSR")
}

func TestJSRRTSRoundTrip(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetEmulation(false)
	p.reg.SetS(0x01FF)
	load(b, 0, 0x20, 0x00, 0x20) // JSR $2000
	load(b, 0x2000, 0x60)       // RTS
	assert.NoError(t, p.Step()) // JSR
	assert.Equal(t, uint16(0x2000), p.reg.PC())
	assert.NoError(t, p.Step()) // RTS
	assert.Equal(t, uint16(0x0003), p.reg.PC())
}

func TestJSLRTLRoundTripAcrossBanks(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetEmulation(false)
	p.reg.SetS(0x01FF)
	p.reg.SetPBR(0x00)
	load(b, 0, 0x22, 0x00, 0x00, 0x01) // JSL $01:0000
	b.Write(bus.NewAddr24(0x01, 0x0000), 0x6B) // RTL
	assert.NoError(t, p.Step())                // JSL
	assert.Equal(t, uint8(0x01), p.reg.PBR())
	assert.Equal(t, uint16(0x0000), p.reg.PC())
	assert.NoError(t, p.Step()) // RTL
	assert.Equal(t, uint8(0x00), p.reg.PBR())
	assert.Equal(t, uint16(0x0004), p.reg.PC(), "RTL resumes at the byte after the 4-byte JSL")
}

func TestJSRIndirectX(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetEmulation(false)
	p.reg.SetS(0x01FF)
	p.reg.SetPBR(0x00)
	p.reg.SetX(0x0002)
	load(b, 0, 0xFC, 0x00, 0x30) // JSR ($3000,X) -> pointer at $3002
	load(b, 0x3002, 0x00, 0x40)
	assert.NoError(t, p.Step())
	if got, want := p.reg.PC(), uint16(0x4000); got != want {
		t.Fatalf("JSR (a,X) landed at wrong PC: got %.4X want %.4X state: %s", got, want, spew.Sdump(p.reg))
	}
}
