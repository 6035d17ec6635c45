package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wdc65816/core/registers"
)

func TestXBASwapsBytesUnconditionally(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetFlag(registers.FlagM)
	p.reg.SetA(0x1234)
	load(b, 0, 0xEB) // XBA
	assert.NoError(t, p.Step())
	assert.Equal(t, uint16(0x3412), p.reg.A())
	assert.False(t, p.reg.Flag(registers.FlagZ))
}

func TestXCETogglesEmulationFromCarry(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.SetEmulation(true)
	p.reg.ClearFlag(registers.FlagC) // CLC; XCE is the idiom for entering native mode
	load(b, 0, 0xFB)                 // XCE
	assert.NoError(t, p.Step())
	assert.False(t, p.reg.E(), "clearing carry before XCE switches to native mode")
	assert.True(t, p.reg.Flag(registers.FlagC), "old emulation bit (1) becomes the new carry")
}

func TestSTPHaltsCore(t *testing.T) {
	p, b := newTestChip(t)
	load(b, 0, 0xDB) // STP
	assert.NoError(t, p.Step())
	assert.True(t, p.Stopped())
	assert.NoError(t, p.Step(), "stepping a stopped core is a benign no-op")
}

func TestWAISuspendsUntilInterrupt(t *testing.T) {
	p, b := newTestChip(t)
	p.reg.ClearFlag(registers.FlagI)
	load(b, 0, 0xCB) // WAI
	assert.NoError(t, p.Step())
	assert.True(t, p.Waiting())

	p.AssertIRQ()
	assert.NoError(t, p.Step())
	assert.False(t, p.Waiting(), "a pending IRQ releases WAI")
}
