package cpu

import (
	"testing"

	"github.com/wdc65816/core/bus"
)

// newTestChip returns a Chip in native mode with a fresh flat bus,
// ready for a test to poke opcodes into memory at PC=0 and Step
// through them. Tests needing emulation-mode behavior flip E back on
// after this returns.
func newTestChip(t *testing.T) (*Chip, *bus.Flat) {
	t.Helper()
	b := bus.NewFlat()
	p, err := Init(Def{Bus: b})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	p.reg.SetEmulation(false)
	p.reg.SetPC(0)
	p.reg.SetPBR(0)
	p.reg.SetDBR(0)
	return p, b
}

// load writes opcode bytes at bank 0 starting at addr.
func load(b *bus.Flat, addr uint16, bytes ...uint8) {
	b.Load(bus.NewAddr24(0, addr), bytes)
}
