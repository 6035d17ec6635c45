// Package cpu implements the W65C816S instruction-execution core: the
// fetch-decode-execute loop, the 91 opcode behaviors, and the
// interrupt/reset/stop/wait control flow, built on top of the
// registers and addrmode packages. It follows the shape of the
// teacher jmchacon/6502 NMOS/CMOS 6502 core (a Chip struct driven by a
// clock, an opcode-byte dispatch table, exported InvalidCPUState-style
// error types) generalized to the W65C816S's native/emulation modes,
// 24-bit addressing, and larger opcode set.
package cpu

import (
	"context"
	"sync"

	"github.com/wdc65816/core/addrmode"
	"github.com/wdc65816/core/bus"
	"github.com/wdc65816/core/registers"
	"github.com/wdc65816/core/signal"
)

// Chip is a W65C816S core instance.
type Chip struct {
	mu sync.Mutex

	reg   *registers.File
	bus   bus.Bus
	clock Clock

	cycles uint64

	resetLine signal.Edge
	nmiLine   signal.Edge
	irqLine   signal.Latch

	waiting bool
	stopped bool
	haltErr error

	running bool
	cancel  context.CancelFunc
	runCtx  context.Context
	wg      sync.WaitGroup
}

// Def configures a new Chip. Bus is the only required field; Clock
// defaults to FreeRunClock if nil.
type Def struct {
	Bus   bus.Bus
	Clock Clock
}

// Init constructs a Chip in its post-reset state (§3 Invariants,
// "After reset"), with PC loaded from the reset vector already read
// off Bus.
func Init(d Def) (*Chip, error) {
	if d.Bus == nil {
		return nil, InvalidCPUState{Reason: "Init: Bus is required"}
	}
	p := &Chip{
		reg:    registers.New(),
		bus:    d.Bus,
		clock:  d.Clock,
		runCtx: context.Background(),
	}
	if p.clock == nil {
		p.clock = FreeRunClock{}
	}
	p.doReset()
	return p, nil
}

// Reg returns the register file. Implements addrmode.Machine.
func (p *Chip) Reg() *registers.File { return p.reg }

// tick accounts one bus cycle or modeled internal cycle: it increments
// the cycle counter and suspends on the clock, releasing the state
// lock for the duration of the wait so Snapshot can observe register
// state between cycles per §5.
func (p *Chip) tick() {
	p.cycles++
	p.mu.Unlock()
	p.clock.Wait(p.runCtx)
	p.mu.Lock()
}

// Read performs a data-space bus read, ticking once. Implements
// addrmode.Machine.
func (p *Chip) Read(addr bus.Addr24) uint8 {
	v := p.bus.Read(addr)
	p.reg.SetMD(v)
	p.tick()
	return v
}

// Write performs a data-space bus write, ticking once. Implements
// addrmode.Machine.
func (p *Chip) Write(addr bus.Addr24, val uint8) {
	p.bus.Write(addr, val)
	p.reg.SetMD(val)
	p.tick()
}

// Internal consumes one modeled internal cycle with no bus transfer.
// Implements addrmode.Machine.
func (p *Chip) Internal() {
	p.tick()
}

// FetchOperand reads the byte at PB:PC, ticks once, and advances PC.
// Implements addrmode.Machine.
func (p *Chip) FetchOperand() uint8 {
	v := p.Read(bus.NewAddr24(p.reg.PBR(), p.reg.PC()))
	p.reg.IncPC(1)
	return v
}

// fetchOpcode reads the opcode byte at PB:PC, ticks, and advances PC.
// Distinct from FetchOperand only in name, mirroring the distinction
// spec.md draws between "fetch the next opcode" and the "instruction
// stream reads" performed by the addressing mode.
func (p *Chip) fetchOpcode() uint8 {
	return p.FetchOperand()
}

// pushByte pushes val onto the stack and decrements SP, pinning the
// high byte to 0x01 in emulation mode via registers.File.SetS.
func (p *Chip) pushByte(val uint8) {
	p.Write(bus.NewAddr24(0, p.reg.S()), val)
	p.reg.SetS(p.reg.S() - 1)
}

// pullByte increments SP and reads the new top-of-stack byte.
func (p *Chip) pullByte() uint8 {
	p.reg.SetS(p.reg.S() + 1)
	return p.Read(bus.NewAddr24(0, p.reg.S()))
}

// resolve is a thin wrapper around addrmode.Resolve binding this Chip
// as the Machine.
func (p *Chip) resolve(mode addrmode.Mode, kind addrmode.AccessKind, wide bool) (addrmode.Result, error) {
	return addrmode.Resolve(p, mode, kind, wide)
}

// AssertReset, AssertNMI, and AssertIRQ/DeassertIRQ are the external
// signal inputs of §6: reset and NMI are edge-latched, IRQ is a held
// level cleared by the device that raised it.
func (p *Chip) AssertReset() { p.resetLine.Raise() }
func (p *Chip) AssertNMI()   { p.nmiLine.Raise() }
func (p *Chip) AssertIRQ()   { p.irqLine.Raise() }
func (p *Chip) DeassertIRQ() { p.irqLine.Clear() }

// Cycles returns the total bus/internal cycles accounted so far.
func (p *Chip) Cycles() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cycles
}

// Stopped reports whether STP has halted the core.
func (p *Chip) Stopped() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopped
}

// Waiting reports whether WAI has suspended the core.
func (p *Chip) Waiting() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.waiting
}

// Running reports whether the run loop is currently active.
func (p *Chip) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// step executes exactly one instruction-boundary slot: either a
// pending reset/interrupt/wait-state no-op per §4.4, or one fetched
// and executed opcode. Caller must hold p.mu (step releases it during
// ticks via tick()).
func (p *Chip) step() error {
	if p.stopped {
		if p.resetLine.Raised() {
			p.doReset()
		}
		return nil
	}
	handled, err := p.checkInterrupts()
	if err != nil {
		return err
	}
	if handled {
		return nil
	}
	op := p.fetchOpcode()
	entry := opcodeTable[op]
	if entry.exec == nil {
		return InvalidCPUState{Reason: "decode table has no entry for a fetched opcode byte: a defect in the decoder tables, not a runtime condition (§7)"}
	}
	return entry.exec(p)
}

// Step executes a single instruction-boundary slot. It is only valid
// when the run loop is not active (§6, §7 StepWhileRunningError).
func (p *Chip) Step() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return StepWhileRunningError{}
	}
	return p.step()
}

// Run starts the fetch-decode-execute loop on its own goroutine. It
// returns immediately; call Stop to halt it and wait for the goroutine
// to exit.
func (p *Chip) Run() {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.runCtx = ctx
	p.cancel = cancel
	p.running = true
	p.haltErr = nil
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		for {
			p.mu.Lock()
			if !p.running {
				p.mu.Unlock()
				return
			}
			err := p.step()
			stillRunning := p.running
			p.mu.Unlock()
			if err != nil {
				p.mu.Lock()
				p.haltErr = err
				p.running = false
				p.mu.Unlock()
				return
			}
			if !stillRunning {
				return
			}
		}
	}()
}

// Stop halts the run loop, releasing any pending clock rendezvous, and
// joins the goroutine before returning. It is a no-op if the loop
// isn't running.
func (p *Chip) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	cancel := p.cancel
	p.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
	p.mu.Lock()
	p.runCtx = context.Background()
	p.mu.Unlock()
}

// Err returns the error that halted the run loop, if any.
func (p *Chip) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.haltErr
}

// Snapshot is a point-in-time, consistent copy of externally visible
// CPU state (§6 control surface: "query register snapshot").
type Snapshot struct {
	A, X, Y, D, S uint16
	PC            uint16
	DBR, PBR, P   uint8
	E             bool
	Cycles        uint64
	Stopped       bool
	Waiting       bool
}

// Snapshot returns a consistent copy of register and mode state. Safe
// to call while the run loop is active; it only ever observes state
// between bus cycles since tick() releases the lock while waiting on
// the clock.
func (p *Chip) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		A: p.reg.A(), X: p.reg.X(), Y: p.reg.Y(),
		D: p.reg.D(), S: p.reg.S(), PC: p.reg.PC(),
		DBR: p.reg.DBR(), PBR: p.reg.PBR(), P: p.reg.P(),
		E: p.reg.E(), Cycles: p.cycles, Stopped: p.stopped, Waiting: p.waiting,
	}
}
