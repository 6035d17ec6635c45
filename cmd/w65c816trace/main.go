// w65c816trace loads a flat binary image into a W65C816S core and
// single-steps it, printing one status line per instruction so the
// output can be diffed against a reference trace.
package main

import (
	"fmt"
	"os"

	"github.com/wdc65816/core/bus"
	"github.com/wdc65816/core/cpu"
	"github.com/wdc65816/core/registers"
	"github.com/wdc65816/core/trace"
	cli "gopkg.in/urfave/cli.v2"
)

// widths derives the accumulator/index operand widths trace.Disassemble
// needs from a Snapshot's raw status register and emulation bit.
func widths(snap cpu.Snapshot) (accWide, idxWide bool) {
	accWide = snap.P&registers.FlagM == 0
	idxWide = !snap.E && snap.P&registers.FlagX == 0
	return
}

func main() {
	app := &cli.App{
		Name:  "w65c816trace",
		Usage: "step a W65C816S core through a flat binary image, printing one trace line per instruction",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "image",
				Aliases:  []string{"i"},
				Usage:    "flat binary image to load",
				Required: true,
			},
			&cli.UintFlag{
				Name:  "offset",
				Usage: "bank-0 offset to load the image at",
				Value: 0x8000,
			},
			&cli.UintFlag{
				Name:  "reset",
				Usage: "reset vector (PC to start at); if zero, read from the image's own $FFFC/$FFFD bytes",
			},
			&cli.UintFlag{
				Name:  "steps",
				Usage: "number of instructions to execute (0 means run until STP or an error)",
				Value: 100,
			},
			&cli.BoolFlag{
				Name:  "disasm",
				Usage: "prefix each trace line with the disassembled instruction about to execute",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "tui",
				Usage: "start an interactive single-stepper instead of printing a flat trace",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	data, err := os.ReadFile(c.String("image"))
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	b := bus.NewFlat()
	offset := uint16(c.Uint("offset"))
	b.Load(bus.NewAddr24(0, offset), data)

	if reset := c.Uint("reset"); reset != 0 {
		b.Write(cpu.VectorReset, uint8(reset))
		b.Write(cpu.VectorReset+1, uint8(reset>>8))
	}

	p, err := cpu.Init(cpu.Def{Bus: b})
	if err != nil {
		return fmt.Errorf("initializing core: %w", err)
	}

	if c.Bool("tui") {
		return runTUI(p, b)
	}

	steps := int(c.Uint("steps"))
	disasm := c.Bool("disasm")

	for i := 0; steps == 0 || i < steps; i++ {
		snap := p.Snapshot()
		if snap.Stopped {
			fmt.Println("STP: core halted")
			break
		}

		line := trace.Format(snap)
		if disasm {
			addr := bus.NewAddr24(snap.PBR, snap.PC)
			accWide, idxWide := widths(snap)
			text, _ := trace.Disassemble(b, addr, accWide, idxWide)
			line = fmt.Sprintf("%-24s %s", text, line)
		}
		fmt.Println(line)

		if err := p.Step(); err != nil {
			fmt.Fprintf(os.Stderr, "halted: %v\n", err)
			return nil
		}
	}
	return nil
}
