// w65c816dis disassembles a flat W65C816S binary image to stdout,
// reusing the core's own opcode decode table so the listing can never
// drift out of sync with what the emulator actually executes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wdc65816/core/bus"
	"github.com/wdc65816/core/trace"
)

func main() {
	var (
		startPC uint16
		offset  uint16
		accWide bool
		idxWide bool
	)

	root := &cobra.Command{
		Use:   "w65c816dis <file>",
		Short: "Disassemble a flat W65C816S binary image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			b := bus.NewFlat()
			b.Load(bus.NewAddr24(0, offset), data)

			pc := startPC
			end := int(offset) + len(data)
			for int(pc) < end {
				addr := bus.NewAddr24(0, pc)
				text, n := trace.Disassemble(b, addr, accWide, idxWide)
				fmt.Printf("%04X  %s\n", pc, text)
				pc += uint16(n)
			}
			return nil
		},
	}

	flags := root.Flags()
	flags.Uint16Var(&startPC, "start-pc", 0, "program counter to begin disassembling at")
	flags.Uint16Var(&offset, "offset", 0, "offset to load the image at before disassembling")
	flags.BoolVar(&accWide, "acc-wide", false, "assume a 16-bit accumulator (M=0) for immediate-operand width")
	flags.BoolVar(&idxWide, "idx-wide", false, "assume 16-bit index registers (X=0) for immediate-operand width")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
