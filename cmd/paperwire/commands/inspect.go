package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"paperwire/internal/domain"
	"paperwire/internal/frame"
	"paperwire/internal/transcript"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <transcript-file>",
		Short: "Check a transcript's checksums and repairability without decoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := transcript.ReadFile(args[0])
			if err != nil {
				return &domain.InputError{Path: args[0], Err: err}
			}
			p := wire.Params

			badData := make(map[int]int)    // group -> damaged data lines
			badParity := make(map[int]bool) // group -> parity damaged
			groups := make(map[int]bool)
			malformed := 0
			for i, text := range lines {
				ln, err := frame.Parse(text, p)
				if err != nil {
					fmt.Printf("line %d: malformed: %v\n", i+1, err)
					malformed++
					continue
				}
				ok := frame.Checksum(ln.Payload) == ln.Checksum
				if ln.Kind == domain.ParityLine {
					groups[ln.Index] = true
					if !ok {
						badParity[ln.Index] = true
						fmt.Printf("line %d: parity group %d: bad checksum\n", i+1, ln.Index)
					}
				} else {
					g := (ln.Index - 1) / p.GroupSize
					groups[g] = true
					if !ok {
						badData[g]++
						fmt.Printf("line %d: data %06d: bad checksum\n", i+1, ln.Index)
					}
				}
			}

			var ids []int
			for g := range groups {
				ids = append(ids, g)
			}
			sort.Ints(ids)

			unrecoverable := 0
			for _, g := range ids {
				switch {
				case badData[g] == 0:
					continue
				case badData[g] == 1 && !badParity[g]:
					fmt.Printf("group %d: repairable (1 damaged data line)\n", g)
				default:
					fmt.Printf("group %d: unrecoverable (%d damaged data lines, parity damaged: %v)\n", g, badData[g], badParity[g])
					unrecoverable++
				}
			}

			fmt.Printf("%d lines, %d groups, %d malformed\n", len(lines), len(ids), malformed)
			if unrecoverable > 0 {
				return fmt.Errorf("%d groups unrecoverable", unrecoverable)
			}
			return nil
		},
	}
}
