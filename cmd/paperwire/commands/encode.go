package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"paperwire/internal/app"
	"paperwire/internal/domain"
)

func encodeCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "encode <input-file> [group-size]",
		Short: "Encode a binary file into a printable transcript",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("group-size %q: %w", args[1], err)
				}
				c := cfg
				c.GroupSize = n
				w, err := app.NewWire(c)
				if err != nil {
					return err
				}
				wire = w
			}

			if outPath != "" {
				info, err := wire.Transfer.EncodeFile(args[0], outPath)
				if err != nil {
					return err
				}
				fmt.Printf("Encoded %d bytes into %d lines.\nFingerprint: %s\n", info.RawBytes, info.Lines, info.Fingerprint)
				return nil
			}

			in, err := os.Open(args[0])
			if err != nil {
				return &domain.InputError{Path: args[0], Err: err}
			}
			defer in.Close()
			_, err = wire.Transfer.EncodeStream(in, os.Stdout)
			return err
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the transcript to a file instead of stdout")
	return cmd
}
