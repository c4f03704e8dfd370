package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"paperwire/internal/domain"
)

func decodeCmd() *cobra.Command {
	var (
		outPath  string
		expectFP string
	)
	cmd := &cobra.Command{
		Use:   "decode <transcript-file>",
		Short: "Reconstruct the original bytes from a transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				info *domain.TransferInfo
				err  error
			)
			if outPath != "" {
				info, err = wire.Transfer.DecodeFile(args[0], outPath)
			} else {
				var in *os.File
				in, err = os.Open(args[0])
				if err != nil {
					return &domain.InputError{Path: args[0], Err: err}
				}
				defer in.Close()
				info, err = wire.Transfer.DecodeStream(in, os.Stdout)
			}
			if err != nil {
				return err
			}

			if expectFP != "" && !strings.EqualFold(expectFP, info.Fingerprint) {
				return fmt.Errorf("fingerprint mismatch: decoded %s, want %s", info.Fingerprint, expectFP)
			}
			if outPath != "" {
				fmt.Printf("Decoded %d bytes from %d lines.\nFingerprint: %s\n", info.RawBytes, info.Lines, info.Fingerprint)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the decoded bytes to a file instead of stdout")
	cmd.Flags().StringVar(&expectFP, "fingerprint", "", "fail unless the decoded bytes match this fingerprint")
	return cmd
}
