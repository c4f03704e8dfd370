package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"paperwire/internal/digest"
	"paperwire/internal/domain"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <file>",
		Short: "Print a file's fingerprint for post-decode verification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return &domain.InputError{Path: args[0], Err: err}
			}
			defer f.Close()

			fp, err := digest.Sum(f)
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\n", fp)
			return nil
		},
	}
}
