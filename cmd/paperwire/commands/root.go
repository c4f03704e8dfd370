package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"paperwire/internal/app"
)

var (
	profilePath string
	width       int
	group       int
	parityTag   string
	compress    bool
	verbose     bool

	cfg  app.Config
	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:          "paperwire",
		Short:        "Forward-error-correcting codec for paper and OCR channels",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = app.DefaultConfig()
			if profilePath != "" {
				prof, err := app.LoadProfile(profilePath)
				if err != nil {
					return err
				}
				cfg.Apply(prof)
			}
			// Explicit flags win over the profile.
			if cmd.Flags().Changed("width") {
				cfg.Width = width
			}
			if cmd.Flags().Changed("group") {
				cfg.GroupSize = group
			}
			if cmd.Flags().Changed("parity-tag") {
				cfg.ParityTag = parityTag
			}
			if cmd.Flags().Changed("compress") {
				cfg.Compress = compress
			}

			if verbose {
				zcfg := zap.NewDevelopmentConfig()
				zcfg.OutputPaths = []string{"stderr"}
				logger, err := zcfg.Build()
				if err != nil {
					return err
				}
				cfg.Logger = logger
			}

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&profilePath, "profile", "", "YAML profile with transcript parameters")
	root.PersistentFlags().IntVar(&width, "width", 60, "payload characters per line")
	root.PersistentFlags().IntVar(&group, "group", 10, "data lines per parity line")
	root.PersistentFlags().StringVar(&parityTag, "parity-tag", "P", "character prefixing parity tags")
	root.PersistentFlags().BoolVar(&compress, "compress", false, "deflate the payload before encoding (both ends must agree)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")

	root.AddCommand(encodeCmd(), decodeCmd(), inspectCmd(), fingerprintCmd())
	return root.Execute()
}
