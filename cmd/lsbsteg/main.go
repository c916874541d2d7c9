package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	logger "github.com/yyyoichi/lsbsteg/internal/logging"
)

type rootOptions struct {
	verbose bool
	debug   bool
	charset string
	log     logger.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "lsbsteg",
		Short: "Hide text in the least significant bits of an image.",
		Long: `lsbsteg hides a text message in the least significant bit of every
red, green and blue value of a lossless image, and reads it back.

Only PNG, BMP and TIFF images are accepted. Saving the result in a lossy
format such as JPEG destroys the message.

Examples:
  # Hide a message, writing output.png
  lsbsteg encode photo.png -m "meet at noon"

  # Read it back
  lsbsteg decode output.png

  # How much text fits
  lsbsteg capacity photo.png`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.log = logger.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.verbose, opts.debug)
			opts.log.Debugf("Running %s with verbose=%t, debug=%t, charset=%s", cmd.Name(), opts.verbose, opts.debug, opts.charset)
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug output")
	cmd.PersistentFlags().StringVar(&opts.charset, "charset", "ascii", "message charset: ascii, latin1 or windows1252")

	cmd.AddCommand(
		newEncodeCmd(opts),
		newDecodeCmd(opts),
		newCapacityCmd(opts),
	)
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), false, false).Errorf("%v", err)
		stop()
		os.Exit(1)
	}
}
