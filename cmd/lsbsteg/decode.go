package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yyyoichi/lsbsteg"
	"github.com/yyyoichi/lsbsteg/internal/imagefile"
	"github.com/yyyoichi/lsbsteg/strmark"
)

func newDecodeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <input_image>",
		Short: "Print the message hidden in an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := root.log
			charset, err := strmark.ParseCharset(root.charset)
			if err != nil {
				return err
			}
			img, format, err := imagefile.Open(args[0])
			if err != nil {
				return err
			}
			log.Debugf("Loaded %s image %q", format, args[0])

			log.Infof("Extracting message...")
			message, err := lsbsteg.Extract(cmd.Context(), img, lsbsteg.WithCharset(charset))
			if err != nil {
				return err
			}
			if message == "" {
				log.Warnf("image starts with a terminator, the hidden message is empty")
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
}
