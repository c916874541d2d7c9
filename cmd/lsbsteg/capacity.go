package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yyyoichi/lsbsteg"
	"github.com/yyyoichi/lsbsteg/internal/imagefile"
)

func newCapacityCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "capacity <input_image>",
		Short: "Print how many bits and characters an image can hide",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, format, err := imagefile.Open(args[0])
			if err != nil {
				return err
			}
			b := img.Bounds()
			root.log.Debugf("Loaded %s image %q", format, args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "size: %dx%d\ncapacity: %d bits\nmax message: %d characters\n",
				b.Dx(), b.Dy(), lsbsteg.CapacityOf(b), lsbsteg.MaxMessageLen(b))
			return nil
		},
	}
}
