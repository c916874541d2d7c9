package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/yyyoichi/lsbsteg"
	"github.com/yyyoichi/lsbsteg/internal/imagefile"
	"github.com/yyyoichi/lsbsteg/quality"
	"github.com/yyyoichi/lsbsteg/strmark"
)

type encodeOptions struct {
	message string
	output  string
	format  string
}

func newEncodeCmd(root *rootOptions) *cobra.Command {
	opts := &encodeOptions{}
	cmd := &cobra.Command{
		Use:   "encode <input_image>",
		Short: "Hide a message in an image",
		Long: `Hides the message in a copy of input_image and saves it losslessly.

The output format is taken from --format, then from the extension of
--output, and defaults to png.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, root, opts, args[0])
		},
	}
	cmd.Flags().StringVarP(&opts.message, "message", "m", "", "message to hide (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "output", "name for the output image")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png, bmp or tiff")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

func runEncode(cmd *cobra.Command, root *rootOptions, opts *encodeOptions, input string) error {
	log := root.log
	charset, err := strmark.ParseCharset(root.charset)
	if err != nil {
		return err
	}
	format, err := outputFormat(opts)
	if err != nil {
		return err
	}

	img, inFormat, err := imagefile.Open(input)
	if err != nil {
		return err
	}
	bounds := img.Bounds()
	log.Debugf("Loaded %s image %q, %dx%d", inFormat, input, bounds.Dx(), bounds.Dy())

	// Check that the picture is large enough before doing any work.
	if n, limit := utf8.RuneCountInString(opts.message), lsbsteg.MaxMessageLen(bounds); n > limit {
		return fmt.Errorf("%w: this image holds at most %d characters, the message has %d", lsbsteg.ErrTooSmallImage, limit, n)
	}

	log.Infof("Encoding %q as %s...", opts.message, charset)
	s, err := lsbsteg.New(lsbsteg.WithCharset(charset))
	if err != nil {
		return err
	}
	marked, err := s.Embed(cmd.Context(), img, opts.message)
	if err != nil {
		return err
	}

	path := imagefile.OutputPath(opts.output, format)
	if err := imagefile.Save(path, marked, format); err != nil {
		return err
	}
	log.Infof("Saved encoded data as %q", path)

	if root.verbose || root.debug {
		r, err := quality.Compare(img, marked)
		if err != nil {
			log.Warnf("could not compare images: %v", err)
			return nil
		}
		log.Infof("Changed %d of %d channel values, PSNR %.2f dB", r.Changed, r.Channels, r.PSNR)
	}
	return nil
}

func outputFormat(opts *encodeOptions) (imagefile.Format, error) {
	if opts.format != "" {
		return imagefile.ParseFormat(opts.format)
	}
	if f, ok := imagefile.FormatFromPath(opts.output); ok {
		return f, nil
	}
	return imagefile.PNG, nil
}
