package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yscl-lang/go-yscl"
)

// stdinName labels input read from standard input in messages.
const stdinName = "<stdin>"

func newParseCmd(opts *options) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a YSCL document and print its tree",
		Long: "Parse a YSCL document and print its tree. The document is read from\n" +
			"standard input when no file is given or the file is \"-\".",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") && opts.format != "" {
				outputFormat = opts.format
			}
			write, ok := formatters[outputFormat]
			if !ok {
				return unknownFormat(outputFormat)
			}

			name := stdinName
			if len(args) == 1 && args[0] != "-" {
				name = args[0]
			}

			doc, err := parseInput(cmd.InOrStdin(), name, opts)
			if err != nil {
				return err
			}

			log.Debugf("%s: writing %s", name, outputFormat)
			return write(cmd.OutOrStdout(), doc)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json",
		"output format ("+strings.Join(formatNames(), ", ")+")")

	return cmd
}

// parseInput reads and parses the named file, or stdin when name is
// stdinName. Errors are prefixed with the input name.
func parseInput(stdin io.Reader, name string, opts *options) (yscl.Map, error) {
	var (
		data []byte
		err  error
	)
	log.Infof("reading %s", name)
	if name == stdinName {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return yscl.Map{}, fmt.Errorf("read %s: %w", name, err)
	}

	doc, err := yscl.ParseBytes(data, opts.parseOptions()...)
	if err != nil {
		log.Errorf("%s: %s", name, err)
		return yscl.Map{}, fmt.Errorf("%s: %w", name, err)
	}

	log.Infof("%s: %d top-level entries", name, doc.Len())
	return doc, nil
}
