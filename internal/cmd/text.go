package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mediacat/mtkit/util"
)

// NewSplitCmd creates the split subcommand. Every non-empty token is printed
// on its own line.
func NewSplitCmd(a *app) *cobra.Command {
	var sep string

	cmd := &cobra.Command{
		Use:   "split TEXT",
		Short: "Split text on a single separator byte",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(sep) != 1 {
				return fmt.Errorf("separator must be a single byte, got %q", sep)
			}
			for _, tok := range util.SplitString(args[0], sep[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), tok)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&sep, "sep", "s", ",", "Separator byte")

	return cmd
}

// NewTrimCmd creates the trim subcommand.
func NewTrimCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "trim [TEXT...]",
		Short: "Strip leading and trailing spaces, tabs and newlines",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), util.TrimString(string(data)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Trim the contents of this file")

	return cmd
}

// NewSortCmd creates the sort subcommand, which sorts the lines of a file
// or standard input.
func NewSortCmd(a *app) *cobra.Command {
	var (
		file    string
		reverse bool
		trim    bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort lines of text",
		Long: `Sort lines of a file or standard input by byte order.

Empty lines are dropped. With --trim each line is trimmed of surrounding
whitespace before comparison. With --output the sorted lines replace the
contents of that file instead of going to standard output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, nil, file)
			if err != nil {
				return err
			}

			var lines []string
			for _, line := range util.SplitString(string(data), '\n') {
				if trim {
					line = util.TrimString(line)
				} else {
					line = strings.TrimSuffix(line, "\r")
				}
				if util.StringOK(line) {
					lines = append(lines, line)
				}
			}

			cmp := strings.Compare
			if reverse {
				cmp = func(x, y string) int { return strings.Compare(y, x) }
			}
			util.Sort(lines, cmp)
			a.log.Debug("sorted lines",
				zap.Int("lines", len(lines)),
				zap.Int("max_depth", util.MaxSortDepth(len(lines))),
			)

			var b strings.Builder
			for _, line := range lines {
				b.WriteString(line)
				b.WriteByte('\n')
			}
			if output != "" {
				return util.WriteTextFile(output, b.String())
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read lines from this file instead of standard input")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Sort in descending order")
	cmd.Flags().BoolVarP(&trim, "trim", "t", false, "Trim whitespace around each line")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the result to this file")

	return cmd
}
