package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mediacat/mtkit/util"
)

// ErrCheckFailed is returned when at least one checked path does not exist
// or is of the wrong type.
var ErrCheckFailed = errors.New("path check failed")

// NewCheckCmd creates the check subcommand. Each path is reported as ok or
// with the reason it failed.
func NewCheckCmd(a *app) *cobra.Command {
	var (
		dir    bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "check PATH...",
		Short: "Check that paths exist",
		Long: `Check that each path exists and, with --dir, that it is a directory.

Without --strict only existence and type are reported. With --strict the
underlying error is shown for every failing path.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				if !strict {
					if util.PathExists(path, dir) {
						fmt.Fprintf(cmd.OutOrStdout(), "ok\t%s\n", path)
					} else {
						failed++
						fmt.Fprintf(cmd.OutOrStdout(), "missing\t%s\n", path)
					}
					continue
				}
				if err := util.CheckPath(path, dir); err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "fail\t%s\t%v\n", path, err)
					a.log.Debug("path check failed", zap.String("path", path), zap.Error(err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok\t%s\n", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d: %w", failed, len(args), ErrCheckFailed)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&dir, "dir", "d", false, "Require directories instead of files")
	cmd.Flags().BoolVarP(&strict, "strict", "s", false, "Report the error for each failing path")

	return cmd
}
