package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mediacat/mtkit/util"
)

// ErrExtensionNotAllowed is returned by store put for files, or --name
// values, whose extension is not in store.extensions.
var ErrExtensionNotAllowed = errors.New("extension not allowed")

// NewStoreCmd creates the store subcommand and its children.
func NewStoreCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Work with the content-addressed object store",
		Long: `Work with the content-addressed object store.

Objects are named by the MD5 of their contents and kept in one of 1000
shard directories under the store root. A JSON manifest records the name,
size and time of every put.`,
	}

	cmd.AddCommand(
		newStorePutCmd(a),
		newStoreGetCmd(a),
		newStoreLsCmd(a),
		newStoreStatsCmd(a),
	)
	return cmd
}

func newStorePutCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "put [FILE...]",
		Short: "Add files, or standard input with --name, to the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				if err := util.RequireString(name); err != nil {
					return fmt.Errorf("--name is required when reading standard input: %w", err)
				}
				if !a.cfg.AllowsExtension(name) {
					a.log.Warn("skipping input", zap.String("name", name), zap.Error(ErrExtensionNotAllowed))
					return fmt.Errorf("%s: %w", name, ErrExtensionNotAllowed)
				}
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				e, err := s.Put(name, data)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.ID, e.Name)
				return nil
			}

			var errs []error
			for _, path := range args {
				if !a.cfg.AllowsExtension(path) {
					a.log.Warn("skipping file", zap.String("path", path), zap.Error(ErrExtensionNotAllowed))
					errs = append(errs, fmt.Errorf("%s: %w", path, ErrExtensionNotAllowed))
					continue
				}
				e, err := s.PutFile(path)
				if err != nil {
					a.log.Error("failed to store file", zap.String("path", path), zap.Error(err))
					errs = append(errs, err)
					continue
				}
				a.log.Debug("stored file",
					zap.String("path", path),
					zap.String("id", e.ID),
					zap.Int64("size", e.Size),
				)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.ID, e.Name)
			}
			return errors.Join(errs...)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Name to record for data read from standard input")

	return cmd
}

func newStoreGetCmd(a *app) *cobra.Command {
	var (
		byName bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "get ID|NAME",
		Short: "Write an object to standard output or a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			var data []byte
			if byName {
				_, data, err = s.GetByName(args[0])
			} else {
				data, err = s.Get(args[0])
			}
			if err != nil {
				return err
			}

			if output != "" {
				return util.WriteWholeFile(output, data)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&byName, "name", false, "Look the object up by its recorded name")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the object to this file")

	return cmd
}

func newStoreLsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List the latest object for every name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, e := range s.Entries() {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", e.ID, e.Size, e.Modified.UTC().Format(time.RFC3339), e.Name)
			}
			return w.Flush()
		},
	}
	return cmd
}

func newStoreStatsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print store statistics as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(s.Stats())
		},
	}
	return cmd
}
