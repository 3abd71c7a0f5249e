package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mediacat/mtkit/util"
)

// NewHexCmd creates the hex subcommand with encode and decode children.
func NewHexCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hex",
		Short: "Encode or decode lowercase hexadecimal",
	}

	var file string
	encode := &cobra.Command{
		Use:   "encode [TEXT...]",
		Short: "Hex encode text, a file, or standard input",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), util.HexEncode(data))
			return nil
		},
	}
	encode.Flags().StringVarP(&file, "file", "f", "", "Encode the contents of this file")

	decode := &cobra.Command{
		Use:   "decode HEX",
		Short: "Decode a hex string",
		Long: `Decode a hex string and write the raw bytes to standard output.

Characters outside [0-9a-fA-F] decode as zero and an odd trailing digit
is taken as the high nibble of the last byte.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(util.HexDecode(args[0]))
			return err
		},
	}

	cmd.AddCommand(encode, decode)
	return cmd
}

// NewURLCmd creates the url subcommand with escape and unescape children.
func NewURLCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url",
		Short: "Percent-encode or decode URL components",
	}

	escape := &cobra.Command{
		Use:   "escape TEXT...",
		Short: "Percent-encode everything outside [0-9A-Za-z_-]",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), util.URLEscape(strings.Join(args, " ")))
			return nil
		},
	}

	unescape := &cobra.Command{
		Use:   "unescape TEXT",
		Short: "Decode %XX sequences and '+' as space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), util.URLUnescape(args[0]))
			return nil
		},
	}

	cmd.AddCommand(escape, unescape)
	return cmd
}

// NewDigestCmd creates the digest subcommand. It prints the MD5 of its
// arguments, a file, or standard input as 32 lowercase hex characters.
func NewDigestCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "digest [TEXT...]",
		Short: "Print the MD5 digest in lowercase hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				sum, err := util.FileMD5Hex(file)
				if err != nil {
					a.log.Error("failed to hash file", zap.String("path", file), zap.Error(err))
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), sum)
				return nil
			}
			data, err := readInput(cmd, args, "")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), util.MD5Hex(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Hash the contents of this file")

	return cmd
}

// NewIDCmd creates the id subcommand for generating random identifiers.
func NewIDCmd(a *app) *cobra.Command {
	var (
		count int
		udn   bool
	)

	cmd := &cobra.Command{
		Use:   "id",
		Short: "Generate random identifiers",
		Long: `Generate random identifiers.

By default each identifier is the MD5 of the current time and a random
salt, printed as 32 lowercase hex characters. With --udn a device UUID
of the form uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			for range count {
				if udn {
					fmt.Fprintln(cmd.OutOrStdout(), util.NewUDN())
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), a.ids.Generate())
			}
			a.log.Debug("generated identifiers", zap.Int("count", count), zap.Bool("udn", udn))
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of identifiers to generate")
	cmd.Flags().BoolVar(&udn, "udn", false, "Generate UPnP device UUIDs")

	return cmd
}
