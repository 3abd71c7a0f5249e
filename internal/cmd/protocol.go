package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mediacat/mtkit/util"
)

// NewProtocolInfoCmd creates the protocol-info subcommand. Each mime type
// is rendered as a protocolInfo entry and the entries are comma joined.
func NewProtocolInfoCmd(a *app) *cobra.Command {
	var protocol string

	cmd := &cobra.Command{
		Use:   "protocol-info MIMETYPE...",
		Short: "Render UPnP protocolInfo strings",
		Long: `Render UPnP protocolInfo strings.

A single mime type is rendered with the transport given by --protocol.
Several mime types are rendered as a comma separated source list in which
every entry uses http-get; --protocol is rejected in that case.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 && cmd.Flags().Changed("protocol") {
				return fmt.Errorf("--protocol applies to a single mime type; lists always use http-get")
			}
			if len(args) == 1 {
				fmt.Fprintln(cmd.OutOrStdout(), util.RenderProtocolInfo(args[0], protocol))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), util.MimeTypesToCSV(args))
			return nil
		},
	}
	cmd.Flags().StringVarP(&protocol, "protocol", "p", "http-get", "Transport protocol for a single mime type")

	return cmd
}

// NewHMSCmd creates the hms subcommand, which formats a duration in seconds
// as HH:MM:SS.
func NewHMSCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hms SECONDS",
		Short: "Format seconds as HH:MM:SS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid seconds %q: %w", args[0], err)
			}
			if n < 0 {
				return fmt.Errorf("seconds must not be negative, got %d", n)
			}
			fmt.Fprintln(cmd.OutOrStdout(), util.SecondsToHMS(n))
			return nil
		},
	}
	return cmd
}

// NewRedirectCmd creates the redirect subcommand, which prints an HTML page
// that refreshes to http://IP:PORT/PAGE.
func NewRedirectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redirect IP PORT [PAGE]",
		Short: "Print an HTML redirect page",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			page := ""
			if len(args) == 3 {
				page = args[2]
			}
			if _, err := strconv.ParseUint(args[1], 10, 16); err != nil {
				return fmt.Errorf("invalid port %q: %w", args[1], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), util.HTTPRedirectTo(args[0], args[1], page))
			return nil
		},
	}
	return cmd
}
