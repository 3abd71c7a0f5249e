package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mediacat/mtkit/version"
)

// NewRootCmd creates and returns the root cobra command for the mtkit CLI.
// It sets up all subcommands, command groups, and persistent flags.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "mtkit",
		Short: "mtkit - primitives for the media catalog",
		Long: `mtkit exposes the primitives shared by the media catalog and its protocol layer.

Use subcommands to perform different operations:
  - hex, url, digest, id: transcoding and identifier generation
  - split, trim, sort: text helpers
  - check: path existence and type checks
  - store: content-addressed flat-file object store
  - protocol-info, hms, redirect: protocol string helpers`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&a.storeRoot, "store", "", "Object store root (overrides store.root)")
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Enable debug logging")

	groupCodec := "codec"
	groupText := "text"
	groupFiles := "files"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupCodec,
		Title: "Transcoding and Identifiers",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupText,
		Title: "Text Utilities",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFiles,
		Title: "Files and Storage",
	})

	for _, c := range []*cobra.Command{
		NewHexCmd(a),
		NewURLCmd(a),
		NewDigestCmd(a),
		NewIDCmd(a),
		NewProtocolInfoCmd(a),
		NewHMSCmd(a),
		NewRedirectCmd(a),
	} {
		c.GroupID = groupCodec
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{
		NewSplitCmd(a),
		NewTrimCmd(a),
		NewSortCmd(a),
	} {
		c.GroupID = groupText
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{
		NewCheckCmd(a),
		NewStoreCmd(a),
	} {
		c.GroupID = groupFiles
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
