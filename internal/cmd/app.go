package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mediacat/mtkit/internal/config"
	"github.com/mediacat/mtkit/internal/logging"
	"github.com/mediacat/mtkit/store"
	"github.com/mediacat/mtkit/util"
)

// app carries what the subcommands share once the root command has parsed
// its persistent flags.
type app struct {
	configPath string
	storeRoot  string
	verbose    bool

	cfg *config.Config
	log *zap.Logger
	ids *util.IDGenerator
}

// setup loads the configuration and builds the logger and id generator.
func (a *app) setup() error {
	cfg := config.DefaultConfig()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.storeRoot != "" {
		cfg.Store.Root = a.storeRoot
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}

	seed := cfg.ID.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a.cfg = cfg
	a.log = logger
	a.ids = util.NewIDGenerator(seed)
	a.log.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("store", cfg.Store.Root),
		zap.Bool("fixed_seed", cfg.ID.Seed != 0),
	)
	return nil
}

func (a *app) openStore() (*store.Store, error) {
	s, err := store.Open(a.cfg.Store.Root)
	if err != nil {
		a.log.Error("failed to open store", zap.String("root", a.cfg.Store.Root), zap.Error(err))
		return nil, err
	}
	return s, nil
}

// readInput returns the contents of file when set, the joined arguments
// when present, and standard input otherwise.
func readInput(cmd *cobra.Command, args []string, file string) ([]byte, error) {
	switch {
	case file != "":
		return util.ReadWholeFile(file)
	case len(args) > 0:
		return []byte(strings.Join(args, " ")), nil
	default:
		return io.ReadAll(cmd.InOrStdin())
	}
}
