package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boolnet/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "boolnet",
		Short: "Attractor and basin analysis for synchronous Boolean networks",
		Long: `boolnet reads a network and run settings from a YAML file, enumerates or
samples initial states and reports every attractor with its basin size.

Examples:
  boolnet check -c network.yaml
  boolnet run -c network.yaml
  boolnet run -c network.yaml --strategy graph --closure --json`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "run file (YAML)")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	_ = root.MarkPersistentFlagRequired("config")

	root.AddCommand(newRunCmd(g), newCheckCmd(g))

	return root
}

// logger builds the stderr text logger for cmd.
func (g *globalFlags) logger(cmd *cobra.Command) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(g.logLevel))); err != nil {
		return nil, fmt.Errorf("--log-level %q: %w", g.logLevel, err)
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})), nil
}

// load reads the run file named by --config.
func (g *globalFlags) load() (*config.File, error) {
	return config.Load(g.configPath)
}
