// Package cli implements the lupkgd command line: capability inspection,
// configuration checking and a host shim that runs single jobs against the
// backend script.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lupkg/lupkg/internal/config"
	"github.com/lupkg/lupkg/internal/log"
)

var (
	cfgFile  string
	logLevel string
	cfg      config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lupkgd",
	Short: "Lua-scripted package backend",
	Long: `lupkgd - Lua-scripted package backend

Bridges a package daemon's backend contract to a Lua script that performs
the actual package operations.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "/etc/lupkg/lupkg.toml", "config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(capabilitiesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
}

func initConfig() {
	var err error
	cfg, err = config.NewLoader().Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.Default()
	}

	// Flag overrides config and environment.
	if logLevel != "" {
		cfg.Backend.LogLevel = logLevel
	}
	log.Setup(cfg.Backend.LogLevel)
}
