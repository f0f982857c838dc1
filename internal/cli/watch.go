package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lupkg/lupkg/internal/manifest"
	"github.com/lupkg/lupkg/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the backend script and report changes",
	Long: `Watch the configured backend script until interrupted. The runtime
never reloads a changed script; this reports when a restart is needed.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	script := cfg.Lua.Script
	if cfg.Lua.Manifest != "" {
		m, err := manifest.Load(cfg.Lua.Manifest)
		if err != nil {
			return fmt.Errorf("manifest: %w", err)
		}
		script = m.ScriptPath()
	}
	if script == "" {
		return fmt.Errorf("no script configured: set lua.script or lua.manifest")
	}

	w, err := watch.New(script, func(path string) {
		fmt.Printf("changed\t%s\n", path)
	})
	if err != nil {
		return fmt.Errorf("watching %s: %w", script, err)
	}
	defer w.Close()

	fmt.Printf("watching %s\n", script)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	return nil
}
