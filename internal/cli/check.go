package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lupkg/lupkg/internal/backend"
	"github.com/lupkg/lupkg/internal/manifest"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration, manifest and backend script",
	Long: `Load the configuration and manifest, start the Lua runtime once and
report whether the backend script is usable.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	fmt.Printf("config: %s\n", cfgFile)

	if cfg.Lua.Manifest != "" {
		m, err := manifest.Load(cfg.Lua.Manifest)
		if err != nil {
			return fmt.Errorf("manifest: %w", err)
		}
		fmt.Printf("manifest: %s %s (%s)\n", m.Name, m.Version, m.ScriptPath())
	} else if cfg.Lua.Script == "" {
		return fmt.Errorf("no script configured: set lua.script or lua.manifest")
	} else {
		fmt.Printf("script: %s\n", cfg.Lua.Script)
	}

	b := backend.New(cfg)
	if err := b.Initialize(); err != nil {
		return fmt.Errorf("runtime: %w", err)
	}
	defer b.Destroy()

	fmt.Println("ok")
	return nil
}
