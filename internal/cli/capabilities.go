package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lupkg/lupkg/internal/capability"
)

var capabilitiesCmd = &cobra.Command{
	Use:   "capabilities",
	Short: "Print the capabilities the backend advertises",
	Long:  `Print the groups, roles and filters the backend advertises to the host daemon.`,
	RunE:  runCapabilities,
}

func runCapabilities(cmd *cobra.Command, args []string) error {
	roles := capability.Roles()
	groups := capability.Groups()
	filters := capability.Filters()

	fmt.Printf("Roles (%d):\n", roles.Count())
	for _, r := range roles.Values() {
		fmt.Printf("  %s\n", r)
	}

	fmt.Printf("\nGroups (%d):\n", groups.Count())
	for _, g := range groups.Values() {
		fmt.Printf("  %s\n", g)
	}

	names := make([]string, 0, filters.Count())
	for _, f := range filters.Values() {
		names = append(names, f.String())
	}
	fmt.Printf("\nFilters: %s\n", strings.Join(names, ", "))

	fmt.Printf("Mime types: %d\n", len(capability.MimeTypes()))
	fmt.Printf("Parallel jobs: %v\n", capability.SupportsParallelization())
	return nil
}
