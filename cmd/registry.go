package cmd

import (
	"github.com/spf13/cobra"

	"companion.GO/core/registry"
)

// Register queues a command for the root. Call from init(); panics once Apply has run.
func Register(c *cobra.Command) {
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		panic("cmd/registry: locked (register only during init before Apply)")
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCmd, append(Registered(), c))
}

// Registered returns the queued commands in registration order.
func Registered() []*cobra.Command {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCmd); ok && v != nil {
		return v.([]*cobra.Command)
	}
	return nil
}

// Apply attaches registered commands to the root and locks the registry.
// Commands already attached are skipped, so calling it again is harmless.
func Apply() {
	for _, c := range Registered() {
		if c.Parent() == rootCmd {
			continue
		}
		rootCmd.AddCommand(c)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryCmd)
}
