package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cryptk/omnilogic-local/internal/config"
)

var controllerCmd = &cobra.Command{
	Use:   "controller",
	Short: "Manage the local registry of known controllers",
	Long: `Controllers are identified by a short id you choose (not discovered
automatically - this client has no LAN broadcast discovery). The registry
only stores operator-assigned metadata: a nickname and the last known
host/port. It never caches controller state.`,
}

var controllerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved controllers",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return err
		}
		if len(registry.Controllers) == 0 {
			fmt.Println("No saved controllers. Add one with 'omni-cli controller add'.")
			return nil
		}
		ids := make([]string, 0, len(registry.Controllers))
		for id := range registry.Controllers {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			c := registry.Controllers[id]
			fmt.Printf("%s\t%s\t%s:%d\n", id, c.Nickname, c.LastHost, c.LastPort)
		}
		return nil
	},
}

var (
	controllerAddNickname string
	controllerAddHost     string
	controllerAddPort     int
)

var controllerAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Save a controller's host/port under a local id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return err
		}
		id := args[0]
		c := registry.EnsureController(id)
		c.LastHost = controllerAddHost
		c.LastPort = controllerAddPort
		if controllerAddNickname != "" {
			registry.SetControllerNickname(id, controllerAddNickname)
		}
		if err := registry.Save(); err != nil {
			return err
		}
		fmt.Printf("Saved controller %q (%s:%d)\n", id, controllerAddHost, controllerAddPort)
		return nil
	},
}

var controllerRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a saved controller",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return err
		}
		id := args[0]
		if _, ok := registry.Controllers[id]; !ok {
			return fmt.Errorf("no saved controller named %q", id)
		}
		delete(registry.Controllers, id)
		if err := registry.Save(); err != nil {
			return err
		}
		fmt.Printf("Removed controller %q\n", id)
		return nil
	},
}

func init() {
	controllerAddCmd.Flags().StringVar(&controllerAddNickname, "nickname", "", "Human-friendly name, e.g. \"Backyard Pool\"")
	controllerAddCmd.Flags().StringVar(&controllerAddHost, "host", "", "Controller IP address or hostname")
	controllerAddCmd.Flags().IntVar(&controllerAddPort, "port", 10444, "Controller UDP port")
	_ = controllerAddCmd.MarkFlagRequired("host")

	controllerCmd.AddCommand(controllerListCmd, controllerAddCmd, controllerRemoveCmd)
}
