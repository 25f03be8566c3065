package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectx/internal/config"
)

var (
	flagConfigDir   string
	configSaveFlags gameFlags
)

var configsCmd = &cobra.Command{
	Use:   "configs",
	Short: "Manage named configurations",
	Long: `Named configurations are YAML files kept in the user config directory.
They can be used to start games with 'connectx new --saved-config <id>'.`,
}

var configsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved configurations",
	Args:  cobra.NoArgs,
	Run:   runConfigsList,
}

var configsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a configuration",
	Long: `Build a configuration from the same flags as 'connectx new' and store it.

Examples:
  connectx configs save --name Marathon --width 12 --height 10 --connect 5`,
	Args: cobra.NoArgs,
	Run:  runConfigsSave,
}

var configsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved configuration",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigsShow,
}

var configsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved configuration",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigsDelete,
}

func init() {
	configsCmd.PersistentFlags().StringVar(&flagConfigDir, "dir", "", "Configuration directory (default: user config dir)")
	configSaveFlags.register(configsSaveCmd)

	configsCmd.AddCommand(configsListCmd)
	configsCmd.AddCommand(configsSaveCmd)
	configsCmd.AddCommand(configsShowCmd)
	configsCmd.AddCommand(configsDeleteCmd)
}

func configRepository() (*config.Repository, error) {
	dir := flagConfigDir
	if dir == "" {
		dir = config.UserConfigDir()
	}
	return config.NewRepository(dir)
}

func mustConfigRepository() *config.Repository {
	repo, err := configRepository()
	if err != nil {
		fail("opening configuration directory: %v", err)
	}
	return repo
}

func runConfigsList(cmd *cobra.Command, args []string) {
	repo := mustConfigRepository()
	ids, err := repo.List()
	if err != nil {
		fail("listing configurations: %v", err)
	}
	if len(ids) == 0 {
		fmt.Printf("No configurations in %s\n", repo.Dir())
		return
	}
	for _, id := range ids {
		fmt.Printf("  %s\n", id)
	}
}

func runConfigsSave(cmd *cobra.Command, args []string) {
	cfg, err := configSaveFlags.build(cmd)
	if err != nil {
		fail("%v", err)
	}
	id, err := mustConfigRepository().Save(cfg)
	if err != nil {
		fail("saving configuration: %v", err)
	}
	fmt.Printf("Saved %q\n", id)
}

func runConfigsShow(cmd *cobra.Command, args []string) {
	cfg, err := mustConfigRepository().Load(args[0])
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(data))
}

func runConfigsDelete(cmd *cobra.Command, args []string) {
	if err := mustConfigRepository().Delete(args[0]); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Deleted %q\n", args[0])
}
