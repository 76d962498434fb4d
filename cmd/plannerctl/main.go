// Command plannerctl administers the planner's storage directly: listing
// accounts, upgrading legacy plaintext passwords, resetting and exporting a
// user's planning data.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/showerplanner/internal/bootstrap"
	"github.com/mmynk/showerplanner/internal/config"
	"github.com/mmynk/showerplanner/internal/storage"
	"github.com/mmynk/showerplanner/pkg/logging"
)

// storeOpener returns the store the commands act on and a release func.
type storeOpener func(ctx context.Context) (storage.Store, func() error, error)

func main() {
	logging.Setup()

	if err := newRootCmd(openFromConfig).Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	configPath string
	envFile    string
)

// openFromConfig opens the store described by the env file, config file and
// environment, the same way the server does.
func openFromConfig(ctx context.Context) (storage.Store, func() error, error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Read(configPath)
	if err != nil {
		return nil, nil, err
	}
	store, closeFn, err := bootstrap.OpenStore(ctx, cfg.Storage, nil)
	if err != nil {
		return nil, nil, err
	}
	return store, closeFn, nil
}

func newRootCmd(open storeOpener) *cobra.Command {
	root := &cobra.Command{
		Use:          "plannerctl",
		Short:        "Administer baby-shower planner storage",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "optional YAML config file")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect and maintain user accounts",
	}
	usersCmd.AddCommand(newUsersListCmd(open), newHashPasswordsCmd(open))

	root.AddCommand(usersCmd, newResetCmd(open), newExportCmd(open))
	return root
}

// withStore opens the store for the duration of fn.
func withStore(cmd *cobra.Command, open storeOpener, fn func(ctx context.Context, store storage.Store) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	store, closeFn, err := open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer closeFn()
	return fn(ctx, store)
}
