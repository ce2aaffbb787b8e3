package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/crusade-api/internal/catalog"
	"github.com/KirkDiggler/crusade-api/internal/config"
	redisclient "github.com/KirkDiggler/crusade-api/internal/redis"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the Redis catalog",
}

var catalogSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the embedded catalog into Redis",
	Long: `Write every unit, detachment, weapon list, prime benefit and the settings
of the embedded catalog into Redis. Existing entries with the same id are replaced.`,
	RunE: runCatalogSeed,
}

func init() {
	catalogCmd.AddCommand(catalogSeedCmd)
}

func runCatalogSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogging(cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var opts *redisclient.Options
	if cfg.RedisTLS {
		opts = &redisclient.Options{UseTLS: true}
	}
	client, err := redisclient.Connect(ctx, cfg.RedisAddr, opts, redisConnectTimeout)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	store, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	if err != nil {
		return err
	}

	data, err := catalog.LoadEmbedded()
	if err != nil {
		return err
	}
	if err := store.Seed(ctx, data); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d units, %d detachments, %d weapon lists, %d benefits into %s\n",
		len(data.Units), len(data.Detachments), len(data.WeaponLists), len(data.Benefits), cfg.RedisAddr)
	return nil
}
