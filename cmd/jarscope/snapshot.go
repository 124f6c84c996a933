package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jarScope/internal/chain"
	"jarScope/internal/config"
	"jarScope/internal/model"
	"jarScope/internal/prices"
	"jarScope/internal/registry"
	"jarScope/internal/storage"
	"jarScope/internal/storage/postgres"
	"jarScope/internal/valuation"
)

const (
	pricesFromConfig   = "config"
	pricesFromPostgres = "postgres"
)

func runSnapshot(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadSnapshot(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Out == "" && cfg.PGDSN == "" {
		return fmt.Errorf("at least one of out or pg dsn is required")
	}
	if cfg.PricesFrom != pricesFromConfig && cfg.PricesFrom != pricesFromPostgres {
		return fmt.Errorf("unknown prices source %q", cfg.PricesFrom)
	}
	if cfg.PricesFrom == pricesFromPostgres && cfg.PGDSN == "" {
		return fmt.Errorf("pg dsn is required to load prices from postgres")
	}

	poolAddrs, err := snapshotPools(cfg.Pools)
	if err != nil {
		return err
	}
	table, err := prices.Parse(cfg.Prices)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, reader, err := openReader(ctx, cfg.Chain, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	chainID, err := client.GetChainID(ctx)
	if err != nil {
		return fmt.Errorf("get chain id: %w", err)
	}
	if !chainID.IsUint64() {
		return fmt.Errorf("chain id does not fit in uint64: %s", chainID)
	}

	var sinks []storage.Storage
	if cfg.Out != "" {
		sinks = append(sinks, storage.NewJsonlStorage(cfg.Out))
	}

	var store *postgres.Store
	if cfg.PGDSN != "" {
		store, err = postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()

		if err := store.EnsureSchema(ctx); err != nil {
			return err
		}
		sinks = append(sinks, store)
	}

	if cfg.PricesFrom == pricesFromPostgres {
		stored, err := store.LoadPrices(ctx)
		if err != nil {
			return err
		}
		// flag and config prices override stored ones
		table = stored.Merge(table)
	} else if store != nil {
		if err := store.SavePrices(ctx, table); err != nil {
			return fmt.Errorf("save prices: %w", err)
		}
	}

	logger.Info("snapshot start",
		zap.Int("pools", len(poolAddrs)),
		zap.Uint64("chain_id", chainID.Uint64()),
		zap.Uint64("block", cfg.Chain.Block),
		zap.String("prices_from", cfg.PricesFrom),
		zap.Int("prices", len(table)),
		zap.String("out", cfg.Out),
		zap.String("pg_dsn", redactDSN(cfg.PGDSN)),
	)

	valuer := valuation.NewValuer(reader, table, logger)
	valuations, valueErr := valuer.ValueAll(ctx, poolAddrs)
	if len(valuations) == 0 && valueErr != nil {
		return valueErr
	}

	if store != nil {
		pools := make([]model.PoolDescriptor, 0, len(valuations))
		for _, v := range valuations {
			pools = append(pools, v.Pool)
		}
		if err := store.UpsertPools(ctx, chainID.Uint64(), pools); err != nil {
			return fmt.Errorf("upsert pools: %w", err)
		}
	}

	records := make([]model.PoolValuationRecord, 0, len(valuations))
	observedAt := time.Now().UTC()
	degenerate := 0
	for _, v := range valuations {
		record := v.Record(chainID.Uint64(), observedAt)
		if record.Degenerate {
			degenerate++
		}
		records = append(records, record)
	}

	for _, sink := range sinks {
		if err := sink.PutValuations(ctx, records); err != nil {
			return fmt.Errorf("store valuations: %w", err)
		}
	}

	logger.Info("snapshot complete",
		zap.Int("valued", len(records)),
		zap.Int("degenerate", degenerate),
		zap.Int("failed", len(poolAddrs)-len(records)),
	)

	return nil
}

func snapshotPools(inputs []string) ([]common.Address, error) {
	if len(inputs) == 0 {
		pools := registry.Pools()
		out := make([]common.Address, 0, len(pools))
		for _, pool := range pools {
			out = append(out, pool.Address)
		}
		return out, nil
	}

	addrs, err := chain.ParseAddresses(inputs)
	if err != nil {
		return nil, err
	}
	for _, addr := range addrs {
		if _, err := registry.Pool(addr); err != nil {
			return nil, err
		}
	}
	return addrs, nil
}

func redactDSN(dsn string) string {
	if dsn == "" {
		return dsn
	}
	return "***"
}
