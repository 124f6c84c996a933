package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"jarScope/internal/chain"
	"jarScope/internal/config"
)

func openReader(ctx context.Context, cfg config.ChainConfig, logger *zap.Logger) (*chain.Client, *chain.BalanceReader, error) {
	if cfg.RPCURL == "" {
		return nil, nil, fmt.Errorf("rpc url is required")
	}

	readerCfg := chain.ReaderConfig{
		BlockNumber: cfg.Block,
		Retry: chain.RetryPolicy{
			MaxRetries: cfg.MaxRetries,
			Backoff:    cfg.RetryBackoff,
		},
	}
	if cfg.Multicall != "" {
		addr, err := chain.ParseAddress(cfg.Multicall)
		if err != nil {
			return nil, nil, fmt.Errorf("multicall: %w", err)
		}
		readerCfg.Multicall = addr
	}

	client, err := chain.NewClient(ctx, cfg.RPCURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect rpc: %w", err)
	}

	return client, chain.NewBalanceReader(client, readerCfg, logger), nil
}
