package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jarScope/internal/chain"
	"jarScope/internal/config"
	"jarScope/internal/model"
	"jarScope/internal/registry"
)

func runVerify(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadVerify(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, _, err := openReader(ctx, cfg.Chain, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	tokens := registry.Tokens()
	metas := make([]model.TokenMeta, 0, len(tokens))
	for _, token := range tokens {
		meta, err := chain.FetchTokenMeta(ctx, client, token.Address, logger)
		if err != nil {
			return fmt.Errorf("token %s: %w", token.Symbol, err)
		}
		metas = append(metas, meta)
	}

	mismatches := compareTokens(tokens, metas)
	for _, m := range mismatches {
		logger.Error("token mismatch", zap.String("token", m))
		fmt.Fprintln(cmd.OutOrStdout(), m)
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%d token mismatches", len(mismatches))
	}

	logger.Info("tokens verified", zap.Int("tokens", len(tokens)))
	return nil
}

// compareTokens reports declared decimals or symbols that differ from chain metadata.
func compareTokens(tokens []model.TokenDescriptor, metas []model.TokenMeta) []string {
	var out []string
	for i, token := range tokens {
		if i >= len(metas) {
			out = append(out, fmt.Sprintf("%s: no chain metadata", token.Symbol))
			continue
		}
		meta := metas[i]
		if meta.Decimals != token.Decimals {
			out = append(out, fmt.Sprintf("%s: declared %d decimals, chain reports %d", token.Symbol, token.Decimals, meta.Decimals))
		}
		if meta.Symbol != "" && !strings.EqualFold(meta.Symbol, token.Symbol) {
			out = append(out, fmt.Sprintf("%s: chain symbol is %s", token.Symbol, meta.Symbol))
		}
	}
	return out
}
