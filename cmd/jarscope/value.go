package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jarScope/internal/chain"
	"jarScope/internal/config"
	"jarScope/internal/prices"
	"jarScope/internal/valuation"
)

func runValue(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadValue(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	poolAddr, err := chain.ParseAddress(cfg.Pool)
	if err != nil {
		return fmt.Errorf("pool: %w", err)
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

	logger.Info("value start",
		zap.String("pool", poolAddr.Hex()),
		zap.Uint64("block", cfg.Chain.Block),
		zap.Int("prices", len(table)),
	)

	valuer := valuation.NewValuer(reader, table, logger)
	result, err := valuer.Value(ctx, poolAddr)
	if err != nil {
		var missing *valuation.MissingPriceError
		if errors.As(err, &missing) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: price unavailable for %s\n", poolAddr.Hex(), missing.PriceID)
		}
		return err
	}

	chainID, err := client.GetChainID(ctx)
	if err != nil {
		return fmt.Errorf("get chain id: %w", err)
	}
	return writeValuations(cmd.OutOrStdout(), cfg.Format, chainID.Uint64(), []valuation.Valuation{result})
}

func writeValuations(w io.Writer, format string, chainID uint64, valuations []valuation.Valuation) error {
	observedAt := time.Now().UTC()
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		for _, v := range valuations {
			if err := enc.Encode(v.Record(chainID, observedAt)); err != nil {
				return fmt.Errorf("encode valuation: %w", err)
			}
		}
		return nil
	case "text", "":
		for _, v := range valuations {
			fmt.Fprintf(w, "%s (%s) block %d\n", v.Pool.Name, v.Pool.Address.Hex(), v.Sample.BlockNumber)
			fmt.Fprintf(w, "  %s: %s @ %s\n", v.Pool.TokenA.Symbol, v.AmountA.String(), formatFloat(v.PriceA))
			fmt.Fprintf(w, "  %s: %s @ %s\n", v.Pool.TokenB.Symbol, v.AmountB.String(), formatFloat(v.PriceB))
			fmt.Fprintf(w, "  total value:     %s\n", formatFloat(v.Result.TotalValue))
			fmt.Fprintf(w, "  total supply:    %s\n", v.Supply.String())
			fmt.Fprintf(w, "  price per share: %s\n", formatPricePerShare(v))
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func formatPricePerShare(v valuation.Valuation) string {
	if valuation.IsDegenerate(v.Result) {
		return "n/a (degenerate)"
	}
	return formatFloat(v.Result.PricePerShare)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
