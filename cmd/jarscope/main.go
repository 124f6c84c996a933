package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "jarscope",
		Short:        "Pickle jar reference tables and Sushi pair valuation",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	tablesCmd := &cobra.Command{
		Use:   "tables",
		Short: "Print jars, pools and tokens",
		RunE:  runTables,
	}
	tablesCmd.Flags().String("format", "text", "output format (text, json)")
	root.AddCommand(tablesCmd)

	valueCmd := &cobra.Command{
		Use:   "value",
		Short: "Value a single pool",
		RunE:  runValue,
	}
	addChainFlags(valueCmd)
	valueCmd.Flags().String("pool", "", "pool contract address")
	valueCmd.Flags().StringSlice("price", nil, "prices as id=usd (comma-separated)")
	valueCmd.Flags().String("format", "text", "output format (text, json)")
	root.AddCommand(valueCmd)

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Value pools in one batched read and store the results",
		RunE:  runSnapshot,
	}
	addChainFlags(snapshotCmd)
	snapshotCmd.Flags().StringSlice("pool", nil, "pool addresses (comma-separated), empty means all")
	snapshotCmd.Flags().StringSlice("price", nil, "prices as id=usd (comma-separated)")
	snapshotCmd.Flags().String("prices-from", "config", "price source (config, postgres)")
	snapshotCmd.Flags().String("out", "./data/valuations.jsonl", "output JSONL path, empty disables")
	snapshotCmd.Flags().String("pg-dsn", "", "Postgres DSN")
	root.AddCommand(snapshotCmd)

	verifyCmd := &cobra.Command{
		Use:   "verify-tokens",
		Short: "Compare declared token decimals against chain",
		RunE:  runVerify,
	}
	addChainFlags(verifyCmd)
	root.AddCommand(verifyCmd)

	return root
}

func addChainFlags(cmd *cobra.Command) {
	cmd.Flags().String("rpc", "", "Ethereum RPC URL")
	cmd.Flags().String("multicall", "", "Multicall3 address (default canonical deployment)")
	cmd.Flags().Uint64("block", 0, "block to read at, 0 means latest")
	cmd.Flags().Int("max-retries", 3, "maximum retry attempts per RPC call")
	cmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
