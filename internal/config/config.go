package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "JARSCOPE"

// ChainConfig holds the settings shared by every command that reads chain state.
type ChainConfig struct {
	RPCURL       string
	Multicall    string
	Block        uint64
	MaxRetries   int
	RetryBackoff time.Duration
}

// ValueConfig holds configuration for the value command.
type ValueConfig struct {
	Chain    ChainConfig
	Pool     string
	Prices   map[string]string
	Format   string
	LogLevel string
}

// SnapshotConfig holds configuration for the snapshot command.
type SnapshotConfig struct {
	Chain      ChainConfig
	Pools      []string
	Prices     map[string]string
	PricesFrom string
	Out        string
	PGDSN      string
	LogLevel   string
}

// VerifyConfig holds configuration for the verify-tokens command.
type VerifyConfig struct {
	Chain    ChainConfig
	LogLevel string
}

// LoadValue merges config file, environment variables, and flags into ValueConfig.
func LoadValue(cfgFile string, flags *pflag.FlagSet) (ValueConfig, error) {
	v, err := load(cfgFile, flags, map[string]interface{}{
		"format": "text",
	})
	if err != nil {
		return ValueConfig{}, err
	}

	return ValueConfig{
		Chain:    chainConfig(v),
		Pool:     strings.TrimSpace(v.GetString("pool")),
		Prices:   getStringMap(v, "prices", "price"),
		Format:   v.GetString("format"),
		LogLevel: v.GetString("log-level"),
	}, nil
}

// LoadSnapshot merges config file, environment variables, and flags into SnapshotConfig.
func LoadSnapshot(cfgFile string, flags *pflag.FlagSet) (SnapshotConfig, error) {
	v, err := load(cfgFile, flags, map[string]interface{}{
		"out":         "./data/valuations.jsonl",
		"prices-from": "config",
	})
	if err != nil {
		return SnapshotConfig{}, err
	}

	return SnapshotConfig{
		Chain:      chainConfig(v),
		Pools:      getStringSlice(v, "pool"),
		Prices:     getStringMap(v, "prices", "price"),
		PricesFrom: strings.ToLower(v.GetString("prices-from")),
		Out:        v.GetString("out"),
		PGDSN:      v.GetString("pg-dsn"),
		LogLevel:   v.GetString("log-level"),
	}, nil
}

// LoadVerify merges config file, environment variables, and flags into VerifyConfig.
func LoadVerify(cfgFile string, flags *pflag.FlagSet) (VerifyConfig, error) {
	v, err := load(cfgFile, flags, nil)
	if err != nil {
		return VerifyConfig{}, err
	}

	return VerifyConfig{
		Chain:    chainConfig(v),
		LogLevel: v.GetString("log-level"),
	}, nil
}

func load(cfgFile string, flags *pflag.FlagSet, defaults map[string]interface{}) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("max-retries", 3)
	v.SetDefault("retry-backoff", 500*time.Millisecond)
	v.SetDefault("log-level", "info")
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}

func chainConfig(v *viper.Viper) ChainConfig {
	return ChainConfig{
		RPCURL:       v.GetString("rpc"),
		Multicall:    v.GetString("multicall"),
		Block:        v.GetUint64("block"),
		MaxRetries:   v.GetInt("max-retries"),
		RetryBackoff: v.GetDuration("retry-backoff"),
	}
}

func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	val := v.Get(key)
	switch typed := val.(type) {
	case []string:
		return cleanStrings(typed)
	case string:
		return splitAndClean(typed)
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return cleanStrings(items)
	default:
		return nil
	}
}

// getStringMap reads a map from the first key (config file form) and overlays
// key=value pairs from the second key (flag or env form).
func getStringMap(v *viper.Viper, fileKey, pairsKey string) map[string]string {
	out := make(map[string]string)
	if v.IsSet(fileKey) {
		switch typed := v.Get(fileKey).(type) {
		case map[string]string:
			for k, val := range typed {
				out[k] = val
			}
		case map[string]interface{}:
			for k, val := range typed {
				out[k] = fmt.Sprintf("%v", val)
			}
		case string:
			for k, val := range parseStringMap(typed) {
				out[k] = val
			}
		}
	}
	if v.IsSet(pairsKey) {
		for _, pair := range getStringSlice(v, pairsKey) {
			for k, val := range parseStringMap(pair) {
				out[k] = val
			}
		}
	}
	return out
}

func parseStringMap(input string) map[string]string {
	out := make(map[string]string)
	if strings.TrimSpace(input) == "" {
		return out
	}
	pairs := strings.Split(input, ",")
	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	return out
}

func splitAndClean(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	return cleanStrings(parts)
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
