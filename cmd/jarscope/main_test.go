package main

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jarScope/internal/model"
	"jarScope/internal/prices"
	"jarScope/internal/registry"
	"jarScope/internal/valuation"
)

var usdcEthPool = common.HexToAddress("0x397FF1542f962076d0BFE58eA045FfA2d347ACa0")

func testValuation(t *testing.T, supply *big.Int) valuation.Valuation {
	t.Helper()
	table := prices.Table{model.PriceIDUSDC: 1, model.PriceIDETH: 2000}
	valuer := valuation.NewValuer(nil, table, nil)
	v, err := valuer.ValuePrefilled(usdcEthPool, model.RawPoolSample{
		BalanceA:    big.NewInt(1_000_000),
		BalanceB:    new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil),
		TotalSupply: supply,
		BlockNumber: 12,
	})
	require.NoError(t, err)
	return v
}

func TestWriteTablesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTables(&buf, "json"))

	var view tablesView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
	assert.Len(t, view.Pools, len(registry.Pools()))
	assert.Len(t, view.Tokens, len(registry.Tokens()))
	assert.Len(t, view.Jars, len(registry.Jars()))
}

func TestWriteTablesText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTables(&buf, "text"))

	out := buf.String()
	assert.Contains(t, out, "SLP USDC/ETH")
	assert.Contains(t, out, usdcEthPool.Hex())
}

func TestWriteTablesUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, writeTables(&buf, "yaml"))
}

func TestWriteValuationsText(t *testing.T) {
	v := testValuation(t, new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))

	var buf bytes.Buffer
	require.NoError(t, writeValuations(&buf, "text", 1, []valuation.Valuation{v}))

	out := buf.String()
	assert.Contains(t, out, "SLP USDC/ETH")
	assert.Contains(t, out, "block 12")
	assert.Contains(t, out, "price per share: 2001\n")
}

func TestWriteValuationsDegenerate(t *testing.T) {
	v := testValuation(t, big.NewInt(0))

	var buf bytes.Buffer
	require.NoError(t, writeValuations(&buf, "text", 1, []valuation.Valuation{v}))
	assert.Contains(t, buf.String(), "n/a (degenerate)")

	buf.Reset()
	require.NoError(t, writeValuations(&buf, "json", 1, []valuation.Valuation{v}))

	var record model.PoolValuationRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.True(t, record.Degenerate)
	assert.Nil(t, record.PricePerShare)
	assert.Equal(t, uint64(1), record.ChainID)
}

func TestSnapshotPoolsDefaultsToRegistry(t *testing.T) {
	addrs, err := snapshotPools(nil)
	require.NoError(t, err)
	require.Len(t, addrs, len(registry.Pools()))
	for i, pool := range registry.Pools() {
		assert.Equal(t, pool.Address, addrs[i])
	}
}

func TestSnapshotPoolsRejectsUnknown(t *testing.T) {
	_, err := snapshotPools([]string{"0x0000000000000000000000000000000000000001"})
	require.ErrorIs(t, err, registry.ErrUnknownPool)
}

func TestCompareTokens(t *testing.T) {
	tokens := registry.Tokens()
	metas := make([]model.TokenMeta, len(tokens))
	for i, token := range tokens {
		metas[i] = model.TokenMeta{Symbol: strings.ToUpper(token.Symbol), Decimals: token.Decimals}
	}
	assert.Empty(t, compareTokens(tokens, metas))

	metas[0].Decimals++
	mismatches := compareTokens(tokens, metas)
	require.Len(t, mismatches, 1)
	assert.Contains(t, mismatches[0], tokens[0].Symbol)
}
