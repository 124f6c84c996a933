package chain

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchTokenMeta(t *testing.T) {
	mkr := common.HexToAddress("0x9f8F72aA9304c8B593d555F12eF6589cC3A579A2")
	world := &fakeCaller{
		decimals: map[common.Address]uint8{tokenA: 6, mkr: 18},
		symbols:  map[common.Address]string{tokenA: "USDC", mkr: "MKR"},
		bytes32:  map[common.Address]bool{mkr: true},
	}

	meta, err := FetchTokenMeta(context.Background(), world, tokenA, nil)
	require.NoError(t, err)
	assert.Equal(t, uint8(6), meta.Decimals)
	assert.Equal(t, "USDC", meta.Symbol)
	assert.Equal(t, tokenA.Hex(), meta.Address)

	meta, err = FetchTokenMeta(context.Background(), world, mkr, nil)
	require.NoError(t, err)
	assert.Equal(t, uint8(18), meta.Decimals)
	assert.Equal(t, "MKR", meta.Symbol)
}

func TestFetchTokenMetaRequiresDecimals(t *testing.T) {
	world := &fakeCaller{}
	_, err := FetchTokenMeta(context.Background(), world, tokenB, nil)
	assert.Error(t, err)
}
