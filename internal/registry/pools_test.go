package registry

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolLookup(t *testing.T) {
	addr := common.HexToAddress("0x397ff1542f962076d0bfe58ea045ffa2d347aca0")
	pool, err := Pool(addr)
	require.NoError(t, err)

	assert.Equal(t, addr, pool.Address)
	assert.Equal(t, "SLP USDC/ETH", pool.Name)
	assert.Equal(t, uint8(6), pool.TokenA.Decimals)
	assert.Equal(t, uint8(18), pool.TokenB.Decimals)
}

func TestPoolUnknown(t *testing.T) {
	_, err := Pool(common.HexToAddress("0x1111111111111111111111111111111111111111"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPool))
}

func TestPoolsSortedAndCopied(t *testing.T) {
	pools := Pools()
	require.Len(t, pools, 5)
	for i := 1; i < len(pools); i++ {
		assert.Equal(t, -1, pools[i-1].Address.Big().Cmp(pools[i].Address.Big()))
	}

	pools[0].Name = "mutated"
	again := Pools()
	assert.NotEqual(t, "mutated", again[0].Name)
}

func TestPoolsAreSushiDepositTokens(t *testing.T) {
	for _, pool := range Pools() {
		found := false
		for _, jar := range Jars() {
			if jar.DepositToken == pool.Address {
				found = true
				assert.Equal(t, pool.Name, jar.DepositTokenName)
			}
		}
		assert.True(t, found, pool.Name)
	}
}
