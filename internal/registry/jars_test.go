package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJarsJoinDepositData(t *testing.T) {
	jars := Jars()
	require.Len(t, jars, 13)

	byDeposit := make(map[string]bool)
	for _, jar := range jars {
		byDeposit[jar.DepositSymbol] = jar.Active
		assert.NotEmpty(t, jar.DepositTokenName, jar.Symbol)
		assert.NotEmpty(t, jar.DepositLink, jar.Symbol)
		assert.NotEmpty(t, jar.JarName, jar.Symbol)

		addr, ok := ResolveJar(jar.Symbol)
		require.True(t, ok)
		assert.Equal(t, jar.Address, addr)
	}

	assert.True(t, byDeposit["3CRV"])
	assert.True(t, byDeposit["SUSHI_ETH_YFI"])
	assert.False(t, byDeposit["UNIV2_ETH_DAI"])
	assert.False(t, byDeposit["DAI"])
}

func TestJarLabels(t *testing.T) {
	name, ok := JarName("UNIV2_ETH_USDT_OLD")
	require.True(t, ok)
	assert.Equal(t, "pJar 0.69c (old)", name)

	display, ok := DepositTokenName("renCRV")
	require.True(t, ok)
	assert.Equal(t, "renBTCCRV", display)
	assert.True(t, JarActive(display))
	assert.False(t, JarActive("no such jar"))

	link, ok := DepositTokenLink("3CRV")
	require.True(t, ok)
	assert.Equal(t, "https://www.curve.fi/3pool/deposit", link)

	strategy, ok := StrategyName("DAI", "COMPOUNDv2")
	require.True(t, ok)
	assert.Equal(t, "StrategyCmpdDaiV2", strategy)
	_, ok = StrategyName("USDC", "COMPOUNDv1")
	assert.False(t, ok)

	_, ok = ResolveDepositToken("SUSHI_ETH_WBTC")
	assert.True(t, ok)
	_, ok = ResolveJar("pNOPE")
	assert.False(t, ok)
}
