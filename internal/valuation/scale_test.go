package valuation

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleAmountOneUnit(t *testing.T) {
	for _, decimals := range []uint8{6, 8, 18} {
		raw := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
		scaled := ScaleAmount(raw, decimals)
		assert.Equal(t, "1", scaled.String(), "decimals %d", decimals)
		assert.Equal(t, 1.0, ToFloat(scaled), "decimals %d", decimals)
	}
}

func TestScaleAmountExact(t *testing.T) {
	raw, ok := new(big.Int).SetString("123456789012345678901234567", 10)
	if !ok {
		t.Fatalf("parse raw")
	}
	assert.Equal(t, "123456789.012345678901234567", ScaleAmount(raw, 18).String())
	assert.Equal(t, "0.000001", ScaleAmount(big.NewInt(1), 6).String())
	assert.Equal(t, "42", ScaleAmount(big.NewInt(42), 0).String())
	assert.True(t, ScaleAmount(nil, 18).IsZero())
}
