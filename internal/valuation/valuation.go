package valuation

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"jarScope/internal/model"
)

var (
	// ErrMissingPrice means a pool token has no entry in the price table.
	ErrMissingPrice = errors.New("price unavailable")
	// ErrNegativeAmount means a raw balance or supply was below zero.
	ErrNegativeAmount = errors.New("negative raw amount")
)

// MissingPriceError names the price id that could not be found.
type MissingPriceError struct {
	PriceID model.PriceID
}

func (e *MissingPriceError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingPrice.Error(), e.PriceID)
}

func (e *MissingPriceError) Is(target error) bool {
	return target == ErrMissingPrice
}

// PriceLookup supplies off-chain prices by price id.
type PriceLookup interface {
	Price(id model.PriceID) (float64, bool)
}

// Valuation is a computed result together with the inputs it was derived from.
type Valuation struct {
	Pool    model.PoolDescriptor
	Sample  model.RawPoolSample
	AmountA decimal.Decimal
	AmountB decimal.Decimal
	Supply  decimal.Decimal
	PriceA  float64
	PriceB  float64
	Result  model.ValuationResult
}

// Compute values a pool from raw balances. Each balance is scaled by the
// decimals of its own side of the pool; the supply always uses ShareDecimals.
// A zero supply yields a non-finite PricePerShare and no error.
func Compute(pool model.PoolDescriptor, sample model.RawPoolSample, prices PriceLookup) (model.ValuationResult, error) {
	v, err := evaluate(pool, sample, prices)
	if err != nil {
		return model.ValuationResult{}, err
	}
	return v.Result, nil
}

func evaluate(pool model.PoolDescriptor, sample model.RawPoolSample, prices PriceLookup) (Valuation, error) {
	if isNegative(sample.BalanceA) || isNegative(sample.BalanceB) || isNegative(sample.TotalSupply) {
		return Valuation{}, fmt.Errorf("pool %s: %w", pool.Address.Hex(), ErrNegativeAmount)
	}

	priceA, err := lookup(prices, pool.TokenA.PriceID)
	if err != nil {
		return Valuation{}, err
	}
	priceB, err := lookup(prices, pool.TokenB.PriceID)
	if err != nil {
		return Valuation{}, err
	}

	amountA := ScaleAmount(sample.BalanceA, pool.TokenA.Decimals)
	amountB := ScaleAmount(sample.BalanceB, pool.TokenB.Decimals)
	supply := ScaleAmount(sample.TotalSupply, ShareDecimals)

	totalValue := priceA*ToFloat(amountA) + priceB*ToFloat(amountB)
	totalSupply := ToFloat(supply)

	return Valuation{
		Pool:    pool,
		Sample:  sample,
		AmountA: amountA,
		AmountB: amountB,
		Supply:  supply,
		PriceA:  priceA,
		PriceB:  priceB,
		Result: model.ValuationResult{
			TotalValue:    totalValue,
			TotalSupply:   totalSupply,
			PricePerShare: totalValue / totalSupply,
		},
	}, nil
}

func lookup(prices PriceLookup, id model.PriceID) (float64, error) {
	if prices == nil {
		return 0, &MissingPriceError{PriceID: id}
	}
	price, ok := prices.Price(id)
	if !ok {
		return 0, &MissingPriceError{PriceID: id}
	}
	return price, nil
}

func isNegative(v *big.Int) bool {
	return v != nil && v.Sign() < 0
}

// IsDegenerate reports whether the price per share is not a finite number.
func IsDegenerate(result model.ValuationResult) bool {
	return math.IsNaN(result.PricePerShare) || math.IsInf(result.PricePerShare, 0)
}

// Record converts a valuation into its stored form.
func (v Valuation) Record(chainID uint64, observedAt time.Time) model.PoolValuationRecord {
	record := model.PoolValuationRecord{
		ChainID:     chainID,
		PoolAddress: v.Pool.Address.Hex(),
		PoolName:    v.Pool.Name,
		BlockNumber: v.Sample.BlockNumber,
		AmountA:     v.AmountA.String(),
		AmountB:     v.AmountB.String(),
		PriceA:      v.PriceA,
		PriceB:      v.PriceB,
		TotalValue:  v.Result.TotalValue,
		TotalSupply: v.Supply.String(),
		Degenerate:  IsDegenerate(v.Result),
		ObservedAt:  observedAt.UTC(),
	}
	if !record.Degenerate {
		pps := v.Result.PricePerShare
		record.PricePerShare = &pps
	}
	return record
}
