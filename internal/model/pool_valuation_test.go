package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestPoolValuationRecordJSONDegenerate(t *testing.T) {
	record := PoolValuationRecord{
		ChainID:     1,
		PoolAddress: "0xC3D03e4F041Fd4cD388c549Ee2A29a9E5075882f",
		PoolName:    "SLP DAI/ETH",
		BlockNumber: 11000000,
		AmountA:     "0",
		AmountB:     "0",
		PriceA:      1,
		PriceB:      2000,
		TotalSupply: "0",
		Degenerate:  true,
		ObservedAt:  time.Date(2020, 10, 1, 0, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if v, ok := decoded["price_per_share"]; !ok || v != nil {
		t.Fatalf("price_per_share should be null, got %v", v)
	}
	if decoded["degenerate"] != true {
		t.Fatalf("degenerate should be true")
	}
	if _, ok := decoded["amount_a"].(string); !ok {
		t.Fatalf("amount_a should be string")
	}
}
