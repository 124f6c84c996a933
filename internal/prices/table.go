package prices

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"jarScope/internal/model"
)

// Table is an immutable-by-convention set of USD prices keyed by price id.
// A missing key means the price is unavailable, never zero.
type Table map[model.PriceID]float64

// Price returns the price for id and whether it is present.
func (t Table) Price(id model.PriceID) (float64, bool) {
	if t == nil {
		return 0, false
	}
	price, ok := t[id]
	return price, ok
}

// IDs returns the price ids present in the table, sorted.
func (t Table) IDs() []model.PriceID {
	ids := make([]model.PriceID, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Merge returns a new table with entries from other overriding t.
func (t Table) Merge(other Table) Table {
	out := make(Table, len(t)+len(other))
	for id, price := range t {
		out[id] = price
	}
	for id, price := range other {
		out[id] = price
	}
	return out
}

// Parse builds a Table from string pairs such as {"eth": "2000"}.
func Parse(raw map[string]string) (Table, error) {
	out := make(Table, len(raw))
	for key, value := range raw {
		price, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("price %s: %w", key, err)
		}
		if err := Set(out, key, price); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Set validates and stores a single price. Ids are lowercased.
func Set(t Table, key string, price float64) error {
	id := model.PriceID(strings.ToLower(strings.TrimSpace(key)))
	if id == "" {
		return fmt.Errorf("empty price id")
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return fmt.Errorf("price %s must be a non-negative finite number, got %v", id, price)
	}
	t[id] = price
	return nil
}
