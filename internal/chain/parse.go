package chain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ParseAddresses converts string addresses into common.Address, skipping blanks.
func ParseAddresses(inputs []string) ([]common.Address, error) {
	addresses := make([]common.Address, 0, len(inputs))
	for _, input := range inputs {
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if !common.IsHexAddress(input) {
			return nil, fmt.Errorf("invalid address: %s", input)
		}
		addresses = append(addresses, common.HexToAddress(input))
	}
	return addresses, nil
}

// ParseAddress parses a single required address.
func ParseAddress(input string) (common.Address, error) {
	addresses, err := ParseAddresses([]string{input})
	if err != nil {
		return common.Address{}, err
	}
	if len(addresses) == 0 {
		return common.Address{}, fmt.Errorf("address is required")
	}
	return addresses[0], nil
}
