package chain

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestParseAddresses(t *testing.T) {
	got, err := ParseAddresses([]string{" 0xc3d03e4f041fd4cd388c549ee2a29a9e5075882f", "", "0x397FF1542f962076d0BFE58eA045FfA2d347ACa0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 addresses, got %d", len(got))
	}
	if got[0] != common.HexToAddress("0xC3D03e4F041Fd4cD388c549Ee2A29a9E5075882f") {
		t.Fatalf("address mismatch: %s", got[0].Hex())
	}
}

func TestParseAddressesInvalid(t *testing.T) {
	if _, err := ParseAddresses([]string{"0x1234"}); err == nil {
		t.Fatalf("expected error for short address")
	}
	if _, err := ParseAddress("  "); err == nil {
		t.Fatalf("expected error for blank address")
	}
}
