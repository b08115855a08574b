package gm

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"gm-bundle-sim-go/pkg/utils"
)

// EncodeBundle serializes [mock mint, original] as base64 for simulateBundle
func EncodeBundle(mock, original *solana.Transaction) ([]string, error) {
	if mock == nil || original == nil {
		return nil, fmt.Errorf("bundle needs both the mock mint and the original transaction")
	}

	encoded := make([]string, 0, 2)
	for i, tx := range []*solana.Transaction{mock, original} {
		s, err := utils.EncodeTransactionBase64(tx)
		if err != nil {
			return nil, fmt.Errorf("bundle transaction %d: %w", i, err)
		}
		encoded = append(encoded, s)
	}
	return encoded, nil
}
