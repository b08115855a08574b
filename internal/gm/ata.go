package gm

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"gm-bundle-sim-go/internal/config"
	"gm-bundle-sim-go/pkg/utils"
)

// createIdempotentTag selects CreateIdempotent in the associated token program
const createIdempotentTag = 1

// NewCreateIdempotentATAInstruction creates owner's associated token account
// for mint under tokenProgram, succeeding if it already exists.
func NewCreateIdempotentATAInstruction(payer, owner, mint, tokenProgram solana.PublicKey) (solana.Instruction, error) {
	ata, _, err := utils.DeriveAssociatedTokenAddress(owner, mint, tokenProgram)
	if err != nil {
		return nil, fmt.Errorf("failed to derive ATA for %s: %w", owner, err)
	}

	return solana.NewInstruction(
		config.AssociatedTokenProgramID,
		solana.AccountMetaSlice{
			solana.NewAccountMeta(payer, true, true),
			solana.NewAccountMeta(ata, true, false),
			solana.NewAccountMeta(owner, false, false),
			solana.NewAccountMeta(mint, false, false),
			solana.NewAccountMeta(config.SystemProgramID, false, false),
			solana.NewAccountMeta(tokenProgram, false, false),
		},
		[]byte{createIdempotentTag},
	), nil
}
