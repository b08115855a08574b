package gm

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"gm-bundle-sim-go/pkg/anchor"
)

// BuildMockMintInstruction mints the traded amount into the maker's GM token ATA
func (b *MintBuilder) BuildMockMintInstruction(info *TradeInfo) (solana.Instruction, error) {
	return b.BuildMintGMInstruction(info.GMTokenMint, info.Maker, info.GMTokenAmount)
}

// BuildMockMintInstructionToATA mints into the fill's maker output account
func (b *MintBuilder) BuildMockMintInstructionToATA(info *TradeInfo) (solana.Instruction, error) {
	return b.BuildMintGMInstructionWithATA(info.GMTokenMint, info.MakerOutputAccount, info.Maker, info.GMTokenAmount)
}

// BuildMockMintTransaction returns an unsigned transaction, paid by the admin
// minter, that gives the maker the GM balance the fill expects:
//
//	0. create taker GM token ATA (Token-2022)
//	1. create maker GM token ATA (Token-2022)
//	2. create taker settlement ATA (SPL Token)
//	3. create maker settlement ATA (SPL Token)
//	4. mint_gm to maker
//
// Signature slots are zero-filled.
func (b *MintBuilder) BuildMockMintTransaction(info *TradeInfo, recentBlockhash solana.Hash) (*solana.Transaction, error) {
	if info == nil {
		return nil, fmt.Errorf("trade info is required")
	}

	minter := b.cfg.AdminMinter
	atas := []struct {
		owner, mint, program solana.PublicKey
	}{
		{info.Taker, info.GMTokenMint, b.cfg.TokenProgram},
		{info.Maker, info.GMTokenMint, b.cfg.TokenProgram},
		{info.Taker, b.cfg.SettlementMint, b.cfg.SettlementTokenProgram},
		{info.Maker, b.cfg.SettlementMint, b.cfg.SettlementTokenProgram},
	}

	instructions := make([]solana.Instruction, 0, len(atas)+1)
	for _, a := range atas {
		ix, err := NewCreateIdempotentATAInstruction(minter, a.owner, a.mint, a.program)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, ix)
	}

	mintIx, err := b.BuildMockMintInstruction(info)
	if err != nil {
		return nil, err
	}
	instructions = append(instructions, mintIx)

	tx, err := solana.NewTransaction(instructions, recentBlockhash, solana.TransactionPayer(minter))
	if err != nil {
		return nil, fmt.Errorf("failed to build mock mint transaction: %w", err)
	}
	tx.Signatures = make([]solana.Signature, tx.Message.Header.NumRequiredSignatures)

	return tx, nil
}

// MockMintInstruction returns the trailing mint_gm instruction of a mock mint
// transaction with its accounts resolved against the message.
func MockMintInstruction(tx *solana.Transaction) (solana.Instruction, error) {
	if tx == nil || len(tx.Message.Instructions) == 0 {
		return nil, ErrEmptyTransaction
	}

	msg := &tx.Message
	ix := msg.Instructions[len(msg.Instructions)-1]
	if !anchor.HasDiscriminator(ix.Data, anchor.MintGMDiscriminator) {
		return nil, fmt.Errorf("%w: last instruction is not mint_gm", ErrMalformedPayload)
	}

	program, err := msg.Program(ix.ProgramIDIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingAccount, err)
	}
	accounts, err := ix.ResolveInstructionAccounts(msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingAccount, err)
	}
	return solana.NewInstruction(program, accounts, ix.Data), nil
}
