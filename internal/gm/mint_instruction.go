package gm

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"gm-bundle-sim-go/internal/config"
	"gm-bundle-sim-go/pkg/anchor"
	"gm-bundle-sim-go/pkg/utils"
)

// MintConfig names the accounts the mock mint is built against
type MintConfig struct {
	ProgramID              solana.PublicKey
	AdminMinter            solana.PublicKey
	TokenProgram           solana.PublicKey // GM tokens are Token-2022
	SettlementMint         solana.PublicKey
	SettlementTokenProgram solana.PublicKey

	// IDL describes mint_gm; nil uses the built-in Ondo GM IDL
	IDL *anchor.IDL
}

// DefaultMintConfig returns the mainnet accounts
func DefaultMintConfig() MintConfig {
	return MintConfig{
		ProgramID:              config.GMProgramID,
		AdminMinter:            config.AdminMinter,
		TokenProgram:           config.Token2022ProgramID,
		SettlementMint:         config.USDCMint,
		SettlementTokenProgram: config.TokenProgramID,
	}
}

// MintBuilder synthesizes mint_gm instructions and mock mint transactions.
// Immutable after construction.
type MintBuilder struct {
	cfg  MintConfig
	pda  *utils.GMProgramDerivation
	inst *anchor.Instruction

	minterRole    solana.PublicKey
	mintAuthority solana.PublicKey
	managerState  solana.PublicKey
}

// NewMintBuilder derives the mint-independent PDAs once
func NewMintBuilder(cfg MintConfig) (*MintBuilder, error) {
	idl := cfg.IDL
	if idl == nil {
		idl = anchor.OndoGMIDL
	}
	inst, err := mintGMInstruction(idl)
	if err != nil {
		return nil, err
	}

	pda := utils.NewGMProgramDerivation(cfg.ProgramID)

	minterRole, _, err := pda.DeriveMinterRole(cfg.AdminMinter)
	if err != nil {
		return nil, fmt.Errorf("failed to derive minter role PDA: %w", err)
	}
	mintAuthority, _, err := pda.DeriveMintAuthority()
	if err != nil {
		return nil, fmt.Errorf("failed to derive mint authority PDA: %w", err)
	}
	managerState, _, err := pda.DeriveUSDonManagerState()
	if err != nil {
		return nil, fmt.Errorf("failed to derive USDon manager PDA: %w", err)
	}

	return &MintBuilder{
		cfg:           cfg,
		pda:           pda,
		inst:          inst,
		minterRole:    minterRole,
		mintAuthority: mintAuthority,
		managerState:  managerState,
	}, nil
}

// Config returns the accounts the builder was created with
func (b *MintBuilder) Config() MintConfig {
	return b.cfg
}

// Minter returns the fee payer and signing authority of mock mints
func (b *MintBuilder) Minter() solana.PublicKey {
	return b.cfg.AdminMinter
}

// GMTokenATA returns owner's Token-2022 associated account for a GM mint
func (b *MintBuilder) GMTokenATA(owner, mint solana.PublicKey) (solana.PublicKey, error) {
	ata, _, err := utils.DeriveAssociatedTokenAddress(owner, mint, b.cfg.TokenProgram)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive GM token ATA: %w", err)
	}
	return ata, nil
}

// BuildMintGMInstruction mints amount of mint into owner's GM token ATA
func (b *MintBuilder) BuildMintGMInstruction(mint, owner solana.PublicKey, amount uint64) (solana.Instruction, error) {
	ata, err := b.GMTokenATA(owner, mint)
	if err != nil {
		return nil, err
	}
	return b.BuildMintGMInstructionWithATA(mint, ata, owner, amount)
}

// BuildMintGMInstructionWithATA mints into an explicit destination account
func (b *MintBuilder) BuildMintGMInstructionWithATA(mint, destination, owner solana.PublicKey, amount uint64) (solana.Instruction, error) {
	sanityCheck, _, err := b.pda.DeriveOracleSanityCheck(mint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive oracle sanity check PDA: %w", err)
	}

	keys := map[string]solana.PublicKey{
		"payer":                  b.cfg.AdminMinter,
		"authority":              b.cfg.AdminMinter,
		"user":                   owner,
		"authorityRoleAccount":   b.minterRole,
		"oracleSanityCheck":      sanityCheck,
		"mintAuthority":          b.mintAuthority,
		"mint":                   mint,
		"destination":            destination,
		"usdonManagerState":      b.managerState,
		"tokenProgram":           b.cfg.TokenProgram,
		"associatedTokenProgram": config.AssociatedTokenProgramID,
		"systemProgram":          config.SystemProgramID,
	}

	metas := make(solana.AccountMetaSlice, 0, len(b.inst.Accounts))
	for _, acc := range b.inst.Accounts {
		key, ok := keys[acc.Name]
		if !ok {
			return nil, fmt.Errorf("mint_gm: no key for account %s", acc.Name)
		}
		metas = append(metas, solana.NewAccountMeta(key, acc.IsMut, acc.IsSigner))
	}

	data := anchor.NewInstructionBuilder(b.inst.Name).
		AddU64(amount).
		Build()

	return solana.NewInstruction(b.cfg.ProgramID, metas, data), nil
}

// mintGMInstruction resolves mint_gm and checks its only arg is a u64 amount
func mintGMInstruction(idl *anchor.IDL) (*anchor.Instruction, error) {
	inst, err := idl.GetInstruction("mint_gm")
	if err != nil {
		return nil, err
	}
	layout, err := inst.ArgsLayout()
	if err != nil {
		return nil, err
	}
	fields := layout.Fields()
	if len(fields) != 1 || fields[0].Name != "amount" || fields[0].Encoding != anchor.U64LE {
		return nil, fmt.Errorf("mint_gm: expected a single u64 amount arg, got %v", fields)
	}
	return inst, nil
}

// DecodeMintGMAmount reads the amount of mint_gm instruction data, which
// must be exactly the tag and one u64
func DecodeMintGMAmount(data []byte) (uint64, error) {
	if err := anchor.ValidateDiscriminator(data, anchor.MintGMDiscriminator); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	dec := anchor.NewInstructionDecoder(data)
	amount, err := dec.ReadU64()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if n := dec.Remaining(); n != 0 {
		return 0, fmt.Errorf("%w: %d trailing bytes", ErrMalformedPayload, n)
	}
	return amount, nil
}
