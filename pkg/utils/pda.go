package utils

import (
	"github.com/gagliardetto/solana-go"
)

// PDA seed literals of the Ondo GM program
var (
	MintAuthoritySeed     = []byte("mint_authority")
	MinterRoleGMTokenSeed = []byte("MinterRoleGMToken")
	OracleSanityCheckSeed = []byte("sanity_check")
	USDonManagerStateSeed = []byte("usdon_manager")
)

// GMProgramDerivation derives program addresses owned by the GM program
type GMProgramDerivation struct {
	programID solana.PublicKey
}

func NewGMProgramDerivation(programID solana.PublicKey) *GMProgramDerivation {
	return &GMProgramDerivation{programID: programID}
}

func (p *GMProgramDerivation) ProgramID() solana.PublicKey {
	return p.programID
}

func (p *GMProgramDerivation) DeriveMintAuthority() (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{MintAuthoritySeed}, p.programID)
}

func (p *GMProgramDerivation) DeriveMinterRole(minter solana.PublicKey) (solana.PublicKey, uint8, error) {
	seeds := [][]byte{
		MinterRoleGMTokenSeed,
		minter.Bytes(),
	}
	return solana.FindProgramAddress(seeds, p.programID)
}

func (p *GMProgramDerivation) DeriveOracleSanityCheck(mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	seeds := [][]byte{
		OracleSanityCheckSeed,
		mint.Bytes(),
	}
	return solana.FindProgramAddress(seeds, p.programID)
}

func (p *GMProgramDerivation) DeriveUSDonManagerState() (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{USDonManagerStateSeed}, p.programID)
}

// DeriveAssociatedTokenAddress derives the ATA of owner for mint under the
// given token program (SPL Token or Token-2022).
func DeriveAssociatedTokenAddress(owner, mint, tokenProgram solana.PublicKey) (solana.PublicKey, uint8, error) {
	seeds := [][]byte{
		owner.Bytes(),
		tokenProgram.Bytes(),
		mint.Bytes(),
	}
	return solana.FindProgramAddress(seeds, solana.SPLAssociatedTokenAccountProgramID)
}
