package utils

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testGMProgram = solana.MustPublicKeyFromBase58("XzTT4XB8m7sLD2xi6snefSasaswsKCxx5Tifjondogm")
	testMinter    = solana.MustPublicKeyFromBase58("4pfyfezvwjBrsHtJpXPPKsqH9cphwSDDb7s63KzkVEqF")
	testMint      = solana.MustPublicKeyFromBase58("123mYEnRLM2LLYsJW3K6oyYh8uP1fngj732iG638ondo")
	token2022     = solana.MustPublicKeyFromBase58("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")
)

func TestGMProgramDerivation_Deterministic(t *testing.T) {
	d := NewGMProgramDerivation(testGMProgram)
	assert.Equal(t, testGMProgram, d.ProgramID())

	a1, b1, err := d.DeriveMinterRole(testMinter)
	require.NoError(t, err)
	a2, b2, err := d.DeriveMinterRole(testMinter)
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)

	want, _, err := solana.FindProgramAddress([][]byte{[]byte("MinterRoleGMToken"), testMinter.Bytes()}, testGMProgram)
	require.NoError(t, err)
	assert.Equal(t, want, a1)
}

func TestGMProgramDerivation_DistinctSeeds(t *testing.T) {
	d := NewGMProgramDerivation(testGMProgram)

	role, _, err := d.DeriveMinterRole(testMinter)
	require.NoError(t, err)
	sanity, _, err := d.DeriveOracleSanityCheck(testMint)
	require.NoError(t, err)
	authority, _, err := d.DeriveMintAuthority()
	require.NoError(t, err)
	manager, _, err := d.DeriveUSDonManagerState()
	require.NoError(t, err)

	seen := map[solana.PublicKey]bool{}
	for _, k := range []solana.PublicKey{role, sanity, authority, manager} {
		assert.False(t, seen[k], "duplicate address %s", k)
		seen[k] = true
	}

	other, _, err := d.DeriveOracleSanityCheck(testMinter)
	require.NoError(t, err)
	assert.NotEqual(t, sanity, other)
}

func TestDeriveAssociatedTokenAddress(t *testing.T) {
	classic, _, err := DeriveAssociatedTokenAddress(testMinter, testMint, solana.TokenProgramID)
	require.NoError(t, err)
	ext, _, err := DeriveAssociatedTokenAddress(testMinter, testMint, token2022)
	require.NoError(t, err)
	assert.NotEqual(t, classic, ext)

	want, _, err := solana.FindAssociatedTokenAddress(testMinter, testMint)
	require.NoError(t, err)
	assert.Equal(t, want, classic)
}
