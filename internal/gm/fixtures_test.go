package gm

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"gm-bundle-sim-go/internal/config"
	"gm-bundle-sim-go/internal/registry"
	"gm-bundle-sim-go/pkg/anchor"
)

const testExpireAt int64 = 1704067200

var (
	testSolver = solana.MustPublicKeyFromBase58("DSqMPMsMAbEJVNuPKv1ZFdzt6YvJaDPDddfeW7ajtqds")
	testAAPLon = solana.MustPublicKeyFromBase58("123mYEnRLM2LLYsJW3K6oyYh8uP1fngj732iG638ondo")
)

func newKey() solana.PublicKey {
	return solana.NewWallet().PublicKey()
}

type fillFixture struct {
	ix          solana.Instruction
	makerOutput solana.PublicKey
}

func newFill(maker, taker, inputMint, outputMint solana.PublicKey, inputAmount, outputAmount uint64) fillFixture {
	data := anchor.NewInstructionBuilderWithDiscriminator(anchor.FillDiscriminator).
		AddU64(inputAmount).
		AddU64(outputAmount).
		AddI64(testExpireAt).
		Build()

	makerOutput := newKey()
	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(taker, true, true),
		solana.NewAccountMeta(maker, true, true),
		solana.NewAccountMeta(newKey(), true, false),
		solana.NewAccountMeta(newKey(), true, false),
		solana.NewAccountMeta(newKey(), true, false),
		solana.NewAccountMeta(makerOutput, true, false),
		solana.NewAccountMeta(inputMint, false, false),
		solana.NewAccountMeta(config.Token2022ProgramID, false, false),
		solana.NewAccountMeta(outputMint, false, false),
	}

	return fillFixture{
		ix:          solana.NewInstruction(config.JupiterOrderEngineProgramID, metas, data),
		makerOutput: makerOutput,
	}
}

func compileTx(t *testing.T, payer solana.PublicKey, ixs ...solana.Instruction) *solana.Transaction {
	t.Helper()
	tx, err := solana.NewTransaction(ixs, solana.Hash{}, solana.TransactionPayer(payer))
	require.NoError(t, err)
	return tx
}

func newTestBuilder(t *testing.T) *MintBuilder {
	t.Helper()
	b, err := NewMintBuilder(DefaultMintConfig())
	require.NoError(t, err)
	return b
}

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r, err := registry.New(registry.DefaultSnapshot())
	require.NoError(t, err)
	return r
}

func newTestSimulator(t *testing.T) *Simulator {
	t.Helper()
	return NewSimulator(newTestRegistry(t), newTestBuilder(t), nil)
}

// stubAllowList accepts everything and knows no symbols
type stubAllowList struct{}

func (stubAllowList) IsAuthorizedMaker(solana.PublicKey) bool { return true }
func (stubAllowList) IsGMToken(solana.PublicKey) bool { return true }
func (stubAllowList) TokenSymbol(solana.PublicKey) (string, bool) { return "", false }
