package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var (
	aaplon = solana.MustPublicKeyFromBase58("123mYEnRLM2LLYsJW3K6oyYh8uP1fngj732iG638ondo")
	usdc   = solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	solver = solana.MustPublicKeyFromBase58("DSqMPMsMAbEJVNuPKv1ZFdzt6YvJaDPDddfeW7ajtqds")
)

func newDefault(t *testing.T) *Registry {
	t.Helper()
	r, err := New(DefaultSnapshot())
	require.NoError(t, err)
	return r
}

func TestDefault(t *testing.T) {
	r := newDefault(t)
	assert.NotSame(t, r, newDefault(t))
	assert.Equal(t, 201, r.TokenCount())

	for _, s := range defaultSolvers {
		assert.True(t, r.IsAuthorizedMaker(solana.MustPublicKeyFromBase58(s)), s)
	}
	assert.False(t, r.IsAuthorizedMaker(solana.NewWallet().PublicKey()))

	assert.True(t, r.IsGMToken(aaplon))
	assert.False(t, r.IsGMToken(usdc))

	symbol, ok := r.TokenSymbol(aaplon)
	require.True(t, ok)
	assert.Equal(t, "AAPLon", symbol)

	_, ok = r.TokenSymbol(usdc)
	assert.False(t, ok)
}

func TestDefault_EveryRowResolves(t *testing.T) {
	r := newDefault(t)
	for _, row := range defaultGMTokens {
		symbol, ok := r.TokenSymbol(solana.MustPublicKeyFromBase58(row.Mint))
		require.True(t, ok, row.Symbol)
		assert.Equal(t, row.Symbol, symbol)
	}
}

func TestDefaultSnapshot_IsACopy(t *testing.T) {
	snap := DefaultSnapshot()
	snap.GMTokens[0].Symbol = "CHANGED"
	snap.AuthorizedSolvers[0] = "CHANGED"

	r := newDefault(t)
	assert.Equal(t, 201, r.TokenCount())
	for _, s := range defaultSolvers {
		assert.NotEqual(t, "CHANGED", s)
	}
	assert.NotEqual(t, "CHANGED", DefaultSnapshot().GMTokens[0].Symbol)
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name     string
		snapshot Snapshot
	}{
		{"bad solver", Snapshot{AuthorizedSolvers: []string{"nope"}}},
		{"bad mint", Snapshot{GMTokens: []TokenEntry{{Symbol: "X", Mint: "7qy1j4Mechfyr6AST3djH4vk4kiEYC2cjEytXdondo"}}}},
		{"no symbol", Snapshot{GMTokens: []TokenEntry{{Mint: aaplon.String()}}}},
		{"duplicate mint", Snapshot{GMTokens: []TokenEntry{
			{Symbol: "A", Mint: aaplon.String()},
			{Symbol: "B", Mint: aaplon.String()},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.snapshot)
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	body := `
authorized_solvers:
  - DSqMPMsMAbEJVNuPKv1ZFdzt6YvJaDPDddfeW7ajtqds
gm_tokens:
  - symbol: AAPLon
    mint: 123mYEnRLM2LLYsJW3K6oyYh8uP1fngj732iG638ondo
`
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	r, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, r.IsAuthorizedMaker(solver))
	assert.False(t, r.IsAuthorizedMaker(solana.MustPublicKeyFromBase58("2Cq2RNFFxxPXL7teNQAji1beA2vFbBDYW5BGPBFvoN9m")))
	assert.Equal(t, 1, r.TokenCount())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("gm_tokens: {"))
	assert.Error(t, err)
}

func TestSnapshotRoundTrip(t *testing.T) {
	def := newDefault(t)
	out, err := yaml.Marshal(def.Snapshot())
	require.NoError(t, err)

	r, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, def.TokenCount(), r.TokenCount())
	assert.Equal(t, def.Snapshot(), r.Snapshot())
}
