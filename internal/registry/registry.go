// Package registry answers the two allow-list questions of the GM pipeline:
// is this maker an authorized solver, and is this mint a GM token.
package registry

import (
	"fmt"
	"os"
	"sort"

	"github.com/gagliardetto/solana-go"
	"gopkg.in/yaml.v3"
)

// TokenEntry is one GM token row
type TokenEntry struct {
	Symbol string `yaml:"symbol"`
	Mint   string `yaml:"mint"`
}

// Snapshot is the on-disk form of a registry
type Snapshot struct {
	AuthorizedSolvers []string     `yaml:"authorized_solvers"`
	GMTokens          []TokenEntry `yaml:"gm_tokens"`
}

// Registry is an immutable allow-list. Safe for concurrent use.
type Registry struct {
	solvers map[solana.PublicKey]struct{}
	tokens  map[solana.PublicKey]string
}

// New validates a snapshot and builds the lookup tables
func New(snapshot Snapshot) (*Registry, error) {
	r := &Registry{
		solvers: make(map[solana.PublicKey]struct{}, len(snapshot.AuthorizedSolvers)),
		tokens:  make(map[solana.PublicKey]string, len(snapshot.GMTokens)),
	}

	for _, addr := range snapshot.AuthorizedSolvers {
		key, err := solana.PublicKeyFromBase58(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid solver address %q: %w", addr, err)
		}
		r.solvers[key] = struct{}{}
	}

	for _, token := range snapshot.GMTokens {
		if token.Symbol == "" {
			return nil, fmt.Errorf("gm token %s has no symbol", token.Mint)
		}
		key, err := solana.PublicKeyFromBase58(token.Mint)
		if err != nil {
			return nil, fmt.Errorf("invalid mint for %s %q: %w", token.Symbol, token.Mint, err)
		}
		if prev, dup := r.tokens[key]; dup {
			return nil, fmt.Errorf("mint %s listed twice (%s, %s)", key, prev, token.Symbol)
		}
		r.tokens[key] = token.Symbol
	}

	return r, nil
}

// DefaultSnapshot returns a copy of the compiled-in tables
func DefaultSnapshot() Snapshot {
	return Snapshot{
		AuthorizedSolvers: append([]string(nil), defaultSolvers...),
		GMTokens:          append([]TokenEntry(nil), defaultGMTokens...),
	}
}

// Parse builds a registry from a YAML snapshot
func Parse(data []byte) (*Registry, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse registry YAML: %w", err)
	}
	return New(snapshot)
}

// LoadFile reads a YAML snapshot from path
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

func (r *Registry) IsAuthorizedMaker(key solana.PublicKey) bool {
	_, ok := r.solvers[key]
	return ok
}

func (r *Registry) IsGMToken(mint solana.PublicKey) bool {
	_, ok := r.tokens[mint]
	return ok
}

// TokenSymbol returns the ticker of a GM mint
func (r *Registry) TokenSymbol(mint solana.PublicKey) (string, bool) {
	symbol, ok := r.tokens[mint]
	return symbol, ok
}

// Snapshot exports the registry in a stable order
func (r *Registry) Snapshot() Snapshot {
	var s Snapshot
	for key := range r.solvers {
		s.AuthorizedSolvers = append(s.AuthorizedSolvers, key.String())
	}
	for key, symbol := range r.tokens {
		s.GMTokens = append(s.GMTokens, TokenEntry{Symbol: symbol, Mint: key.String()})
	}
	sort.Strings(s.AuthorizedSolvers)
	sort.Slice(s.GMTokens, func(i, j int) bool { return s.GMTokens[i].Symbol < s.GMTokens[j].Symbol })
	return s
}

// TokenCount returns the number of GM mints
func (r *Registry) TokenCount() int {
	return len(r.tokens)
}
