package solana

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/blocto/solana-go-sdk/client"
	sol "github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"
)

// DefaultBlockhashTTL bounds how long a fetched blockhash is reused
const DefaultBlockhashTTL = 20 * time.Second

// BlockhashProvider fetches recent blockhashes for mock transactions.
// Bundles are simulated with replaceRecentBlockhash, so a slightly stale
// hash is acceptable and results are cached for the configured TTL.
type BlockhashProvider struct {
	client  *client.Client
	ttl     time.Duration
	timeout time.Duration
	logger  *logrus.Logger

	mu        sync.Mutex
	cached    sol.Hash
	fetchedAt time.Time
}

// ProviderConfig contains configuration for the blockhash provider
type ProviderConfig struct {
	Endpoint string
	TTL      time.Duration
	Timeout  time.Duration
}

// NewBlockhashProvider creates a provider backed by a Solana JSON-RPC node
func NewBlockhashProvider(config ProviderConfig, logger *logrus.Logger) *BlockhashProvider {
	if config.TTL == 0 {
		config.TTL = DefaultBlockhashTTL
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	return &BlockhashProvider{
		client:  client.NewClient(config.Endpoint),
		ttl:     config.TTL,
		timeout: config.Timeout,
		logger:  logger,
	}
}

// LatestBlockhash returns a recent blockhash, reusing a cached one while fresh
func (p *BlockhashProvider) LatestBlockhash(ctx context.Context) (sol.Hash, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != (sol.Hash{}) && time.Since(p.fetchedAt) < p.ttl {
		return p.cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.GetLatestBlockhash(ctx)
	if err != nil {
		return sol.Hash{}, fmt.Errorf("getLatestBlockhash failed: %w", err)
	}

	hash, err := sol.HashFromBase58(resp.Blockhash)
	if err != nil {
		return sol.Hash{}, fmt.Errorf("invalid blockhash %q: %w", resp.Blockhash, err)
	}

	p.cached = hash
	p.fetchedAt = time.Now()

	p.logger.WithField("blockhash", resp.Blockhash).Debug("Fetched latest blockhash")
	return hash, nil
}

// Slot returns the node's current slot
func (p *BlockhashProvider) Slot(ctx context.Context) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	slot, err := p.client.GetSlot(ctx)
	if err != nil {
		return 0, fmt.Errorf("getSlot failed: %w", err)
	}
	return slot, nil
}
