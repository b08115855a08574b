package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/sirupsen/logrus"
)

// ErrTransactionNotFound is returned when the node has no record of a signature
var ErrTransactionNotFound = errors.New("transaction not found")

// Client represents a Solana RPC client wrapper
type Client struct {
	client  *rpc.Client
	timeout time.Duration
	logger  *logrus.Logger
}

// ClientConfig contains configuration for Solana client
type ClientConfig struct {
	RPCEndpoint string
	APIKey      string
	Timeout     time.Duration
}

// FetchedTransaction is a decoded transaction with its landing context
type FetchedTransaction struct {
	Signature   solana.Signature
	Slot        uint64
	BlockTime   *solana.UnixTimeSeconds
	Transaction *solana.Transaction
	Failed      bool
	LogMessages []string
}

// NewClient creates a new Solana RPC client
func NewClient(config ClientConfig, logger *logrus.Logger) *Client {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	var rpcClient *rpc.Client
	if config.APIKey != "" {
		rpcClient = rpc.NewWithHeaders(config.RPCEndpoint, map[string]string{
			"Authorization": "Bearer " + config.APIKey,
		})
	} else {
		rpcClient = rpc.New(config.RPCEndpoint)
	}

	return &Client{
		client:  rpcClient,
		timeout: config.Timeout,
		logger:  logger,
	}
}

// GetTransaction fetches a landed transaction in binary form and decodes it.
// Versioned transactions are accepted; their lookup-table keys are not resolved.
func (c *Client) GetTransaction(ctx context.Context, signature string) (*FetchedTransaction, error) {
	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		return nil, fmt.Errorf("invalid signature: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	maxVersion := uint64(0)
	result, err := c.client.GetTransaction(
		ctx,
		sig,
		&rpc.GetTransactionOpts{
			Encoding:                       solana.EncodingBase64,
			Commitment:                     rpc.CommitmentConfirmed,
			MaxSupportedTransactionVersion: &maxVersion,
		},
	)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, signature)
		}
		return nil, fmt.Errorf("getTransaction failed: %w", err)
	}
	if result == nil || result.Transaction == nil {
		return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, signature)
	}

	tx, err := result.Transaction.GetTransaction()
	if err != nil {
		return nil, fmt.Errorf("failed to decode transaction %s: %w", signature, err)
	}

	fetched := &FetchedTransaction{
		Signature:   sig,
		Slot:        result.Slot,
		BlockTime:   result.BlockTime,
		Transaction: tx,
	}
	if result.Meta != nil {
		fetched.Failed = result.Meta.Err != nil
		fetched.LogMessages = result.Meta.LogMessages
	}

	c.logger.WithFields(logrus.Fields{
		"signature":    signature,
		"slot":         result.Slot,
		"instructions": len(tx.Message.Instructions),
		"version":      tx.Message.GetVersion(),
	}).Debug("Fetched transaction")

	return fetched, nil
}

// GetLatestBlockhash gets the latest blockhash
func (c *Client) GetLatestBlockhash(ctx context.Context) (solana.Hash, error) {
	result, err := c.client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, fmt.Errorf("getLatestBlockhash failed: %w", err)
	}
	return result.Value.Blockhash, nil
}

// SimulateTransaction simulates a single unsigned transaction with signature
// verification off and a fresh blockhash
func (c *Client) SimulateTransaction(ctx context.Context, tx *solana.Transaction) (*rpc.SimulateTransactionResult, error) {
	if required := int(tx.Message.Header.NumRequiredSignatures); len(tx.Signatures) < required {
		sigs := make([]solana.Signature, required)
		copy(sigs, tx.Signatures)
		tx.Signatures = sigs
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.SimulateTransactionWithOpts(ctx, tx, &rpc.SimulateTransactionOpts{
		SigVerify:              false,
		Commitment:             rpc.CommitmentProcessed,
		ReplaceRecentBlockhash: true,
	})
	if err != nil {
		return nil, fmt.Errorf("simulateTransaction failed: %w", err)
	}
	if resp == nil || resp.Value == nil {
		return nil, fmt.Errorf("simulateTransaction: empty result")
	}

	return resp.Value, nil
}
