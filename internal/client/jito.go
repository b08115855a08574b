package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"github.com/sirupsen/logrus"
)

// JitoClient talks to a Jito block engine over JSON-RPC
type JitoClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
}

// JitoClientConfig contains configuration for JITO client
type JitoClientConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// SimulateBundleParams is the first simulateBundle parameter
type SimulateBundleParams struct {
	EncodedTransactions []string `json:"encodedTransactions"`
}

// SimulateBundleConfig is the second simulateBundle parameter
type SimulateBundleConfig struct {
	PreExecutionAccountsConfigs  []*AccountsConfig `json:"preExecutionAccountsConfigs"`
	PostExecutionAccountsConfigs []*AccountsConfig `json:"postExecutionAccountsConfigs"`
	ReplaceRecentBlockhash       bool              `json:"replaceRecentBlockhash"`
	SkipSigVerify                bool              `json:"skipSigVerify"`
	SimulationBank               *SimulationBank   `json:"simulationBank,omitempty"`
}

// AccountsConfig requests account state around one bundle transaction
type AccountsConfig struct {
	Addresses []string `json:"addresses"`
	Encoding  string   `json:"encoding,omitempty"`
}

// SimulationBank selects the bank the bundle is simulated against
type SimulationBank struct {
	Commitment *CommitmentConfig `json:"commitment,omitempty"`
}

// CommitmentConfig wraps a commitment level
type CommitmentConfig struct {
	Commitment string `json:"commitment"`
}

// DefaultSimulateBundleConfig simulates n unsigned transactions against the
// processed bank, replacing their blockhashes.
func DefaultSimulateBundleConfig(n int) SimulateBundleConfig {
	return SimulateBundleConfig{
		PreExecutionAccountsConfigs:  make([]*AccountsConfig, n),
		PostExecutionAccountsConfigs: make([]*AccountsConfig, n),
		ReplaceRecentBlockhash:       true,
		SkipSigVerify:                true,
		SimulationBank: &SimulationBank{
			Commitment: &CommitmentConfig{Commitment: "processed"},
		},
	}
}

// JitoContext represents JITO context
type JitoContext struct {
	Slot uint64 `json:"slot"`
}

// SimulateBundleResult is the simulateBundle result object
type SimulateBundleResult struct {
	Context JitoContext         `json:"context"`
	Value   SimulateBundleValue `json:"value"`
}

// SimulateBundleValue holds the bundle summary and per-transaction results
type SimulateBundleValue struct {
	// "succeeded" or {"failed": {"error": ..., "tx_signature": ...}}
	Summary            json.RawMessage           `json:"summary"`
	TransactionResults []BundleTransactionResult `json:"transactionResults"`
}

// BundleTransactionResult is the outcome of one bundle transaction
type BundleTransactionResult struct {
	Err                   interface{}     `json:"err"`
	Logs                  []string        `json:"logs"`
	UnitsConsumed         *uint64         `json:"unitsConsumed,omitempty"`
	ReturnData            json.RawMessage `json:"returnData,omitempty"`
	PreExecutionAccounts  json.RawMessage `json:"preExecutionAccounts,omitempty"`
	PostExecutionAccounts json.RawMessage `json:"postExecutionAccounts,omitempty"`
}

// Succeeded reports whether every transaction in the bundle executed
func (v *SimulateBundleValue) Succeeded() bool {
	var s string
	if err := json.Unmarshal(v.Summary, &s); err != nil {
		return false
	}
	return strings.EqualFold(s, "succeeded")
}

// FailureReason returns the summary's failure detail, empty on success
func (v *SimulateBundleValue) FailureReason() string {
	if v.Succeeded() {
		return ""
	}
	var failed struct {
		Failed struct {
			Error       interface{} `json:"error"`
			TxSignature *string     `json:"tx_signature"`
		} `json:"failed"`
	}
	if err := json.Unmarshal(v.Summary, &failed); err != nil || failed.Failed.Error == nil {
		return string(v.Summary)
	}
	reason := fmt.Sprintf("%v", failed.Failed.Error)
	if failed.Failed.TxSignature != nil {
		reason += " (tx " + *failed.Failed.TxSignature + ")"
	}
	return reason
}

// NewJitoClient creates a new JITO RPC client
func NewJitoClient(config JitoClientConfig, logger *logrus.Logger) *JitoClient {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	return &JitoClient{
		endpoint: config.Endpoint,
		apiKey:   config.APIKey,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}
}

// makeJitoRequest makes a JSON-RPC request to JITO
func (jc *JitoClient) makeJitoRequest(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	request := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	}

	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, jc.endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if jc.apiKey != "" {
		req.Header.Set("x-jito-auth", jc.apiKey)
	}

	jc.logger.WithFields(logrus.Fields{
		"method":   method,
		"endpoint": jc.endpoint,
	}).Debug("Making JITO RPC request")

	resp, err := jc.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error %d: %s", resp.StatusCode, string(responseBody))
	}

	var rpcResponse struct {
		JSONRPC string            `json:"jsonrpc"`
		ID      int               `json:"id"`
		Result  json.RawMessage   `json:"result,omitempty"`
		Error   *jsonrpc.RPCError `json:"error,omitempty"`
	}

	if err := json.Unmarshal(responseBody, &rpcResponse); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if rpcResponse.Error != nil {
		return nil, rpcResponse.Error
	}
	if len(rpcResponse.Result) == 0 {
		return nil, fmt.Errorf("%s: empty result", method)
	}

	return rpcResponse.Result, nil
}

// SimulateBundle simulates base64 transactions as one atomic bundle
func (jc *JitoClient) SimulateBundle(ctx context.Context, encodedTransactions []string, config SimulateBundleConfig) (*SimulateBundleResult, error) {
	if len(encodedTransactions) == 0 {
		return nil, fmt.Errorf("simulateBundle: no transactions")
	}

	params := []interface{}{
		SimulateBundleParams{EncodedTransactions: encodedTransactions},
		config,
	}

	start := time.Now()
	raw, err := jc.makeJitoRequest(ctx, "simulateBundle", params)
	if err != nil {
		return nil, fmt.Errorf("simulateBundle failed: %w", err)
	}

	var result SimulateBundleResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bundle simulation: %w", err)
	}

	jc.logger.WithFields(logrus.Fields{
		"transactions": len(encodedTransactions),
		"slot":         result.Context.Slot,
		"succeeded":    result.Value.Succeeded(),
		"duration_ms":  time.Since(start).Milliseconds(),
	}).Debug("JITO bundle simulated")

	return &result, nil
}

// GetTipAccounts gets JITO tip accounts
func (jc *JitoClient) GetTipAccounts(ctx context.Context) ([]string, error) {
	result, err := jc.makeJitoRequest(ctx, "getTipAccounts", []interface{}{})
	if err != nil {
		return nil, fmt.Errorf("getTipAccounts failed: %w", err)
	}

	var tipAccounts []string
	if err := json.Unmarshal(result, &tipAccounts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tip accounts: %w", err)
	}
	return tipAccounts, nil
}

// HealthCheck checks if JITO service is healthy
func (jc *JitoClient) HealthCheck(ctx context.Context) error {
	if _, err := jc.GetTipAccounts(ctx); err != nil {
		return fmt.Errorf("JITO health check failed: %w", err)
	}

	jc.logger.Debug("JITO health check passed")
	return nil
}
