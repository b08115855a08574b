package gm

import (
	"github.com/gagliardetto/solana-go"
)

// TradeInfo is what a GM fill promises: Taker receives GMTokenAmount of
// GMTokenMint from Maker, an authorized solver.
type TradeInfo struct {
	Maker              solana.PublicKey `json:"maker"`
	Taker              solana.PublicKey `json:"taker"`
	GMTokenMint        solana.PublicKey `json:"gm_token_mint"`
	GMTokenSymbol      string           `json:"gm_token_symbol"`
	GMTokenAmount      uint64           `json:"gm_token_amount"` // base units, 9 decimals
	MakerOutputAccount solana.PublicKey `json:"maker_output_account"`
	ExpireAt           int64            `json:"expire_at"` // unix seconds, not validated
}

// Verdict classifies a transaction
type Verdict int

const (
	// VerdictNoMatch means no fill instruction was found
	VerdictNoMatch Verdict = iota
	// VerdictNotGMTrade means a fill from an authorized solver for a non-GM asset
	VerdictNotGMTrade
	// VerdictGMTrade means the fill delivers a GM token
	VerdictGMTrade
)

func (v Verdict) String() string {
	switch v {
	case VerdictNoMatch:
		return "no_match"
	case VerdictNotGMTrade:
		return "not_gm_trade"
	case VerdictGMTrade:
		return "gm_trade"
	default:
		return "unknown"
	}
}

func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// CheckResult is the outcome of classifying one transaction.
// TradeInfo is set only for VerdictGMTrade.
type CheckResult struct {
	Verdict   Verdict    `json:"verdict"`
	TradeInfo *TradeInfo `json:"trade_info,omitempty"`
}

// UseBundleSim reports whether the transaction needs a mock mint bundle
func (r *CheckResult) UseBundleSim() bool {
	return r.Verdict == VerdictGMTrade && r.TradeInfo != nil
}

func noMatch() *CheckResult {
	return &CheckResult{Verdict: VerdictNoMatch}
}

func notGMTrade() *CheckResult {
	return &CheckResult{Verdict: VerdictNotGMTrade}
}

func gmTrade(info *TradeInfo) *CheckResult {
	return &CheckResult{Verdict: VerdictGMTrade, TradeInfo: info}
}
