package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"gm-bundle-sim-go/internal/gm"
	"gm-bundle-sim-go/pkg/utils"
)

// SimulationRecord is one line of the daily simulations file
type SimulationRecord struct {
	Timestamp       time.Time     `json:"timestamp"`
	Signature       string        `json:"signature"`
	Slot            uint64        `json:"slot,omitempty"`
	Verdict         gm.Verdict    `json:"verdict"`
	Trade           *gm.TradeInfo `json:"trade,omitempty"`
	BundleSimulated bool          `json:"bundle_simulated"`
	BundleSucceeded bool          `json:"bundle_succeeded,omitempty"`
	FailureReason   string        `json:"failure_reason,omitempty"`
	UnitsConsumed   []uint64      `json:"units_consumed,omitempty"`
	ErrorMessage    string        `json:"error_message,omitempty"`
}

// SymbolStats aggregates simulated GM trades for one token
type SymbolStats struct {
	Symbol        string `json:"symbol"`
	Trades        int    `json:"trades"`
	Succeeded     int    `json:"succeeded"`
	Failed        int    `json:"failed"`
	TotalGMAmount uint64 `json:"total_gm_amount"`

	// TotalGMAmountUI is TotalGMAmount in whole tokens, for display only
	TotalGMAmountUI float64 `json:"total_gm_amount_ui"`
}

// SimulationRecorder appends simulation outcomes to daily JSONL files and
// keeps per-symbol totals for the daily summary. Safe for concurrent use.
type SimulationRecorder struct {
	baseDir string
	logger  *Logger
	now     func() time.Time

	mu       sync.Mutex
	verdicts map[gm.Verdict]int
	errors   int
	symbols  map[string]*SymbolStats
}

// NewSimulationRecorder creates a recorder writing under baseDir
func NewSimulationRecorder(baseDir string, logger *Logger) (*SimulationRecorder, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create record directory: %w", err)
	}

	return &SimulationRecorder{
		baseDir:  baseDir,
		logger:   logger,
		now:      time.Now,
		verdicts: make(map[gm.Verdict]int),
		symbols:  make(map[string]*SymbolStats),
	}, nil
}

// Record writes rec to the daily simulations file and updates the totals
func (r *SimulationRecorder) Record(rec SimulationRecord) error {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = r.now()
	}

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal simulation record: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	path := filepath.Join(r.baseDir, fmt.Sprintf("simulations_%s.jsonl", rec.Timestamp.Format("2006-01-02")))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open simulation record file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to write simulation record: %w", err)
	}

	r.update(rec)
	return nil
}

func (r *SimulationRecorder) update(rec SimulationRecord) {
	if rec.ErrorMessage != "" {
		r.errors++
		return
	}
	r.verdicts[rec.Verdict]++

	if rec.Trade == nil {
		return
	}
	stats, ok := r.symbols[rec.Trade.GMTokenSymbol]
	if !ok {
		stats = &SymbolStats{Symbol: rec.Trade.GMTokenSymbol}
		r.symbols[rec.Trade.GMTokenSymbol] = stats
	}
	stats.Trades++
	stats.TotalGMAmount += rec.Trade.GMTokenAmount
	if rec.BundleSimulated {
		if rec.BundleSucceeded {
			stats.Succeeded++
		} else {
			stats.Failed++
		}
	}
}

// Stats returns per-symbol totals sorted by symbol
func (r *SimulationRecorder) Stats() []SymbolStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]SymbolStats, 0, len(r.symbols))
	for _, s := range r.symbols {
		stats := *s
		stats.TotalGMAmountUI = utils.ConvertBaseUnitsToUI(stats.TotalGMAmount, utils.GMTokenDecimals)
		out = append(out, stats)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// WriteDailySummary writes summary_<date>.json with the running totals
func (r *SimulationRecorder) WriteDailySummary() error {
	symbols := r.Stats()

	r.mu.Lock()
	now := r.now()
	summary := struct {
		Date       string        `json:"date"`
		Timestamp  time.Time     `json:"timestamp"`
		NoMatch    int           `json:"no_match"`
		NotGMTrade int           `json:"not_gm_trade"`
		GMTrade    int           `json:"gm_trade"`
		Errors     int           `json:"errors"`
		Symbols    []SymbolStats `json:"symbols"`
	}{
		Date:       now.Format("2006-01-02"),
		Timestamp:  now,
		NoMatch:    r.verdicts[gm.VerdictNoMatch],
		NotGMTrade: r.verdicts[gm.VerdictNotGMTrade],
		GMTrade:    r.verdicts[gm.VerdictGMTrade],
		Errors:     r.errors,
		Symbols:    symbols,
	}
	r.mu.Unlock()

	path := filepath.Join(r.baseDir, fmt.Sprintf("summary_%s.json", summary.Date))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	r.logger.WithFields(map[string]interface{}{
		"event":    "daily_summary",
		"gm_trade": summary.GMTrade,
		"symbols":  len(symbols),
	}).Info("Daily summary written")

	return nil
}
