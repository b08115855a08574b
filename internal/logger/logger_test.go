package logger

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gm-bundle-sim-go/internal/gm"
	"gm-bundle-sim-go/pkg/anchor"
)

func newBufferedLogger(t *testing.T, format string) (*Logger, *bytes.Buffer) {
	t.Helper()
	l, err := NewLogger(LogConfig{Level: "debug", Format: format})
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	l.SetOutput(buf)
	return l, buf
}

func sampleTrade() *gm.TradeInfo {
	return &gm.TradeInfo{
		Maker:         solana.PublicKey{1},
		Taker:         solana.PublicKey{2},
		GMTokenMint:   solana.PublicKey{3},
		GMTokenSymbol: "AAPLon",
		GMTokenAmount: 1_500_000_000,
		ExpireAt:      1700000000,
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestNewLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gmsim.log")
	l, err := NewLogger(LogConfig{Level: "info", Format: "json", LogToFile: true, LogFilePath: path})
	require.NoError(t, err)

	l.Info("hello file")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "hello file", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestCustomFormatter(t *testing.T) {
	f := &CustomFormatter{DisableColors: true}
	out, err := f.Format(&logrus.Entry{
		Time:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "msg",
		Data:    logrus.Fields{"b": 2, "a": 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02 03:04:05.000 [WARNING] msg | a=1 b=2\n", string(out))
}

func TestLogTradeDetected(t *testing.T) {
	l, buf := newBufferedLogger(t, "json")
	l.LogTradeDetected("sig1", sampleTrade())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "gm_trade_detected", entry["event"])
	assert.Equal(t, "AAPLon", entry["symbol"])
	assert.Equal(t, "1.5", entry["amount"])
	assert.Equal(t, "sig1", entry["signature"])
}

func TestLogBundleResult(t *testing.T) {
	l, buf := newBufferedLogger(t, "json")

	l.LogBundleResult("sig1", false, "custom program error", []uint64{100, 200}, 20*time.Millisecond)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "custom program error", entry["reason"])

	buf.Reset()
	l.LogBundleResult("sig1", true, "", nil, time.Millisecond)
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
}

func TestLogInstruction(t *testing.T) {
	l, buf := newBufferedLogger(t, "json")
	program := solana.PublicKey{9}
	metas := solana.AccountMetaSlice{solana.NewAccountMeta(solana.PublicKey{1}, true, true)}

	tests := []struct {
		data []byte
		want string
	}{
		{anchor.NewInstructionBuilder("mint_gm").AddU64(5).Build(), "mint_gm"},
		{anchor.NewInstructionBuilder("fill").Build(), "fill"},
		{anchor.NewInstructionBuilder("buy").Build(), "unknown"},
		{[]byte{1}, "unknown"},
	}
	for _, tt := range tests {
		buf.Reset()
		l.LogInstruction(solana.NewInstruction(program, metas, tt.data))

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, tt.want, entry["instruction"])
		assert.Equal(t, program.String(), entry["program"])
		assert.Equal(t, hex.EncodeToString(tt.data), entry["data"])
	}

	buf.Reset()
	l.SetLevel(logrus.InfoLevel)
	l.LogInstruction(solana.NewInstruction(program, metas, []byte{1}))
	assert.Zero(t, buf.Len())
}

func TestLogShutdown(t *testing.T) {
	l, buf := newBufferedLogger(t, "json")
	l.LogShutdown("context canceled", map[string]interface{}{"reconnect_count": 2})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shutdown", entry["event"])
	assert.Equal(t, "context canceled", entry["reason"])
	assert.Equal(t, float64(2), entry["reconnect_count"])

	buf.Reset()
	l.LogShutdown("done", nil)
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "done", entry["reason"])
}

func TestSimulationRecorder(t *testing.T) {
	l, _ := newBufferedLogger(t, "json")
	dir := t.TempDir()
	rec, err := NewSimulationRecorder(dir, l)
	require.NoError(t, err)
	day := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	rec.now = func() time.Time { return day }

	trade := sampleTrade()
	require.NoError(t, rec.Record(SimulationRecord{Signature: "a", Verdict: gm.VerdictGMTrade, Trade: trade, BundleSimulated: true, BundleSucceeded: true}))
	require.NoError(t, rec.Record(SimulationRecord{Signature: "b", Verdict: gm.VerdictGMTrade, Trade: trade, BundleSimulated: true, FailureReason: "x"}))
	require.NoError(t, rec.Record(SimulationRecord{Signature: "c", Verdict: gm.VerdictNoMatch}))
	require.NoError(t, rec.Record(SimulationRecord{Signature: "d", ErrorMessage: errors.New("boom").Error()}))

	f, err := os.Open(filepath.Join(dir, "simulations_2024-05-06.jsonl"))
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]interface{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		lines = append(lines, m)
	}
	require.Len(t, lines, 4)
	assert.Equal(t, "gm_trade", lines[0]["verdict"])
	assert.Equal(t, "no_match", lines[2]["verdict"])
	assert.Equal(t, "boom", lines[3]["error_message"])

	stats := rec.Stats()
	require.Len(t, stats, 1)
	assert.Equal(t, SymbolStats{Symbol: "AAPLon", Trades: 2, Succeeded: 1, Failed: 1, TotalGMAmount: 3_000_000_000, TotalGMAmountUI: 3}, stats[0])

	require.NoError(t, rec.WriteDailySummary())
	data, err := os.ReadFile(filepath.Join(dir, "summary_2024-05-06.json"))
	require.NoError(t, err)
	var summary map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, float64(2), summary["gm_trade"])
	assert.Equal(t, float64(1), summary["no_match"])
	assert.Equal(t, float64(1), summary["errors"])
}
