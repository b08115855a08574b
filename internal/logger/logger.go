package logger

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"gm-bundle-sim-go/internal/gm"
	"gm-bundle-sim-go/pkg/anchor"
	"gm-bundle-sim-go/pkg/utils"
)

// Logger represents the application logger
type Logger struct {
	*logrus.Logger
	config LogConfig
	file   *lumberjack.Logger
}

// LogConfig contains logger configuration
type LogConfig struct {
	Level       string
	Format      string // "json" or "text"
	LogToFile   bool
	LogFilePath string
	RecordDir   string
	MaxSizeMB   int // rotation threshold, defaults to 100
	MaxBackups  int
}

// NewLogger creates a new logger instance
func NewLogger(config LogConfig) (*Logger, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %s: %w", config.Level, err)
	}
	log.SetLevel(level)

	var (
		out  io.Writer = os.Stdout
		file *lumberjack.Logger
	)
	if config.LogToFile && config.LogFilePath != "" {
		logDir := filepath.Dir(config.LogFilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", logDir, err)
		}

		maxSize := config.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 100
		}
		file = &lumberjack.Logger{
			Filename:   config.LogFilePath,
			MaxSize:    maxSize,
			MaxBackups: config.MaxBackups,
			LocalTime:  true,
		}
		out = io.MultiWriter(os.Stdout, file)
	}
	log.SetOutput(out)

	switch strings.ToLower(config.Format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			ForceColors:     file == nil,
			DisableColors:   file != nil,
			DisableQuote:    true,
		})
	default:
		log.SetFormatter(&CustomFormatter{DisableColors: file != nil})
	}

	return &Logger{
		Logger: log,
		config: config,
		file:   file,
	}, nil
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	l.Logger.SetOutput(os.Stdout)
	err := l.file.Close()
	l.file = nil
	return err
}

// CustomFormatter provides a clean, timestamped format for console output
type CustomFormatter struct {
	DisableColors bool
}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format("2006-01-02 15:04:05.000")
	level := strings.ToUpper(entry.Level.String())

	var levelColor, resetColor string
	if !f.DisableColors {
		resetColor = "\033[0m"
		switch entry.Level {
		case logrus.DebugLevel, logrus.TraceLevel:
			levelColor = "\033[36m" // Cyan
		case logrus.InfoLevel:
			levelColor = "\033[32m" // Green
		case logrus.WarnLevel:
			levelColor = "\033[33m" // Yellow
		case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
			levelColor = "\033[31m" // Red
		default:
			levelColor = resetColor
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s%s%s] %s", timestamp, levelColor, level, resetColor, entry.Message)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for key := range entry.Data {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		b.WriteString(" |")
		for _, key := range keys {
			fmt.Fprintf(&b, " %s=%v", key, entry.Data[key])
		}
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *logrus.Entry {
	return l.Logger.WithField(key, value)
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields logrus.Fields) *logrus.Entry {
	return l.Logger.WithFields(fields)
}

// WithError adds an error field to the logger
func (l *Logger) WithError(err error) *logrus.Entry {
	return l.Logger.WithError(err)
}

// Simulation logging

// LogTradeDetected logs a fill that delivers a GM token
func (l *Logger) LogTradeDetected(signature string, info *gm.TradeInfo) {
	l.WithFields(logrus.Fields{
		"event":     "gm_trade_detected",
		"signature": signature,
		"maker":     info.Maker.String(),
		"taker":     info.Taker.String(),
		"symbol":    info.GMTokenSymbol,
		"mint":      info.GMTokenMint.String(),
		"amount":    utils.FormatTokenAmount(info.GMTokenAmount, utils.GMTokenDecimals),
		"expire_at": info.ExpireAt,
	}).Info("🔍 GM trade detected")
}

// LogVerdict logs the classification of a transaction
func (l *Logger) LogVerdict(signature string, verdict gm.Verdict) {
	l.WithFields(logrus.Fields{
		"event":     "verdict",
		"signature": signature,
		"verdict":   verdict.String(),
	}).Info("📋 Transaction classified")
}

// LogBundleResult logs the outcome of a bundle simulation
func (l *Logger) LogBundleResult(signature string, succeeded bool, reason string, unitsConsumed []uint64, duration time.Duration) {
	entry := l.WithFields(logrus.Fields{
		"event":          "bundle_simulated",
		"signature":      signature,
		"succeeded":      succeeded,
		"units_consumed": unitsConsumed,
		"duration_ms":    duration.Milliseconds(),
	})
	if !succeeded {
		entry.WithField("reason", reason).Warn("❌ Bundle simulation failed")
		return
	}
	entry.Info("✅ Bundle simulation succeeded")
}

// LogError logs general errors with context
func (l *Logger) LogError(component, operation string, err error, fields logrus.Fields) {
	logFields := logrus.Fields{
		"event":     "error",
		"component": component,
		"operation": operation,
	}

	for k, v := range fields {
		logFields[k] = v
	}

	l.WithFields(logFields).WithError(err).Error("💥 Component error")
}

// LogStartup logs application startup information
func (l *Logger) LogStartup(version, network, rpcUrl string, mode string) {
	l.WithFields(logrus.Fields{
		"event":   "startup",
		"version": version,
		"network": network,
		"rpc_url": rpcUrl,
		"mode":    mode,
	}).Info("🚀 Simulator starting up")
}

// LogShutdown logs application shutdown information
func (l *Logger) LogShutdown(reason string, stats map[string]interface{}) {
	fields := logrus.Fields{
		"event":  "shutdown",
		"reason": reason,
	}
	for k, v := range stats {
		fields[k] = v
	}
	l.WithFields(fields).Info("🛑 Simulator shutting down")
}

// WithComponent returns a logger with component context
func (l *Logger) WithComponent(component string) *logrus.Entry {
	return l.WithField("component", component)
}

// WithTransaction returns a logger with transaction context
func (l *Logger) WithTransaction(signature string) *logrus.Entry {
	return l.WithField("transaction", signature)
}

// LogLatency logs operation latency
func (l *Logger) LogLatency(operation string, duration time.Duration) {
	l.WithFields(logrus.Fields{
		"event":     "latency",
		"operation": operation,
		"duration":  duration.Milliseconds(),
		"unit":      "ms",
	}).Debug("⏱️ Operation latency")
}

// LogInstruction dumps an instruction at debug level, labelled by its
// Anchor discriminator
func (l *Logger) LogInstruction(ix solana.Instruction) {
	if !l.IsLevelEnabled(logrus.DebugLevel) {
		return
	}

	accounts := make([]string, 0, len(ix.Accounts()))
	for i, acc := range ix.Accounts() {
		accounts = append(accounts, fmt.Sprintf("%d:%s(w=%v,s=%v)", i, acc.PublicKey, acc.IsWritable, acc.IsSigner))
	}

	fields := logrus.Fields{
		"instruction": "unknown",
		"program":     ix.ProgramID().String(),
		"accounts":    strings.Join(accounts, " "),
	}
	if data, err := ix.Data(); err != nil {
		fields["data_error"] = err.Error()
	} else {
		if d, err := anchor.DiscriminatorFromBytes(data); err == nil {
			fields["instruction"] = anchor.GetInstructionName(d)
		}
		fields["data"] = hex.EncodeToString(data)
	}

	l.WithFields(fields).Debug("Instruction")
}
