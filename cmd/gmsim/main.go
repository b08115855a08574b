package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/gagliardetto/solana-go"

	"gm-bundle-sim-go/internal/client"
	"gm-bundle-sim-go/internal/config"
	"gm-bundle-sim-go/internal/gm"
	"gm-bundle-sim-go/internal/logger"
	"gm-bundle-sim-go/internal/registry"
	solrpc "gm-bundle-sim-go/internal/solana"
	"gm-bundle-sim-go/pkg/anchor"
	"gm-bundle-sim-go/pkg/utils"
)

const Version = "0.3.0"

// fillLogMarker is emitted by the order engine for every fill
const fillLogMarker = "Instruction: Fill"

// seenCapacity bounds the signatures remembered for log deduplication
const seenCapacity = 8192

// CLI flags
var (
	configFile = flag.String("config", "", "Path to config file")
	envFile    = flag.String("env", "", "Path to .env file")
	network    = flag.String("network", "", "Network to use (mainnet/devnet)")
	logLevel   = flag.String("log-level", "", "Log level (debug/info/warn/error)")

	signature = flag.String("sig", "", "Fetch a landed transaction by signature and simulate it")
	rawTx     = flag.String("tx", "", "Serialized transaction to check (base64 or base58)")
	encoding  = flag.String("encoding", "", "Encoding of -tx: base64, base58 or empty to detect")
	watch     = flag.Bool("watch", false, "Watch fill program logs and simulate every fill")
	workers   = flag.Int("workers", 4, "Concurrent simulations in watch mode")

	noSim    = flag.Bool("no-sim", false, "Classify only, do not simulate")
	mockOnly = flag.Bool("mock-only", false, "Simulate the mock mint alone via RPC instead of a Jito bundle")
)

// App wires the simulator to its network adapters
type App struct {
	config    *config.Config
	logger    *logger.Logger
	recorder  *logger.SimulationRecorder
	rpc       *client.Client
	blockhash *solrpc.BlockhashProvider
	jito      *client.JitoClient
	simulator *gm.Simulator
}

func main() {
	flag.Parse()

	cfg, err := loadConfigurationWithOverrides()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(logger.LogConfig{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		LogToFile:   cfg.Logging.LogToFile,
		LogFilePath: cfg.Logging.LogFilePath,
		RecordDir:   cfg.Logging.RecordDir,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	app, err := NewApp(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to create application")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("Run failed")
		log.Close()
		os.Exit(1)
	}
}

func loadConfigurationWithOverrides() (*config.Config, error) {
	// An empty path searches ./, ./configs and $HOME/.gmsim for gmsim.yaml
	cfg, err := config.LoadConfig(*configFile, *envFile)
	if err != nil {
		return nil, err
	}

	if *network != "" {
		if err := cfg.SetNetwork(*network); err != nil {
			return nil, err
		}
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	return cfg, nil
}

// NewApp builds every component from configuration
func NewApp(cfg *config.Config, log *logger.Logger) (*App, error) {
	reg, err := loadRegistry(cfg.GM.RegistryFile)
	if err != nil {
		return nil, err
	}

	mintIDL, err := loadIDL(cfg.GM.IDLFile)
	if err != nil {
		return nil, err
	}
	minter, err := gm.NewMintBuilder(gm.MintConfig{
		ProgramID:              cfg.GMProgram(),
		AdminMinter:            cfg.Minter(),
		TokenProgram:           config.Token2022ProgramID,
		SettlementMint:         cfg.SettlementMint(),
		SettlementTokenProgram: config.TokenProgramID,
		IDL:                    mintIDL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mint builder: %w", err)
	}

	simOpts := []gm.Option{gm.WithFillProgram(cfg.FillProgram())}
	if cfg.GM.FillIDLFile != "" {
		fillIDL, err := loadIDL(cfg.GM.FillIDLFile)
		if err != nil {
			return nil, err
		}
		fills, err := gm.NewFillDecoder(fillIDL)
		if err != nil {
			return nil, fmt.Errorf("failed to create fill decoder: %w", err)
		}
		simOpts = append(simOpts, gm.WithFillDecoder(fills))
	}

	var recorder *logger.SimulationRecorder
	if cfg.Logging.RecordDir != "" {
		recorder, err = logger.NewSimulationRecorder(cfg.Logging.RecordDir, log)
		if err != nil {
			return nil, err
		}
	}

	log.WithFields(map[string]interface{}{
		"gm_tokens":     reg.TokenCount(),
		"fill_program":  cfg.FillProgram().String(),
		"gm_program":    cfg.GMProgram().String(),
		"idl_file":      cfg.GM.IDLFile,
		"fill_idl_file": cfg.GM.FillIDLFile,
	}).Info("Registry loaded")

	return &App{
		config:   cfg,
		logger:   log,
		recorder: recorder,
		rpc: client.NewClient(client.ClientConfig{
			RPCEndpoint: cfg.RPCUrl,
			APIKey:      cfg.RPCAPIKey,
			Timeout:     30 * time.Second,
		}, log.Logger),
		blockhash: solrpc.NewBlockhashProvider(solrpc.ProviderConfig{Endpoint: cfg.RPCUrl}, log.Logger),
		jito: client.NewJitoClient(client.JitoClientConfig{
			Endpoint: cfg.Jito.Endpoint,
			APIKey:   cfg.Jito.APIKey,
			Timeout:  cfg.JitoTimeout(),
		}, log.Logger),
		simulator: gm.NewSimulator(reg, minter, log.Logger, simOpts...),
	}, nil
}

// loadRegistry reads path, or builds the compiled-in tables when it is empty
func loadRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		return registry.New(registry.DefaultSnapshot())
	}
	reg, err := registry.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}
	return reg, nil
}

// loadIDL returns nil for an empty path so the built-in IDL is used
func loadIDL(path string) (*anchor.IDL, error) {
	if path == "" {
		return nil, nil
	}
	idl, err := anchor.LoadIDL(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load IDL %s: %w", path, err)
	}
	return idl, nil
}

// Run executes the mode selected by the flags
func (a *App) Run(ctx context.Context) error {
	switch {
	case *watch:
		a.logger.LogStartup(Version, a.config.Network, a.config.RPCUrl, "watch")
		return a.watchFills(ctx)
	case *signature != "":
		a.logger.LogStartup(Version, a.config.Network, a.config.RPCUrl, "signature")
		fetched, err := a.rpc.GetTransaction(ctx, *signature)
		if err != nil {
			return err
		}
		if fetched.Failed {
			a.logger.WithTransaction(*signature).Warn("Transaction failed on chain, simulating anyway")
		}
		return a.report(a.process(ctx, *signature, fetched.Slot, fetched.Transaction))
	case *rawTx != "":
		tx, err := utils.DecodeTransaction(*rawTx, utils.TxEncoding(*encoding))
		if err != nil {
			return err
		}
		sig := ""
		if len(tx.Signatures) > 0 {
			sig = tx.Signatures[0].String()
		}
		return a.report(a.process(ctx, sig, 0, tx))
	default:
		flag.Usage()
		return fmt.Errorf("one of -sig, -tx or -watch is required")
	}
}

func (a *App) report(rec logger.SimulationRecord) error {
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	if rec.ErrorMessage != "" {
		return errors.New(rec.ErrorMessage)
	}
	return nil
}

// process classifies tx and, for GM fills, simulates the mock mint bundle
func (a *App) process(ctx context.Context, sig string, slot uint64, tx *solana.Transaction) logger.SimulationRecord {
	rec := logger.SimulationRecord{Signature: sig, Slot: slot}
	defer a.record(&rec)

	result, err := a.simulator.CheckTransaction(tx)
	if err != nil {
		a.logger.LogError("simulator", "check", err, map[string]interface{}{"signature": sig})
		rec.ErrorMessage = err.Error()
		return rec
	}

	rec.Verdict = result.Verdict
	a.logger.LogVerdict(sig, result.Verdict)
	if !result.UseBundleSim() {
		return rec
	}

	info := result.TradeInfo
	rec.Trade = info
	a.logger.LogTradeDetected(sig, info)
	if *noSim {
		return rec
	}

	if *mockOnly {
		a.simulateMockOnly(ctx, &rec, tx)
		return rec
	}
	a.simulateBundle(ctx, &rec, tx)
	return rec
}

func (a *App) mockMint(ctx context.Context, info *gm.TradeInfo, original *solana.Transaction) (*solana.Transaction, error) {
	hash, err := a.blockhash.LatestBlockhash(ctx)
	if err != nil {
		// Simulation replaces the blockhash, the original one only needs to parse
		a.logger.WithError(err).Warn("Using original blockhash for mock mint")
		hash = original.Message.RecentBlockhash
	}

	mock, err := a.simulator.BuildMockMint(info, hash)
	if err != nil {
		return nil, err
	}
	if ix, err := gm.MockMintInstruction(mock); err == nil {
		a.logger.LogInstruction(ix)
	}
	return mock, nil
}

func (a *App) simulateBundle(ctx context.Context, rec *logger.SimulationRecord, tx *solana.Transaction) {
	mock, err := a.mockMint(ctx, rec.Trade, tx)
	if err != nil {
		rec.ErrorMessage = err.Error()
		return
	}

	encoded, err := gm.EncodeBundle(mock, tx)
	if err != nil {
		rec.ErrorMessage = err.Error()
		return
	}

	start := time.Now()
	res, err := a.jito.SimulateBundle(ctx, encoded, client.DefaultSimulateBundleConfig(len(encoded)))
	if err != nil {
		a.logger.LogError("jito", "simulateBundle", err, map[string]interface{}{"signature": rec.Signature})
		rec.ErrorMessage = err.Error()
		return
	}

	rec.BundleSimulated = true
	rec.BundleSucceeded = res.Value.Succeeded()
	rec.FailureReason = res.Value.FailureReason()
	for _, r := range res.Value.TransactionResults {
		if r.UnitsConsumed != nil {
			rec.UnitsConsumed = append(rec.UnitsConsumed, *r.UnitsConsumed)
		}
	}
	a.logger.LogBundleResult(rec.Signature, rec.BundleSucceeded, rec.FailureReason, rec.UnitsConsumed, time.Since(start))
}

func (a *App) simulateMockOnly(ctx context.Context, rec *logger.SimulationRecord, tx *solana.Transaction) {
	mock, err := a.mockMint(ctx, rec.Trade, tx)
	if err != nil {
		rec.ErrorMessage = err.Error()
		return
	}

	start := time.Now()
	res, err := a.rpc.SimulateTransaction(ctx, mock)
	if err != nil {
		a.logger.LogError("rpc", "simulateTransaction", err, map[string]interface{}{"signature": rec.Signature})
		rec.ErrorMessage = err.Error()
		return
	}

	rec.BundleSimulated = true
	rec.BundleSucceeded = res.Err == nil
	if res.Err != nil {
		rec.FailureReason = fmt.Sprintf("%v", res.Err)
	}
	if res.UnitsConsumed != nil {
		rec.UnitsConsumed = []uint64{*res.UnitsConsumed}
	}
	a.logger.LogBundleResult(rec.Signature, rec.BundleSucceeded, rec.FailureReason, rec.UnitsConsumed, time.Since(start))
}

func (a *App) record(rec *logger.SimulationRecord) {
	if a.recorder == nil {
		return
	}
	if err := a.recorder.Record(*rec); err != nil {
		a.logger.WithError(err).Warn("Failed to record simulation")
	}
}

// watchFills subscribes to fill program logs and simulates each fill
func (a *App) watchFills(ctx context.Context) error {
	if slot, err := a.blockhash.Slot(ctx); err == nil {
		a.logger.WithField("slot", slot).Info("RPC node reachable")
	}
	if !*noSim && !*mockOnly {
		if err := a.jito.HealthCheck(ctx); err != nil {
			a.logger.WithError(err).Warn("Bundle simulation endpoint unreachable, simulations may fail")
		}
	}

	ws := client.NewWSClient(a.config.WSUrl, a.logger.Logger)
	if err := ws.Connect(); err != nil {
		return err
	}
	defer ws.Disconnect()

	signatures := make(chan string, 256)
	seen := newRecentSet(seenCapacity)

	subID, err := ws.SubscribeToLogs(a.config.FillProgram().String(), func(n client.LogsNotification) error {
		if n.Result.Value.Err != nil || !containsFill(n.Result.Value.Logs) {
			return nil
		}
		sig := n.Result.Value.Signature
		if !seen.Add(sig) {
			return nil
		}
		select {
		case signatures <- sig:
		default:
			a.logger.WithTransaction(sig).Warn("Simulation queue full, dropping fill")
		}
		return nil
	})
	if err != nil {
		return err
	}
	a.logger.WithField("subscription", subID).Info("Watching fills")

	var wg sync.WaitGroup
	for i := 0; i < max(*workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case sig := <-signatures:
					a.processSignature(ctx, sig)
				}
			}
		}()
	}

	<-ctx.Done()
	wg.Wait()

	stats := ws.GetConnectionStats()
	if err := ws.Unsubscribe(subID); err != nil {
		a.logger.WithError(err).Debug("Unsubscribe on shutdown failed")
	}
	a.logger.LogShutdown(ctx.Err().Error(), stats)

	if a.recorder != nil {
		if err := a.recorder.WriteDailySummary(); err != nil {
			a.logger.WithError(err).Warn("Failed to write daily summary")
		}
	}
	return nil
}

func (a *App) processSignature(ctx context.Context, sig string) {
	start := time.Now()
	fetched, err := a.rpc.GetTransaction(ctx, sig)
	if err != nil {
		a.logger.LogError("rpc", "getTransaction", err, map[string]interface{}{"signature": sig})
		return
	}
	a.process(ctx, sig, fetched.Slot, fetched.Transaction)
	a.logger.LogLatency("process_fill", time.Since(start))
}

func containsFill(logs []string) bool {
	for _, l := range logs {
		if strings.Contains(l, fillLogMarker) {
			return true
		}
	}
	return false
}
