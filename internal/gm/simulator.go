package gm

import (
	"fmt"
	"io"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"

	"gm-bundle-sim-go/internal/config"
	"gm-bundle-sim-go/pkg/utils"
)

// Simulator decides whether a transaction is a GM fill and builds the
// mock mint that must precede it in a simulated bundle.
// Safe for concurrent use.
type Simulator struct {
	allow       AllowList
	minter      *MintBuilder
	fillProgram solana.PublicKey
	fills       *FillDecoder
	log         logrus.FieldLogger
}

// Option configures a Simulator
type Option func(*Simulator)

// WithFillProgram overrides the program whose fill instructions are classified
func WithFillProgram(program solana.PublicKey) Option {
	return func(s *Simulator) {
		s.fillProgram = program
	}
}

// WithFillDecoder replaces the built-in fill layout
func WithFillDecoder(d *FillDecoder) Option {
	return func(s *Simulator) {
		if d != nil {
			s.fills = d
		}
	}
}

// NewSimulator wires the allow-list and mint builder. A nil logger discards output.
func NewSimulator(allow AllowList, minter *MintBuilder, logger *logrus.Logger, opts ...Option) *Simulator {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	s := &Simulator{
		allow:       allow,
		minter:      minter,
		fillProgram: config.JupiterOrderEngineProgramID,
		fills:       defaultFillDecoder,
		log:         logger.WithField("component", "gm_simulator"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckMessage classifies the first fill instruction of msg.
// Only static account keys are consulted for v0 messages.
func (s *Simulator) CheckMessage(msg *solana.Message) (*CheckResult, error) {
	if msg == nil || len(msg.Instructions) == 0 {
		return nil, ErrEmptyTransaction
	}

	idx, ok := FindInstruction(msg.Instructions, msg.AccountKeys, s.fillProgram, s.fills.tag)
	if !ok {
		s.log.WithField("verdict", VerdictNoMatch).Debug("No fill instruction")
		return noMatch(), nil
	}

	info, err := s.fills.Parse(msg.Instructions[idx], msg.AccountKeys, s.allow)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"instruction": idx,
		}).WithError(err).Debug("Fill rejected")
		return nil, fmt.Errorf("instruction %d: %w", idx, err)
	}

	if info == nil {
		s.log.WithField("verdict", VerdictNotGMTrade).Debug("Fill does not deliver a GM token")
		return notGMTrade(), nil
	}

	s.log.WithFields(logrus.Fields{
		"verdict":  VerdictGMTrade,
		"maker":    info.Maker.String(),
		"taker":    info.Taker.String(),
		"symbol":   info.GMTokenSymbol,
		"amount":   utils.FormatTokenAmount(info.GMTokenAmount, utils.GMTokenDecimals),
		"expireAt": info.ExpireAt,
	}).Info("GM trade detected")

	return gmTrade(info), nil
}

// CheckTransaction classifies a transaction's message
func (s *Simulator) CheckTransaction(tx *solana.Transaction) (*CheckResult, error) {
	if tx == nil {
		return nil, ErrEmptyTransaction
	}
	return s.CheckMessage(&tx.Message)
}

// BuildMockMint builds the mock mint transaction for a detected trade
func (s *Simulator) BuildMockMint(info *TradeInfo, recentBlockhash solana.Hash) (*solana.Transaction, error) {
	return s.minter.BuildMockMintTransaction(info, recentBlockhash)
}

// MaybeBuildMockMint returns the mock mint transaction for a GM trade and
// nil for anything else.
func (s *Simulator) MaybeBuildMockMint(tx *solana.Transaction, recentBlockhash solana.Hash) (*solana.Transaction, error) {
	result, err := s.CheckTransaction(tx)
	if err != nil {
		return nil, err
	}
	if !result.UseBundleSim() {
		return nil, nil
	}
	return s.BuildMockMint(result.TradeInfo, recentBlockhash)
}
