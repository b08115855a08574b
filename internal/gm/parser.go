package gm

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"gm-bundle-sim-go/pkg/anchor"
)

// DefaultTokenSymbol is reported for GM mints without a registered ticker
const DefaultTokenSymbol = "GM"

// AllowList answers maker and asset membership questions
type AllowList interface {
	IsAuthorizedMaker(key solana.PublicKey) bool
	IsGMToken(mint solana.PublicKey) bool
	TokenSymbol(mint solana.PublicKey) (string, bool)
}

// FillDecoder reads fills laid out by an order engine IDL.
// Immutable after construction.
type FillDecoder struct {
	tag    anchor.Discriminator
	layout *anchor.Layout

	takerSlot       int
	makerSlot       int
	makerOutputSlot int
	outputMintSlot  int
}

// NewFillDecoder resolves the fill instruction of idl. The IDL must name the
// taker, maker, makerOutputMintTokenAccount and outputMint accounts and the
// outputAmount and expireAt args.
func NewFillDecoder(idl *anchor.IDL) (*FillDecoder, error) {
	inst, err := idl.GetInstruction("fill")
	if err != nil {
		return nil, err
	}
	layout, err := inst.ArgsLayout()
	if err != nil {
		return nil, err
	}
	for _, arg := range []string{"outputAmount", "expireAt"} {
		if _, ok := layout.Offset(arg); !ok {
			return nil, fmt.Errorf("fill: no arg %q", arg)
		}
	}

	d := &FillDecoder{
		tag:    anchor.ComputeInstructionDiscriminator(inst.Name),
		layout: layout,
	}
	slots := []struct {
		name string
		dst  *int
	}{
		{"taker", &d.takerSlot},
		{"maker", &d.makerSlot},
		{"makerOutputMintTokenAccount", &d.makerOutputSlot},
		{"outputMint", &d.outputMintSlot},
	}
	for _, slot := range slots {
		idx, ok := inst.AccountIndex(slot.name)
		if !ok {
			return nil, fmt.Errorf("fill: no account %q", slot.name)
		}
		*slot.dst = idx
	}
	return d, nil
}

// Layout returns the argument layout fills are decoded with
func (d *FillDecoder) Layout() *anchor.Layout {
	return d.layout
}

var defaultFillDecoder = mustFillDecoder(anchor.JupiterOrderEngineIDL)

// FillLayout is the argument layout of the fill instruction:
// inputAmount u64, outputAmount u64, expireAt i64
var FillLayout = defaultFillDecoder.Layout()

// ParseFill extracts the trade behind a fill instruction of the built-in
// order engine layout. See FillDecoder.Parse.
func ParseFill(ix solana.CompiledInstruction, keys []solana.PublicKey, allow AllowList) (*TradeInfo, error) {
	return defaultFillDecoder.Parse(ix, keys, allow)
}

// Parse extracts the trade behind a fill instruction.
// It returns (nil, nil) when the fill is valid but does not deliver a GM token,
// and an *UnauthorizedMakerError when the maker is not an authorized solver.
func (d *FillDecoder) Parse(ix solana.CompiledInstruction, keys []solana.PublicKey, allow AllowList) (*TradeInfo, error) {
	if len(ix.Data) < d.layout.Size() {
		return nil, fmt.Errorf("%w: expected at least %d bytes, got %d", ErrMalformedPayload, d.layout.Size(), len(ix.Data))
	}
	if err := anchor.ValidateDiscriminator(ix.Data, d.tag); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	account := func(slot int) (solana.PublicKey, error) {
		if slot >= len(ix.Accounts) {
			return solana.PublicKey{}, fmt.Errorf("%w: slot %d of %d", ErrInvalidAccountIndex, slot, len(ix.Accounts))
		}
		idx := int(ix.Accounts[slot])
		if idx >= len(keys) {
			return solana.PublicKey{}, fmt.Errorf("%w: key index %d of %d", ErrMissingAccount, idx, len(keys))
		}
		return keys[idx], nil
	}

	maker, err := account(d.makerSlot)
	if err != nil {
		return nil, err
	}
	taker, err := account(d.takerSlot)
	if err != nil {
		return nil, err
	}
	makerOutput, err := account(d.makerOutputSlot)
	if err != nil {
		return nil, err
	}
	outputMint, err := account(d.outputMintSlot)
	if err != nil {
		return nil, err
	}

	if !allow.IsAuthorizedMaker(maker) {
		return nil, &UnauthorizedMakerError{Maker: maker}
	}

	if !allow.IsGMToken(outputMint) {
		return nil, nil
	}

	rec, err := d.layout.Decode(ix.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	amount, err := rec.Uint64("outputAmount")
	if err != nil {
		return nil, err
	}
	expireAt, err := rec.Int64("expireAt")
	if err != nil {
		return nil, err
	}

	symbol, ok := allow.TokenSymbol(outputMint)
	if !ok || symbol == "" {
		symbol = DefaultTokenSymbol
	}

	return &TradeInfo{
		Maker:              maker,
		Taker:              taker,
		GMTokenMint:        outputMint,
		GMTokenSymbol:      symbol,
		GMTokenAmount:      amount,
		MakerOutputAccount: makerOutput,
		ExpireAt:           expireAt,
	}, nil
}

func mustFillDecoder(idl *anchor.IDL) *FillDecoder {
	d, err := NewFillDecoder(idl)
	if err != nil {
		panic(err)
	}
	return d
}
