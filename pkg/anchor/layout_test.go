package anchor

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayout_Offsets(t *testing.T) {
	l := NewLayout(
		Field{Name: "a", Encoding: U64LE},
		Field{Name: "b", Encoding: U64LE},
		Field{Name: "c", Encoding: I64LE},
	)

	assert.Equal(t, 32, l.Size())
	for name, want := range map[string]int{"a": 8, "b": 16, "c": 24} {
		off, ok := l.Offset(name)
		require.True(t, ok)
		assert.Equal(t, want, off, name)
	}
	_, ok := l.Offset("missing")
	assert.False(t, ok)
	assert.Len(t, l.Fields(), 3)
}

func TestNewLayout_PanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		NewLayout(Field{Name: "a", Encoding: U64LE}, Field{Name: "a", Encoding: I64LE})
	})
	assert.Panics(t, func() {
		NewLayout(Field{Name: "a", Encoding: Encoding(42)})
	})
}

func TestLayoutDecode(t *testing.T) {
	l := NewLayout(
		Field{Name: "amount", Encoding: U64LE},
		Field{Name: "expiry", Encoding: I64LE},
	)

	data := NewInstructionBuilderWithDiscriminator(FillDiscriminator).
		AddU64(math.MaxUint64).
		AddI64(-5).
		Build()
	data = append(data, 0xff, 0xff)

	rec, err := l.Decode(data)
	require.NoError(t, err)

	amount, err := rec.Uint64("amount")
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), amount)

	expiry, err := rec.Int64("expiry")
	require.NoError(t, err)
	assert.Equal(t, int64(-5), expiry)

	_, err = rec.Uint64("nope")
	assert.Error(t, err)
	_, err = rec.Int64("nope")
	assert.Error(t, err)
}

func TestLayoutDecode_TooShort(t *testing.T) {
	l := NewLayout(Field{Name: "amount", Encoding: U64LE})

	for _, n := range []int{0, 7, 8, 15} {
		_, err := l.Decode(make([]byte, n))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDataTooShort), "len %d", n)
	}

	_, err := l.Decode(make([]byte, 16))
	assert.NoError(t, err)
}

func TestInstructionBuilderAndDecoder(t *testing.T) {
	data := NewInstructionBuilder("mint_gm").AddU64(1_500_000_000).Build()
	require.Len(t, data, 16)

	assert.True(t, HasDiscriminator(data, MintGMDiscriminator))

	dec := NewInstructionDecoder(data)
	assert.Equal(t, 8, dec.Remaining())
	v, err := dec.ReadU64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1_500_000_000), v)
	assert.Equal(t, 0, dec.Remaining())

	_, err = dec.ReadU64()
	assert.Error(t, err)

	assert.Equal(t, 0, NewInstructionDecoder([]byte{1, 2}).Remaining())
}

func TestIDLArgsLayout(t *testing.T) {
	fill, err := JupiterOrderEngineIDL.GetInstruction("fill")
	require.NoError(t, err)

	l, err := fill.ArgsLayout()
	require.NoError(t, err)
	assert.Equal(t, 32, l.Size())

	off, _ := l.Offset("outputAmount")
	assert.Equal(t, 16, off)
	off, _ = l.Offset("expireAt")
	assert.Equal(t, 24, off)

	idx, ok := fill.AccountIndex("outputMint")
	assert.True(t, ok)
	assert.Equal(t, 8, idx)

	bad := &Instruction{Name: "x", Args: []Arg{{Name: "s", Type: "string"}}}
	_, err = bad.ArgsLayout()
	assert.Error(t, err)
	assert.Panics(t, func() { bad.MustArgsLayout() })

	_, err = OndoGMIDL.GetInstruction("burn_gm")
	assert.Error(t, err)
}
