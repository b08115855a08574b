package gm

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gm-bundle-sim-go/internal/config"
	"gm-bundle-sim-go/pkg/anchor"
	"gm-bundle-sim-go/pkg/utils"
)

func TestBuildMintGMInstruction_Payload(t *testing.T) {
	b := newTestBuilder(t)

	for _, amount := range []uint64{0, 1, 1_500_000_000, ^uint64(0)} {
		ix, err := b.BuildMintGMInstruction(testAAPLon, testSolver, amount)
		require.NoError(t, err)

		data, err := ix.Data()
		require.NoError(t, err)
		require.Len(t, data, 16)
		assert.Equal(t, anchor.MintGMDiscriminator.Bytes(), data[:8])
		assert.Equal(t, amount, binary.LittleEndian.Uint64(data[8:16]))
	}
}

func TestBuildMintGMInstruction_Accounts(t *testing.T) {
	b := newTestBuilder(t)
	owner := newKey()

	ix, err := b.BuildMintGMInstruction(testAAPLon, owner, 10)
	require.NoError(t, err)
	assert.Equal(t, config.GMProgramID, ix.ProgramID())

	metas := ix.Accounts()
	require.Len(t, metas, 12)

	idl, err := anchor.OndoGMIDL.GetInstruction("mint_gm")
	require.NoError(t, err)
	for i, acc := range idl.Accounts {
		assert.Equal(t, acc.IsMut, metas[i].IsWritable, acc.Name)
		assert.Equal(t, acc.IsSigner, metas[i].IsSigner, acc.Name)
	}

	pda := utils.NewGMProgramDerivation(config.GMProgramID)
	role, _, err := pda.DeriveMinterRole(config.AdminMinter)
	require.NoError(t, err)
	sanity, _, err := pda.DeriveOracleSanityCheck(testAAPLon)
	require.NoError(t, err)
	authority, _, err := pda.DeriveMintAuthority()
	require.NoError(t, err)
	manager, _, err := pda.DeriveUSDonManagerState()
	require.NoError(t, err)
	ata, _, err := utils.DeriveAssociatedTokenAddress(owner, testAAPLon, config.Token2022ProgramID)
	require.NoError(t, err)

	want := []solana.PublicKey{
		config.AdminMinter,
		config.AdminMinter,
		owner,
		role,
		sanity,
		authority,
		testAAPLon,
		ata,
		manager,
		config.Token2022ProgramID,
		config.AssociatedTokenProgramID,
		config.SystemProgramID,
	}
	for i, key := range want {
		assert.Equal(t, key, metas[i].PublicKey, "account %d (%s)", i, idl.Accounts[i].Name)
	}

	gmATA, err := b.GMTokenATA(owner, testAAPLon)
	require.NoError(t, err)
	assert.Equal(t, ata, gmATA)
}

func TestBuildMintGMInstructionWithATA(t *testing.T) {
	b := newTestBuilder(t)
	dest := newKey()

	ix, err := b.BuildMintGMInstructionWithATA(testAAPLon, dest, testSolver, 5)
	require.NoError(t, err)
	assert.Equal(t, dest, ix.Accounts()[7].PublicKey)
	assert.Equal(t, testSolver, ix.Accounts()[2].PublicKey)

	info := &TradeInfo{Maker: testSolver, GMTokenMint: testAAPLon, GMTokenAmount: 5, MakerOutputAccount: dest}
	toATA, err := b.BuildMockMintInstructionToATA(info)
	require.NoError(t, err)
	assert.Equal(t, dest, toATA.Accounts()[7].PublicKey)

	toOwner, err := b.BuildMockMintInstruction(info)
	require.NoError(t, err)
	ata, err := b.GMTokenATA(testSolver, testAAPLon)
	require.NoError(t, err)
	assert.Equal(t, ata, toOwner.Accounts()[7].PublicKey)
}

func TestNewCreateIdempotentATAInstruction(t *testing.T) {
	payer, owner := newKey(), newKey()

	ix, err := NewCreateIdempotentATAInstruction(payer, owner, config.USDCMint, config.TokenProgramID)
	require.NoError(t, err)
	assert.Equal(t, config.AssociatedTokenProgramID, ix.ProgramID())

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, data)

	ata, _, err := solana.FindAssociatedTokenAddress(owner, config.USDCMint)
	require.NoError(t, err)

	metas := ix.Accounts()
	require.Len(t, metas, 6)
	assert.Equal(t, payer, metas[0].PublicKey)
	assert.True(t, metas[0].IsSigner)
	assert.True(t, metas[0].IsWritable)
	assert.Equal(t, ata, metas[1].PublicKey)
	assert.True(t, metas[1].IsWritable)
	assert.Equal(t, owner, metas[2].PublicKey)
	assert.Equal(t, config.USDCMint, metas[3].PublicKey)
	assert.Equal(t, config.SystemProgramID, metas[4].PublicKey)
	assert.Equal(t, config.TokenProgramID, metas[5].PublicKey)
}

func TestBuildMockMintTransaction(t *testing.T) {
	b := newTestBuilder(t)
	taker := newKey()
	info := &TradeInfo{
		Maker:              testSolver,
		Taker:              taker,
		GMTokenMint:        testAAPLon,
		GMTokenSymbol:      "AAPLon",
		GMTokenAmount:      1_500_000_000,
		MakerOutputAccount: newKey(),
		ExpireAt:           testExpireAt,
	}
	blockhash := solana.Hash{1, 2, 3}

	tx, err := b.BuildMockMintTransaction(info, blockhash)
	require.NoError(t, err)

	msg := tx.Message
	require.Len(t, msg.Instructions, 5)
	assert.Equal(t, blockhash, msg.RecentBlockhash)
	assert.Equal(t, config.AdminMinter, msg.AccountKeys[0])
	assert.Equal(t, uint8(1), msg.Header.NumRequiredSignatures)

	require.Len(t, tx.Signatures, 1)
	assert.Equal(t, solana.Signature{}, tx.Signatures[0])

	key := func(ix solana.CompiledInstruction, slot int) solana.PublicKey {
		return msg.AccountKeys[ix.Accounts[slot]]
	}

	atas := []struct{ owner, mint, program solana.PublicKey }{
		{taker, testAAPLon, config.Token2022ProgramID},
		{testSolver, testAAPLon, config.Token2022ProgramID},
		{taker, config.USDCMint, config.TokenProgramID},
		{testSolver, config.USDCMint, config.TokenProgramID},
	}
	for i, want := range atas {
		ix := msg.Instructions[i]
		assert.Equal(t, config.AssociatedTokenProgramID, msg.AccountKeys[ix.ProgramIDIndex], "instruction %d", i)
		assert.Equal(t, []byte{1}, []byte(ix.Data))
		assert.Equal(t, config.AdminMinter, key(ix, 0))
		assert.Equal(t, want.owner, key(ix, 2), "instruction %d owner", i)
		assert.Equal(t, want.mint, key(ix, 3), "instruction %d mint", i)
		assert.Equal(t, want.program, key(ix, 5), "instruction %d token program", i)
	}

	mintIx := msg.Instructions[4]
	assert.Equal(t, config.GMProgramID, msg.AccountKeys[mintIx.ProgramIDIndex])
	require.Len(t, mintIx.Accounts, 12)
	assert.Equal(t, testSolver, key(mintIx, 2))
	require.Len(t, mintIx.Data, 16)
	assert.Equal(t, anchor.MintGMDiscriminator.Bytes(), []byte(mintIx.Data[:8]))
	assert.Equal(t, info.GMTokenAmount, binary.LittleEndian.Uint64(mintIx.Data[8:16]))

	amount, err := DecodeMintGMAmount(mintIx.Data)
	require.NoError(t, err)
	assert.Equal(t, info.GMTokenAmount, amount)

	_, err = b.BuildMockMintTransaction(nil, blockhash)
	assert.Error(t, err)
}

func TestEncodeBundle(t *testing.T) {
	b := newTestBuilder(t)
	taker := newKey()
	fill := newFill(testSolver, taker, config.USDCMint, testAAPLon, 200_000_000, 1_500_000_000)
	original := compileTx(t, taker, fill.ix)

	mock, err := b.BuildMockMintTransaction(&TradeInfo{Maker: testSolver, Taker: taker, GMTokenMint: testAAPLon, GMTokenAmount: 1}, solana.Hash{})
	require.NoError(t, err)

	bundle, err := EncodeBundle(mock, original)
	require.NoError(t, err)
	require.Len(t, bundle, 2)

	decodedMock, err := utils.DecodeTransaction(bundle[0], utils.TxEncodingBase64)
	require.NoError(t, err)
	assert.Len(t, decodedMock.Message.Instructions, 5)

	decodedFill, err := utils.DecodeTransaction(bundle[1], utils.TxEncodingBase64)
	require.NoError(t, err)
	assert.Equal(t, original.Message.AccountKeys, decodedFill.Message.AccountKeys)
	// taker and maker both sign the fill
	assert.Len(t, decodedFill.Signatures, 2)

	_, err = EncodeBundle(nil, original)
	assert.Error(t, err)
}

func TestNewMintBuilder_CustomIDL(t *testing.T) {
	src, err := anchor.OndoGMIDL.GetInstruction("mint_gm")
	require.NoError(t, err)

	// destination moved to the front
	accounts := []anchor.IDLAccount{src.Accounts[7]}
	accounts = append(accounts, src.Accounts[:7]...)
	accounts = append(accounts, src.Accounts[8:]...)

	cfg := DefaultMintConfig()
	cfg.IDL = &anchor.IDL{Name: "ondo_gm", Instructions: []anchor.Instruction{{Name: "mint_gm", Accounts: accounts, Args: src.Args}}}
	b, err := NewMintBuilder(cfg)
	require.NoError(t, err)

	ix, err := b.BuildMintGMInstruction(testAAPLon, testSolver, 5)
	require.NoError(t, err)
	ata, err := b.GMTokenATA(testSolver, testAAPLon)
	require.NoError(t, err)

	metas := ix.Accounts()
	require.Len(t, metas, 12)
	assert.Equal(t, ata, metas[0].PublicKey)
	assert.True(t, metas[0].IsWritable)
	assert.Equal(t, config.AdminMinter, metas[1].PublicKey)
}

func TestNewMintBuilder_InvalidIDL(t *testing.T) {
	src, err := anchor.OndoGMIDL.GetInstruction("mint_gm")
	require.NoError(t, err)

	tests := []struct {
		name string
		inst anchor.Instruction
	}{
		{"wrong name", anchor.Instruction{Name: "mint", Accounts: src.Accounts, Args: src.Args}},
		{"extra arg", anchor.Instruction{Name: "mint_gm", Accounts: src.Accounts, Args: []anchor.Arg{{Name: "amount", Type: "u64"}, {Name: "fee", Type: "u64"}}}},
		{"signed amount", anchor.Instruction{Name: "mint_gm", Accounts: src.Accounts, Args: []anchor.Arg{{Name: "amount", Type: "i64"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMintConfig()
			cfg.IDL = &anchor.IDL{Name: "ondo_gm", Instructions: []anchor.Instruction{tt.inst}}
			_, err := NewMintBuilder(cfg)
			assert.Error(t, err)
		})
	}

	// an account the builder has no key for fails at build time
	accounts := append([]anchor.IDLAccount(nil), src.Accounts...)
	accounts = append(accounts, anchor.IDLAccount{Name: "rentSysvar"})
	cfg := DefaultMintConfig()
	cfg.IDL = &anchor.IDL{Instructions: []anchor.Instruction{{Name: "mint_gm", Accounts: accounts, Args: src.Args}}}
	b, err := NewMintBuilder(cfg)
	require.NoError(t, err)
	_, err = b.BuildMintGMInstruction(testAAPLon, testSolver, 1)
	assert.Error(t, err)
}

func TestDecodeMintGMAmount(t *testing.T) {
	data := anchor.NewInstructionBuilder("mint_gm").AddU64(42).Build()
	amount, err := DecodeMintGMAmount(data)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), amount)

	_, err = DecodeMintGMAmount(data[:12])
	assert.ErrorIs(t, err, ErrMalformedPayload)

	_, err = DecodeMintGMAmount(append(data, 0))
	assert.ErrorIs(t, err, ErrMalformedPayload)

	_, err = DecodeMintGMAmount(anchor.NewInstructionBuilderWithDiscriminator(anchor.FillDiscriminator).AddU64(42).Build())
	assert.ErrorIs(t, err, ErrMalformedPayload)

	_, err = DecodeMintGMAmount(nil)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestMockMintInstruction(t *testing.T) {
	b := newTestBuilder(t)
	info := &TradeInfo{Maker: testSolver, Taker: newKey(), GMTokenMint: testAAPLon, GMTokenAmount: 77}

	tx, err := b.BuildMockMintTransaction(info, solana.Hash{})
	require.NoError(t, err)

	got, err := MockMintInstruction(tx)
	require.NoError(t, err)
	want, err := b.BuildMockMintInstruction(info)
	require.NoError(t, err)

	assert.Equal(t, want.ProgramID(), got.ProgramID())
	wantData, err := want.Data()
	require.NoError(t, err)
	gotData, err := got.Data()
	require.NoError(t, err)
	assert.Equal(t, wantData, gotData)

	require.Len(t, got.Accounts(), len(want.Accounts()))
	for i, meta := range want.Accounts() {
		assert.Equal(t, meta.PublicKey, got.Accounts()[i].PublicKey, "account %d", i)
		assert.Equal(t, meta.IsSigner, got.Accounts()[i].IsSigner, "account %d", i)
	}

	_, err = MockMintInstruction(nil)
	assert.ErrorIs(t, err, ErrEmptyTransaction)

	taker := newKey()
	fill := newFill(testSolver, taker, config.USDCMint, testAAPLon, 1, 1)
	_, err = MockMintInstruction(compileTx(t, taker, fill.ix))
	assert.ErrorIs(t, err, ErrMalformedPayload)
}
