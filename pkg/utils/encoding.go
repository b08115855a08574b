package utils

import (
	"encoding/base64"
	"fmt"
	"strings"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// Base58 encoding/decoding utilities

// EncodeBase58 encodes bytes to base58 string
func EncodeBase58(data []byte) string {
	return base58.Encode(data)
}

// DecodeBase58 decodes base58 string to bytes
func DecodeBase58(encoded string) ([]byte, error) {
	return base58.Decode(encoded)
}

// Base64 encoding/decoding utilities

// EncodeBase64 encodes bytes to base64 string
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 decodes base64 string to bytes
func DecodeBase64(encoded string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(encoded)
}

// IsValidSolanaAddress checks that s decodes to a 32-byte key
func IsValidSolanaAddress(s string) bool {
	decoded, err := base58.Decode(s)
	return err == nil && len(decoded) == solana.PublicKeyLength
}

// Transaction wire encoding

// TxEncoding names a textual encoding of a serialized transaction
type TxEncoding string

const (
	TxEncodingBase64 TxEncoding = "base64"
	TxEncodingBase58 TxEncoding = "base58"
)

// DecodeTransaction parses a serialized transaction in the given encoding.
// An empty encoding tries base64 first, then base58. Base58 text is often
// valid base64 too, so the fallback also covers a base64 read that decodes
// but does not deserialize.
func DecodeTransaction(encoded string, encoding TxEncoding) (*solana.Transaction, error) {
	encoded = strings.TrimSpace(encoded)

	switch encoding {
	case TxEncodingBase64:
		return parseTransaction(encoded, DecodeBase64)
	case TxEncodingBase58:
		return parseTransaction(encoded, DecodeBase58)
	case "":
		tx, err := parseTransaction(encoded, DecodeBase64)
		if err == nil {
			return tx, nil
		}
		tx, err58 := parseTransaction(encoded, DecodeBase58)
		if err58 != nil {
			return nil, fmt.Errorf("not a base64 or base58 transaction: base64: %v; base58: %w", err, err58)
		}
		return tx, nil
	default:
		return nil, fmt.Errorf("unsupported transaction encoding %q", encoding)
	}
}

func parseTransaction(encoded string, decode func(string) ([]byte, error)) (*solana.Transaction, error) {
	raw, err := decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode transaction bytes: %w", err)
	}

	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize transaction: %w", err)
	}
	return tx, nil
}

// EncodeTransactionBase64 serializes a transaction for RPC submission.
// Missing signatures are zero-filled so unsigned transactions keep a valid
// wire shape.
func EncodeTransactionBase64(tx *solana.Transaction) (string, error) {
	required := int(tx.Message.Header.NumRequiredSignatures)
	if len(tx.Signatures) < required {
		sigs := make([]solana.Signature, required)
		copy(sigs, tx.Signatures)
		padded := *tx
		padded.Signatures = sigs
		tx = &padded
	}

	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("failed to serialize transaction: %w", err)
	}
	return EncodeBase64(raw), nil
}
