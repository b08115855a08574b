package gm

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

var (
	// ErrMalformedPayload is returned when fill data is shorter than its layout
	ErrMalformedPayload = errors.New("fill instruction data too short")
	// ErrInvalidAccountIndex is returned when the instruction lacks a required account slot
	ErrInvalidAccountIndex = errors.New("invalid account index in instruction")
	// ErrMissingAccount is returned when a slot points past the account key table
	ErrMissingAccount = errors.New("missing required account in transaction")
	// ErrEmptyTransaction is returned for messages without instructions
	ErrEmptyTransaction = errors.New("transaction has no instructions")
	// ErrUnauthorizedMaker matches every *UnauthorizedMakerError
	ErrUnauthorizedMaker = errors.New("maker is not an authorized GM solver")
)

// UnauthorizedMakerError carries the rejected maker key
type UnauthorizedMakerError struct {
	Maker solana.PublicKey
}

func (e *UnauthorizedMakerError) Error() string {
	return fmt.Sprintf("maker address %s is not an authorized GM solver", e.Maker)
}

func (e *UnauthorizedMakerError) Is(target error) bool {
	return target == ErrUnauthorizedMaker
}
