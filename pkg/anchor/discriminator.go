package anchor

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DiscriminatorLength is the size of an Anchor discriminator in bytes
const DiscriminatorLength = 8

// Discriminator represents an 8-byte instruction discriminator
type Discriminator [DiscriminatorLength]byte

// String returns hex representation of discriminator
func (d Discriminator) String() string {
	return hex.EncodeToString(d[:])
}

// Bytes returns discriminator as byte slice
func (d Discriminator) Bytes() []byte {
	return d[:]
}

// Equals compares two discriminators
func (d Discriminator) Equals(other Discriminator) bool {
	return d == other
}

// ComputeDiscriminator computes 8-byte discriminator for instruction/account.
// Collisions between different names are not detected.
func ComputeDiscriminator(namespace, name string) Discriminator {
	// sha256(namespace:name)[0:8]
	hash := sha256.Sum256([]byte(namespace + ":" + name))

	var discriminator Discriminator
	copy(discriminator[:], hash[:DiscriminatorLength])
	return discriminator
}

// ComputeInstructionDiscriminator computes discriminator for instruction
func ComputeInstructionDiscriminator(name string) Discriminator {
	return ComputeDiscriminator("global", name)
}

// Instruction discriminators used by the fill classifier and the mint builder.
var (
	FillDiscriminator   = ComputeInstructionDiscriminator("fill")
	MintGMDiscriminator = ComputeInstructionDiscriminator("mint_gm")

	KnownInstructionDiscriminators = map[Discriminator]string{
		FillDiscriminator:   "fill",
		MintGMDiscriminator: "mint_gm",
	}
)

// GetInstructionName returns instruction name for discriminator
func GetInstructionName(discriminator Discriminator) string {
	if name, exists := KnownInstructionDiscriminators[discriminator]; exists {
		return name
	}
	return "unknown"
}

// DiscriminatorFromBytes creates discriminator from byte slice
func DiscriminatorFromBytes(data []byte) (Discriminator, error) {
	if len(data) < DiscriminatorLength {
		return Discriminator{}, fmt.Errorf("data too short for discriminator: need %d bytes, got %d", DiscriminatorLength, len(data))
	}

	var discriminator Discriminator
	copy(discriminator[:], data[:DiscriminatorLength])
	return discriminator, nil
}

// HasDiscriminator reports whether data starts with exactly the expected discriminator
func HasDiscriminator(data []byte, expected Discriminator) bool {
	if len(data) < DiscriminatorLength {
		return false
	}
	return bytes.Equal(data[:DiscriminatorLength], expected[:])
}

// ValidateDiscriminator validates that data starts with expected discriminator
func ValidateDiscriminator(data []byte, expected Discriminator) error {
	actual, err := DiscriminatorFromBytes(data)
	if err != nil {
		return fmt.Errorf("failed to extract discriminator: %w", err)
	}

	if !actual.Equals(expected) {
		return fmt.Errorf("discriminator mismatch: expected %s, got %s",
			expected.String(), actual.String())
	}

	return nil
}
