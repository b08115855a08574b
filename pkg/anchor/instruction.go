package anchor

import (
	"encoding/binary"
	"fmt"
)

// InstructionBuilder helps build Anchor instructions
type InstructionBuilder struct {
	data []byte
}

// NewInstructionBuilder creates a new instruction builder
func NewInstructionBuilder(instructionName string) *InstructionBuilder {
	return NewInstructionBuilderWithDiscriminator(ComputeInstructionDiscriminator(instructionName))
}

// NewInstructionBuilderWithDiscriminator starts instruction data from a known discriminator
func NewInstructionBuilderWithDiscriminator(discriminator Discriminator) *InstructionBuilder {
	data := make([]byte, DiscriminatorLength, 32)
	copy(data, discriminator[:])
	return &InstructionBuilder{data: data}
}

// AddU64 adds a u64 value to instruction data (little endian)
func (ib *InstructionBuilder) AddU64(value uint64) *InstructionBuilder {
	ib.data = binary.LittleEndian.AppendUint64(ib.data, value)
	return ib
}

// AddI64 adds an i64 value to instruction data (little endian)
func (ib *InstructionBuilder) AddI64(value int64) *InstructionBuilder {
	return ib.AddU64(uint64(value))
}

// Build returns the final instruction data
func (ib *InstructionBuilder) Build() []byte {
	out := make([]byte, len(ib.data))
	copy(out, ib.data)
	return out
}

// InstructionDecoder reads sequential values after the discriminator
type InstructionDecoder struct {
	data   []byte
	offset int
}

// NewInstructionDecoder creates a new instruction decoder
func NewInstructionDecoder(data []byte) *InstructionDecoder {
	return &InstructionDecoder{
		data:   data,
		offset: DiscriminatorLength, // Skip discriminator
	}
}

// ReadU64 reads a u64 value from instruction data (little endian)
func (id *InstructionDecoder) ReadU64() (uint64, error) {
	if id.offset+8 > len(id.data) {
		return 0, fmt.Errorf("not enough data to read u64 at offset %d", id.offset)
	}
	value := binary.LittleEndian.Uint64(id.data[id.offset:])
	id.offset += 8
	return value, nil
}

// Remaining returns remaining bytes count
func (id *InstructionDecoder) Remaining() int {
	if id.offset > len(id.data) {
		return 0
	}
	return len(id.data) - id.offset
}
