package anchor

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrDataTooShort is returned when instruction data does not cover a layout
var ErrDataTooShort = errors.New("instruction data too short")

// Encoding is the numeric encoding of a fixed-width field
type Encoding int

const (
	U64LE Encoding = iota
	I64LE
)

func (e Encoding) width() int {
	switch e {
	case U64LE, I64LE:
		return 8
	default:
		return 0
	}
}

func (e Encoding) String() string {
	switch e {
	case U64LE:
		return "u64"
	case I64LE:
		return "i64"
	default:
		return "unknown"
	}
}

// Field describes one fixed-width argument following the discriminator
type Field struct {
	Name     string
	Encoding Encoding
}

// Layout is an ordered list of fields laid out back to back after the
// 8-byte discriminator. Offsets are computed once in NewLayout.
type Layout struct {
	fields  []Field
	offsets map[string]int
	size    int
}

// NewLayout builds a layout from fields. Duplicate names and unknown
// encodings are programming errors and panic.
func NewLayout(fields ...Field) *Layout {
	l := &Layout{
		fields:  make([]Field, len(fields)),
		offsets: make(map[string]int, len(fields)),
		size:    DiscriminatorLength,
	}
	copy(l.fields, fields)

	for _, f := range fields {
		w := f.Encoding.width()
		if w == 0 {
			panic(fmt.Sprintf("anchor: field %q has unknown encoding %d", f.Name, f.Encoding))
		}
		if _, dup := l.offsets[f.Name]; dup {
			panic(fmt.Sprintf("anchor: duplicate field %q", f.Name))
		}
		l.offsets[f.Name] = l.size
		l.size += w
	}
	return l
}

// Size returns the minimum data length, discriminator included
func (l *Layout) Size() int {
	return l.size
}

// Offset returns the byte offset of a field within instruction data
func (l *Layout) Offset(name string) (int, bool) {
	off, ok := l.offsets[name]
	return off, ok
}

// Fields returns a copy of the layout fields
func (l *Layout) Fields() []Field {
	out := make([]Field, len(l.fields))
	copy(out, l.fields)
	return out
}

// Decode reads every field from data. Trailing bytes are ignored.
func (l *Layout) Decode(data []byte) (Record, error) {
	if len(data) < l.size {
		return Record{}, fmt.Errorf("%w: expected at least %d bytes, got %d", ErrDataTooShort, l.size, len(data))
	}

	values := make(map[string]uint64, len(l.fields))
	for _, f := range l.fields {
		off := l.offsets[f.Name]
		values[f.Name] = binary.LittleEndian.Uint64(data[off : off+f.Encoding.width()])
	}

	return Record{values: values}, nil
}

// Record holds decoded field values of one instruction
type Record struct {
	values map[string]uint64
}

// Uint64 returns an unsigned field
func (r Record) Uint64(name string) (uint64, error) {
	v, ok := r.values[name]
	if !ok {
		return 0, fmt.Errorf("unknown field %q", name)
	}
	return v, nil
}

// Int64 returns a signed field (two's complement of the raw bits)
func (r Record) Int64(name string) (int64, error) {
	v, ok := r.values[name]
	if !ok {
		return 0, fmt.Errorf("unknown field %q", name)
	}
	return int64(v), nil
}
