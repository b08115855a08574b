package gm

import (
	"github.com/gagliardetto/solana-go"

	"gm-bundle-sim-go/pkg/anchor"
)

// IsFillInstruction reports whether ix targets program with the fill tag
func IsFillInstruction(ix solana.CompiledInstruction, keys []solana.PublicKey, program solana.PublicKey) bool {
	return matchesInstruction(ix, keys, program, anchor.FillDiscriminator)
}

// FindInstruction returns the index of the first instruction invoking program
// whose data starts with tag. Unresolvable program indices and short payloads
// never match.
func FindInstruction(ixs []solana.CompiledInstruction, keys []solana.PublicKey, program solana.PublicKey, tag anchor.Discriminator) (int, bool) {
	for i := range ixs {
		if matchesInstruction(ixs[i], keys, program, tag) {
			return i, true
		}
	}
	return -1, false
}

func matchesInstruction(ix solana.CompiledInstruction, keys []solana.PublicKey, program solana.PublicKey, tag anchor.Discriminator) bool {
	idx := int(ix.ProgramIDIndex)
	if idx >= len(keys) || !keys[idx].Equals(program) {
		return false
	}
	return anchor.HasDiscriminator(ix.Data, tag)
}
