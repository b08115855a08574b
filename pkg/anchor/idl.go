package anchor

import (
	"encoding/json"
	"fmt"
	"os"
)

// IDL represents the subset of an Anchor IDL file needed to recognise and
// build instructions
type IDL struct {
	Version      string        `json:"version"`
	Name         string        `json:"name"`
	Address      string        `json:"address,omitempty"`
	Instructions []Instruction `json:"instructions"`
}

// Instruction represents an instruction definition
type Instruction struct {
	Name     string       `json:"name"`
	Accounts []IDLAccount `json:"accounts"`
	Args     []Arg        `json:"args"`
}

// IDLAccount represents an account in instruction context
type IDLAccount struct {
	Name     string `json:"name"`
	IsMut    bool   `json:"isMut"`
	IsSigner bool   `json:"isSigner"`
}

// Arg represents a scalar instruction argument
type Arg struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// LoadIDL loads an IDL file from path
func LoadIDL(path string) (*IDL, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read IDL file: %w", err)
	}

	var idl IDL
	if err := json.Unmarshal(data, &idl); err != nil {
		return nil, fmt.Errorf("failed to parse IDL JSON: %w", err)
	}

	return &idl, nil
}

// GetInstruction returns instruction by name
func (idl *IDL) GetInstruction(name string) (*Instruction, error) {
	for i := range idl.Instructions {
		if idl.Instructions[i].Name == name {
			return &idl.Instructions[i], nil
		}
	}
	return nil, fmt.Errorf("instruction '%s' not found in %s IDL", name, idl.Name)
}

// AccountIndex returns the position of a named account in the instruction
func (inst *Instruction) AccountIndex(name string) (int, bool) {
	for i, acc := range inst.Accounts {
		if acc.Name == name {
			return i, true
		}
	}
	return -1, false
}

// ArgsLayout builds the data layout of the instruction arguments.
// Only fixed-width u64/i64 arguments are supported.
func (inst *Instruction) ArgsLayout() (*Layout, error) {
	fields := make([]Field, 0, len(inst.Args))
	for _, arg := range inst.Args {
		switch arg.Type {
		case "u64":
			fields = append(fields, Field{Name: arg.Name, Encoding: U64LE})
		case "i64":
			fields = append(fields, Field{Name: arg.Name, Encoding: I64LE})
		default:
			return nil, fmt.Errorf("instruction %s: unsupported arg type %q for %s", inst.Name, arg.Type, arg.Name)
		}
	}
	return NewLayout(fields...), nil
}

// MustArgsLayout is ArgsLayout for IDLs compiled into the binary
func (inst *Instruction) MustArgsLayout() *Layout {
	layout, err := inst.ArgsLayout()
	if err != nil {
		panic(err)
	}
	return layout
}

// JupiterOrderEngineIDL describes the RFQ fill instruction of the Jupiter
// Order Engine. Account order verified against mainnet fills.
var JupiterOrderEngineIDL = &IDL{
	Version: "0.1.0",
	Name:    "order_engine",
	Address: "61DFfeTKM7trxYcPQCM78bJ794ddZprZpAwAnLiwTpYH",
	Instructions: []Instruction{
		{
			Name: "fill",
			Accounts: []IDLAccount{
				{Name: "taker", IsMut: true, IsSigner: true},
				{Name: "maker", IsMut: true, IsSigner: true},
				{Name: "takerInputMintTokenAccount", IsMut: true},
				{Name: "makerInputMintTokenAccount", IsMut: true},
				{Name: "takerOutputMintTokenAccount", IsMut: true},
				{Name: "makerOutputMintTokenAccount", IsMut: true},
				{Name: "inputMint"},
				{Name: "inputTokenProgram"},
				{Name: "outputMint"},
				{Name: "outputTokenProgram"},
				{Name: "systemProgram"},
			},
			Args: []Arg{
				{Name: "inputAmount", Type: "u64"},
				{Name: "outputAmount", Type: "u64"},
				{Name: "expireAt", Type: "i64"},
			},
		},
	},
}

// OndoGMIDL describes the admin mint instruction of the Ondo GM program
var OndoGMIDL = &IDL{
	Version: "0.1.0",
	Name:    "ondo_gm",
	Address: "XzTT4XB8m7sLD2xi6snefSasaswsKCxx5Tifjondogm",
	Instructions: []Instruction{
		{
			Name: "mint_gm",
			Accounts: []IDLAccount{
				{Name: "payer", IsMut: true, IsSigner: true},
				{Name: "authority", IsSigner: true},
				{Name: "user"},
				{Name: "authorityRoleAccount"},
				{Name: "oracleSanityCheck", IsMut: true},
				{Name: "mintAuthority"},
				{Name: "mint", IsMut: true},
				{Name: "destination", IsMut: true},
				{Name: "usdonManagerState"},
				{Name: "tokenProgram"},
				{Name: "associatedTokenProgram"},
				{Name: "systemProgram"},
			},
			Args: []Arg{
				{Name: "amount", Type: "u64"},
			},
		},
	},
}
