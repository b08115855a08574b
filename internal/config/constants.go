package config

import (
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// Solana network constants
const (
	SolanaMainnetRPC = "https://api.mainnet-beta.solana.com"
	SolanaDevnetRPC  = "https://api.devnet.solana.com"

	// WebSocket endpoints
	SolanaMainnetWS = "wss://api.mainnet-beta.solana.com"
	SolanaDevnetWS  = "wss://api.devnet.solana.com"

	// Jito bundle endpoints (simulateBundle is served next to sendBundle)
	JitoMainnetBundle = "https://mainnet.block-engine.jito.wtf/api/v1/bundles"
	JitoDevnetBundle  = "https://devnet.block-engine.jito.wtf/api/v1/bundles"

	DefaultJitoTimeoutSec = 15
)

// Program and mint addresses
var (
	// Ondo Global Markets program (mint_gm)
	GMProgramID = mustPublicKey("XzTT4XB8m7sLD2xi6snefSasaswsKCxx5Tifjondogm")

	// Jupiter Order Engine, emits RFQ fill instructions
	JupiterOrderEngineProgramID = mustPublicKey("61DFfeTKM7trxYcPQCM78bJ794ddZprZpAwAnLiwTpYH")

	// Holder of the GM minter role, pays for the mock mint transaction
	AdminMinter = mustPublicKey("4pfyfezvwjBrsHtJpXPPKsqH9cphwSDDb7s63KzkVEqF")

	// USDC, the settlement asset of GM fills
	USDCMint = mustPublicKey("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")

	SystemProgramID          = mustPublicKey("11111111111111111111111111111111")
	TokenProgramID           = mustPublicKey("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	Token2022ProgramID       = mustPublicKey("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")
	AssociatedTokenProgramID = mustPublicKey("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
)

// Helper function to decode base58 addresses and panic on error
// Used for compile-time constant addresses that should never fail
func mustPublicKey(addr string) solana.PublicKey {
	decoded, err := base58.Decode(addr)
	if err != nil {
		panic("Invalid base58 address: " + addr + ", error: " + err.Error())
	}
	if len(decoded) != solana.PublicKeyLength {
		panic("Invalid address length: " + addr)
	}
	return solana.PublicKeyFromBytes(decoded)
}

// GetRPCEndpoint returns RPC endpoint based on network
func GetRPCEndpoint(network string) string {
	switch network {
	case "mainnet":
		return SolanaMainnetRPC
	case "devnet":
		return SolanaDevnetRPC
	default:
		return SolanaMainnetRPC
	}
}

// GetJitoBundleEndpoint returns Jito bundle endpoint based on network
func GetJitoBundleEndpoint(network string) string {
	switch network {
	case "mainnet":
		return JitoMainnetBundle
	case "devnet":
		return JitoDevnetBundle
	default:
		return JitoMainnetBundle
	}
}

// GetWSEndpoint returns WebSocket endpoint based on network
func GetWSEndpoint(network string) string {
	switch network {
	case "mainnet":
		return SolanaMainnetWS
	case "devnet":
		return SolanaDevnetWS
	default:
		return SolanaMainnetWS
	}
}
