package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "GMSIM"

// Config represents the application configuration
type Config struct {
	// Network settings
	Network   string `mapstructure:"network" yaml:"network"`
	RPCUrl    string `mapstructure:"rpc_url" yaml:"rpc_url"`
	WSUrl     string `mapstructure:"ws_url" yaml:"ws_url"`
	RPCAPIKey string `mapstructure:"rpc_api_key" yaml:"rpc_api_key"`

	// JITO settings
	Jito JitoConfig `mapstructure:"jito" yaml:"jito"`

	// GM program settings
	GM GMConfig `mapstructure:"gm" yaml:"gm"`

	// Logging settings
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// JitoConfig contains JITO-related settings
type JitoConfig struct {
	Endpoint   string `mapstructure:"endpoint" yaml:"endpoint"`
	APIKey     string `mapstructure:"api_key" yaml:"api_key"`
	TimeoutSec int    `mapstructure:"timeout_sec" yaml:"timeout_sec"`
}

// GMConfig holds the addresses the classifier and the mint builder work with.
// Empty values fall back to the mainnet constants.
type GMConfig struct {
	ProgramID      string `mapstructure:"program_id" yaml:"program_id"`
	FillProgramID  string `mapstructure:"fill_program_id" yaml:"fill_program_id"`
	AdminMinter    string `mapstructure:"admin_minter" yaml:"admin_minter"`
	SettlementMint string `mapstructure:"settlement_mint" yaml:"settlement_mint"`
	RegistryFile   string `mapstructure:"registry_file" yaml:"registry_file"`

	// Anchor IDL JSON files replacing the built-in mint_gm and fill layouts
	IDLFile     string `mapstructure:"idl_file" yaml:"idl_file"`
	FillIDLFile string `mapstructure:"fill_idl_file" yaml:"fill_idl_file"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	LogToFile   bool   `mapstructure:"log_to_file" yaml:"log_to_file"`
	LogFilePath string `mapstructure:"log_file_path" yaml:"log_file_path"`
	RecordDir   string `mapstructure:"record_dir" yaml:"record_dir"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string, envPath string) (*Config, error) {
	config := &Config{}

	if err := loadEnvFile(envPath); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("gmsim")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.gmsim")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvVariables(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, continue with defaults and env vars
	}

	processEnvSubstitution(v)

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// loadEnvFile loads KEY=VALUE pairs into the process environment.
// A missing default .env is not an error; a missing explicit one is.
func loadEnvFile(envPath string) error {
	var envFiles []string
	if envPath != "" {
		envFiles = append(envFiles, envPath)
	}
	envFiles = append(envFiles, ".env", "configs/.env")

	var envFile string
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			envFile = file
			break
		}
	}

	if envFile == "" {
		if envPath != "" {
			return fmt.Errorf("specified .env file not found: %s", envPath)
		}
		return nil
	}

	// Variables already set in the process environment take precedence
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load .env file %s: %w", envFile, err)
	}
	return nil
}

// bindEnvVariables binds nested keys that AutomaticEnv cannot discover on Unmarshal
func bindEnvVariables(v *viper.Viper) {
	for _, key := range []string{
		"network",
		"rpc_url",
		"ws_url",
		"rpc_api_key",
		"jito.endpoint",
		"jito.api_key",
		"jito.timeout_sec",
		"gm.program_id",
		"gm.fill_program_id",
		"gm.admin_minter",
		"gm.settlement_mint",
		"gm.registry_file",
		"gm.idl_file",
		"gm.fill_idl_file",
		"logging.level",
		"logging.format",
		"logging.log_to_file",
		"logging.log_file_path",
		"logging.record_dir",
	} {
		_ = v.BindEnv(key, envPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")))
	}
}

// processEnvSubstitution resolves ${VAR} and ${VAR:-default} in string values
func processEnvSubstitution(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		value, ok := v.Get(key).(string)
		if !ok || !strings.Contains(value, "${") {
			continue
		}
		v.Set(key, expandEnvVars(value))
	}
}

func expandEnvVars(value string) string {
	if !strings.Contains(value, "${") {
		return value
	}

	// Substituted text is never rescanned, so values containing ${...} are kept verbatim
	var b strings.Builder
	rest := value
	for {
		start := strings.Index(rest, "${")
		if start == -1 {
			break
		}

		end := strings.Index(rest[start:], "}")
		if end == -1 {
			break
		}
		end += start

		varName, defaultValue, _ := strings.Cut(rest[start+2:end], ":-")

		envValue := os.Getenv(varName)
		if envValue == "" {
			envValue = defaultValue
		}

		b.WriteString(rest[:start])
		b.WriteString(envValue)
		rest = rest[end+1:]
	}
	b.WriteString(rest)

	return b.String()
}

func setDefaults(v *viper.Viper) {
	// Network defaults
	v.SetDefault("network", "mainnet")
	v.SetDefault("rpc_url", "")
	v.SetDefault("ws_url", "")

	// JITO defaults
	v.SetDefault("jito.endpoint", "")
	v.SetDefault("jito.api_key", "")
	v.SetDefault("jito.timeout_sec", DefaultJitoTimeoutSec)

	// GM defaults
	v.SetDefault("gm.program_id", GMProgramID.String())
	v.SetDefault("gm.fill_program_id", JupiterOrderEngineProgramID.String())
	v.SetDefault("gm.admin_minter", AdminMinter.String())
	v.SetDefault("gm.settlement_mint", USDCMint.String())
	v.SetDefault("gm.registry_file", "")
	v.SetDefault("gm.idl_file", "")
	v.SetDefault("gm.fill_idl_file", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.log_to_file", false)
	v.SetDefault("logging.log_file_path", "logs/gmsim.log")
	v.SetDefault("logging.record_dir", "")
}

func validateConfig(config *Config) error {
	if config.Network != "mainnet" && config.Network != "devnet" {
		return fmt.Errorf("network must be 'mainnet' or 'devnet', got %q", config.Network)
	}

	// Set endpoints if not provided
	if config.RPCUrl == "" {
		config.RPCUrl = GetRPCEndpoint(config.Network)
	}
	if config.WSUrl == "" {
		config.WSUrl = GetWSEndpoint(config.Network)
	}
	if config.Jito.Endpoint == "" {
		config.Jito.Endpoint = GetJitoBundleEndpoint(config.Network)
	}
	if config.Jito.TimeoutSec <= 0 {
		return fmt.Errorf("jito.timeout_sec must be positive")
	}

	for name, addr := range map[string]string{
		"gm.program_id":      config.GM.ProgramID,
		"gm.fill_program_id": config.GM.FillProgramID,
		"gm.admin_minter":    config.GM.AdminMinter,
		"gm.settlement_mint": config.GM.SettlementMint,
	} {
		if addr == "" {
			continue
		}
		if _, err := solana.PublicKeyFromBase58(addr); err != nil {
			return fmt.Errorf("%s: invalid address %q: %w", name, addr, err)
		}
	}

	for name, path := range map[string]string{
		"gm.registry_file": config.GM.RegistryFile,
		"gm.idl_file":      config.GM.IDLFile,
		"gm.fill_idl_file": config.GM.FillIDLFile,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	// Create log directory if it doesn't exist
	if config.Logging.LogToFile {
		logDir := filepath.Dir(config.Logging.LogFilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory %s: %w", logDir, err)
		}
	}

	return nil
}

// SetNetwork switches to network. Endpoints that are empty or still at the
// previous network's defaults follow the switch; explicit ones are kept.
func (c *Config) SetNetwork(network string) error {
	if network != "mainnet" && network != "devnet" {
		return fmt.Errorf("network must be 'mainnet' or 'devnet', got %q", network)
	}

	prev := c.Network
	follow := func(current *string, endpoint func(string) string) {
		if *current == "" || *current == endpoint(prev) {
			*current = endpoint(network)
		}
	}
	follow(&c.RPCUrl, GetRPCEndpoint)
	follow(&c.WSUrl, GetWSEndpoint)
	follow(&c.Jito.Endpoint, GetJitoBundleEndpoint)

	c.Network = network
	return nil
}

// JitoTimeout returns the bundle simulation request timeout
func (c *Config) JitoTimeout() time.Duration {
	if c.Jito.TimeoutSec <= 0 {
		return DefaultJitoTimeoutSec * time.Second
	}
	return time.Duration(c.Jito.TimeoutSec) * time.Second
}

// GMProgram returns the configured GM program id
func (c *Config) GMProgram() solana.PublicKey {
	return keyOrDefault(c.GM.ProgramID, GMProgramID)
}

// FillProgram returns the program whose fill instructions are classified
func (c *Config) FillProgram() solana.PublicKey {
	return keyOrDefault(c.GM.FillProgramID, JupiterOrderEngineProgramID)
}

// Minter returns the admin minter used as mock mint fee payer
func (c *Config) Minter() solana.PublicKey {
	return keyOrDefault(c.GM.AdminMinter, AdminMinter)
}

// SettlementMint returns the mint of the fill's input side
func (c *Config) SettlementMint() solana.PublicKey {
	return keyOrDefault(c.GM.SettlementMint, USDCMint)
}

func keyOrDefault(addr string, fallback solana.PublicKey) solana.PublicKey {
	if addr == "" {
		return fallback
	}
	key, err := solana.PublicKeyFromBase58(addr)
	if err != nil {
		return fallback
	}
	return key
}
