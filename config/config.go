package config

import "goltobridge/types"

type Configuration struct {
	// Server config
	Server struct {
		UseSSL bool `yaml:"ssl"`
		Port   int  `yaml:"port"`
	} `yaml:"server"`
	// remote bridge-conversion API
	Bridge struct {
		URL        string `yaml:"url"`
		TimeoutSec int    `yaml:"timeout_sec"`
	} `yaml:"bridge"`
	// address cache persistence
	Cache struct {
		Backend   string `yaml:"backend"` // "file" or "redis"
		Path      string `yaml:"path"`
		RedisHost string `yaml:"redis_host"`
		RedisPort int    `yaml:"redis_port"`
	} `yaml:"cache"`
	Stats struct {
		PollIntervalSec int `yaml:"poll_interval_sec"`
	} `yaml:"stats"`
}

var Config Configuration

// native LTO and its wrapped forms carry 8 decimals
const TOKEN_DECIMALS_DIVISOR = "100000000"

// maximum number of EVM RPC retries
const EVM_RETRIES = 3

// Home chains of the wrapped token representations.
type ChainConfig struct {
	Name            string
	ChainID         int
	RPCList         []string
	ContractAddress string // wrapped LTO token address
}

var EVMChains = map[types.TokenType]ChainConfig{
	types.TOKEN_LTO20: {
		Name:            "Eth",
		ChainID:         1,
		RPCList:         []string{"https://eth.drpc.org", "https://eth.llamarpc.com"},
		ContractAddress: "0xd01409314aCb3b245CEa9500eCE3F6Fd4d70Ea30",
	}, // Ethereum
	types.TOKEN_BINANCE: {
		Name:            "BNB",
		ChainID:         56,
		RPCList:         []string{"https://rpc.ankr.com/bsc", "https://bsc.drpc.org", "https://bsc.meowrpc.com"},
		ContractAddress: "0x857B222Fc79e1cBBf8Ca5f78CB133d1b7CF34BBd",
	}, // BNB Smart Chain
}
