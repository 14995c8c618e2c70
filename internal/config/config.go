package config

import (
	"fmt"

	"github.com/hngvu/payfastacy/pkg/bankgateway"
	"github.com/hngvu/payfastacy/pkg/mysql"
	"github.com/hngvu/payfastacy/pkg/token"
	"github.com/spf13/viper"
)

type Config struct {
	API         API                `mapstructure:"api"`
	Database    mysql.Config       `mapstructure:"database"`
	Token       token.Config       `mapstructure:"token"`
	BankGateway bankgateway.Config `mapstructure:"bank_gateway"`
}

type API struct {
	Port string `mapstructure:"port"`
	// Key is the shared secret required on the create and search endpoints.
	// The callback endpoint is reachable without it; the bank cannot present
	// a key, which leaves that route the weakest point of the trust boundary.
	Key string `mapstructure:"key"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
