package config

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Cassandra  CassandraConfig
	Pagination Pagination
	LoggerMode LoggerMode
}

type Server struct {
	ServiceName string
	Environment string
}

type CassandraConfig struct {
	Hosts          []string
	Port           int
	Keyspace       string
	Consistency    string
	Timeout        time.Duration
	ConnectTimeout time.Duration
}

type Pagination struct {
	DefaultLimit int
	MaxLimit     int
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if len(c.Cassandra.Hosts) == 0 {
		c.Cassandra.Hosts = []string{"localhost"}
	}
	if c.Cassandra.Port == 0 {
		c.Cassandra.Port = 9042
	}
	if c.Cassandra.Keyspace == "" {
		c.Cassandra.Keyspace = "messenger"
	}
	if c.Cassandra.Timeout == 0 {
		c.Cassandra.Timeout = 5 * time.Second
	}
	if c.Cassandra.ConnectTimeout == 0 {
		c.Cassandra.ConnectTimeout = 10 * time.Second
	}
	if c.Pagination.DefaultLimit == 0 {
		c.Pagination.DefaultLimit = 20
	}
	if c.Pagination.MaxLimit == 0 {
		c.Pagination.MaxLimit = 100
	}
}
