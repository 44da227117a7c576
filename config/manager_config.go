package config

import (
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	StorageDriverSQLite  = "sqlite"
	StorageDriverMongoDB = "mongodb"
)

// SecretValue hides its content when printed or logged.
type SecretValue string

func (s SecretValue) String() string {
	if s == "" {
		return ""
	}
	return "******"
}

func (s SecretValue) Value() string {
	return string(s)
}

type ServerConfig struct {
	Host         string   `mapstructure:"host"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Console bool   `mapstructure:"console"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=sqlite mongodb"`
}

type SQLiteConfig struct {
	Path          string `mapstructure:"path"`
	BusyTimeoutMS int    `mapstructure:"busy_timeout_ms" validate:"gte=0"`
	MaxOpenConns  int    `mapstructure:"max_open_conns" validate:"gte=0"`
}

type MongoDBConfig struct {
	Database         string      `mapstructure:"database"`
	User             string      `mapstructure:"user"`
	Password         SecretValue `mapstructure:"password"`
	Host             string      `mapstructure:"host"`
	Port             string      `mapstructure:"port"`
	ReplicaSet       string      `mapstructure:"replica_set"`
	DirectConnection bool        `mapstructure:"direct_connection"`
}

// URI builds the connection string for the configured deployment.
func (c MongoDBConfig) URI() string {
	u := url.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(c.Host, c.Port),
		Path:   "/",
	}
	if c.User != "" {
		u.User = url.UserPassword(c.User, c.Password.Value())
	}
	q := url.Values{}
	if c.ReplicaSet != "" {
		q.Set("replicaSet", c.ReplicaSet)
	}
	if c.DirectConnection {
		q.Set("directConnection", "true")
	}
	if c.User != "" {
		q.Set("authSource", "admin")
	}
	u.RawQuery = q.Encode()
	return u.String()
}

type KeyConfig struct {
	RsaPrivateKeyPem  SecretValue   `mapstructure:"rsa_private_key_pem"`
	RsaPrivateKeyPath string        `mapstructure:"rsa_private_key_path"`
	TokenTTL          time.Duration `mapstructure:"token_ttl" validate:"gte=0"`
}

type SeedUserConfig struct {
	Name     string      `mapstructure:"name"`
	Email    string      `mapstructure:"email" validate:"required,email"`
	Password SecretValue `mapstructure:"password" validate:"required_without=PasswordHash,excluded_with=PasswordHash"`
	// PasswordHash imports an existing argon2id or bcrypt hash instead of a password.
	PasswordHash SecretValue `mapstructure:"password_hash"`
	Role         string      `mapstructure:"role" validate:"required,oneof=admin user"`
}

type AccountConfig struct {
	SeedUsers []SeedUserConfig `mapstructure:"seed_users" validate:"dive"`
}

type CacheConfig struct {
	RequesterTTL time.Duration `mapstructure:"requester_ttl" validate:"gte=0"`
}

type ManageConfig struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Storage StorageConfig `mapstructure:"storage"`
	SQLite  SQLiteConfig  `mapstructure:"sqlite"`
	MongoDB MongoDBConfig `mapstructure:"mongodb"`
	Key     KeyConfig     `mapstructure:"key"`
	Account AccountConfig `mapstructure:"account"`
	Cache   CacheConfig   `mapstructure:"cache"`
}

// Validate checks the field rules and the driver specific requirements.
func (cfg ManageConfig) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	switch cfg.Storage.Driver {
	case StorageDriverSQLite:
		if cfg.SQLite.Path == "" {
			return fmt.Errorf("invalid config: sqlite.path is required for the sqlite driver")
		}
	case StorageDriverMongoDB:
		if cfg.MongoDB.Host == "" || cfg.MongoDB.Database == "" {
			return fmt.Errorf("invalid config: mongodb.host and mongodb.database are required for the mongodb driver")
		}
	}
	return nil
}

func InitManagerConfig(configName string, configPath string) (ManageConfig, error) {
	var cfg ManageConfig
	v := viper.New()
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	if configName == "" {
		configName = "manager_config"
	}
	configName = strings.TrimSuffix(configName, ".toml")
	v.AddConfigPath(GetAbsPath("config"))
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.SetEnvPrefix("MANAGER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	err := v.ReadInConfig()
	if err != nil {
		return cfg, err
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", ":8080")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("storage.driver", StorageDriverSQLite)
	v.SetDefault("sqlite.path", "data/access.db")
	v.SetDefault("sqlite.busy_timeout_ms", 5000)
	v.SetDefault("key.rsa_private_key_pem", "")
	v.SetDefault("key.rsa_private_key_path", "")
	v.SetDefault("key.token_ttl", "1h")
	v.SetDefault("cache.requester_ttl", "5m")
}

// GetAbsPath returns the absolute path by joining the given paths with the project root directory
func GetAbsPath(paths ...string) string {
	_, filePath, _, _ := runtime.Caller(1)
	basePath := filepath.Dir(filePath)
	rootPath := filepath.Join(basePath, "..")
	return filepath.Join(rootPath, filepath.Join(paths...))
}
