package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server         ServerConfig
	DB             DBConfig
	Storage        StorageConfig
	Corpus         CorpusConfig
	Recording      RecordingConfig
	Session        SessionConfig
	PasswordPolicy PasswordPolicyConfig `mapstructure:"password_policy"`
}

type ServerConfig struct {
	Address string
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     int
}

// StorageConfig describes the S3-compatible bucket recordings are uploaded
// to. Endpoint may point at MinIO or any other S3-compatible service.
type StorageConfig struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string
}

type CorpusConfig struct {
	Path string
}

type RecordingConfig struct {
	Dir string
}

type SessionConfig struct {
	Secret string
	Name   string
}

// PasswordPolicyConfig toggles the strong-password checks applied at
// registration. With Enforce off only a non-empty password is required.
type PasswordPolicyConfig struct {
	Enforce bool
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./pkg/config")
	viper.AddConfigPath(".")

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("corpus.path", "corpus.csv")
	viper.SetDefault("recording.dir", "record")
	viper.SetDefault("session.name", "vaani_session")
	viper.SetDefault("password_policy.enforce", true)
	viper.SetDefault("storage.region", "us-east-1")

	viper.SetEnvPrefix("VAANI")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
