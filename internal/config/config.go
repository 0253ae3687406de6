package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"5000"`
	Environment string `envconfig:"ENV" default:"development"`

	MongoURI string `envconfig:"MONGODB_URI" required:"true"`
	DBName   string `envconfig:"DB_NAME" default:"brainBloom"`

	JWTSecret string `envconfig:"ACCESS_TOKEN_SECRET" required:"true"`

	// Media storage (S3-compatible) settings
	MediaS3URL       string `envconfig:"MEDIA_S3_URL" required:"true"`
	MediaS3Bucket    string `envconfig:"MEDIA_S3_BUCKET" required:"true"`
	MediaS3Region    string `envconfig:"MEDIA_S3_REGION" default:"us-east-1"`
	MediaS3AccessKey string `envconfig:"MEDIA_S3_ACCESS_KEY" required:"true"`
	MediaS3SecretKey string `envconfig:"MEDIA_S3_SECRET_KEY" required:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
