package main

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Env struct {
	SpotifyClientID     string `env:"SPOTIFY_CLIENT_ID" env-required:"true"`
	SpotifyClientSecret string `env:"SPOTIFY_CLIENT_SECRET" env-required:"true"`
	SpotifyRedirectURL  string `env:"SPOTIFY_REDIRECT_URL" env-default:"http://localhost:1323/callback"`

	RedisURL       string `env:"REDIS_URL" env-required:"true"`
	CacheNamespace string `env:"CACHE_NAMESPACE" env-default:"rhythmbox"`

	Port           string `env:"PORT" env-default:"1323"`
	DefaultCountry string `env:"DEFAULT_COUNTRY" env-default:"BR"`

	OTLPEndpoint string `env:"OTLP_ENDPOINT" env-default:""`

	LogFormat string `env:"LOG_FORMAT" env-default:"json"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
}

var env Env

func LoadEnv() error {
	err := godotenv.Load()
	if err != nil {
		logrus.WithError(err).Warn("Failed to load env variables from file")
	}

	return cleanenv.ReadEnv(&env)
}

func GetEnv() *Env {
	return &env
}
