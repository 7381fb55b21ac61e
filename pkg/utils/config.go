package utils

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	AWS     AWSConfig
	Tables  TableConfig
	Cognito CognitoConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type AWSConfig struct {
	Region string
}

type TableConfig struct {
	Movies       string
	MovieCast    string
	MovieReviews string
}

type CognitoConfig struct {
	UserPoolID string
	ClientID   string
	// Endpoint overrides the issuer base URL used for JWKS fetches.
	// Empty in production; set by tests.
	Endpoint string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-catalog")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("AWS_REGION", "eu-west-1")
	viper.SetDefault("MOVIES_TABLE", "Movies")
	viper.SetDefault("MOVIE_CAST_TABLE", "MovieCast")
	viper.SetDefault("MOVIE_REVIEWS_TABLE", "MovieReviews")

	// No .env in Lambda; everything comes from the environment there.
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		AWS: AWSConfig{
			Region: viper.GetString("AWS_REGION"),
		},
		Tables: TableConfig{
			Movies:       viper.GetString("MOVIES_TABLE"),
			MovieCast:    viper.GetString("MOVIE_CAST_TABLE"),
			MovieReviews: viper.GetString("MOVIE_REVIEWS_TABLE"),
		},
		Cognito: CognitoConfig{
			UserPoolID: viper.GetString("USER_POOL_ID"),
			ClientID:   viper.GetString("CLIENT_ID"),
			Endpoint:   viper.GetString("COGNITO_ENDPOINT"),
		},
	}

	return config, nil
}
