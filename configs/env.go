package configs

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName    string
	PropertiesFilePath string
	DotEnvLoaded       bool
}

// LoadEnv reads an optional .env file into the process environment, then
// the environment-only settings. Variables already set win over .env values.
func LoadEnv(dotEnvFiles ...string) (*EnvConfig, error) {
	loaded := true
	if err := godotenv.Load(dotEnvFiles...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		loaded = false
	}

	env := viper.New()
	env.AutomaticEnv()

	return &EnvConfig{
		ApplicationName:    getStringOrDefault(env, "APPLICATION_NAME", "weather-relay"),
		PropertiesFilePath: env.GetString("PROPERTIES_FILE_PATH"),
		DotEnvLoaded:       loaded,
	}, nil
}

func getStringOrDefault(env *viper.Viper, key, defaultValue string) string {
	value := env.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
