package resource

import (
	"bytes"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	properties = viper.New()
	mutex      sync.RWMutex
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Init loads application properties from a YAML file, replacing any previous ones.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}
	apply(v.AllSettings())
	return nil
}

// Load loads application properties from an in-memory YAML document, replacing any previous ones.
func Load(content []byte) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return err
	}
	apply(v.AllSettings())
	return nil
}

func apply(settings map[string]any) {
	resolved := viper.New()
	setProperties(resolved, "", settings)

	mutex.Lock()
	properties = resolved
	mutex.Unlock()
}

// setProperties walks the YAML tree and stores every leaf with ${ENV:default} placeholders resolved
func setProperties(target *viper.Viper, prefix string, data map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			target.Set(fullKey, resolveEnvVariables(v))
		case map[string]any:
			setProperties(target, fullKey, v)
		default:
			target.Set(fullKey, v)
		}
	}
}

// resolveEnvVariables replaces every ${NAME} or ${NAME:default} in value.
// An unset variable without default resolves to an empty string.
func resolveEnvVariables(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

func current() *viper.Viper {
	mutex.RLock()
	defer mutex.RUnlock()
	return properties
}

func IsSet(key string) bool {
	return current().IsSet(key)
}

func Get(key string) any {
	return current().Get(key)
}

func GetString(key string) string {
	return current().GetString(key)
}

func GetBool(key string) bool {
	return current().GetBool(key)
}

func GetDuration(key string) time.Duration {
	return current().GetDuration(key)
}

func GetInt(key string) int {
	return current().GetInt(key)
}

func GetStringSlice(key string) []string {
	return current().GetStringSlice(key)
}
