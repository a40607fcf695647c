package msg

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

//go:embed messages.yml
var defaultMessages []byte

var (
	messages = make(map[string]string)
	mutex    sync.RWMutex
)

// init loads the embedded catalog, then the optional MESSAGES_FILE_PATH overrides
func init() {
	if err := Load(defaultMessages); err != nil {
		log.Fatalf("Fail to read embedded messages: %v", err)
	}
	if value, ok := os.LookupEnv("MESSAGES_FILE_PATH"); ok {
		if err := Init(value); err != nil {
			log.Printf("Fail to read messages from %s: %v", value, err)
		}
	}
}

// Init merges the messages of a YAML file into the catalog. Existing keys are overwritten.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}
	merge(v.AllSettings())
	return nil
}

// Load merges the messages of an in-memory YAML document into the catalog.
func Load(content []byte) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return err
	}
	merge(v.AllSettings())
	return nil
}

func merge(settings map[string]interface{}) {
	mutex.Lock()
	defer mutex.Unlock()
	parseMessageMap("", settings, messages)
}

// parseMessageMap flattens nested keys into dotted ones
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// GetMessage returns the message for key with {0}, {1}... replaced by args
func GetMessage(key string, args ...interface{}) string {
	mutex.RLock()
	msg, exists := messages[key]
	mutex.RUnlock()
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	if len(args) == 0 {
		return msg
	}

	// One pass, so a placeholder inside an argument is never expanded
	pairs := make([]string, 0, len(args)*2)
	for i, arg := range args {
		pairs = append(pairs, fmt.Sprintf("{%d}", i), argToString(arg))
	}

	return strings.NewReplacer(pairs...).Replace(msg)
}

func argToString(arg interface{}) string {
	if err, ok := arg.(error); ok {
		return err.Error()
	}
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringer.String()
	}
	if isPrimitive(arg) {
		return primitiveToString(arg)
	}
	jsonBytes, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}
	return string(jsonBytes)
}

func isPrimitive(value interface{}) bool {
	if value == nil {
		return true
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}

func primitiveToString(value interface{}) string {
	if value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
