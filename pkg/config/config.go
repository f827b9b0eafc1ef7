package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const envFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads ./configs/.env once. A missing file is fine: the process environment is used as is.
func New() *Config {
	once.Do(func() {
		err := godotenv.Load(envFile)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Fatal("loading envs error: ", err)
			}
			log.Printf("%s not found, using process environment", envFile)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

// GetStringOr returns def when key is unset or empty.
func (c *Config) GetStringOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetWeekday parses weekday names like "monday". Unknown values fall back to def.
func (c *Config) GetWeekday(key string, def time.Weekday) time.Weekday {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == v {
			return d
		}
	}
	return def
}
