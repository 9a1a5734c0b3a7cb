package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var loadOnce sync.Once

func load() {
	loadOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			// A .env file is optional, values may come from the real environment.
			logrus.Debugf("No .env file loaded: %v", err)
		}
	})
}

// Config returns a required environment variable and exits if it is not set.
func Config(envVar string) string {
	load()

	envVarValue := os.Getenv(envVar)
	if envVarValue == "" {
		logrus.Fatalf("%s not set", envVar)
	}

	return envVarValue
}

// Optional returns an environment variable or the fallback when unset.
func Optional(envVar, fallback string) string {
	load()

	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return fallback
}
