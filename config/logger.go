package config

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// InitLogger configures the package-level logrus logger for a service and
// returns an entry tagged with the service name.
func InitLogger(service string) *log.Entry {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.JSONFormatter{})

	level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	return log.WithField("service", service)
}
