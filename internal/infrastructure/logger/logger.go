package logger

import (
	"fmt"
	"os"
	"strings"

	"afclean/internal/infrastructure/config"

	"github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger used across the service.
func Setup(c config.LogConfig) error {
	level, err := logrus.ParseLevel(strings.TrimSpace(c.Level))
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stdout)

	switch strings.ToLower(c.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}
