package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/hackgods/hospital-management/internal/config"
)

// New builds the diagnostic logger. Reports go to stdout, so out is
// normally stderr.
func New(cfg config.Config, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger, nil
}
