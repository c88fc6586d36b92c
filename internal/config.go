package internal

import (
	"fmt"
	"time"
)

type Config struct {
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	NumberOfWorkers   int           `env:"NUMBER_OF_WORKERS,default=4"`
	BufferSize        int           `env:"BUFFER_SIZE,default=64"`
	ClassifierTimeout time.Duration `env:"CLASSIFIER_TIMEOUT,default=2s"`
	ReportInterval    time.Duration `env:"REPORT_INTERVAL,default=30s"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms"`

	// Empty means an in-memory cache.
	CacheFilepath string        `env:"CACHE_FILEPATH"`
	CacheTTL      time.Duration `env:"CACHE_TTL,default=10m"`

	// Empty means the embedded lexicon classifier runs in process.
	SpecialistBinPath string `env:"SPECIALIST_BIN_PATH"`
	SpecialistHost    string `env:"SPECIALIST_HOST,default=localhost"`
	SpecialistPort    int    `env:"SPECIALIST_PORT,default=50061"`
}

func (c Config) Validate() error {
	if c.NumberOfWorkers < 1 {
		return fmt.Errorf("NUMBER_OF_WORKERS must be at least 1, got %d", c.NumberOfWorkers)
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("BUFFER_SIZE must not be negative, got %d", c.BufferSize)
	}
	if c.SpecialistBinPath != "" && (c.SpecialistPort <= 0 || c.SpecialistPort > 65535) {
		return fmt.Errorf("SPECIALIST_PORT out of range: %d", c.SpecialistPort)
	}
	return nil
}

func (c Config) UseSpecialist() bool {
	return c.SpecialistBinPath != ""
}
