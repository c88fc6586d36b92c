package internal

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	var config Config

	err := env.Unmarshal(env.EnvSet{}, &config)

	req.NoError(err)
	req.NoError(config.Validate())
	req.Equal("INFO", config.LogLevel)
	req.Equal(4, config.NumberOfWorkers)
	req.Equal(2*time.Second, config.ClassifierTimeout)
	req.Equal(10*time.Minute, config.CacheTTL)
	req.Empty(config.CacheFilepath)
	req.False(config.UseSpecialist())
}

func TestConfig_Overrides(t *testing.T) {
	req := require.New(t)
	var config Config

	err := env.Unmarshal(env.EnvSet{
		"NUMBER_OF_WORKERS":   "8",
		"CACHE_TTL":           "1h",
		"SPECIALIST_BIN_PATH": "./bin/specialist",
		"SPECIALIST_PORT":     "7000",
	}, &config)

	req.NoError(err)
	req.NoError(config.Validate())
	req.Equal(8, config.NumberOfWorkers)
	req.Equal(time.Hour, config.CacheTTL)
	req.True(config.UseSpecialist())
	req.Equal(7000, config.SpecialistPort)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{name: "no workers", config: Config{NumberOfWorkers: 0}},
		{name: "negative buffer", config: Config{NumberOfWorkers: 1, BufferSize: -1}},
		{name: "specialist without port", config: Config{NumberOfWorkers: 1, SpecialistBinPath: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.config.Validate())
		})
	}
}
