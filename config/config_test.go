package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBalance(t *testing.T) {
	assert.Equal(t, "1000.00", parseBalance("").StringFixed(2))
	assert.Equal(t, "250.50", parseBalance("250.5").StringFixed(2))
	assert.Equal(t, "1000.00", parseBalance("abc").StringFixed(2))
	assert.Equal(t, "1000.00", parseBalance("-1").StringFixed(2))
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("INITIAL_BALANCE", "42")

	cfg := LoadConfig()
	assert.Equal(t, ":3000", cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "42", cfg.InitialBalance.String())
}
