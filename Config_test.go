package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		os.Unsetenv("LISTEN_ADDR")
		os.Unsetenv("WORKBOOK_DIR")
		os.Unsetenv("LOG_LEVEL")

		config := LoadConfig()

		assert.Equal(t, ":8080", config.ListenAddr)
		assert.Equal(t, "workbooks", config.WorkbookDir)
		assert.Equal(t, "info", config.LogLevel)
	})

	t.Run("environment overrides", func(t *testing.T) {
		_ = os.Setenv("LISTEN_ADDR", ":9999")
		_ = os.Setenv("DATABASE_FILEPATH", "/tmp/data.db")
		defer os.Unsetenv("LISTEN_ADDR")
		defer os.Unsetenv("DATABASE_FILEPATH")

		config := LoadConfig()

		assert.Equal(t, ":9999", config.ListenAddr)
		assert.Equal(t, "/tmp/data.db", config.DatabaseFilepath)
	})
}
