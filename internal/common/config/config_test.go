package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apiserver.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_EnvResolution(t *testing.T) {
	t.Setenv("TEST_DB_TYPE", "postgres")
	path := writeConfig(t, `
server:
  port: ${TEST_PORT:8080}
database:
  type: "${TEST_DB_TYPE:sqlite}"
  host: "${TEST_DB_HOST:localhost}"
`)

	cfg, cfgPath, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, path, cfgPath)
	// default applies when the variable is unset
	assert.Equal(t, 8080, cfg.Server.Port)
	// set variable wins over the default
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 0\n")

	cfg, _, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, 5234, cfg.Server.Port)
	assert.Equal(t, "configs/i18n", cfg.I18n.Path)
	assert.Equal(t, "en", cfg.I18n.DefaultLocale)
	assert.Equal(t, "jwt", cfg.Identity.Provider)
	assert.Equal(t, 10*time.Second, cfg.Identity.Timeout)
	assert.False(t, cfg.Database.Configured())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	pg := DatabaseConfig{Type: "postgres", Host: "db", Port: 5432, User: "u", Password: "p", DBName: "cms", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/cms?sslmode=disable", pg.GetDSN())

	my := DatabaseConfig{Type: "mysql", Host: "db", Port: 3306, User: "u", Password: "p", DBName: "cms"}
	assert.Contains(t, my.GetDSN(), "u:p@tcp(db:3306)/cms")

	none := DatabaseConfig{}
	assert.Equal(t, "", none.GetDSN())
	assert.False(t, none.Configured())
}
