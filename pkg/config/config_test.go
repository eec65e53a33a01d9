package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dulcibelle-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 465, cfg.Mail.Port)
	assert.True(t, cfg.Mail.UseSSL)
	assert.False(t, cfg.Mail.UseTLS)
	assert.Equal(t, config.StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "0.0.0.0:5000", cfg.HTTP.Addr())
	assert.True(t, cfg.Session.CSRFEnabled)
	assert.Equal(t, "MAD", cfg.Shop.Currency)
	assert.Equal(t, "fr", cfg.Shop.Locale)
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("MAIL_SERVER", "smtp.example.com")
	t.Setenv("MAIL_PORT", "587")
	t.Setenv("MAIL_USE_SSL", "False")
	t.Setenv("MAIL_USE_TLS", "TRUE")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("SECRET_KEY", "s3cr3t")
	t.Setenv("STORE_DRIVER", "Memory")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com", cfg.Mail.Server)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.False(t, cfg.Mail.UseSSL)
	assert.True(t, cfg.Mail.UseTLS)
	assert.Equal(t, "admin@example.com", cfg.Shop.AdminEmail)
	assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PuertoInvalidoUsaDefecto(t *testing.T) {
	t.Setenv("MAIL_PORT", "abc")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 465, cfg.Mail.Port)
}

func TestValidate_SinSecretKey(t *testing.T) {
	cfg := &config.Config{
		Store:   config.StoreConfig{Driver: config.StoreDriverMemory},
		Session: config.SessionConfig{ExpMinutes: 60},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidate_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{
		Store:   config.StoreConfig{Driver: "sqlite"},
		Session: config.SessionConfig{Secret: "x", ExpMinutes: 60},
	}
	assert.Error(t, cfg.Validate())
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "shop", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/shop?sslmode=disable", c.DSN())
	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
