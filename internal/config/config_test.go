package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("SECRET", "secret")
	t.Setenv("POSTGRESQL_URL", "postgres://localhost/selector")
	t.Setenv("RABBITMQ_URL", "amqp://localhost")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()

	assert := require.New(t)
	assert.Nil(err)
	assert.False(cfg.IsTestMode)
	assert.Equal(uint16(9090), cfg.Port)
	assert.Equal(MailBackendLog, cfg.MailBackend)
	assert.Equal("register-tokens-dispatch", cfg.RabbitmqRegisterDispatchQueue)
	assert.Equal([]string{"*"}, cfg.AllowedOrigins)
	assert.Equal(10, cfg.BcryptHasherCost)
	assert.Equal("", cfg.RegisterEmailFromAddress)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("TEST_MODE", "true")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("MAIL_BACKEND", "smtp")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("REGISTER_EMAIL_SUBJECT", "Welcome")

	cfg, err := Load()

	assert := require.New(t)
	assert.Nil(err)
	assert.True(cfg.IsTestMode)
	assert.Equal([]string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	assert.Equal(MailBackendSMTP, cfg.MailBackend)
	assert.Equal(2525, cfg.SMTPPort)
	assert.Equal("Welcome", cfg.RegisterEmailSubject)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("SECRET", "")
	t.Setenv("POSTGRESQL_URL", "postgres://localhost/selector")
	t.Setenv("RABBITMQ_URL", "amqp://localhost")

	_, err := Load()

	require.NotNil(t, err)
}

func TestLoadInvalidMailBackend(t *testing.T) {
	setRequired(t)
	t.Setenv("MAIL_BACKEND", "pigeon")

	_, err := Load()

	require.NotNil(t, err)
}

func TestLoadSESRequiresCredentials(t *testing.T) {
	setRequired(t)
	t.Setenv("MAIL_BACKEND", "ses")
	t.Setenv("AWS_ACCESS_KEY", "")
	t.Setenv("AWS_SECRET_KEY", "")

	_, err := Load()
	require.NotNil(t, err)

	t.Setenv("AWS_ACCESS_KEY", "key")
	t.Setenv("AWS_SECRET_KEY", "secret")
	_, err = Load()
	require.Nil(t, err)
}
