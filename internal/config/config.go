package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

const (
	MailBackendSES  = "ses"
	MailBackendSMTP = "smtp"
	MailBackendLog  = "log"
)

type Config struct {
	IsTestMode bool   `env:"TEST_MODE" envDefault:"false"`
	Port       uint16 `env:"PORT" envDefault:"9090"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	Secret           string `env:"SECRET,required"`
	BcryptHasherCost int    `env:"BCRYPT_HASHER_COST" envDefault:"10"`

	PostgresqlURL  string `env:"POSTGRESQL_URL,required"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`

	RabbitmqURL                   string `env:"RABBITMQ_URL,required"`
	RabbitmqRegisterDispatchQueue string `env:"RABBITMQ_REGISTER_DISPATCH_QUEUE" envDefault:"register-tokens-dispatch"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	MailBackend      string `env:"MAIL_BACKEND" envDefault:"log"`
	DefaultFromEmail string `env:"DEFAULT_FROM_EMAIL" envDefault:"webmaster@localhost"`

	AwsRegion    string `env:"AWS_REGION" envDefault:"eu-central-1"`
	AwsAccessKey string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey string `env:"AWS_SECRET_KEY"`

	SMTPHost     string `env:"SMTP_HOST" envDefault:"localhost"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"25"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	RegisterEmailFromAddress string `env:"REGISTER_EMAIL_FROM_ADDRESS"`
	RegisterEmailSubject     string `env:"REGISTER_EMAIL_SUBJECT" envDefault:"Registration"`

	// TemplatesDir overrides the templates bundled with the binary.
	TemplatesDir string `env:"TEMPLATES_DIR"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Secret == "" {
		return fmt.Errorf("SECRET must not be empty")
	}
	switch c.MailBackend {
	case MailBackendSES:
		if c.AwsAccessKey == "" || c.AwsSecretKey == "" {
			return fmt.Errorf("AWS_ACCESS_KEY and AWS_SECRET_KEY must be set for the %q mail backend", c.MailBackend)
		}
	case MailBackendSMTP, MailBackendLog:
	default:
		return fmt.Errorf("invalid MAIL_BACKEND value %q", c.MailBackend)
	}
	if c.BcryptHasherCost <= 0 {
		return fmt.Errorf("invalid BCRYPT_HASHER_COST value %d", c.BcryptHasherCost)
	}
	return nil
}
