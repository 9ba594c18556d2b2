package config

import (
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	xhttp "github.com/nimasrn/customer-billing/pkg/http"
	"github.com/nimasrn/customer-billing/pkg/logger"
	"github.com/nimasrn/customer-billing/pkg/pg"
	"github.com/pkg/errors"
)

const ConfigTagName = "env"
const ConfigDefaultTagName = "default"

var config *Config

// Config holds every setting the binaries read. Nothing else should read the
// environment or an env file directly.
type Config struct {
	AppEnv              string `env:"APP_ENV,default=dev"`
	AppName             string `env:"APP_NAME,default=customer_billing"`
	AppDebug            bool   `env:"APP_DEBUG"`
	AppDebugMetricsAddr string `env:"APP_DEBUG_METRIC_ADDR"`
	AppDebugMetricsURI  string `env:"APP_DEBUG_METRIC_URI,default=/metrics"`

	HttpListenAddr            string        `env:"HTTP_LISTEN_ADDR,default=:8080"`
	HttpRequestTimeout        time.Duration `env:"HTTP_REQUEST_TIMEOUT,default=5s"`
	HttpReadTimeout           time.Duration `env:"HTTP_READ_TIMEOUT,default=2500ms"`
	HttpWriteTimeout          time.Duration `env:"HTTP_WRITE_TIMEOUT,default=2500ms"`
	HttpIdleTimeout           time.Duration `env:"HTTP_IDLE_TIMEOUT,default=10s"`
	HttpShutdownTimeout       time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT,default=10s"`
	HttpMaxRequestBodySize    int           `env:"HTTP_MAX_REQUEST_BODY_SIZE,default=4194304"`
	HttpServerReadBufferSize  int           `env:"HTTP_SERVER_READ_BUFFER_SIZE"`
	HttpServerWriteBufferSize int           `env:"HTTP_SERVER_WRITE_BUFFER_SIZE"`

	PostgresReadHost     string `env:"POSTGRES_READ_HOST"`
	PostgresReadPort     string `env:"POSTGRES_READ_PORT,default=5432"`
	PostgresReadUser     string `env:"POSTGRES_READ_USER"`
	PostgresReadPassword string `env:"POSTGRES_READ_PASSWORD"`
	PostgresReadDatabase string `env:"POSTGRES_READ_DBNAME"`

	PostgresWriteHost     string `env:"POSTGRES_WRITE_HOST"`
	PostgresWritePort     string `env:"POSTGRES_WRITE_PORT,default=5432"`
	PostgresWriteUser     string `env:"POSTGRES_WRITE_USER"`
	PostgresWritePassword string `env:"POSTGRES_WRITE_PASSWORD"`
	PostgresWriteDatabase string `env:"POSTGRES_WRITE_DBNAME"`

	PostgresMaxOpenConns int `env:"POSTGRES_MAX_OPEN_CONNS,default=20"`
	PostgresMaxIdleConns int `env:"POSTGRES_MAX_IDLE_CONNS,default=5"`

	PromNamespace string `env:"PROM_NAMESPACE,default=customer_billing"`

	LogLevel string `env:"LOG_LEVEL,default=info"`

	// tags (go-playground/validator) or rules (ozzo-validation)
	ValidationStrategy string `env:"VALIDATION_STRATEGY,default=tags"`

	PageSizeDefault int `env:"PAGE_SIZE_DEFAULT,default=10"`
	PageSizeMax     int `env:"PAGE_SIZE_MAX,default=100"`

	MigrationsDir string `env:"MIGRATIONS_DIR"`
}

// ReadPostgres and WritePostgres fall back to each other so a single
// database can be configured once.
func (c *Config) ReadPostgres() pg.Config {
	cfg := pg.Config{
		User:         c.PostgresReadUser,
		Host:         c.PostgresReadHost,
		Port:         c.PostgresReadPort,
		Password:     c.PostgresReadPassword,
		Database:     c.PostgresReadDatabase,
		MaxOpenConns: c.PostgresMaxOpenConns,
		MaxIdleConns: c.PostgresMaxIdleConns,
	}
	if cfg.Host == "" {
		return c.WritePostgres()
	}
	return cfg
}

func (c *Config) WritePostgres() pg.Config {
	return pg.Config{
		User:         c.PostgresWriteUser,
		Host:         c.PostgresWriteHost,
		Port:         c.PostgresWritePort,
		Password:     c.PostgresWritePassword,
		Database:     c.PostgresWriteDatabase,
		MaxOpenConns: c.PostgresMaxOpenConns,
		MaxIdleConns: c.PostgresMaxIdleConns,
	}
}

// HTTPServer returns the listener settings; unset buffer sizes keep the
// server defaults.
func (c *Config) HTTPServer() xhttp.ServerOption {
	return xhttp.ServerOption{
		ReadTimeout:        c.HttpReadTimeout,
		WriteTimeout:       c.HttpWriteTimeout,
		IdleTimeout:        c.HttpIdleTimeout,
		ShutdownTimeout:    c.HttpShutdownTimeout,
		ReadBufferSize:     c.HttpServerReadBufferSize,
		WriteBufferSize:    c.HttpServerWriteBufferSize,
		MaxRequestBodySize: c.HttpMaxRequestBodySize,
	}
}

func (c *Config) validate() error {
	if c.PostgresWriteHost == "" {
		return errors.New("POSTGRES_WRITE_HOST is required")
	}
	if c.PageSizeDefault < 1 || c.PageSizeMax < c.PageSizeDefault {
		return errors.Errorf("invalid page sizes: default %d, max %d", c.PageSizeDefault, c.PageSizeMax)
	}
	return nil
}

func Load(path string) error {
	logger.Info("loading configs..", "path", path)
	c := &Config{}
	var err error
	if path != "" {
		logger.Info("trying to publish env from file", "path", path)
		err = godotenv.Load(path)
		if err != nil {
			return errors.Wrapf(err, "failed to load configuration file %s", path)
		}
	}

	_, err = env.UnmarshalFromEnviron(c)
	if err != nil {
		return errors.Wrap(err, "failed to map env variables to Configuration object")
	}
	if err = c.validate(); err != nil {
		return err
	}

	config = c
	return nil
}

func Get() *Config {
	if config == nil {
		logger.Panic("Config is not initialized")
	}
	return config
}
