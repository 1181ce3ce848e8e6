package config

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// DevJWTSecret se usa sólo si JWT_SECRET no está seteado; main loguea un warning.
const DevJWTSecret = "dev-secret-change-me"

type Config struct {
	Port    string `env:"PORT,default=8080"`
	AppName string `env:"APP_NAME,default=pick-your-pup"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`

	// DB_DSN vacío => store in-memory (modo dev).
	DBDSN     string `env:"DB_DSN"`
	DBMigrate bool   `env:"DB_MIGRATE,default=true"`
	DBSeed    bool   `env:"DB_SEED,default=true"`

	JWTSecret  string        `env:"JWT_SECRET"`
	JWTTTL     time.Duration `env:"JWT_TTL,default=24h"`
	BcryptCost int           `env:"BCRYPT_COST,default=10"`

	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS,default=*"`

	// IPs o CIDRs separados por coma; vacío => X-Forwarded-For se ignora.
	TrustedProxiesRaw string `env:"TRUSTED_PROXIES"`

	AuthRatePerSec int `env:"AUTH_RATE_PER_SEC,default=5"`
	AuthRateBurst  int `env:"AUTH_RATE_BURST,default=10"`

	ContactWebhookURL string `env:"CONTACT_WEBHOOK_URL"`
	StaticDir         string `env:"STATIC_DIR"`

	HTTPReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT,default=5s"`
	HTTPWriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT,default=10s"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

// Load lee .env (si existe) y luego el entorno.
func Load(envFiles ...string) (Config, error) {
	// .env es opcional; un archivo faltante no es error.
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("config: decode env: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.JWTSecret) == "" {
		c.JWTSecret = DevJWTSecret
	}
	if c.JWTTTL <= 0 {
		c.JWTTTL = 24 * time.Hour
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("config: PORT is empty")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("config: BCRYPT_COST must be between 4 and 31, got %d", c.BcryptCost)
	}
	if c.AuthRatePerSec <= 0 || c.AuthRateBurst <= 0 {
		return errors.New("config: AUTH_RATE_PER_SEC and AUTH_RATE_BURST must be positive")
	}
	if _, err := c.TrustedProxies(); err != nil {
		return err
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func (c Config) UsingDevSecret() bool {
	return c.JWTSecret == DevJWTSecret
}

// AllowedOrigins parsea CORS_ALLOWED_ORIGINS (separado por comas).
func (c Config) AllowedOrigins() []string {
	out := make([]string, 0)
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// TrustedProxies parsea TRUSTED_PROXIES. Una IP suelta equivale a /32 (o /128).
func (c Config) TrustedProxies() ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0)
	for _, raw := range strings.Split(c.TrustedProxiesRaw, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.Contains(raw, "/") {
			p, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("config: TRUSTED_PROXIES: %w", err)
			}
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("config: TRUSTED_PROXIES: %w", err)
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}
