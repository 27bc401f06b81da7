package inkwell

import (
	"time"

	"github.com/ogulcan/inkwell/views"
)

// Config holds all configuration for an inkwell site. It is built once at
// startup and never mutated afterwards.
type Config struct {
	Site views.SiteConfig

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/blog.db")

	AdminUser         string // Required: shared admin username
	AdminPassword     string // Plaintext admin password (compared constant-time)
	AdminPasswordHash string // bcrypt hash; takes precedence over AdminPassword

	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	UploadDir     string // Upload directory (default "public/uploads")
	PageSize      int    // Posts per listing page (default 5)
	MaxUploadSize int64  // Upload size cap in bytes (default 10MB)

	PostCacheTTL time.Duration // Post cache TTL (default 5min)

	Mail MailConfig
}

// MailConfig configures the SMTP collaborator for contact notifications.
// An empty Host disables outbound mail; submissions are still persisted.
type MailConfig struct {
	Host     string
	Port     int    // default 465 (implicit TLS)
	Username string
	Password string
	Owner    string // notification recipient (default Username)
}

func (c *Config) setDefaults() {
	if c.Site.Name == "" {
		c.Site.Name = "Blog"
	}
	if c.Site.URL == "" {
		c.Site.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/blog.db"
	}
	if c.UploadDir == "" {
		c.UploadDir = "public/uploads"
	}
	if c.PageSize <= 0 {
		c.PageSize = 5
	}
	if c.MaxUploadSize <= 0 {
		c.MaxUploadSize = 10 << 20
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
	if c.Mail.Port == 0 {
		c.Mail.Port = 465
	}
	if c.Mail.Owner == "" {
		c.Mail.Owner = c.Mail.Username
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithMailer replaces the default SMTP mailer, mainly for tests.
func WithMailer(m Mailer) Option {
	return func(a *App) {
		a.Mailer = m
	}
}
