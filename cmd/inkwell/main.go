package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ogulcan/inkwell"
	"github.com/ogulcan/inkwell/views"
)

func main() {
	// Values already present in the environment win over .env entries.
	_ = godotenv.Load()

	cfg := inkwell.Config{
		Site: views.SiteConfig{
			Name:        inkwell.EnvOr("SITE_NAME", "Blog"),
			URL:         strings.TrimSuffix(inkwell.EnvOr("SITE_URL", "http://localhost:3000"), "/"),
			Description: os.Getenv("SITE_DESCRIPTION"),
			Author:      os.Getenv("SITE_AUTHOR"),
		},
		Addr:              inkwell.EnvOr("ADDR", ":3000"),
		DatabasePath:      databasePath(),
		AdminUser:         inkwell.MustEnv("ADMIN_USER"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		SessionSecret:     inkwell.MustEnv("SESSION_SECRET"),
		CookieSecure:      boolEnv("COOKIE_SECURE"),
		UploadDir:         inkwell.EnvOr("UPLOAD_DIR", "public/uploads"),
		PageSize:          intEnv("PAGE_SIZE", 5),
		PostCacheTTL:      5 * time.Minute,
		Mail: inkwell.MailConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     intEnv("SMTP_PORT", 465),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			Owner:    os.Getenv("OWNER_EMAIL"),
		},
	}

	app := inkwell.New(cfg, inkwell.WithStaticDir(inkwell.EnvOr("STATIC_DIR", "public")))
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// databasePath honors the LOCAL_SERVER switch: a truthy value selects the
// local database path over the production one.
func databasePath() string {
	if boolEnv("LOCAL_SERVER") {
		return inkwell.EnvOr("LOCAL_DATABASE_PATH", "data/blog.db")
	}
	return inkwell.EnvOr("DATABASE_PATH", "data/blog.db")
}

func boolEnv(key string) bool {
	return strings.EqualFold(os.Getenv(key), "true")
}

func intEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
