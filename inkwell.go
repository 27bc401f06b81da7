// Package inkwell is a small personal blog/portfolio engine built with Go,
// Echo, and templ. It serves a paginated post listing, an admin dashboard
// for post and file management behind a shared-credential session gate, and
// a public contact form that emails the site owner.
package inkwell

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
)

// App wires together the store, cache, mailer, middleware, and handlers.
type App struct {
	Config Config
	Echo   *echo.Echo
	Store  *Store
	Cache  *PostCache
	Mailer Mailer

	loginLimiter *LoginLimiter
	staticDir    string
}

// New creates an App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start initializes the database, cache, mailer, middleware, and routes,
// then starts the server. It blocks until the server stops.
func (a *App) Start() error {
	if a.Config.AdminUser == "" {
		return fmt.Errorf("inkwell: AdminUser is required")
	}
	if a.Config.AdminPassword == "" && a.Config.AdminPasswordHash == "" {
		return fmt.Errorf("inkwell: AdminPassword or AdminPasswordHash is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("inkwell: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("inkwell: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewPostCache(store, a.Config.PostCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	if a.Mailer == nil {
		if a.Config.Mail.Host != "" {
			a.Mailer = NewSMTPMailer(a.Config.Mail)
		} else {
			a.Echo.Logger.Warn("no SMTP host configured; contact notifications disabled")
			a.Mailer = noopMailer{}
		}
	}

	a.setupMiddleware()
	a.setupRoutes()

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded assets are served under /public/ ahead of the static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/style.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.Static("/public", a.staticDir)

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Public routes.
	e.GET("/", a.handleHome)
	e.GET("/post/:slug", a.handlePost)
	e.GET("/about", a.handleAbout)
	e.GET("/contact", a.handleContact)
	e.POST("/contact", a.handleContact)
	e.GET("/upload_files", a.handleFileList)
	e.POST("/upload_files", a.handleFileList)

	// Login / session routes.
	e.GET("/dashbord", a.handleDashboard)
	e.POST("/dashbord", a.handleDashboard)
	e.GET("/logout", a.handleLogout)

	// Admin routes behind the session gate.
	e.GET("/edit/:id", a.handleEdit, a.requireAdmin)
	e.POST("/edit/:id", a.handleEdit, a.requireAdmin)
	e.GET("/delete_post/:id", a.handleDeletePost, a.requireAdmin)
	e.POST("/delete_post/:id", a.handleDeletePost, a.requireAdmin)
	e.GET("/delete_file/:id", a.handleDeleteFile, a.requireAdmin)
	e.POST("/delete_file/:id", a.handleDeleteFile, a.requireAdmin)
	e.GET("/uploder", a.handleUploader, a.requireAdmin)
	e.POST("/uploder", a.handleUploader, a.requireAdmin)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("inkwell: required environment variable %s is not set", key)
	}
	return v
}
