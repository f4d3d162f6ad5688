package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"food-donate/internal/service"
	"food-donate/internal/storage"
)

// Options carries settings for the page handlers.
type Options struct {
	CookieName string
	LoginPath  string
	// SSL enables HTTPS redirects and HSTS; leave it off behind a TLS-terminating proxy.
	SSL    bool
	Logger *logrus.Logger
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	donations  service.DonationService
	profiles   service.ProfileService
	assets     storage.Source
	views      *views
	logger     *logrus.Logger
	cookieName string
	loginPath  string
	ssl        bool
}

func NewHandler(donations service.DonationService, profiles service.ProfileService, assets storage.Source, opts Options) *Handler {
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	if opts.CookieName == "" {
		opts.CookieName = "session_id"
	}
	if opts.LoginPath == "" {
		opts.LoginPath = "/login"
	}
	return &Handler{
		donations:  donations,
		profiles:   profiles,
		assets:     assets,
		views:      newViews(),
		logger:     opts.Logger,
		cookieName: opts.CookieName,
		loginPath:  opts.LoginPath,
		ssl:        opts.SSL,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestLogger(h.logger))
	router.Use(secure.New(h.secureConfig()))
	router.Use(h.sessionContext())

	router.GET("/donate", h.showDonateForm)
	router.POST("/donate", h.submitDonation)
	router.GET("/profile", h.showProfile)

	router.GET("/", h.serveAsset("index.html"))
	router.GET("/index.html", h.serveAsset("index.html"))
	router.GET("/about.html", h.serveAsset("about.html"))
	router.GET("/contact.html", h.serveAsset("contact.html"))
	router.GET("/styles/*filepath", h.serveStyles)

	// old links from the PHP site
	router.GET("/fooddonateform.php", redirectTo(http.StatusMovedPermanently, "/donate"))
	router.POST("/fooddonateform.php", redirectTo(http.StatusPermanentRedirect, "/donate"))
	router.GET("/profile.php", redirectTo(http.StatusMovedPermanently, "/profile"))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})
}

func (h *Handler) secureConfig() secure.Config {
	cfg := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	if h.ssl {
		cfg.SSLRedirect = true
		cfg.STSSeconds = 31536000
		cfg.STSIncludeSubdomains = true
	}
	return cfg
}

func redirectTo(status int, location string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(status, location)
	}
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Info("request")
	}
}
