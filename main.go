package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flyambition/flyambition-api/handlers"
	"github.com/flyambition/flyambition-api/internal/config"
	"github.com/flyambition/flyambition-api/internal/database"
	"github.com/flyambition/flyambition-api/internal/models"
	"github.com/flyambition/flyambition-api/internal/notify"
	subhandler "github.com/flyambition/flyambition-api/internal/submission/handler"
	subrepo "github.com/flyambition/flyambition-api/internal/submission/repository"
	subservice "github.com/flyambition/flyambition-api/internal/submission/service"
	thandler "github.com/flyambition/flyambition-api/internal/testimonial/handler"
	trepo "github.com/flyambition/flyambition-api/internal/testimonial/repository"
	tservice "github.com/flyambition/flyambition-api/internal/testimonial/service"
	"github.com/flyambition/flyambition-api/internal/uploads"
	"github.com/flyambition/flyambition-api/pkg/logger"
	"github.com/flyambition/flyambition-api/pkg/metrics"
	"github.com/flyambition/flyambition-api/pkg/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// LOG_LEVEL is read before config so config errors are visible at the right level
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)
	if cfg.Log.File != "" {
		logger.UseFile(cfg.Log.File)
	}
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())
	logger.Infof("config loaded: mongo_db=%s uploads=%s email_enabled=%v", cfg.MongoDB.Database, cfg.Uploads.Dir, cfg.Email.Enabled)

	gin.SetMode(cfg.Server.GinMode)
	r := gin.New()
	r.MaxMultipartMemory = cfg.Uploads.MaxUploadMB << 20
	r.Use(middleware.RequestID(), middleware.RequestLogger(), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))

	// Retry/backoff when connecting to MongoDB to tolerate startup races
	const maxAttempts = 5
	ctx := context.Background()
	client, err := database.ConnectWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, maxAttempts, func(attempt int, err error) {
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, err)
	})
	if err != nil {
		logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, err)
	}
	store := database.NewStore(client, cfg.MongoDB.Database)
	logger.Infof("connected to MongoDB database %s", cfg.MongoDB.Database)

	images, err := uploads.NewStore(cfg.Uploads.Dir)
	if err != nil {
		logger.Fatalf("failed to prepare upload dir %s: %v", cfg.Uploads.Dir, err)
	}
	images.Register(r)

	sender, err := notify.NewSender(cfg.Email.Enabled, notify.SMTPConfig{
		Host:     cfg.Email.Host,
		Port:     cfg.Email.Port,
		Username: cfg.Email.Username,
		Password: cfg.Email.Password,
		Timeout:  cfg.Email.Timeout,
	})
	switch {
	case err != nil:
		logger.Errorf("email enabled but not usable (%v); form submissions will fail until EMAIL_USER/EMAIL_PASS are set", err)
	case !cfg.Email.Enabled:
		logger.Infof("EMAIL_ENABLED=false, notifications are logged only")
	}
	if cfg.Email.Recipient == "" {
		logger.Warnf("TO_EMAIL is not set; notification delivery will fail")
	}
	notifier := notify.NewNotifier(sender, cfg.Email.Recipient)

	handlers.RegisterHealth(r, store)
	handlers.RegisterSwagger(r)

	thandler.RegisterTestimonialRoutes(r, tservice.New(trepo.NewMongoRepo(store.Testimonials()), images),
		middleware.BodySizeLimit(cfg.Uploads.MaxUploadMB<<20))
	subhandler.RegisterSubmissionRoutes(r,
		subservice.New(models.KindEmployment, subrepo.NewMongoRepo(store.FormSubmissions()), notifier),
		subservice.New(models.KindEducation, subrepo.NewMongoRepo(store.ApplySubmissions()), notifier),
	)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Infof("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infof("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server forced to shutdown: %v", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Warnf("mongo disconnect: %v", err)
	}
	logger.Infof("server exited")
}

// corsConfig allows every origin when the list is empty or contains "*".
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}
