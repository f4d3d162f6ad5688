package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"food-donate/internal/config"
	apphttp "food-donate/internal/http"
	"food-donate/internal/repository/sqlite"
	"food-donate/internal/service"
	"food-donate/internal/storage"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	donationRepo := sqlite.NewDonationRepository(db)
	userRepo := sqlite.NewUserRepository(db)

	if err := donationRepo.Init(ctx); err != nil {
		logger.Fatalf("init donation repository: %v", err)
	}
	if err := userRepo.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}

	assets, err := buildAssetSource(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("setup assets: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(
		service.NewDonationService(donationRepo),
		service.NewProfileService(userRepo),
		assets,
		apphttp.Options{
			CookieName: cfg.Session.CookieName,
			LoginPath:  cfg.Session.LoginPath,
			SSL:        cfg.Server.SSL,
			Logger:     logger,
		},
	)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

func buildAssetSource(ctx context.Context, cfg config.Config, logger *logrus.Logger) (storage.Source, error) {
	if cfg.Assets.Bucket == "" {
		logger.Info("serving embedded static assets")
		return storage.NewFSSource(apphttp.StaticFS()), nil
	}

	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Assets.Region),
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.AWS.Profile))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Assets.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Assets.Endpoint)
			o.UsePathStyle = true
		}
	})
	logger.Infof("serving static assets from s3 bucket %s (region %s)", cfg.Assets.Bucket, cfg.Assets.Region)
	return storage.NewS3Source(client, cfg.Assets.Bucket, cfg.Assets.Prefix), nil
}
