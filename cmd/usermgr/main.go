// Command usermgr provisions user accounts and session tokens in the site database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"food-donate/internal/config"
	"food-donate/internal/repository/sqlite"
	"food-donate/internal/service"
)

func main() {
	var (
		create      = flag.Bool("create", false, "create a user")
		session     = flag.Bool("session", false, "issue a session token for a user")
		username    = flag.String("username", "", "username")
		displayName = flag.String("display", "", "display name (defaults to the username)")
		ttl         = flag.Duration("ttl", service.DefaultSessionTTL, "session lifetime")
		dbPath      = flag.String("db", "", "database path (overrides configuration)")
	)
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if *create == *session {
		fmt.Fprintln(os.Stderr, "usage: usermgr -create -username NAME [-display \"Display Name\"]")
		fmt.Fprintln(os.Stderr, "       usermgr -session -username NAME [-ttl 168h]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	if err := userRepo.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}
	users := service.NewUserService(userRepo)

	switch {
	case *create:
		user, err := users.Create(ctx, *username, *displayName)
		if err != nil {
			logger.Fatalf("create user: %v", err)
		}
		logger.WithFields(logrus.Fields{"id": user.ID, "username": user.Username}).Info("user created")
	case *session:
		s, err := users.IssueSession(ctx, *username, *ttl)
		if err != nil {
			logger.Fatalf("issue session: %v", err)
		}
		logger.WithField("expires_at", s.ExpiresAt.Format(time.RFC3339)).Infof("session issued for %s", *username)
		fmt.Println(s.ID)
	}
}
