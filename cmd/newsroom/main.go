package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	adapthttp "newsroom/internal/adapter/http"
	"newsroom/internal/adapter/memory"
	"newsroom/internal/adapter/postgres"
	"newsroom/internal/app"
	"newsroom/internal/domain"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	addr := env("ADDR", ":8080")
	webDir := env("WEB_DIR", "web")
	apiURL := env("API_URL", "http://localhost:8080/api")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	var users domain.UserRepository
	var posts domain.PostRepository
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		db, err := postgres.Open(connStr)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		users = db
		posts = postgres.NewPostRepo(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory store")
		mem := memory.New()
		users = mem
		posts = memory.NewPostRepo(mem)
	}

	tokens := app.NewTokenService([]byte(secret))
	authSvc := app.NewAuthService(users, tokens)
	postSvc := app.NewPostService(posts)

	oidcCfg, err := adapthttp.LoadOIDCConfig(context.Background())
	if err != nil {
		log.Fatalf("oidc setup: %v", err)
	}

	h := adapthttp.New(authSvc, postSvc, tokens, oidcCfg, webDir, apiURL).Handler()
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
