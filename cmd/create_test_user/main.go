package main

import (
	"context"
	"errors"
	"log"
	"os"

	"todolist_api/internal/db"
	"todolist_api/internal/repository"
	"todolist_api/internal/service"
	"todolist_api/internal/session"
)

// Seeds a known test account and verifies the password round-trip.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	users := repository.NewUserRepository(pool)
	auth := service.NewAuthService(users, session.NewMemoryStore())
	ctx := context.Background()

	const (
		email    = "test@example.com"
		password = "securepassword"
	)

	u, err := auth.Register(ctx, service.RegisterInput{
		Username: "test_user",
		Email:    email,
		Password: password,
		Name:     "Test User",
		Avatar:   "http://example.com/avatar.jpg",
	})
	if err != nil {
		if !errors.Is(err, repository.ErrDuplicateUser) {
			log.Fatalf("register failed: %v", err)
		}
		u, err = users.GetByEmail(ctx, email)
		if err != nil {
			log.Fatalf("fetch existing user failed: %v", err)
		}
		log.Printf("user already exists id=%d\n", u.ID)
	} else {
		log.Printf("user created id=%d\n", u.ID)
	}

	var hasher service.PasswordHasher
	if !hasher.Verify(password, u.PasswordHash) {
		log.Fatal("password verification failed")
	}
	log.Printf("password verified for %s (hash never equals plaintext: %v)\n", u.Email, u.PasswordHash != password)
}
