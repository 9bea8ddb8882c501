// Command seed creates the static actor account that createEvent attributes
// events to until real authentication lands. Safe to run repeatedly.
package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/easyevent/api/config"
	"github.com/easyevent/api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hasher := helpers.NewHasher(cfg.BcryptCost)
	hash, err := hasher.Hash(cfg.ActorPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id
	`, cfg.ActorUserID, cfg.ActorEmail, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed actor user: %v", err)
	}
	fmt.Printf("seeded actor user: id=%s email=%s\n", id, cfg.ActorEmail)
	fmt.Println("set ACTOR_USER_ID to this id if it differs from the default")
}
