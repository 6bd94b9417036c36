package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/cinespot/cinespot-api/config"
	"github.com/cinespot/cinespot-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@cinespot.app"
	password := "password123"
	name := "Demo User"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name, is_verified)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, name).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	movies := []struct{ movieID, title, poster string }{
		{"27205", "Inception", "https://image.tmdb.org/t/p/w500/oYuLEt3zVCKq57qu2F8dT7NIa6f.jpg"},
		{"157336", "Interstellar", "https://image.tmdb.org/t/p/w500/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg"},
	}
	for _, m := range movies {
		if _, err := db.Exec(`
			INSERT INTO collection_items (user_id, movie_id, title, poster_url)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, movie_id) DO NOTHING
		`, id, m.movieID, m.title, m.poster); err != nil {
			log.Fatalf("failed to seed collection item %s: %v", m.movieID, err)
		}
	}
	fmt.Printf("seeded %d collection items\n", len(movies))
}
