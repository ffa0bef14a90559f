// Command seedadmin creates the first admin account. Signup is admin-gated,
// so a fresh database cannot otherwise mint one.
//
// Usage:
//
//	seedadmin -username admin -email admin@example.com -phone 555-0100 -password <pw>
package main

import (
	"context"
	"flag"
	"time"

	"comanda/internal/config"
	"comanda/internal/infra"
	"comanda/internal/model"
	"comanda/internal/repository"
	"comanda/internal/security"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func main() {
	username := flag.String("username", "", "admin username")
	email := flag.String("email", "", "admin email")
	phone := flag.String("phone", "", "admin phone")
	password := flag.String("password", "", "admin password (min 8 chars)")
	flag.Parse()

	if *username == "" || *email == "" || *phone == "" || len(*password) < 8 {
		log.Fatal().Msg("username, email and phone are required; password must be at least 8 characters")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := infra.NewDatabase(ctx, cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer client.Disconnect(context.Background())

	salted, err := security.GenerateSaltedHash(*password, security.DefaultSaltLength)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	repo := repository.NewEmployeeRepository(db)
	admin := &model.Employee{
		ID:           primitive.NewObjectID(),
		Username:     *username,
		Email:        *email,
		Phone:        *phone,
		PasswordHash: salted.Hash,
		Salt:         salted.Salt,
		Department:   string(model.RoleAdmin),
	}
	ok, err := repo.Insert(ctx, admin)
	if err != nil {
		log.Fatal().Err(err).Msg("insert failed")
	}
	if !ok {
		log.Fatal().Msg("an employee with that username, email or phone already exists")
	}
	log.Info().Str("id", admin.ID.Hex()).Str("username", admin.Username).Msg("admin account created")
}
