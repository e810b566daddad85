// Command seed creates the bootstrap administrator account. Credentials come
// from the environment so no password ever ships in the source tree.
package main

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"

	"github.com/edugestion/school-records/internal/core/domain"
	"github.com/edugestion/school-records/internal/core/service"
	"github.com/edugestion/school-records/internal/infrastructure/config"
	mongodb "github.com/edugestion/school-records/internal/infrastructure/db/mongo"
)

type seedConfig struct {
	Username   string `env:"SEED_ADMIN_USERNAME, default=admin"`
	Email      string `env:"SEED_ADMIN_EMAIL,    required"`
	Password   string `env:"SEED_ADMIN_PASSWORD, required"`
	BcryptCost int    `env:"BCRYPT_COST,         default=12"`

	Mongo config.MongoConfig
}

func main() {
	ctx := context.Background()
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg seedConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to load seed configuration")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	hasher := service.NewBcryptHasher(cfg.BcryptCost, nil)
	hash, err := hasher.Hash(ctx, cfg.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash admin password")
	}

	now := time.Now().UTC()
	admin := &domain.User{
		Username:     cfg.Username,
		Email:        strings.ToLower(cfg.Email),
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	repo := mongodb.NewUserRepository(db)
	created, err := repo.Create(ctx, admin)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			log.Info().Str("username", cfg.Username).Msg("admin account already exists, nothing to do")
			return
		}
		log.Fatal().Err(err).Msg("failed to create admin account")
	}

	log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("admin account created")
}
