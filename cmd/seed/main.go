package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/franciscosanchezn/linkup-api/internal/config"
	"github.com/franciscosanchezn/linkup-api/internal/database"
	"github.com/franciscosanchezn/linkup-api/internal/models"
	"github.com/franciscosanchezn/linkup-api/internal/services"
)

// seed bootstraps a user with a role, which is the only way to create the first admin,
// and optionally a development OAuth client owned by that user.
func main() {
	email := flag.String("email", "", "Email of the user to create or update (required)")
	role := flag.String("role", models.RoleAdmin, "User role (admin or user)")
	withClient := flag.Bool("client", false, "Also create a development OAuth client for the user")
	flag.Parse()

	log.SetFormatter(&log.JSONFormatter{})

	if *email == "" {
		log.Fatal("-email is required")
	}
	if *role != models.RoleAdmin && *role != models.RoleUser {
		log.Fatalf("Unknown role %q", *role)
	}

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}

	dbConfig := config.LoadDatabaseConfig()
	db, err := database.InitDatabase(database.FromConfig(dbConfig))
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := database.Migrate(ctx, db, dbConfig.DBDriver); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	users := services.NewUserService(db)
	created, err := users.CreateUser(ctx, &models.User{Email: *email, Name: *email, Role: *role})
	if err != nil {
		log.WithError(err).Fatal("Failed to create user")
	}
	if !created {
		if err := users.SetRoleByEmail(ctx, *email, *role); err != nil && !errors.Is(err, services.ErrNotFound) {
			log.WithError(err).Fatal("Failed to update user role")
		}
	}
	log.WithFields(log.Fields{"email": *email, "role": *role, "created": created}).Info("User seeded")

	if !*withClient {
		return
	}

	clientID := "dev-" + uuid.New().String()[:8]
	clientSecret := uuid.New().String()
	hash, err := bcrypt.GenerateFromPassword([]byte(clientSecret), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Fatal("Failed to hash secret")
	}

	client := &models.OAuthClient{
		ID:         clientID,
		Secret:     string(hash),
		Name:       fmt.Sprintf("Development %s client", *role),
		Domain:     "http://localhost",
		OwnerEmail: *email,
		Scopes:     "read write",
	}
	if err := services.NewClientService(db).CreateClient(ctx, client); err != nil {
		log.WithError(err).Fatal("Failed to create client")
	}

	fmt.Printf("Development OAuth client created for %s (role %s)\n", *email, *role)
	fmt.Printf("Client ID: %s\n", clientID)
	fmt.Printf("Client Secret: %s\n", clientSecret)
	fmt.Println("\nExchange them for a bearer token:")
	fmt.Printf("curl -X POST http://localhost:5000/oauth/token \\\n")
	fmt.Printf("  -d 'grant_type=client_credentials' \\\n")
	fmt.Printf("  -d 'client_id=%s' \\\n", clientID)
	fmt.Printf("  -d 'client_secret=%s'\n", clientSecret)
}
