package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"storefront-app/config"
	"storefront-app/database"
	"storefront-app/internal/domain/access"
	"storefront-app/internal/domain/users"
	"storefront-app/internal/repository/postgres"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run cmd/create-user/main.go <username> <password> [admin|staff] [capability,...]")
		fmt.Println("Example: go run cmd/create-user/main.go clerk s3cret-pass staff manage_orders,manage_products")
		os.Exit(1)
	}

	username := strings.TrimSpace(os.Args[1])
	password := os.Args[2]
	role := users.RoleStaff
	if len(os.Args) > 3 {
		role = os.Args[3]
	}
	if !users.IsValidRole(role) {
		fmt.Fprintf(os.Stderr, "Invalid role %q (admin or staff)\n", role)
		os.Exit(1)
	}

	perms := []string{}
	if len(os.Args) > 4 {
		for _, p := range strings.Split(os.Args[4], ",") {
			p = strings.TrimSpace(p)
			if !access.IsKnown(p) {
				fmt.Fprintf(os.Stderr, "Unknown capability %q, known: %s\n", p, strings.Join(access.AllNames(), ", "))
				os.Exit(1)
			}
			perms = append(perms, p)
		}
	}
	if role == users.RoleAdmin {
		perms = access.AllNames()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.MemoryMode() {
		fmt.Fprintln(os.Stderr, "DB_URL is not set")
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	db, err := database.InitDB(cfg.DBURL, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash password: %v\n", err)
		os.Exit(1)
	}

	repos := postgres.NewRepositories(db, logger)
	u := &users.User{Username: username, Password: string(hash), Role: role, Permissions: perms}
	if err := repos.User.Create(context.Background(), u); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully!\n")
	fmt.Printf("ID: %d\n", u.ID)
	fmt.Printf("Username: %s\n", u.Username)
	fmt.Printf("Role: %s\n", u.Role)
	fmt.Printf("Capabilities: %s\n", strings.Join(access.CapabilitiesFor(*u), ", "))
}
