// seed-user inserts a user row into the users table (owned by the external
// authentication subsystem) so a fresh database can exercise the
// authenticated endpoints. Prints the user id and a dev access token.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/diskusi-dev/diskusi/internal/config"
	"github.com/diskusi-dev/diskusi/internal/jwt"
	"github.com/diskusi-dev/diskusi/internal/logger"
	"github.com/diskusi-dev/diskusi/internal/storage/pg"
)

func main() {
	var (
		configFolder string
		username     string
		password     string
		fullname     string
	)
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.StringVar(&username, "username", "", "username to create")
	flag.StringVar(&password, "password", "", "password for the user")
	flag.StringVar(&fullname, "fullname", "", "display name (defaults to username)")
	flag.Parse()

	if username == "" || password == "" {
		fmt.Fprintln(os.Stderr, "usage: seed-user -username <name> -password <pass> [-fullname <name>]")
		os.Exit(2)
	}
	if fullname == "" {
		fullname = username
	}

	cfg := config.MustLoad(configFolder)

	db, err := pg.Connect(cfg)
	if err != nil {
		logger.Log.Error("failed to connect to db", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "err", err)
		os.Exit(1)
	}

	id := "user-" + uuid.NewString()
	_, err = db.Exec(
		"INSERT INTO users(id, username, password, fullname) VALUES ($1, $2, $3, $4)",
		id, username, string(hash), fullname,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			fmt.Fprintf(os.Stderr, "username %q already exists\n", username)
			os.Exit(1)
		}
		logger.Log.Error("failed to insert user", "err", err)
		os.Exit(1)
	}

	token, err := jwt.New(cfg.Private.JwtKey, cfg.Public.JwtTTL*time.Second).NewToken(id, username)
	if err != nil {
		logger.Log.Error("failed to create token", "err", err)
		os.Exit(1)
	}

	fmt.Printf("id: %s\naccess token: %s\n", id, token)
}
