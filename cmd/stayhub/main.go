package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rishiboppana/stayhub/internal/app"
	"github.com/rishiboppana/stayhub/internal/config"
	"github.com/rishiboppana/stayhub/internal/middleware"
	"github.com/rishiboppana/stayhub/internal/repository"
	"github.com/wb-go/wbf/dbpg"
)

func main() {
	cfg := config.MustLoad()

	if len(os.Args) > 1 && os.Args[1] == "token" {
		if err := issueToken(cfg, os.Args[2:]); err != nil {
			log.Fatalf("token: %v", err)
		}
		return
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}

// issueToken prints a bearer token for a registered user: stayhub token -sub 20
func issueToken(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	sub := fs.Int64("sub", 0, "user id")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *sub <= 0 {
		return fmt.Errorf("-sub must be positive")
	}

	db, err := dbpg.New(cfg.Postgres.DSN(), nil, &dbpg.Options{MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Master.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// роль берётся из записи пользователя, а не из флагов
	user, err := repository.NewUserRepo(db).GetByID(ctx, *sub)
	if err != nil {
		return err
	}

	token, err := middleware.IssueToken([]byte(cfg.Auth.JWTSecret), user.Actor(), *ttl)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
