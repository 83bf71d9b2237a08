// Command token issues a bearer token for an API client.
//
// Usage:
//
//	JWT_SECRET=... token -client web
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mmynk/moneysplitter/internal/auth"
	"github.com/mmynk/moneysplitter/internal/config"
)

func main() {
	client := flag.String("client", "", "name of the client the token is issued to")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if !cfg.AuthEnabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET must be set")
		os.Exit(1)
	}

	token, err := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL).Generate(*client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
