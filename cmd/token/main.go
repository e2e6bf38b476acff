// Command token mints an operator JWT for the mutating payroll endpoints,
// signed with the same secret and issuer the API server loads.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"payflow/config"
	"payflow/internal/service"
	"payflow/pkg/logger"
)

func main() {
	subject := flag.String("sub", "operator", "operator name recorded in audit logs")
	configPath := flag.String("config", os.Getenv("PAYFLOW_CONFIG"), "config file path")
	expiry := flag.Duration("expiry", 0, "token lifetime (defaults to jwt.expiry)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithWriter(cfg.Log.Level, os.Stderr)
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret is required (PAYFLOW_JWT_SECRET)")
	}

	ttl := cfg.JWT.Expiry
	if *expiry > 0 {
		ttl = *expiry
	}

	token, expiresAt, err := service.NewJWTTokenService(cfg.JWT.Secret, ttl, cfg.JWT.Issuer).Generate(*subject)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to sign token")
	}

	log.Info().
		Str("subject", *subject).
		Str("expires_at", expiresAt.UTC().Format(time.RFC3339)).
		Msg("Operator token issued")
	fmt.Println(token)
}
