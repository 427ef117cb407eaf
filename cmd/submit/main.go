package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"submitr/internal/engine/submission"
	apperrors "submitr/internal/pkg/errors"
	"submitr/internal/pkg/logger"
	"submitr/internal/platform/config"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Error().Err(err).Str("code", apperrors.CodeOf(err)).Msg("submission failed")
		os.Exit(apperrors.ExitCode(err))
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.Init(cfg.Logging)

	secret, err := config.Secret()
	if err != nil {
		return err
	}
	log.Debug().
		Int("secret_length", len(secret)).
		Str("secret_prefix", secretPrefix(secret)).
		Msg("loaded signing secret")

	payload, err := submission.FromEnv(time.Now())
	if err != nil {
		return err
	}
	log.Info().Str("timestamp", payload.Timestamp).Msg("payload constructed")

	canonical, err := payload.Canonical()
	if err != nil {
		return fmt.Errorf("canonicalizing payload: %w", err)
	}
	log.Debug().Str("payload", string(canonical)).Msg("canonical payload")

	client := submission.NewClient(cfg.Endpoint.URL, secret, cfg.HTTP.Timeout)

	log.Info().Str("endpoint", cfg.Endpoint.URL).Msg("submitting application")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	receipt, err := client.Submit(ctx, canonical)
	if err != nil {
		return err
	}

	log.Info().
		Int("status", receipt.StatusCode).
		Str("delivery_id", receipt.DeliveryID).
		Int("header_count", len(receipt.Headers)).
		Msg("submission accepted")

	// The receipt is the run's execution record; print it verbatim.
	fmt.Println(string(receipt.Body))
	return nil
}

// secretPrefix masks the secret for diagnostics. Never log the full value.
func secretPrefix(secret string) string {
	if len(secret) < 4 {
		return "****"
	}
	return secret[:4] + "..."
}
