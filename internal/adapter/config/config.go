package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Gateway  *Gateway
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

// Gateway configures the simulated settlement boundary. Seed 0 means
// seed from the clock.
type Gateway struct {
	SuccessRate float64 `env:"GATEWAY_SUCCESS_RATE"`
	Seed        int64   `env:"GATEWAY_SEED"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var gateway Gateway
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.Float64Var(&gateway.SuccessRate, "g", 0.95, "Gateway success rate")
	flag.Int64Var(&gateway.Seed, "s", 0, "Gateway random seed")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(&gateway)
	if err != nil {
		return nil, fmt.Errorf("error parsing gateway config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Gateway:  &gateway,
		App:      &app,
	}

	return &config, nil
}
