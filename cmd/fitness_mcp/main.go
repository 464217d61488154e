// Package main runs the fitness MCP server over stdio (for local assistant use).
// The same MCP server is also mounted on the main backend at /mcp over HTTP,
// so you can use either: stdio (this cmd) or the backend URL (no extra deploy).
package main

import (
	"context"
	"flag"
	"log"

	"github.com/bfit-app/bfit-backend/internal/config"
	"github.com/bfit-app/bfit-backend/internal/db"
	"github.com/bfit-app/bfit-backend/internal/fitness"
	"github.com/bfit-app/bfit-backend/internal/fitness/fitnessmcp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewPool(ctx, db.PoolParams{
		Host:           cfg.PostgresHost,
		Port:           cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	sessionsRepo := fitness.NewRepo(dbPool)
	server := fitnessmcp.NewServer(sessionsRepo)

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
