package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/liftplan/internal/cache"
	"github.com/claude/liftplan/internal/mcp"
	"github.com/claude/liftplan/internal/program"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "liftplan server URL for remote mode (e.g. https://liftplan.tail1234.ts.net)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("liftplan-mcp", Version)
		return
	}

	// stdout carries the MCP protocol, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	_ = godotenv.Load()

	var src mcp.RoutineSource
	if *serverURL != "" {
		src = mcp.NewHTTPClient(*serverURL, os.Getenv("LIFTPLAN_AUTH_API_KEY"))
		log.Info("remote mode", "server", *serverURL)
	} else {
		src = program.NewService(program.DefaultCatalog(), cache.NewMemory(cache.DefaultMemorySize), log)
		log.Info("local mode")
	}

	if err := mcpserver.ServeStdio(mcp.New(src, Version, log)); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
