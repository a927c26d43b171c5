package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/claude/liftplan/internal/program"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

func main() {
	routineID := flag.String("routine", program.Wendler531ID, "routine program id")
	bench := flag.Float64("bench", 0, "bench press 1RM (default: program default)")
	squat := flag.Float64("squat", 0, "squat 1RM (default: program default)")
	deadlift := flag.Float64("deadlift", 0, "deadlift 1RM (default: program default)")
	press := flag.Float64("press", 0, "standing shoulder press 1RM (default: program default)")
	halfSteps := flag.Bool("half-steps", false, "round loads to 0.5 instead of 2.5")
	format := flag.String("format", "json", "output format: json or yaml")
	schemaOnly := flag.Bool("schema", false, "print the parameter schema instead of a routine")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	_ = godotenv.Load()

	svc := program.NewService(program.DefaultCatalog(), nil, log)
	ctx := context.Background()

	var out any
	if *schemaOnly {
		schema, err := svc.Parameters(ctx, *routineID)
		if err != nil {
			log.Error("failed to load schema", "routine", *routineID, "error", err)
			os.Exit(1)
		}
		out = schema
	} else {
		params, err := svc.Defaults(ctx, *routineID)
		if err != nil {
			log.Error("failed to load defaults", "routine", *routineID, "error", err)
			os.Exit(1)
		}
		// Only flags the user actually set override the defaults, so
		// explicit zero or negative maxes pass through unchanged.
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "bench":
				params.BenchPress1RM = *bench
			case "squat":
				params.Squat1RM = *squat
			case "deadlift":
				params.Deadlift1RM = *deadlift
			case "press":
				params.StandingShoulderPress1RM = *press
			case "half-steps":
				params.RoundToNearest25 = !*halfSteps
			}
		})

		routine, err := svc.Generate(ctx, *routineID, params)
		if err != nil {
			log.Error("failed to generate routine", "routine", *routineID, "error", err)
			os.Exit(1)
		}
		out = routine
	}

	if err := write(os.Stdout, *format, out); err != nil {
		log.Error("failed to write output", "format", *format, "error", err)
		os.Exit(1)
	}
}

func write(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
