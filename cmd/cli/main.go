package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"posprep/adapters/excel"
	"posprep/adapters/fuzzy"
	"posprep/app"
	"posprep/domain/workbook"
	"posprep/internal/config"
	"posprep/internal/logging"
	"posprep/internal/report"
)

func main() {
	var (
		input   = flag.String("in", "", "Path to the onboarding workbook (.xlsx)")
		fixOut  = flag.String("fix", "", "Write a corrected copy with all suggestions applied to this path")
		csvOut  = flag.String("csv", "", "Write the issue report as CSV to this path")
		noFuzzy = flag.Bool("no-suggestions", false, "Disable approximate-match suggestions")
	)
	flag.Parse()
	_ = godotenv.Load()

	if *input == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	logger := logging.NewDefaultLogger()

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("cannot read %s: %v", *input, err)
	}

	svc := app.NewValidationService(
		cfg.Engine,
		workbook.DefaultCatalog(),
		excel.NewDocumentReader(),
		excel.NewFixWriter(),
		fuzzy.Select(!*noFuzzy, logger),
		logger,
	)

	ctx := context.Background()
	rep, err := svc.Verify(ctx, data)
	if err != nil {
		log.Fatalf("validation aborted: %v", err)
	}

	md, err := report.MarkdownRenderer{}.Render(rep)
	if err != nil {
		log.Fatalf("failed to render report: %v", err)
	}
	fmt.Print(string(md))

	if *csvOut != "" {
		out, err := report.CSVRenderer{}.Render(rep)
		if err != nil {
			log.Fatalf("failed to render CSV: %v", err)
		}
		if err := os.WriteFile(*csvOut, out, 0o644); err != nil {
			log.Fatalf("failed to write %s: %v", *csvOut, err)
		}
	}

	if *fixOut != "" {
		fixed, err := svc.ApplyAccepted(ctx, data, rep.Issues)
		if err != nil {
			log.Fatalf("failed to apply fixes: %v", err)
		}
		if err := os.WriteFile(*fixOut, fixed, 0o644); err != nil {
			log.Fatalf("failed to write %s: %v", *fixOut, err)
		}
		fmt.Printf("\nCorrected copy written to %s\n", *fixOut)
	}
}
