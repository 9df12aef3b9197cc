package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"crowdfund/internal/adapter/repo"
	"crowdfund/internal/domain"
	"crowdfund/internal/infra"
)

func main() {
	var (
		dryRun  bool
		timeout time.Duration
	)
	flag.BoolVar(&dryRun, "dry-run", false, "report what would be linked without writing")
	flag.DurationVar(&timeout, "timeout", 5*time.Minute, "abort the backfill after this long")
	flag.Parse()

	_ = godotenv.Load()

	if err := run(os.Getenv("DATABASE_URL"), dryRun, timeout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(dbURL string, dryRun bool, timeout time.Duration) error {
	dbURL = strings.TrimSpace(dbURL)
	if dbURL == "" {
		return errors.New("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", "backfill").Logger()
	contributions := repo.NewContributionRepository(infra.NewSQLRunner(pool, logger))

	report, err := contributions.BackfillCampaignIDs(ctx, dryRun)
	if err != nil {
		return fmt.Errorf("backfill campaign ids: %w", err)
	}
	printReport(os.Stdout, report, dryRun)
	return nil
}

func printReport(w io.Writer, report domain.BackfillReport, dryRun bool) {
	verb := "linked"
	if dryRun {
		verb = "would link"
	}
	fmt.Fprintf(w, "%s %d contributions\n", verb, report.Linked)
	fmt.Fprintf(w, "ambiguous=%d (company name shared by several campaigns)\n", report.Ambiguous)
	fmt.Fprintf(w, "unmatched=%d (no campaign with that company name)\n", report.Unmatched)
}
