package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/finsight/internal/bootstrap"
	companyrepo "github.com/kailas-cloud/finsight/internal/repository/company"
	documentrepo "github.com/kailas-cloud/finsight/internal/repository/document"
	"github.com/kailas-cloud/finsight/internal/transport/upstream"
	analysisuc "github.com/kailas-cloud/finsight/internal/usecase/analysis"
	"github.com/kailas-cloud/finsight/internal/usecase/docsync"
	fetchuc "github.com/kailas-cloud/finsight/internal/usecase/fetch"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFrom(cmd)
			store, err := bootstrap.OpenDatabase(cmd.Context(), a.cfg.Database, true, a.logger)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			version, err := store.MigrationVersion(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
			return nil
		},
	}
}

func newFetchCmd() *cobra.Command {
	var (
		ids     []string
		idsFile string
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download company profiles from the upstream API into the document store",
		Example: `  finsightctl fetch --ids TCS,INFY
  finsightctl fetch --ids-file companies.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFrom(cmd)

			if idsFile != "" {
				fromFile, err := readIDsFile(idsFile)
				if err != nil {
					return err
				}
				ids = append(ids, fromFile...)
			}
			if len(ids) == 0 {
				return fmt.Errorf("no identifiers: use --ids or --ids-file")
			}

			client, err := upstream.New(upstream.Config{
				BaseURL:    a.cfg.Fetch.BaseURL,
				APIKey:     a.cfg.Fetch.APIKey,
				RatePerSec: a.cfg.Fetch.RatePerSec,
				Timeout:    a.cfg.Fetch.Timeout(),
			})
			if err != nil {
				return err
			}

			docs, closeDocs, err := bootstrap.OpenDocuments(cmd.Context(), a.cfg.Documents, readiness(a), a.logger)
			if err != nil {
				return err
			}
			defer closeDocs()

			report, err := fetchuc.New(client, docs, a.logger).Fetch(cmd.Context(), ids)
			fmt.Fprintf(cmd.OutOrStdout(), "stored %d, failed %d\n", len(report.Stored), len(report.Failed))
			for _, f := range report.Failed {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %v\n", f.ID, f.Err)
			}
			return err
		},
	}

	cmd.Flags().StringSliceVar(&ids, "ids", nil, "comma-separated company identifiers")
	cmd.Flags().StringVar(&idsFile, "ids-file", "", "file with one identifier per line")
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [ID...]",
		Short: "Derive analysis rows from stored documents (all documents when no ID is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)

			store, err := bootstrap.OpenDatabase(cmd.Context(), a.cfg.Database, a.cfg.Database.AutoMigrate, a.logger)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			docs, closeDocs, err := bootstrap.OpenDocuments(cmd.Context(), a.cfg.Documents, readiness(a), a.logger)
			if err != nil {
				return err
			}
			defer closeDocs()

			classifier, err := bootstrap.NewClassifier(a.cfg.Analysis, a.logger)
			if err != nil {
				return err
			}

			svc := analysisuc.New(docs, companyrepo.New(store), classifier, a.logger).
				WithWorkers(a.cfg.Analysis.Workers)

			start := time.Now()
			report, err := svc.AnalyzeAll(cmd.Context(), args)
			a.logger.Info("Analysis finished",
				zap.String("classifier", classifier.Name()),
				zap.Int("succeeded", report.Succeeded),
				zap.Int("failed", len(report.Failed)),
				zap.Duration("duration", time.Since(start)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "analyzed %d, failed %d\n", report.Succeeded, len(report.Failed))
			for _, f := range report.Failed {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %v\n", f.ID, f.Err)
			}
			return err
		},
	}
}

func newSyncCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Copy filesystem documents into the configured redis/valkey document store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFrom(cmd)
			if a.cfg.Documents.Driver == "fs" {
				return fmt.Errorf("sync needs documents.driver redis or valkey, got fs")
			}
			if dir == "" {
				dir = a.cfg.Documents.Dir
			}

			dst, closeDst, err := bootstrap.OpenDocuments(cmd.Context(), a.cfg.Documents, readiness(a), a.logger)
			if err != nil {
				return err
			}
			defer closeDst()

			report, err := docsync.New(documentrepo.NewFileRepo(dir), dst, a.logger).Sync(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "copied %d, failed %d\n", report.Copied, len(report.Failed))
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "source directory (default: documents.dir)")
	return cmd
}

func readiness(a *app) time.Duration {
	return time.Duration(a.cfg.Database.ReadinessTimeout) * time.Second
}

// readIDsFile reads one identifier per line; blank lines and # comments are skipped.
func readIDsFile(path string) ([]string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open ids file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return parseIDs(f)
}

func parseIDs(r io.Reader) ([]string, error) {
	var ids []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read ids: %w", err)
	}
	return ids, nil
}
