package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/finsight/internal/config"
	documentrepo "github.com/kailas-cloud/finsight/internal/repository/document"
	openaicls "github.com/kailas-cloud/finsight/internal/transport/openai"
	analysisuc "github.com/kailas-cloud/finsight/internal/usecase/analysis"
)

func TestOpenDatabase_SQLiteWithMigrations(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "finsight.db")
	store, err := OpenDatabase(context.Background(), config.DatabaseConfig{
		Driver:           "sqlite",
		DSN:              dsn,
		ReadinessTimeout: 5,
	}, true, zap.NewNop())
	if err != nil {
		t.Fatalf("OpenDatabase: %v", err)
	}
	defer store.Close()

	version, err := store.MigrationVersion(context.Background())
	if err != nil {
		t.Fatalf("MigrationVersion: %v", err)
	}
	if version < 1 {
		t.Errorf("expected migrations applied, got version %d", version)
	}
}

func TestOpenDatabase_UnknownDriver(t *testing.T) {
	_, err := OpenDatabase(context.Background(), config.DatabaseConfig{Driver: "oracle", DSN: "x"}, false, zap.NewNop())
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestOpenDocuments_FS(t *testing.T) {
	dir := t.TempDir()
	docs, closeFn, err := OpenDocuments(context.Background(), config.DocumentsConfig{Driver: "fs", Dir: dir}, 0, zap.NewNop())
	if err != nil {
		t.Fatalf("OpenDocuments: %v", err)
	}
	defer closeFn()

	if _, ok := docs.(*documentrepo.FileRepo); !ok {
		t.Errorf("expected *FileRepo, got %T", docs)
	}
	if err := docs.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func TestOpenDocuments_UnknownDriver(t *testing.T) {
	if _, _, err := OpenDocuments(context.Background(), config.DocumentsConfig{Driver: "s3"}, 0, zap.NewNop()); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewClassifier(t *testing.T) {
	rules, err := NewClassifier(config.AnalysisConfig{Classifier: "rules"}, zap.NewNop())
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	if _, ok := rules.(analysisuc.RulesClassifier); !ok {
		t.Errorf("expected RulesClassifier, got %T", rules)
	}

	remote, err := NewClassifier(config.AnalysisConfig{
		Classifier: "openai",
		Provider:   config.ProviderConfig{Name: "openai", APIKey: "k", Model: "m"},
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("openai: %v", err)
	}
	if _, ok := remote.(*openaicls.Classifier); !ok {
		t.Errorf("expected *openai.Classifier, got %T", remote)
	}

	if _, err := NewClassifier(config.AnalysisConfig{Classifier: "dice"}, zap.NewNop()); err == nil {
		t.Error("expected error for unknown classifier")
	}
}
