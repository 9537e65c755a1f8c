// Command import seeds the configured todo store from a JSON array of todos.
package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"serverless-todos-api/internal/config"
	"serverless-todos-api/internal/logging"
	"serverless-todos-api/internal/migration"
	"serverless-todos-api/pkg/server"

	"github.com/sirupsen/logrus"
)

func main() {
	var (
		jsonPath = flag.String("json", "./data/todos.json", "JSON seed file path")
		action   = flag.String("action", "import", "Action: check, import, validate")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
		dryRun   = flag.Bool("dry-run", false, "Parse the seed file without writing to storage")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	logger := logging.New(cfg.Log)

	absJSONPath, err := filepath.Abs(*jsonPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to get absolute JSON path")
	}

	logger.WithFields(logrus.Fields{
		"json_path":    absJSONPath,
		"storage_type": cfg.Storage.Type,
		"action":       *action,
		"dry_run":      *dryRun,
	}).Info("Starting JSON import tool")

	ctx := context.Background()

	if *action == "check" || *dryRun {
		if err := checkJSONFile(absJSONPath, logger); err != nil {
			logger.WithError(err).Fatal("Failed to check JSON file")
		}
		return
	}

	container, err := server.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize container")
	}
	defer container.Close()

	importer := migration.NewJSONImporter(container.Repository, absJSONPath, logger)

	switch *action {
	case "import":
		err = runImport(ctx, importer)
	case "validate":
		err = importer.Validate(ctx)
		if err == nil {
			fmt.Println("Seed validation passed")
		}
	default:
		logger.WithField("action", *action).Fatal("Unknown action. Use: check, import, validate")
	}

	if err != nil {
		container.Close()
		logger.WithError(err).Fatal("JSON import failed")
	}

	logger.Info("JSON import tool completed successfully")
}

func checkJSONFile(jsonPath string, logger *logrus.Logger) error {
	todos, warnings, err := migration.NewJSONImporter(nil, jsonPath, logger).Load()
	if err != nil {
		return err
	}

	fmt.Printf("%d todos ready for import from %s\n", len(todos), jsonPath)
	printList("Skipped", warnings)
	return nil
}

func runImport(ctx context.Context, importer *migration.JSONImporter) error {
	result, err := importer.Import(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\n=== Import Results ===\n")
	fmt.Printf("Todos processed: %d\n", result.Processed)
	fmt.Printf("Todos skipped: %d\n", result.Skipped)
	printList("Skipped", result.Warnings)
	printList("Errors", result.Errors)

	if len(result.Errors) > 0 {
		return fmt.Errorf("import completed with %d errors", len(result.Errors))
	}

	return importer.Validate(ctx)
}

func printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n%s (%d):\n", title, len(items))
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}
