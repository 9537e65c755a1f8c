package migration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"serverless-todos-api/internal/models"
	"serverless-todos-api/internal/repositories"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// ErrNotArray is returned when the seed file is not a JSON array
var ErrNotArray = errors.New("seed file must contain a JSON array of todos")

// JSONImporter seeds a todo store from a JSON file
type JSONImporter struct {
	repo     repositories.TodoRepository
	logger   *logrus.Logger
	jsonPath string
}

// NewJSONImporter creates a new JSON importer. repo may be nil for
// Check and dry runs.
func NewJSONImporter(repo repositories.TodoRepository, jsonPath string, logger *logrus.Logger) *JSONImporter {
	return &JSONImporter{
		repo:     repo,
		logger:   logger,
		jsonPath: jsonPath,
	}
}

// ImportResult contains the results of an import
type ImportResult struct {
	Processed int
	Skipped   int
	Errors    []string
	Warnings  []string
}

// Load reads the seed file and returns the entries that pass validation.
// Invalid entries are reported as warnings.
func (i *JSONImporter) Load() ([]models.ToDo, []string, error) {
	data, err := os.ReadFile(i.jsonPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", i.jsonPath, err)
	}

	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, nil, ErrNotArray
	}

	var (
		todos    []models.ToDo
		warnings []string
	)
	for idx, entry := range parsed.Array() {
		todo, err := models.ParseTodo([]byte(entry.Raw))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("entry %d: %v", idx, err))
			continue
		}
		todos = append(todos, todo)
	}

	return todos, warnings, nil
}

// Import writes every valid entry through CreateTodo
func (i *JSONImporter) Import(ctx context.Context) (*ImportResult, error) {
	if i.repo == nil {
		return nil, errors.New("no repository configured")
	}

	todos, warnings, err := i.Load()
	if err != nil {
		return nil, err
	}

	result := &ImportResult{
		Errors:   make([]string, 0),
		Warnings: warnings,
		Skipped:  len(warnings),
	}

	for _, todo := range todos {
		resp, err := i.repo.CreateTodo(ctx, todo)
		if err != nil {
			i.logger.WithError(err).WithField("id", todo.ID).Error("Failed to import todo")
			result.Errors = append(result.Errors, fmt.Sprintf("todo %s: %v", todo.ID, err))
			continue
		}
		if resp.StatusCode != http.StatusOK {
			result.Errors = append(result.Errors, fmt.Sprintf("todo %s: unexpected status %d", todo.ID, resp.StatusCode))
			continue
		}
		result.Processed++
	}

	i.logger.WithFields(logrus.Fields{
		"processed": result.Processed,
		"skipped":   result.Skipped,
		"errors":    len(result.Errors),
	}).Info("JSON import completed")

	return result, nil
}

// Validate reads every seeded todo back and compares it with the file.
// When the file repeats an id only the last entry is compared, since the
// import applies entries in order.
func (i *JSONImporter) Validate(ctx context.Context) error {
	if i.repo == nil {
		return errors.New("no repository configured")
	}

	loaded, _, err := i.Load()
	if err != nil {
		return err
	}
	todos := lastByID(loaded)

	var mismatches []string
	for _, want := range todos {
		resp, err := i.repo.ReadTodo(ctx, want.ID)
		if err != nil {
			return fmt.Errorf("failed to read todo %s: %w", want.ID, err)
		}
		if resp.StatusCode != http.StatusOK {
			mismatches = append(mismatches, fmt.Sprintf("%s: missing", want.ID))
			continue
		}

		var got models.ToDo
		if err := json.Unmarshal([]byte(resp.Body), &got); err != nil {
			return fmt.Errorf("failed to decode todo %s: %w", want.ID, err)
		}
		if got != want {
			mismatches = append(mismatches, fmt.Sprintf("%s: stored %s, file %s", want.ID, got.JSON(), want.JSON()))
		}
	}

	if len(mismatches) > 0 {
		return fmt.Errorf("%d todos differ from seed file: %v", len(mismatches), mismatches)
	}

	return nil
}

// lastByID keeps the final entry for each id, ordered by that entry's position
func lastByID(todos []models.ToDo) []models.ToDo {
	last := make(map[string]int, len(todos))
	for idx, todo := range todos {
		last[todo.ID] = idx
	}

	out := make([]models.ToDo, 0, len(last))
	for idx, todo := range todos {
		if last[todo.ID] == idx {
			out = append(out, todo)
		}
	}
	return out
}
