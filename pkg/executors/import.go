package executors

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yurifrl/balance/pkg/importer"
	"github.com/yurifrl/balance/pkg/models"
	"github.com/yurifrl/balance/pkg/parser"
)

// Import adds the bills from a sheet, or from every sheet in a directory,
// that are not in the payments file yet.
func (e *Executor) Import(path string) (importer.Result, error) {
	files, err := e.sheets(path)
	if err != nil {
		return importer.Result{}, err
	}

	p := parser.New(e.logger)
	var payments []models.Payment
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return importer.Result{}, fmt.Errorf("failed to read file: %w", err)
		}
		parsed, err := p.ProcessBytes(data, filepath.Base(file))
		if err != nil {
			return importer.Result{}, fmt.Errorf("failed to process file %s: %w", file, err)
		}
		e.logger.Debug("parsed sheet", "file", file, "bills", len(parsed))
		payments = append(payments, parsed...)
	}

	store, err := e.loadOrCreateStore()
	if err != nil {
		return importer.Result{}, err
	}

	res := importer.New(store, e.logger).Import(payments)
	if err := e.persist(store); err != nil {
		return res, err
	}

	e.logger.Info("import finished", "path", path, "added", len(res.Added), "skipped", len(res.Skipped))
	fmt.Fprintf(e.out, "Import: %d bill(s) added, %d already present\n", len(res.Added), len(res.Skipped))
	return res, nil
}

// sheets expands a directory into the supported files it holds.
func (e *Executor) sheets(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("error reading directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !parser.Supported(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no bill sheets found in %s", path)
	}
	return files, nil
}
