package executors

import (
	"errors"
	"fmt"
	"os"

	"github.com/yurifrl/balance/pkg/models"
)

// Edit opens the payments file in the editor, creating an empty one first
// if needed, and checks that the result still parses.
func (e *Executor) Edit() error {
	path := e.config.PaymentsFile

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		store, err := models.NewStore(nil)
		if err != nil {
			return err
		}
		if err := store.Save(path); err != nil {
			return fmt.Errorf("failed to create payments file: %w", err)
		}
		e.logger.Info("created payments file", "file", path)
	}

	e.logger.Debug("opening editor", "file", path)
	if err := e.editor.Edit(path); err != nil {
		return err
	}

	store, err := models.Load(path)
	if err != nil {
		return fmt.Errorf("payments file no longer valid: %w", err)
	}
	e.logger.Info("payments file updated", "count", store.Len())
	return nil
}
