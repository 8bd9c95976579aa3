package executors

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/balance/pkg/config"
	"github.com/yurifrl/balance/pkg/editor"
	"github.com/yurifrl/balance/pkg/models"
	"github.com/yurifrl/balance/pkg/ynab"
)

// AccountFetcher reads a live account from YNAB.
type AccountFetcher interface {
	GetAccount(budgetID, accountID string) (*ynab.Account, error)
}

// FileEditor opens a file for the user to change.
type FileEditor interface {
	Edit(path string) error
}

// Executor runs the CLI commands against the payments file.
type Executor struct {
	logger   *log.Logger
	config   *config.Config
	out      io.Writer
	now      func() time.Time
	accounts AccountFetcher
	editor   FileEditor
}

// Option configures an Executor.
type Option func(*Executor)

// WithOutput sends command output to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(e *Executor) { e.out = w }
}

// WithClock replaces the clock used to find today's day of month.
func WithClock(now func() time.Time) Option {
	return func(e *Executor) { e.now = now }
}

// WithAccounts sets the YNAB account source.
func WithAccounts(a AccountFetcher) Option {
	return func(e *Executor) { e.accounts = a }
}

// WithEditor sets the editor used by Edit.
func WithEditor(ed FileEditor) Option {
	return func(e *Executor) { e.editor = ed }
}

// New returns an Executor for the given settings. Unless overridden it writes
// to stdout, reads the wall clock and opens files with the configured editor.
func New(logger *log.Logger, config *config.Config, opts ...Option) *Executor {
	e := &Executor{
		logger: logger,
		config: config,
		out:    os.Stdout,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.editor == nil {
		e.editor = editor.New(config.Editor)
	}
	return e
}

// loadStore reads the payments file.
func (e *Executor) loadStore() (*models.Store, error) {
	store, err := models.Load(e.config.PaymentsFile)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("loaded payments", "file", e.config.PaymentsFile, "count", store.Len())
	return store, nil
}

// loadOrCreateStore is loadStore that treats a missing file as empty.
func (e *Executor) loadOrCreateStore() (*models.Store, error) {
	store, err := e.loadStore()
	if errors.Is(err, models.ErrConfigNotFound) {
		e.logger.Debug("payments file missing, starting empty", "file", e.config.PaymentsFile)
		return models.NewStore(nil)
	}
	return store, err
}

// persist saves the store only when something changed.
func (e *Executor) persist(store *models.Store) error {
	if !store.Dirty() {
		return nil
	}
	if err := store.Save(e.config.PaymentsFile); err != nil {
		return fmt.Errorf("failed to save payments: %w", err)
	}
	e.logger.Debug("saved payments", "file", e.config.PaymentsFile, "count", store.Len())
	return nil
}

// fetcher returns the YNAB account source, creating a client on first use.
func (e *Executor) fetcher() (AccountFetcher, error) {
	if e.accounts != nil {
		return e.accounts, nil
	}
	client, err := ynab.New(e.config.YNAB.Token())
	if err != nil {
		return nil, fmt.Errorf("%w (set %s)", err, e.config.YNAB.TokenEnv)
	}
	e.accounts = client
	return client, nil
}

// Path prints where the payments file lives.
func (e *Executor) Path() {
	fmt.Fprintln(e.out, e.config.PaymentsFile)
}
