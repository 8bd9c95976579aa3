package models

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	// ErrPaymentNotFound is returned when no payment has the requested name.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrDuplicatePayment is returned when two payments share a name.
	ErrDuplicatePayment = errors.New("duplicate payment name")
	// ErrConfigNotFound is returned when the payments file does not exist.
	ErrConfigNotFound = errors.New("payments file not found")
	// ErrConfigUnreadable is returned when the payments file cannot be read or parsed.
	ErrConfigUnreadable = errors.New("payments file unreadable")
)

// document is the structure of the payments file.
type document struct {
	Payments []Payment `yaml:"payments"`
}

// Store is an ordered set of payments indexed by name. File order is kept
// for serialization; lookups go through the index.
type Store struct {
	payments []Payment
	index    map[string]int
	dirty    bool
}

// NewStore builds a store from payments, rejecting duplicate names.
func NewStore(payments []Payment) (*Store, error) {
	s := &Store{
		payments: make([]Payment, 0, len(payments)),
		index:    make(map[string]int, len(payments)),
	}
	for _, p := range payments {
		if _, ok := s.index[p.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePayment, p.Name)
		}
		s.index[p.Name] = len(s.payments)
		s.payments = append(s.payments, p)
	}
	return s, nil
}

// Load reads a store from a YAML payments file.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigUnreadable, err)
	}

	return Parse(data)
}

// Parse decodes a store from YAML bytes. An empty document is an empty store.
func Parse(data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigUnreadable, err)
	}
	return NewStore(doc.Payments)
}

// Marshal encodes the store as YAML in file order.
func (s *Store) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(document{Payments: s.Payments()}); err != nil {
		return nil, fmt.Errorf("failed to encode payments: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode payments: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the whole store to path through a temporary file and a rename,
// so the file is never left half written. The permissions of an existing file
// are kept; new files get 0644. A successful save clears the dirty flag.
func (s *Store) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write payments: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write payments: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace payments file: %w", err)
	}

	s.dirty = false
	return nil
}

// Len returns the number of payments.
func (s *Store) Len() int {
	return len(s.payments)
}

// Find returns the payment with exactly this name.
func (s *Store) Find(name string) (*Payment, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return &s.payments[i], true
}

// SetAmount overwrites the amount of the named payment.
func (s *Store) SetAmount(name string, amount decimal.Decimal) error {
	p, ok := s.Find(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPaymentNotFound, name)
	}
	p.Amount = amount
	s.dirty = true
	return nil
}

// SetDayPaid overwrites the day of month the named payment is paid on.
func (s *Store) SetDayPaid(name string, day int) error {
	p, ok := s.Find(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPaymentNotFound, name)
	}
	p.DayPaid = day
	s.dirty = true
	return nil
}

// Add appends a new payment.
func (s *Store) Add(p Payment) error {
	if _, ok := s.index[p.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePayment, p.Name)
	}
	s.index[p.Name] = len(s.payments)
	s.payments = append(s.payments, p)
	s.dirty = true
	return nil
}

// Dirty reports whether the store changed since it was loaded or saved.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Payments returns a copy of the payments in file order.
func (s *Store) Payments() []Payment {
	out := make([]Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

// Sorted returns a copy of the payments ordered by name.
func (s *Store) Sorted() []Payment {
	out := s.Payments()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
