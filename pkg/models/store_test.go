package models

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `payments:
  - name: Rent
    amount: 500
    day_paid: 18
  - name: Gas
    amount: "20.50"
    day_paid: 6
  - name: Water
    amount: 15.25
    day_paid: 20
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	payments := s.Payments()
	assert.Equal(t, "Rent", payments[0].Name)
	assert.True(t, decimal.NewFromInt(500).Equal(payments[0].Amount))
	assert.Equal(t, 18, payments[0].DayPaid)
	assert.True(t, decimal.RequireFromString("20.50").Equal(payments[1].Amount))
	assert.True(t, decimal.RequireFromString("15.25").Equal(payments[2].Amount))
	assert.False(t, s.Dirty())
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("payments:\n  - name: Rent\n    amount: lots\n    day_paid: 1\n"))
	assert.ErrorIs(t, err, ErrConfigUnreadable)

	_, err = Parse([]byte("payments: [unterminated"))
	assert.ErrorIs(t, err, ErrConfigUnreadable)
}

func TestParseRejectsDuplicates(t *testing.T) {
	_, err := Parse([]byte("payments:\n  - {name: Rent, amount: 1, day_paid: 1}\n  - {name: Rent, amount: 2, day_paid: 2}\n"))
	assert.ErrorIs(t, err, ErrDuplicatePayment)
}

func TestFindIsCaseSensitive(t *testing.T) {
	s, err := Parse([]byte(sample))
	require.NoError(t, err)

	p, ok := s.Find("Gas")
	require.True(t, ok)
	assert.Equal(t, 6, p.DayPaid)

	_, ok = s.Find("gas")
	assert.False(t, ok)
}

func TestSetAmount(t *testing.T) {
	s, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.NoError(t, s.SetAmount("Gas", decimal.NewFromInt(42)))
	assert.True(t, s.Dirty())

	p, _ := s.Find("Gas")
	assert.True(t, decimal.NewFromInt(42).Equal(p.Amount))
}

func TestSetAmountUnknownLeavesStoreUnchanged(t *testing.T) {
	s, err := Parse([]byte(sample))
	require.NoError(t, err)
	before := s.Payments()

	err = s.SetAmount("Internet", decimal.NewFromInt(30))
	assert.ErrorIs(t, err, ErrPaymentNotFound)
	assert.False(t, s.Dirty())
	assert.Equal(t, before, s.Payments())
}

func TestSetDayPaid(t *testing.T) {
	s, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.NoError(t, s.SetDayPaid("Water", 3))
	p, _ := s.Find("Water")
	assert.Equal(t, 3, p.DayPaid)

	assert.ErrorIs(t, s.SetDayPaid("Nope", 3), ErrPaymentNotFound)
}

func TestAdd(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)

	require.NoError(t, s.Add(NewPayment("Phone", decimal.NewFromInt(10), 28)))
	assert.True(t, s.Dirty())
	assert.ErrorIs(t, s.Add(NewPayment("Phone", decimal.NewFromInt(11), 1)), ErrDuplicatePayment)
	assert.Equal(t, 1, s.Len())
}

func TestSorted(t *testing.T) {
	s, err := NewStore([]Payment{
		NewPayment("Water", decimal.NewFromInt(20), 3),
		NewPayment("Phone", decimal.NewFromInt(10), 28),
	})
	require.NoError(t, err)

	sorted := s.Sorted()
	assert.Equal(t, "Phone", sorted[0].Name)
	assert.Equal(t, "Water", sorted[1].Name)
	// file order untouched
	assert.Equal(t, "Water", s.Payments()[0].Name)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "spend.yaml")

	s, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, s.SetAmount("Rent", decimal.RequireFromString("512.34")))
	require.NoError(t, s.Save(path))
	assert.False(t, s.Dirty())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rent", "Gas", "Water"}, names(loaded.Payments()))

	p, _ := loaded.Find("Rent")
	assert.True(t, decimal.RequireFromString("512.34").Equal(p.Amount))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "amount: 512.34")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be cleaned up")
}

func TestSaveKeepsPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	dir := t.TempDir()

	shared := filepath.Join(dir, "shared.yaml")
	require.NoError(t, os.WriteFile(shared, []byte(sample), 0o644))
	require.NoError(t, os.Chmod(shared, 0o644))
	private := filepath.Join(dir, "private.yaml")
	require.NoError(t, os.WriteFile(private, []byte(sample), 0o600))

	for path, want := range map[string]os.FileMode{shared: 0o644, private: 0o600} {
		s, err := Load(path)
		require.NoError(t, err)
		require.NoError(t, s.SetAmount("Rent", decimal.NewFromInt(1)))
		require.NoError(t, s.Save(path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, want, info.Mode().Perm(), path)
	}

	fresh := filepath.Join(dir, "fresh.yaml")
	s, err := NewStore(nil)
	require.NoError(t, err)
	require.NoError(t, s.Save(fresh))
	info, err := os.Stat(fresh)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func names(payments []Payment) []string {
	out := make([]string, 0, len(payments))
	for _, p := range payments {
		out = append(out, p.Name)
	}
	return out
}
