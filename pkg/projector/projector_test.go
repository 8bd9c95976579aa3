package projector

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurifrl/balance/pkg/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "expected %s, got %s", want, got)
}

func billCycle() []models.Payment {
	return []models.Payment{
		models.NewPayment("Phone", dec("10.00"), 28),
		models.NewPayment("Water", dec("20.00"), 3),
	}
}

func TestProjectAcrossCycle(t *testing.T) {
	tests := []struct {
		name       string
		currentDay int
		want       string
	}{
		{"start of period", 19, "70.00"},
		{"midway through", 1, "80.00"},
		{"same day as a bill", 28, "80.00"},
		{"end of month", 31, "80.00"},
		{"on the reset day", 18, "70.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(dec("100.00"), tt.currentDay, 18, billCycle())
			assertDecimal(t, tt.want, got)
		})
	}
}

func TestNonWrappingWindow(t *testing.T) {
	for current := 1; current <= 30; current++ {
		for ref := current + 1; ref <= 31; ref++ {
			require.False(t, Wraps(current, ref))
			for day := 1; day <= 31; day++ {
				want := day > current && day <= ref
				assert.Equalf(t, want, Includes(day, current, ref), "day=%d current=%d ref=%d", day, current, ref)
			}
		}
	}
}

func TestWrappingWindow(t *testing.T) {
	for current := 1; current <= 31; current++ {
		for ref := 1; ref <= current; ref++ {
			require.True(t, Wraps(current, ref))
			for day := 1; day <= 31; day++ {
				inside := day > ref && day <= current
				assert.Equalf(t, !inside, Includes(day, current, ref), "day=%d current=%d ref=%d", day, current, ref)
			}
		}
	}
}

func TestEqualDaysIsAFullMonth(t *testing.T) {
	payments := []models.Payment{
		models.NewPayment("Before", dec("1"), 10),
		models.NewPayment("Same", dec("10"), 15),
		models.NewPayment("After", dec("100"), 20),
	}

	res := Breakdown(dec("1000"), 15, 15, payments)
	assert.True(t, res.Wrapped)
	assertDecimal(t, "111", res.TotalDue)
	assertDecimal(t, "889", res.Remaining)
	assert.Len(t, res.Due, 3)
}

func TestProjectIsLinear(t *testing.T) {
	a := []models.Payment{
		models.NewPayment("Rent", dec("500"), 1),
		models.NewPayment("Phone", dec("12.99"), 28),
	}
	b := []models.Payment{
		models.NewPayment("Gas", dec("20.01"), 6),
		models.NewPayment("Water", dec("15.333"), 20),
		models.NewPayment("Gym", dec("30"), 12),
	}
	balance := dec("1234.56")

	for _, days := range [][2]int{{1, 25}, {19, 17}, {15, 15}, {27, 2}} {
		deltaA := balance.Sub(Project(balance, days[0], days[1], a))
		deltaB := balance.Sub(Project(balance, days[0], days[1], b))
		deltaAB := balance.Sub(Project(balance, days[0], days[1], append(append([]models.Payment{}, a...), b...)))
		assert.Truef(t, deltaA.Add(deltaB).Equal(deltaAB), "days=%v", days)
	}
}

func TestProjectKeepsFullPrecision(t *testing.T) {
	var payments []models.Payment
	for i := 0; i < 3; i++ {
		payments = append(payments, models.NewPayment("Third", dec("0.333"), 5))
	}

	got := Project(dec("10"), 1, 10, payments)
	assertDecimal(t, "9.001", got)
}

func TestUnrealisticDaysAreComparedAsIntegers(t *testing.T) {
	payments := []models.Payment{
		models.NewPayment("Zero", dec("1"), 0),
		models.NewPayment("Huge", dec("10"), 99),
		models.NewPayment("ThirtyFirst", dec("100"), 31),
	}

	// no wrap: (1, 31]
	assertDecimal(t, "900", Project(dec("1000"), 1, 31, payments))
	// wrap from 29 to 5: >29 or <=5
	assertDecimal(t, "889", Project(dec("1000"), 29, 5, payments))
}

func TestRentScenarios(t *testing.T) {
	rent := []models.Payment{models.NewPayment("Rent", dec("500"), 18)}

	assertDecimal(t, "300.00", Project(dec("300"), 19, 17, rent))
	assertDecimal(t, "-200.00", Project(dec("300"), 5, 18, rent))
}

func TestTwoBillsScenario(t *testing.T) {
	payments := []models.Payment{
		models.NewPayment("Gas", dec("20"), 6),
		models.NewPayment("Water", dec("15"), 20),
	}

	res := Breakdown(dec("300"), 1, 25, payments)
	assert.False(t, res.Wrapped)
	assertDecimal(t, "265.00", res.Remaining)
	assert.Equal(t, []string{"Gas", "Water"}, []string{res.Due[0].Name, res.Due[1].Name})
}

func TestAdjustThenProject(t *testing.T) {
	store, err := models.NewStore([]models.Payment{
		models.NewPayment("Rent", dec("500"), 18),
		models.NewPayment("Energy", dec("80"), 10),
	})
	require.NoError(t, err)

	before := Project(dec("300"), 5, 18, store.Payments())
	require.NoError(t, store.SetAmount("Energy", dec("95.50")))
	after := Project(dec("300"), 5, 18, store.Payments())

	// balance drops by new - old
	assertDecimal(t, "-15.50", after.Sub(before))
}

func TestNoPayments(t *testing.T) {
	res := Breakdown(dec("42.42"), 3, 9, nil)
	assert.Empty(t, res.Due)
	assertDecimal(t, "0", res.TotalDue)
	assertDecimal(t, "42.42", res.Remaining)
}
