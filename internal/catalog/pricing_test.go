package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceLookup(t *testing.T) {
	assert.Equal(t, 500.0, Price("Wellness Checkup"))
	assert.Equal(t, 800.0, Price("Vaccination"))
	assert.Equal(t, 3000.0, Price("Surgery"))
	assert.Equal(t, 350.0, Price("Deworming"))
	assert.Equal(t, 1200.0, Price("Dental Cleaning"))
	assert.Equal(t, 600.0, Price("Grooming"))

	// Unknown services price at zero, never an error.
	assert.Equal(t, 0.0, Price("Acupuncture"))
	assert.False(t, IsService("Acupuncture"))
	assert.True(t, IsService("Grooming"))
}

func TestItemTotal(t *testing.T) {
	assert.Equal(t, 672.0, ItemTotal(600.0))
	assert.Equal(t, 392.0, ItemTotal(350.0))
	assert.Equal(t, 0.0, ItemTotal(0.0))
}

func TestTotalize(t *testing.T) {
	inv := Totalize([]float64{600.0})
	assert.Equal(t, 600.0, inv.Subtotal)
	assert.Equal(t, 72.0, inv.VAT)
	assert.Equal(t, 672.0, inv.TotalPayable)

	inv = Totalize([]float64{500.0, 800.0, 350.0})
	assert.Equal(t, 1650.0, inv.Subtotal)
	assert.Equal(t, 198.0, inv.VAT)
	assert.Equal(t, 1848.0, inv.TotalPayable)

	inv = Totalize(nil)
	assert.Equal(t, 0.0, inv.Subtotal)
	assert.Equal(t, 0.0, inv.VAT)
	assert.Equal(t, 0.0, inv.TotalPayable)
}

// For a single item the per-item path and the invoice path agree.
func TestSingleItemPathsAgree(t *testing.T) {
	for _, s := range Services() {
		inv := Totalize([]float64{s.Price})
		assert.Equal(t, ItemTotal(s.Price), inv.TotalPayable, s.Title)
	}
}

// With fractional cents the two rounding paths legitimately diverge:
// summing per-item totals rounds each product, while the invoice rounds
// subtotal and VAT once. The invoice rule is the one billing follows.
func TestAggregateRoundingDivergesFromPerItem(t *testing.T) {
	prices := []float64{10.05, 20.05}

	perItemSum := ItemTotal(10.05) + ItemTotal(20.05)
	assert.Equal(t, 11.26, ItemTotal(10.05))
	assert.Equal(t, 22.46, ItemTotal(20.05))
	assert.InDelta(t, 33.72, perItemSum, 1e-9)

	inv := Totalize(prices)
	assert.Equal(t, 30.10, inv.Subtotal)
	assert.Equal(t, 3.61, inv.VAT)
	assert.Equal(t, 33.71, inv.TotalPayable)
}

// Pricing is a pure function of the input set.
func TestTotalizeIdempotent(t *testing.T) {
	prices := []float64{600.0, 1200.0, 350.0}

	first := Totalize(prices)
	second := Totalize(prices)

	assert.Equal(t, first, second)
}
