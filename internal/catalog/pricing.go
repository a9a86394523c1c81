package catalog

import "math"

// VATRate is the flat value-added tax applied on service subtotals.
const VATRate = 0.12

// Invoice is the derived pricing breakdown for a set of booked services.
type Invoice struct {
	Subtotal     float64 `json:"subtotal"`
	VAT          float64 `json:"vat"`
	TotalPayable float64 `json:"total_payable"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ItemTotal is the VAT-inclusive price of a single service. Note this rounds
// the product, while Totalize rounds subtotal and VAT separately before
// adding; the two can differ by a cent on fractional prices.
func ItemTotal(price float64) float64 {
	return round2(price * (1 + VATRate))
}

// Totalize computes the invoice for a set of prices: subtotal, VAT and
// payable total, each rounded to two decimals.
func Totalize(prices []float64) Invoice {
	var sum float64
	for _, p := range prices {
		sum += p
	}

	subtotal := round2(sum)
	vat := round2(subtotal * VATRate)

	return Invoice{
		Subtotal:     subtotal,
		VAT:          vat,
		TotalPayable: round2(subtotal + vat),
	}
}
