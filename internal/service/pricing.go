package service

import (
	"math"
	"strings"

	"binfresh/internal/domain/entity"
)

// Calculator derives pricing, lead value and form-completion scores from
// raw form input. All methods are pure; the price table and one-off
// service charge come from configuration.
type Calculator struct {
	prices       map[string]float64
	oneOffCharge float64
}

func NewCalculator(prices map[string]float64, oneOffCharge float64) *Calculator {
	table := make(map[string]float64, len(prices))
	for binType, price := range prices {
		table[strings.ToLower(binType)] = price
	}
	return &Calculator{prices: table, oneOffCharge: oneOffCharge}
}

// Pricing computes the full order price. The total always equals
// binTotal + serviceCharge; callers persist the result as-is.
func (c *Calculator) Pricing(binSelection map[string]int, serviceType string) entity.Pricing {
	binTotal := c.sumBinPrices(binSelection)
	var serviceCharge float64
	if IsOneOffService(serviceType) {
		serviceCharge = c.oneOffCharge
	}
	return entity.Pricing{
		BinTotal:      binTotal,
		ServiceCharge: serviceCharge,
		TotalPrice:    binTotal + serviceCharge,
	}
}

// PotentialValue estimates the lead value of a partial bin selection.
// Unknown bin types contribute zero: abandoned-form data is untrusted
// and must never cause an error.
func (c *Calculator) PotentialValue(binSelection map[string]int) float64 {
	return c.sumBinPrices(binSelection)
}

// CompletionPercentage scores how far a customer got through the form.
// Seven field signals plus one bin-selection signal, out of eight,
// rounded to the nearest integer percent.
func (c *Calculator) CompletionPercentage(data entity.FormData) int {
	signals := 0
	for _, present := range []bool{
		data.FirstName != "",
		data.LastName != "",
		data.Email != "",
		data.Phone != "",
		data.Address != "",
		data.ServiceType != "",
		data.PaymentMethod != "",
		data.HasBinSelection(),
	} {
		if present {
			signals++
		}
	}
	return int(math.Round(float64(signals) / 8 * 100))
}

func (c *Calculator) sumBinPrices(binSelection map[string]int) float64 {
	var total float64
	for binType, qty := range binSelection {
		if qty <= 0 {
			continue
		}
		total += c.prices[strings.ToLower(binType)] * float64(qty)
	}
	return total
}

// IsOneOffService reports whether the service type is a single visit
// rather than a recurring clean. Accepts "oneoff", "one-off", "one_off".
func IsOneOffService(serviceType string) bool {
	normalized := strings.ToLower(serviceType)
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ReplaceAll(normalized, "_", "")
	return normalized == "oneoff"
}
