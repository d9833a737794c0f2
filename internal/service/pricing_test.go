package service

import (
	"testing"

	"binfresh/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func testCalculator() *Calculator {
	return NewCalculator(map[string]float64{"wheelie": 5, "food": 3}, 10)
}

func TestCalculator_PricingOneOff(t *testing.T) {
	calc := testCalculator()

	pricing := calc.Pricing(map[string]int{"wheelie": 2, "food": 1}, "oneoff")

	assert.Equal(t, 13.0, pricing.BinTotal)
	assert.Equal(t, 10.0, pricing.ServiceCharge)
	assert.Equal(t, 23.0, pricing.TotalPrice)
}

func TestCalculator_PricingRegularHasNoServiceCharge(t *testing.T) {
	calc := testCalculator()

	pricing := calc.Pricing(map[string]int{"wheelie": 1}, "regular")

	assert.Equal(t, 5.0, pricing.BinTotal)
	assert.Equal(t, 0.0, pricing.ServiceCharge)
	assert.Equal(t, 5.0, pricing.TotalPrice)
}

func TestCalculator_PricingTotalInvariant(t *testing.T) {
	calc := testCalculator()

	selections := []map[string]int{
		{},
		{"wheelie": 1},
		{"wheelie": 3, "food": 2},
		{"unknown": 7},
		{"wheelie": 0, "food": 0},
	}
	for _, sel := range selections {
		for _, serviceType := range []string{"oneoff", "one-off", "regular", ""} {
			pricing := calc.Pricing(sel, serviceType)
			assert.Equal(t, pricing.BinTotal+pricing.ServiceCharge, pricing.TotalPrice)
		}
	}
}

func TestCalculator_PotentialValueIgnoresUnknownBinTypes(t *testing.T) {
	calc := testCalculator()

	assert.Equal(t, 5.0, calc.PotentialValue(map[string]int{"wheelie": 1, "jacuzzi": 4}))
	assert.Equal(t, 0.0, calc.PotentialValue(map[string]int{"jacuzzi": 4}))
	assert.Equal(t, 0.0, calc.PotentialValue(nil))
}

func TestCalculator_PotentialValueMonotonic(t *testing.T) {
	calc := testCalculator()

	prev := 0.0
	for qty := 0; qty <= 10; qty++ {
		v := calc.PotentialValue(map[string]int{"wheelie": qty, "food": 1})
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestCalculator_PotentialValueIgnoresNegativeQuantities(t *testing.T) {
	calc := testCalculator()

	assert.Equal(t, 0.0, calc.PotentialValue(map[string]int{"wheelie": -3}))
}

func TestCalculator_CompletionPercentageTwoSignals(t *testing.T) {
	calc := testCalculator()

	// firstName + email: 2 of 8 signals
	got := calc.CompletionPercentage(entity.FormData{FirstName: "A", Email: "a@b.com"})
	assert.Equal(t, 25, got)
}

func TestCalculator_CompletionPercentageAllSignals(t *testing.T) {
	calc := testCalculator()

	got := calc.CompletionPercentage(entity.FormData{
		FirstName:     "A",
		LastName:      "B",
		Email:         "a@b.com",
		Phone:         "0123",
		Address:       "1 Test Street",
		ServiceType:   "oneoff",
		PaymentMethod: "card",
		BinSelection:  map[string]int{"wheelie": 1},
	})
	assert.Equal(t, 100, got)
}

func TestCalculator_CompletionPercentageMonotonic(t *testing.T) {
	calc := testCalculator()

	data := entity.FormData{}
	prev := calc.CompletionPercentage(data)

	steps := []func(*entity.FormData){
		func(d *entity.FormData) { d.FirstName = "A" },
		func(d *entity.FormData) { d.LastName = "B" },
		func(d *entity.FormData) { d.Email = "a@b.com" },
		func(d *entity.FormData) { d.Phone = "0123" },
		func(d *entity.FormData) { d.Address = "1 Test Street" },
		func(d *entity.FormData) { d.ServiceType = "oneoff" },
		func(d *entity.FormData) { d.PaymentMethod = "card" },
		func(d *entity.FormData) { d.BinSelection = map[string]int{"wheelie": 1} },
	}
	for _, step := range steps {
		step(&data)
		got := calc.CompletionPercentage(data)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
	assert.Equal(t, 100, prev)
}

func TestCalculator_ZeroQuantityIsNotABinSignal(t *testing.T) {
	calc := testCalculator()

	withZero := calc.CompletionPercentage(entity.FormData{BinSelection: map[string]int{"wheelie": 0}})
	assert.Equal(t, 0, withZero)
}

func TestIsOneOffService(t *testing.T) {
	assert.True(t, IsOneOffService("oneoff"))
	assert.True(t, IsOneOffService("one-off"))
	assert.True(t, IsOneOffService("One_Off"))
	assert.False(t, IsOneOffService("regular"))
	assert.False(t, IsOneOffService(""))
}
