package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcPrices_FlatShippingBelowThreshold(t *testing.T) {
	prices := CalcPrices([]OrderItem{
		{Price: 19.99, Qty: 2},
		{Price: 5.5, Qty: 1},
	})

	assert.Equal(t, 45.48, prices.ItemsPrice)
	assert.Equal(t, 10.0, prices.ShippingPrice)
	assert.Equal(t, 6.82, prices.TaxPrice)
	assert.Equal(t, 62.3, prices.TotalPrice)
}

func TestCalcPrices_FreeShippingAboveThreshold(t *testing.T) {
	prices := CalcPrices([]OrderItem{{Price: 150, Qty: 1}})

	assert.Equal(t, 150.0, prices.ItemsPrice)
	assert.Equal(t, 0.0, prices.ShippingPrice)
	assert.Equal(t, 22.5, prices.TaxPrice)
	assert.Equal(t, 172.5, prices.TotalPrice)
}

func TestCalcPrices_ExactlyAtThresholdPaysShipping(t *testing.T) {
	prices := CalcPrices([]OrderItem{{Price: 25, Qty: 4}})

	assert.Equal(t, 100.0, prices.ItemsPrice)
	assert.Equal(t, 10.0, prices.ShippingPrice)
	assert.Equal(t, 125.0, prices.TotalPrice)
}

func TestApplyPrices(t *testing.T) {
	var o Order
	o.ApplyPrices(OrderPrices{ItemsPrice: 1, TaxPrice: 2, ShippingPrice: 3, TotalPrice: 6})

	assert.Equal(t, 1.0, o.ItemsPrice)
	assert.Equal(t, 2.0, o.TaxPrice)
	assert.Equal(t, 3.0, o.ShippingPrice)
	assert.Equal(t, 6.0, o.TotalPrice)
}
