// FILE: internal/entity/estimate_entity_test.go
package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLineItems(t *testing.T) {
	items := NormalizeLineItems([]EstimateLineItem{
		{Description: "  ", Quantity: 1, MonthlyRate: 10},
		{Description: "Bin Cleaning", Quantity: 0, MonthlyRate: 9.99},
		{Description: "Valet", Quantity: 3, MonthlyRate: -1},
	})

	assert.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 9.99, items[0].LineTotal)
	assert.Equal(t, 0.0, items[1].MonthlyRate)
	assert.Equal(t, 0.0, items[1].LineTotal)
}

func TestEstimateTotals(t *testing.T) {
	items := []EstimateLineItem{
		{Description: "A", Quantity: 2, MonthlyRate: 10, LineTotal: 20},
		{Description: "B", Quantity: 1, MonthlyRate: 14.99, LineTotal: 14.99},
	}

	subtotal, total := EstimateTotals(items, -5)
	assert.Equal(t, 29.99, subtotal)
	assert.Equal(t, 29.99, total)

	subtotal, total = EstimateTotals(nil, 12.5)
	assert.Equal(t, 12.5, subtotal)
	assert.Equal(t, 12.5, total)
}

func TestEstimateTotalsFoldInAdjustment(t *testing.T) {
	items := NormalizeLineItems([]EstimateLineItem{
		{Description: "Bin wash", Quantity: 2, MonthlyRate: 7},
	})

	subtotal, total := EstimateTotals(items, 5)
	assert.Equal(t, 19.0, subtotal)
	assert.Equal(t, 19.0, total)
}

func TestCustomerMaySetStatus(t *testing.T) {
	assert.True(t, CustomerMaySetStatus(EstimateStatusAccepted))
	assert.True(t, CustomerMaySetStatus(EstimateStatusPaused))
	assert.True(t, CustomerMaySetStatus(EstimateStatusCancelled))

	assert.False(t, CustomerMaySetStatus(EstimateStatusDraft))
	assert.False(t, CustomerMaySetStatus(EstimateStatusSent))
	assert.False(t, CustomerMaySetStatus(EstimateStatusActive))
}

func TestValidEstimateStatus(t *testing.T) {
	assert.True(t, ValidEstimateStatus("sent"))
	assert.False(t, ValidEstimateStatus("archived"))
}
