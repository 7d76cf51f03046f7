// FILE: internal/entity/checkout_entity_test.go
package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeServices(t *testing.T) {
	tests := []struct {
		name  string
		input []SelectedService
		want  []SelectedService
	}{
		{
			name:  "empty input",
			input: []SelectedService{},
			want:  []SelectedService{},
		},
		{
			name: "drops entries missing id name or frequency",
			input: []SelectedService{
				{ServiceId: "", Name: "Bin Cleaning", Frequency: "monthly"},
				{ServiceId: "svc-1", Name: "  ", Frequency: "monthly"},
				{ServiceId: "svc-2", Name: "Valet", Frequency: ""},
			},
			want: []SelectedService{},
		},
		{
			name: "floors quantity and clamps negative rate",
			input: []SelectedService{
				{ServiceId: "svc-1", Name: "Bin Cleaning", Frequency: "monthly", Quantity: 0, MonthlyRate: -5},
			},
			want: []SelectedService{
				{ServiceId: "svc-1", Name: "Bin Cleaning", Frequency: "monthly", Quantity: 1, MonthlyRate: 0},
			},
		},
		{
			name: "trims whitespace",
			input: []SelectedService{
				{ServiceId: " svc-1 ", Name: " Valet ", Frequency: " weekly ", Quantity: 2, MonthlyRate: 24.99},
			},
			want: []SelectedService{
				{ServiceId: "svc-1", Name: "Valet", Frequency: "weekly", Quantity: 2, MonthlyRate: 24.99},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeServices(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonthlyTotal(t *testing.T) {
	services := []SelectedService{
		{ServiceId: "a", Name: "A", Frequency: "monthly", Quantity: 2, MonthlyRate: 9.99},
		{ServiceId: "b", Name: "B", Frequency: "weekly", Quantity: 1, MonthlyRate: 24.99},
	}
	assert.Equal(t, 44.97, MonthlyTotal(services))
	assert.Equal(t, 0.0, MonthlyTotal(nil))
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 10.0, RoundCents(9.995))
	assert.Equal(t, 9.99, RoundCents(9.994))
	assert.Equal(t, -2.5, RoundCents(-2.5))
}

func TestCheckoutStatusTerminal(t *testing.T) {
	assert.False(t, CheckoutStatusPending.Terminal())
	assert.True(t, CheckoutStatusCompleted.Terminal())
	assert.True(t, CheckoutStatusCancelled.Terminal())
}
