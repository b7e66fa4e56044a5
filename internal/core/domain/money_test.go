package domain_test

import (
	"testing"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidQty(t *testing.T) {
	tests := []struct {
		qty  string
		want bool
	}{
		{"1", true},
		{"0.75", true},
		{"1.500", true},
		{"0.001", true},
		{"999999999.999", true},
		{"0", false},
		{"-1", false},
		{"0.0004", false},
		{"2.3456", false},
		{"1000000000", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ValidQty(d(tt.qty)), "qty %s", tt.qty)
	}
}

func TestValidStockChange(t *testing.T) {
	assert.True(t, domain.ValidStockChange(d("-12.5")))
	assert.True(t, domain.ValidStockChange(d("24")))
	assert.False(t, domain.ValidStockChange(d("0.0001")))
	assert.False(t, domain.ValidStockChange(d("-1000000000")))
}

func TestValidDiscountPct(t *testing.T) {
	tests := []struct {
		pct  string
		want bool
	}{
		{"0", true},
		{"12.35", true},
		{"100", true},
		{"12.345", false},
		{"100.01", false},
		{"1000", false},
		{"-5", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ValidDiscountPct(d(tt.pct)), "pct %s", tt.pct)
	}
}
