package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseSupplier(t *testing.T) {
	s, ok := ParseSupplier(" VexStore ")
	assert.True(t, ok)
	assert.Equal(t, SupplierVexStore, s)

	s, ok = ParseSupplier("")
	assert.True(t, ok)
	assert.Equal(t, SupplierOther, s)

	_, ok = ParseSupplier("amazon")
	assert.False(t, ok)
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory("Chain & Sprockets"))
	assert.True(t, IsValidCategory("Motors"))
	assert.False(t, IsValidCategory("motors"))
	assert.False(t, IsValidCategory(""))
}

func TestPartValue(t *testing.T) {
	p := Part{InStock: 3, UnitPrice: decimal.RequireFromString("39.99")}
	assert.Equal(t, "119.97", p.StockValue().String())
	assert.Equal(t, "parts", p.TableName())
}
