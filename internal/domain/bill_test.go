package domain_test

import (
	"testing"

	"github.com/DRSN-tech/pos-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillMergesBySKU(t *testing.T) {
	t.Parallel()

	bill := domain.NewBill()
	bill.AddLine("SKU-1", "Milk", 250, 1)
	bill.AddLine("SKU-2", "Milk", 250, 1) // одно имя, другой SKU
	bill.AddLine("SKU-1", "Milk", 250, 2)

	lines := bill.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int32(3), lines[0].Quantity)
	assert.Equal(t, "SKU-1", lines[0].SKU)
	assert.Equal(t, int32(1), lines[1].Quantity)

	items := bill.SaleItems()
	require.Len(t, items, 2)
	assert.Equal(t, domain.SaleItem{SKU: "SKU-1", Name: "Milk", Quantity: 3}, items[0])
	assert.Equal(t, domain.SaleItem{SKU: "SKU-2", Name: "Milk", Quantity: 1}, items[1])
}

func TestBillTotal(t *testing.T) {
	t.Parallel()

	bill := domain.NewBill()
	assert.True(t, bill.IsEmpty())
	assert.Zero(t, bill.TotalCents())

	bill.AddLine("SKU-1", "Milk", 250, 2)
	bill.AddLine("SKU-2", "Bread", 199, 3)

	assert.False(t, bill.IsEmpty())
	assert.Equal(t, int64(2*250+3*199), bill.TotalCents())
}

func TestFormatUSD(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$0.00", domain.FormatUSD(0))
	assert.Equal(t, "$0.05", domain.FormatUSD(5))
	assert.Equal(t, "$12.50", domain.FormatUSD(1250))
	assert.Equal(t, "$1097.00", domain.FormatUSD(109700))
}
