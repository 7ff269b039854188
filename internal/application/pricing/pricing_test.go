package pricing

import (
	"testing"

	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/pkg/apperror"
	"github.com/sangkips/salestrack-api/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name      string
		quantity  float64
		unitPrice money.Cents
		discount  float64
		tax       float64
		want      money.Cents
	}{
		{"tax only", 2, 10000, 0, 18, 23600},
		{"no tax no discount", 3, 1999, 0, 0, 5997},
		{"discount and tax", 1, 10000, 10, 18, 10620},
		{"full discount", 5, 10000, 100, 18, 0},
		{"rounds half away from zero", 1, 5, 0, 10, 6}, // 0.055 -> 0.06
		{"fractional quantity", 1.5, 3333, 0, 0, 5000}, // 49.995 -> 50.00
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineTotal(tt.quantity, tt.unitPrice, tt.discount, tt.tax))
		})
	}
}

func TestApplySumsItemTotals(t *testing.T) {
	items := []entity.LineItem{
		{ProductName: "Widget", Quantity: 2, UnitPrice: 10000, Tax: 18},
		{ProductName: "Support", Quantity: 1, UnitPrice: 5000, Discount: 50, Tax: 0},
	}

	total := Apply(items)

	assert.Equal(t, money.Cents(23600), items[0].Total)
	assert.Equal(t, money.Cents(2500), items[1].Total)
	assert.Equal(t, money.Cents(26100), total)
	assert.Equal(t, "261.00", total.String())
}

func TestValidate(t *testing.T) {
	err := Validate(nil)
	require.Error(t, err)
	assert.Equal(t, "items", apperror.GetAppError(err).Errors[0].Field)

	err = Validate([]entity.LineItem{{ProductName: "", Quantity: 0, Discount: 120, Tax: -1}})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Len(t, appErr.Errors, 4)

	assert.NoError(t, Validate([]entity.LineItem{{ProductName: "Widget", Quantity: 1, UnitPrice: 100, Tax: DefaultTaxRate}}))
}
