// Package pricing computes line-item and document totals for offers and orders.
package pricing

import (
	"fmt"
	"strings"

	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/pkg/apperror"
	"github.com/sangkips/salestrack-api/pkg/money"
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is applied to items that do not state a tax percentage.
const DefaultTaxRate = 18.0

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// LineTotal returns quantity * unitPrice * (1 - discount/100) * (1 + tax/100)
// rounded half away from zero to the cent.
func LineTotal(quantity float64, unitPrice money.Cents, discount, tax float64) money.Cents {
	q := decimal.NewFromFloat(quantity)
	discountFactor := one.Sub(decimal.NewFromFloat(discount).Div(hundred))
	taxFactor := one.Add(decimal.NewFromFloat(tax).Div(hundred))
	return money.FromDecimal(q.Mul(unitPrice.Decimal()).Mul(discountFactor).Mul(taxFactor))
}

// Apply recomputes every item's Total in place and returns the document total.
func Apply(items []entity.LineItem) money.Cents {
	var sum money.Cents
	for i := range items {
		items[i].Total = LineTotal(items[i].Quantity, items[i].UnitPrice, items[i].Discount, items[i].Tax)
		sum += items[i].Total
	}
	return sum
}

// Validate checks the item list of a document. At least one item must remain.
func Validate(items []entity.LineItem) error {
	if len(items) == 0 {
		return apperror.NewFieldError("items", "at least one line item is required")
	}

	var fieldErrors []apperror.FieldError
	for i, item := range items {
		field := func(name string) string { return fmt.Sprintf("items[%d].%s", i, name) }
		if strings.TrimSpace(item.ProductName) == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field("productName"), Message: "is required"})
		}
		if item.Quantity <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field("quantity"), Message: "must be greater than 0"})
		}
		if item.UnitPrice < 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field("unitPrice"), Message: "must not be negative"})
		}
		if item.Discount < 0 || item.Discount > 100 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field("discount"), Message: "must be between 0 and 100"})
		}
		if item.Tax < 0 || item.Tax > 100 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field("tax"), Message: "must be between 0 and 100"})
		}
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}
