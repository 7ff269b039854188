package service

import (
	"github.com/sangkips/salestrack-api/internal/application/pricing"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/pkg/money"
)

// LineItemInput is a line item as submitted by a caller. A nil Tax uses
// pricing.DefaultTaxRate; Total is always recomputed.
type LineItemInput struct {
	ProductName string
	Description string
	Quantity    float64
	UnitPrice   money.Cents
	Discount    float64
	Tax         *float64
}

// buildLineItems validates inputs and returns priced items with the document total.
func buildLineItems(inputs []LineItemInput) ([]entity.LineItem, money.Cents, error) {
	items := make([]entity.LineItem, len(inputs))
	for i, in := range inputs {
		tax := pricing.DefaultTaxRate
		if in.Tax != nil {
			tax = *in.Tax
		}
		items[i] = entity.LineItem{
			ProductName: in.ProductName,
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Discount:    in.Discount,
			Tax:         tax,
			Position:    i,
		}
	}
	if err := pricing.Validate(items); err != nil {
		return nil, 0, err
	}
	total := pricing.Apply(items)
	return items, total, nil
}

func toOfferItems(items []entity.LineItem) []entity.OfferItem {
	out := make([]entity.OfferItem, len(items))
	for i, item := range items {
		out[i] = entity.OfferItem{LineItem: item}
	}
	return out
}

func toOrderItems(items []entity.LineItem) []entity.OrderItem {
	out := make([]entity.OrderItem, len(items))
	for i, item := range items {
		out[i] = entity.OrderItem{LineItem: item}
	}
	return out
}
