package handler

import (
	"github.com/sangkips/salestrack-api/internal/application/service"
	"github.com/sangkips/salestrack-api/internal/presentation/http/dto/request"
)

func toLineItemInputs(items []request.LineItemRequest) []service.LineItemInput {
	inputs := make([]service.LineItemInput, len(items))
	for i, item := range items {
		inputs[i] = service.LineItemInput{
			ProductName: item.ProductName,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Discount:    item.Discount,
			Tax:         item.Tax,
		}
	}
	return inputs
}

func toOptionalLineItemInputs(items *[]request.LineItemRequest) *[]service.LineItemInput {
	if items == nil {
		return nil
	}
	inputs := toLineItemInputs(*items)
	return &inputs
}
