package filter

import (
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
)

// Criteria is a search term plus the enum filters a list screen offers.
// Empty fields do not filter.
type Criteria struct {
	Search        string
	Status        string
	Priority      string
	Method        string
	PaymentStatus string
}

// Customers keeps customers matching the search term and status
func Customers(items []entity.Customer, c Criteria) []entity.Customer {
	return Apply(items,
		Search(c.Search, CustomerFields),
		Equals(enum.CustomerStatus(c.Status), func(x entity.Customer) enum.CustomerStatus { return x.Status }),
	)
}

// Opportunities keeps opportunities matching the search term, status and priority
func Opportunities(items []entity.Opportunity, c Criteria) []entity.Opportunity {
	return Apply(items,
		Search(c.Search, OpportunityFields),
		Equals(enum.OpportunityStatus(c.Status), func(x entity.Opportunity) enum.OpportunityStatus { return x.Status }),
		Equals(enum.Priority(c.Priority), func(x entity.Opportunity) enum.Priority { return x.Priority }),
	)
}

// Offers keeps offers matching the search term and status
func Offers(items []entity.Offer, c Criteria) []entity.Offer {
	return Apply(items,
		Search(c.Search, OfferFields),
		Equals(enum.OfferStatus(c.Status), func(x entity.Offer) enum.OfferStatus { return x.Status }),
	)
}

// Orders keeps orders matching the search term, status and payment status
func Orders(items []entity.Order, c Criteria) []entity.Order {
	return Apply(items,
		Search(c.Search, OrderFields),
		Equals(enum.OrderStatus(c.Status), func(x entity.Order) enum.OrderStatus { return x.Status }),
		Equals(enum.OrderPaymentStatus(c.PaymentStatus), func(x entity.Order) enum.OrderPaymentStatus { return x.PaymentStatus }),
	)
}

// Payments keeps payments matching the search term, method and status
func Payments(items []entity.Payment, c Criteria) []entity.Payment {
	return Apply(items,
		Search(c.Search, PaymentFields),
		Equals(enum.PaymentMethod(c.Method), func(x entity.Payment) enum.PaymentMethod { return x.Method }),
		Equals(enum.PaymentStatus(c.Status), func(x entity.Payment) enum.PaymentStatus { return x.Status }),
	)
}
