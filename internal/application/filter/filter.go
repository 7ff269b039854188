// Package filter narrows fetched record lists by a free-text search term and
// exact-match enum filters. Every function returns a new slice and leaves its
// input untouched.
package filter

import (
	"strings"

	"github.com/sangkips/salestrack-api/internal/domain/entity"
)

// Predicate reports whether an item is kept
type Predicate[T any] func(T) bool

// Apply returns the items matching every predicate. Nil predicates are ignored.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchAll(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

func matchAll[T any](item T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}

// Search matches items where any field contains term, ignoring case. A blank
// term matches everything.
func Search[T any](term string, fields func(T) []string) Predicate[T] {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	return func(item T) bool {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), term) {
				return true
			}
		}
		return false
	}
}

// Equals matches items whose field equals want. The zero value of E matches everything.
func Equals[T any, E comparable](want E, field func(T) E) Predicate[T] {
	var zero E
	if want == zero {
		return nil
	}
	return func(item T) bool {
		return field(item) == want
	}
}

// CustomerFields returns the customer text matched by a search term
func CustomerFields(c entity.Customer) []string {
	return []string{c.Name, c.CompanyName, c.Email, c.Phone, c.City, c.ContactPerson}
}

// OpportunityFields returns the opportunity text matched by a search term,
// including each product name
func OpportunityFields(o entity.Opportunity) []string {
	return append([]string{o.Title, o.Description, o.CustomerName, o.AssignedTo}, o.Products...)
}

// OfferFields returns the offer text matched by a search term
func OfferFields(o entity.Offer) []string {
	return []string{o.Title, o.OfferNumber, o.CustomerName, o.Description}
}

// OrderFields returns the order text matched by a search term
func OrderFields(o entity.Order) []string {
	return []string{o.OrderNumber, o.CustomerName}
}

// PaymentFields returns the payment text matched by a search term
func PaymentFields(p entity.Payment) []string {
	return []string{p.CustomerName, p.OrderID.String(), p.OrderNumber, p.ReceiptNumber, p.PaymentNumber}
}
