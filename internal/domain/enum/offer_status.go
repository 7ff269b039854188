package enum

import "database/sql/driver"

// OfferStatus represents the status of an offer
type OfferStatus string

const (
	OfferStatusDraft    OfferStatus = "draft"
	OfferStatusSent     OfferStatus = "sent"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusRejected OfferStatus = "rejected"
	OfferStatusExpired  OfferStatus = "expired"
)

var offerStatuses = []OfferStatus{
	OfferStatusDraft,
	OfferStatusSent,
	OfferStatusAccepted,
	OfferStatusRejected,
	OfferStatusExpired,
}

func OfferStatuses() []OfferStatus { return append([]OfferStatus(nil), offerStatuses...) }

func ParseOfferStatus(s string) (OfferStatus, bool) { return parse(s, offerStatuses) }

func (s OfferStatus) IsValid() bool  { return contains(s, offerStatuses) }
func (s OfferStatus) String() string { return string(s) }

// IsPending reports whether the offer still awaits a customer decision
func (s OfferStatus) IsPending() bool {
	return s == OfferStatusDraft || s == OfferStatusSent
}

func (s OfferStatus) Value() (driver.Value, error) { return stringValue(string(s)) }

func (s *OfferStatus) Scan(value interface{}) error {
	v, err := scanString(value)
	*s = OfferStatus(v)
	return err
}
