package enum

import "database/sql/driver"

// OpportunityStatus represents the pipeline stage of an opportunity
type OpportunityStatus string

const (
	OpportunityStatusNew         OpportunityStatus = "new"
	OpportunityStatusQualified   OpportunityStatus = "qualified"
	OpportunityStatusProposition OpportunityStatus = "proposition"
	OpportunityStatusNegotiation OpportunityStatus = "negotiation"
	OpportunityStatusClosedWon   OpportunityStatus = "closed-won"
	OpportunityStatusClosedLost  OpportunityStatus = "closed-lost"
)

var opportunityStatuses = []OpportunityStatus{
	OpportunityStatusNew,
	OpportunityStatusQualified,
	OpportunityStatusProposition,
	OpportunityStatusNegotiation,
	OpportunityStatusClosedWon,
	OpportunityStatusClosedLost,
}

// OpportunityStatuses returns every pipeline stage in pipeline order
func OpportunityStatuses() []OpportunityStatus {
	return append([]OpportunityStatus(nil), opportunityStatuses...)
}

// ParseOpportunityStatus parses a case-insensitive opportunity status
func ParseOpportunityStatus(s string) (OpportunityStatus, bool) { return parse(s, opportunityStatuses) }

func (s OpportunityStatus) IsValid() bool  { return contains(s, opportunityStatuses) }
func (s OpportunityStatus) String() string { return string(s) }

// IsClosed reports whether the opportunity has been won or lost
func (s OpportunityStatus) IsClosed() bool {
	return s == OpportunityStatusClosedWon || s == OpportunityStatusClosedLost
}

func (s OpportunityStatus) Value() (driver.Value, error) { return stringValue(string(s)) }

func (s *OpportunityStatus) Scan(value interface{}) error {
	v, err := scanString(value)
	*s = OpportunityStatus(v)
	return err
}
