package enum

import "database/sql/driver"

// CustomerStatus represents the lifecycle status of a customer
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
	CustomerStatusLead     CustomerStatus = "lead"
)

var customerStatuses = []CustomerStatus{CustomerStatusActive, CustomerStatusInactive, CustomerStatusLead}

// CustomerStatuses returns every customer status
func CustomerStatuses() []CustomerStatus { return append([]CustomerStatus(nil), customerStatuses...) }

// ParseCustomerStatus parses a case-insensitive customer status
func ParseCustomerStatus(s string) (CustomerStatus, bool) { return parse(s, customerStatuses) }

func (s CustomerStatus) IsValid() bool  { return contains(s, customerStatuses) }
func (s CustomerStatus) String() string { return string(s) }

func (s CustomerStatus) Value() (driver.Value, error) { return stringValue(string(s)) }

func (s *CustomerStatus) Scan(value interface{}) error {
	v, err := scanString(value)
	*s = CustomerStatus(v)
	return err
}
