package enum

import "database/sql/driver"

// CustomerType tells a company apart from a private person. It is optional.
type CustomerType string

const (
	CustomerTypeCorporate  CustomerType = "corporate"
	CustomerTypeIndividual CustomerType = "individual"
)

var customerTypes = []CustomerType{CustomerTypeCorporate, CustomerTypeIndividual}

func CustomerTypes() []CustomerType { return append([]CustomerType(nil), customerTypes...) }

func ParseCustomerType(s string) (CustomerType, bool) { return parse(s, customerTypes) }

// IsValid accepts the empty type as "unspecified"
func (t CustomerType) IsValid() bool  { return t == "" || contains(t, customerTypes) }
func (t CustomerType) String() string { return string(t) }

func (t CustomerType) Value() (driver.Value, error) { return stringValue(string(t)) }

func (t *CustomerType) Scan(value interface{}) error {
	v, err := scanString(value)
	*t = CustomerType(v)
	return err
}
