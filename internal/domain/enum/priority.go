package enum

import "database/sql/driver"

// Priority ranks an opportunity
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func Priorities() []Priority { return append([]Priority(nil), priorities...) }

func ParsePriority(s string) (Priority, bool) { return parse(s, priorities) }

func (p Priority) IsValid() bool  { return contains(p, priorities) }
func (p Priority) String() string { return string(p) }

func (p Priority) Value() (driver.Value, error) { return stringValue(string(p)) }

func (p *Priority) Scan(value interface{}) error {
	v, err := scanString(value)
	*p = Priority(v)
	return err
}
