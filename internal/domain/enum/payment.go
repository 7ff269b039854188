package enum

import "database/sql/driver"

// PaymentMethod is how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodOther        PaymentMethod = "other"
)

var paymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodCreditCard,
	PaymentMethodBankTransfer,
	PaymentMethodCheck,
	PaymentMethodOther,
}

func PaymentMethods() []PaymentMethod { return append([]PaymentMethod(nil), paymentMethods...) }

func ParsePaymentMethod(s string) (PaymentMethod, bool) { return parse(s, paymentMethods) }

func (m PaymentMethod) IsValid() bool  { return contains(m, paymentMethods) }
func (m PaymentMethod) String() string { return string(m) }

func (m PaymentMethod) Value() (driver.Value, error) { return stringValue(string(m)) }

func (m *PaymentMethod) Scan(value interface{}) error {
	v, err := scanString(value)
	*m = PaymentMethod(v)
	return err
}

// PaymentStatus represents the settlement status of a single payment.
// Only completed payments count towards an order's paid amount.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

var paymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusCompleted,
	PaymentStatusFailed,
	PaymentStatusRefunded,
}

func PaymentStatuses() []PaymentStatus { return append([]PaymentStatus(nil), paymentStatuses...) }

func ParsePaymentStatus(s string) (PaymentStatus, bool) { return parse(s, paymentStatuses) }

func (s PaymentStatus) IsValid() bool  { return contains(s, paymentStatuses) }
func (s PaymentStatus) String() string { return string(s) }

func (s PaymentStatus) Value() (driver.Value, error) { return stringValue(string(s)) }

func (s *PaymentStatus) Scan(value interface{}) error {
	v, err := scanString(value)
	*s = PaymentStatus(v)
	return err
}
