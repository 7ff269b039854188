package enum

import "database/sql/driver"

// OrderStatus represents the fulfilment status of an order
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderStatuses = []OrderStatus{
	OrderStatusNew,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func OrderStatuses() []OrderStatus { return append([]OrderStatus(nil), orderStatuses...) }

func ParseOrderStatus(s string) (OrderStatus, bool) { return parse(s, orderStatuses) }

func (s OrderStatus) IsValid() bool  { return contains(s, orderStatuses) }
func (s OrderStatus) String() string { return string(s) }

// IsActive reports whether the order is still being worked on
func (s OrderStatus) IsActive() bool {
	return s != OrderStatusDelivered && s != OrderStatusCancelled
}

func (s OrderStatus) Value() (driver.Value, error) { return stringValue(string(s)) }

func (s *OrderStatus) Scan(value interface{}) error {
	v, err := scanString(value)
	*s = OrderStatus(v)
	return err
}

// OrderPaymentStatus summarizes completed payments against an order total.
// It is derived and never set directly by callers.
type OrderPaymentStatus string

const (
	OrderPaymentPending OrderPaymentStatus = "pending"
	OrderPaymentPartial OrderPaymentStatus = "partial"
	OrderPaymentPaid    OrderPaymentStatus = "paid"
)

var orderPaymentStatuses = []OrderPaymentStatus{OrderPaymentPending, OrderPaymentPartial, OrderPaymentPaid}

func OrderPaymentStatuses() []OrderPaymentStatus {
	return append([]OrderPaymentStatus(nil), orderPaymentStatuses...)
}

func ParseOrderPaymentStatus(s string) (OrderPaymentStatus, bool) {
	return parse(s, orderPaymentStatuses)
}

func (s OrderPaymentStatus) IsValid() bool  { return contains(s, orderPaymentStatuses) }
func (s OrderPaymentStatus) String() string { return string(s) }

func (s OrderPaymentStatus) Value() (driver.Value, error) { return stringValue(string(s)) }

func (s *OrderPaymentStatus) Scan(value interface{}) error {
	v, err := scanString(value)
	*s = OrderPaymentStatus(v)
	return err
}
