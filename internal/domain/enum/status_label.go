package enum

// EntityType identifies which status vocabulary a label belongs to
type EntityType string

const (
	EntityCustomer      EntityType = "customer"
	EntityOpportunity   EntityType = "opportunity"
	EntityOffer         EntityType = "offer"
	EntityOrder         EntityType = "order"
	EntityOrderPayment  EntityType = "order-payment"
	EntityPayment       EntityType = "payment"
	EntityPaymentMethod EntityType = "payment-method"
	EntityPriority      EntityType = "priority"
)

// DefaultLabelColor is used for any status missing from the table
const DefaultLabelColor = "bg-primary"

// StatusLabel is the display text and badge colour class for a status
type StatusLabel struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

type labelKey struct {
	entity EntityType
	status string
}

var statusLabels = map[labelKey]StatusLabel{
	{EntityCustomer, string(CustomerStatusActive)}:   {"Active", "bg-success"},
	{EntityCustomer, string(CustomerStatusInactive)}: {"Inactive", "bg-secondary"},
	{EntityCustomer, string(CustomerStatusLead)}:     {"Lead", "bg-info"},

	{EntityOpportunity, string(OpportunityStatusNew)}:         {"New", "bg-info"},
	{EntityOpportunity, string(OpportunityStatusQualified)}:   {"Qualified", "bg-primary"},
	{EntityOpportunity, string(OpportunityStatusProposition)}: {"Proposition", "bg-warning text-dark"},
	{EntityOpportunity, string(OpportunityStatusNegotiation)}: {"Negotiation", "bg-warning text-dark"},
	{EntityOpportunity, string(OpportunityStatusClosedWon)}:   {"Won", "bg-success"},
	{EntityOpportunity, string(OpportunityStatusClosedLost)}:  {"Lost", "bg-danger"},

	{EntityOffer, string(OfferStatusDraft)}:    {"Draft", "bg-secondary"},
	{EntityOffer, string(OfferStatusSent)}:     {"Sent", "bg-info"},
	{EntityOffer, string(OfferStatusAccepted)}: {"Accepted", "bg-success"},
	{EntityOffer, string(OfferStatusRejected)}: {"Rejected", "bg-danger"},
	{EntityOffer, string(OfferStatusExpired)}:  {"Expired", "bg-dark"},

	{EntityOrder, string(OrderStatusNew)}:        {"New", "bg-info"},
	{EntityOrder, string(OrderStatusProcessing)}: {"Processing", "bg-warning text-dark"},
	{EntityOrder, string(OrderStatusShipped)}:    {"Shipped", "bg-primary"},
	{EntityOrder, string(OrderStatusDelivered)}:  {"Delivered", "bg-success"},
	{EntityOrder, string(OrderStatusCancelled)}:  {"Cancelled", "bg-danger"},

	{EntityOrderPayment, string(OrderPaymentPending)}: {"Awaiting payment", "bg-warning text-dark"},
	{EntityOrderPayment, string(OrderPaymentPartial)}: {"Partially paid", "bg-info"},
	{EntityOrderPayment, string(OrderPaymentPaid)}:    {"Paid", "bg-success"},

	{EntityPayment, string(PaymentStatusPending)}:   {"Pending", "bg-warning text-dark"},
	{EntityPayment, string(PaymentStatusCompleted)}: {"Completed", "bg-success"},
	{EntityPayment, string(PaymentStatusFailed)}:    {"Failed", "bg-danger"},
	{EntityPayment, string(PaymentStatusRefunded)}:  {"Refunded", "bg-info"},

	{EntityPaymentMethod, string(PaymentMethodCash)}:         {"Cash", "bg-secondary"},
	{EntityPaymentMethod, string(PaymentMethodCreditCard)}:   {"Credit card", "bg-secondary"},
	{EntityPaymentMethod, string(PaymentMethodBankTransfer)}: {"Bank transfer", "bg-secondary"},
	{EntityPaymentMethod, string(PaymentMethodCheck)}:        {"Check", "bg-secondary"},
	{EntityPaymentMethod, string(PaymentMethodOther)}:        {"Other", "bg-secondary"},

	{EntityPriority, string(PriorityLow)}:    {"Low", "bg-info"},
	{EntityPriority, string(PriorityMedium)}: {"Medium", "bg-warning text-dark"},
	{EntityPriority, string(PriorityHigh)}:   {"High", "bg-danger"},
}

// LabelFor returns the display label for status within entity. Unknown
// pairs fall back to the raw status text with DefaultLabelColor.
func LabelFor(entity EntityType, status string) StatusLabel {
	if l, ok := statusLabels[labelKey{entity, status}]; ok {
		return l
	}
	return StatusLabel{Text: status, Color: DefaultLabelColor}
}

// LabelTable returns the whole table grouped by entity type then status.
func LabelTable() map[EntityType]map[string]StatusLabel {
	out := make(map[EntityType]map[string]StatusLabel)
	for k, v := range statusLabels {
		if out[k.entity] == nil {
			out[k.entity] = make(map[string]StatusLabel)
		}
		out[k.entity][k.status] = v
	}
	return out
}
