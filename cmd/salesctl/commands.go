package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/application/filter"
	"github.com/sangkips/salestrack-api/internal/client"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/pkg/money"
	"github.com/sangkips/salestrack-api/pkg/utils"
)

const dateLayout = "2006-01-02"

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// equalityQuery builds server-side filters from id flags
func equalityQuery(pairs ...string) url.Values {
	q := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			q.Set(pairs[i], pairs[i+1])
		}
	}
	return q
}

func listCustomers(ctx context.Context, stores *client.Stores, args []string) error {
	fs := flag.NewFlagSet("customers list", flag.ExitOnError)
	search := fs.String("search", "", "Search name, company, email, phone, city or contact")
	status := fs.String("status", "", "Filter by status")
	_ = fs.Parse(args)

	items := filter.Customers(stores.Customers.FetchAll(ctx, nil), filter.Criteria{Search: *search, Status: *status})
	if len(items) == 0 {
		fmt.Println("No customers found")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "NAME\tCOMPANY\tEMAIL\tCITY\tID\tSTATUS")
	for _, c := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.Name, dash(c.CompanyName), dash(c.Email), dash(c.City), c.ID, badge(enum.EntityCustomer, string(c.Status)))
	}
	return w.Flush()
}

func listOpportunities(ctx context.Context, stores *client.Stores, args []string) error {
	fs := flag.NewFlagSet("opportunities list", flag.ExitOnError)
	search := fs.String("search", "", "Search title, customer, assignee or source")
	status := fs.String("status", "", "Filter by status")
	priority := fs.String("priority", "", "Filter by priority")
	customer := fs.String("customer", "", "Only opportunities for this customer id")
	_ = fs.Parse(args)

	fetched := stores.Opportunities.FetchAll(ctx, equalityQuery("customerId", *customer))
	items := filter.Opportunities(fetched, filter.Criteria{Search: *search, Status: *status, Priority: *priority})
	if len(items) == 0 {
		fmt.Println("No opportunities found")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "TITLE\tCUSTOMER\tVALUE\tPROB\tID\tPRIORITY\tSTATUS")
	for _, o := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d%%\t%s\t%s\t%s\n",
			o.Title, dash(o.CustomerName), o.Value, o.Probability, o.ID,
			badge(enum.EntityPriority, string(o.Priority)), badge(enum.EntityOpportunity, string(o.Status)))
	}
	return w.Flush()
}

func listOffers(ctx context.Context, stores *client.Stores, args []string) error {
	fs := flag.NewFlagSet("offers list", flag.ExitOnError)
	search := fs.String("search", "", "Search number, title or customer")
	status := fs.String("status", "", "Filter by status")
	customer := fs.String("customer", "", "Only offers for this customer id")
	_ = fs.Parse(args)

	fetched := stores.Offers.FetchAll(ctx, equalityQuery("customerId", *customer))
	items := filter.Offers(fetched, filter.Criteria{Search: *search, Status: *status})
	if len(items) == 0 {
		fmt.Println("No offers found")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "NUMBER\tTITLE\tCUSTOMER\tTOTAL\tVALID UNTIL\tSTATUS")
	for _, o := range items {
		validUntil := "-"
		if o.ValidUntil != nil {
			validUntil = o.ValidUntil.Format(dateLayout)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			o.OfferNumber, o.Title, dash(o.CustomerName), o.TotalAmount, validUntil, badge(enum.EntityOffer, string(o.Status)))
	}
	return w.Flush()
}

func listOrders(ctx context.Context, stores *client.Stores, args []string) error {
	fs := flag.NewFlagSet("orders list", flag.ExitOnError)
	search := fs.String("search", "", "Search number or customer")
	status := fs.String("status", "", "Filter by status")
	paymentStatus := fs.String("payment-status", "", "Filter by payment status")
	customer := fs.String("customer", "", "Only orders for this customer id")
	_ = fs.Parse(args)

	fetched := stores.Orders.FetchAll(ctx, equalityQuery("customerId", *customer))
	items := filter.Orders(fetched, filter.Criteria{Search: *search, Status: *status, PaymentStatus: *paymentStatus})
	if len(items) == 0 {
		fmt.Println("No orders found")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "NUMBER\tCUSTOMER\tTOTAL\tDATE\tID\tSTATUS\tPAYMENT")
	for _, o := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			o.OrderNumber, dash(o.CustomerName), o.TotalAmount, o.OrderDate.Format(dateLayout), o.ID,
			badge(enum.EntityOrder, string(o.Status)), badge(enum.EntityOrderPayment, string(o.PaymentStatus)))
	}
	return w.Flush()
}

func listPayments(ctx context.Context, stores *client.Stores, args []string) error {
	fs := flag.NewFlagSet("payments list", flag.ExitOnError)
	search := fs.String("search", "", "Search number, order, customer, receipt or transaction")
	status := fs.String("status", "", "Filter by status")
	method := fs.String("method", "", "Filter by payment method")
	order := fs.String("order", "", "Only payments for this order id")
	_ = fs.Parse(args)

	fetched := stores.Payments.FetchAll(ctx, equalityQuery("orderId", *order))
	items := filter.Payments(fetched, filter.Criteria{Search: *search, Status: *status, Method: *method})
	if len(items) == 0 {
		fmt.Println("No payments found")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "NUMBER\tORDER\tAMOUNT\tDATE\tMETHOD\tSTATUS")
	for _, p := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.PaymentNumber, dash(p.OrderNumber), p.Amount, p.PaymentDate.Format(dateLayout),
			badge(enum.EntityPaymentMethod, string(p.Method)), badge(enum.EntityPayment, string(p.Status)))
	}
	return w.Flush()
}

func orderBalance(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: salesctl orders balance <order-id>")
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid order id: %w", err)
	}

	balance, err := c.Balance(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get balance: %w", err)
	}

	fmt.Printf("Order:     %s\n", balance.OrderID)
	fmt.Printf("Total:     %s\n", balance.TotalAmount)
	fmt.Printf("Paid:      %s\n", balance.PaidAmount)
	fmt.Printf("Remaining: %s\n", balance.RemainingAmount)
	fmt.Printf("Status:    %s\n", badge(enum.EntityOrderPayment, string(balance.PaymentStatus)))
	return nil
}

func addPayment(ctx context.Context, stores *client.Stores, args []string) error {
	fs := flag.NewFlagSet("payments add", flag.ExitOnError)
	orderID := fs.String("order", "", "Order id (required)")
	amount := fs.String("amount", "", "Amount, e.g. 125.50 (required)")
	method := fs.String("method", "", "cash, credit_card, bank_transfer, check or other (required)")
	status := fs.String("status", string(enum.PaymentStatusCompleted), "Payment status")
	receipt := fs.String("receipt", "", "Receipt number")
	notes := fs.String("notes", "", "Notes")
	_ = fs.Parse(args)

	id, err := uuid.Parse(*orderID)
	if err != nil {
		return fmt.Errorf("--order must be a valid id")
	}
	value, err := money.Parse(*amount)
	if err != nil {
		return fmt.Errorf("--amount: %w", err)
	}
	if *method == "" {
		return fmt.Errorf("--method is required")
	}

	payment, err := stores.Payments.Add(ctx, map[string]interface{}{
		"orderId":       id,
		"amount":        value,
		"method":        *method,
		"status":        *status,
		"receiptNumber": *receipt,
		"notes":         *notes,
	})
	if err != nil {
		return fmt.Errorf("failed to add payment: %w", err)
	}

	fmt.Printf("✓ Payment recorded: %s (%s)\n", payment.PaymentNumber, payment.Amount)
	if order, ok := stores.Orders.Cached(id); ok {
		fmt.Printf("  Order %s is now %s\n", order.OrderNumber, badge(enum.EntityOrderPayment, string(order.PaymentStatus)))
	}
	return nil
}

func showLabels(ctx context.Context, c *client.Client) error {
	table, err := c.StatusLabels(ctx)
	if err != nil {
		return fmt.Errorf("failed to get labels: %w", err)
	}

	entities := make([]string, 0, len(table))
	for e := range table {
		entities = append(entities, string(e))
	}
	sort.Strings(entities)

	w := newTable()
	fmt.Fprintln(w, "ENTITY\tSTATUS\tLABEL")
	for _, e := range entities {
		statuses := make([]string, 0, len(table[enum.EntityType(e)]))
		for s := range table[enum.EntityType(e)] {
			statuses = append(statuses, s)
		}
		sort.Strings(statuses)
		for _, s := range statuses {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e, s, renderLabel(table[enum.EntityType(e)][s]))
		}
	}
	return w.Flush()
}

func login(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "Operator username (required)")
	password := fs.String("password", "", "Operator password (required)")
	_ = fs.Parse(args)

	if *username == "" || *password == "" {
		return fmt.Errorf("--username and --password are required")
	}

	token, err := c.Login(ctx, *username, *password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Printf("export SALESCTL_TOKEN=%s\n", token.AccessToken)
	fmt.Fprintf(os.Stderr, "Token expires at %s\n", token.ExpiresAt.Local().Format("2006-01-02 15:04"))
	return nil
}

func hashPassword(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: salesctl hash-password <password>")
	}
	hash, err := utils.HashPassword(args[0])
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
