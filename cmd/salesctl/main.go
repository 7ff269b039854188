// Command salesctl is an operator CLI for the salestrack API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/sangkips/salestrack-api/internal/client"
	"github.com/spf13/viper"
)

const defaultAPIURL = "http://localhost:8080/api/v1"

func main() {
	apiURL := flag.String("api-url", "", "API base URL (env SALESCTL_API_URL)")
	token := flag.String("token", "", "Bearer token (env SALESCTL_TOKEN)")
	verbose := flag.Bool("v", false, "Log request failures to stderr")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(2)
	}

	v := viper.New()
	v.SetEnvPrefix("SALESCTL")
	v.AutomaticEnv()
	v.SetDefault("api_url", defaultAPIURL)
	if *apiURL != "" {
		v.Set("api_url", *apiURL)
	}
	if *token != "" {
		v.Set("token", *token)
	}

	level := slog.LevelError + 1
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	c := client.New(v.GetString("api_url"),
		client.WithToken(v.GetString("token")),
		client.WithLogger(logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, c, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *client.Client, args []string) error {
	stores := client.NewStores(c)
	command, rest := args[0], args[1:]

	switch command {
	case "customers":
		return listOnly(command, rest, func(a []string) error { return listCustomers(ctx, stores, a) })
	case "opportunities":
		return listOnly(command, rest, func(a []string) error { return listOpportunities(ctx, stores, a) })
	case "offers":
		return listOnly(command, rest, func(a []string) error { return listOffers(ctx, stores, a) })
	case "orders":
		if len(rest) > 0 && rest[0] == "balance" {
			return orderBalance(ctx, c, rest[1:])
		}
		return listOnly(command, rest, func(a []string) error { return listOrders(ctx, stores, a) })
	case "payments":
		if len(rest) > 0 && rest[0] == "add" {
			return addPayment(ctx, stores, rest[1:])
		}
		return listOnly(command, rest, func(a []string) error { return listPayments(ctx, stores, a) })
	case "labels":
		return showLabels(ctx, c)
	case "login":
		return login(ctx, c, rest)
	case "hash-password":
		return hashPassword(rest)
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func listOnly(resource string, args []string, list func([]string) error) error {
	if len(args) == 0 || args[0] != "list" {
		return fmt.Errorf("usage: salesctl %s list [flags]", resource)
	}
	return list(args[1:])
}

func printUsage() {
	fmt.Fprint(os.Stderr, strings.TrimLeft(`
salesctl - operator CLI for the salestrack API

Usage:
  salesctl [--api-url URL] [--token TOKEN] [-v] <command> [flags]

Commands:
  customers list      [--search TEXT] [--status STATUS]
  opportunities list  [--search TEXT] [--status STATUS] [--priority P] [--customer ID]
  offers list         [--search TEXT] [--status STATUS] [--customer ID]
  orders list         [--search TEXT] [--status STATUS] [--payment-status S] [--customer ID]
  orders balance      <order-id>
  payments list       [--search TEXT] [--status STATUS] [--method M] [--order ID]
  payments add        --order ID --amount N --method M [--status S] [--notes TEXT]
  labels              Show the status label table
  login               --username NAME --password PASS
  hash-password       <password>

Environment:
  SALESCTL_API_URL    API base URL (default `+defaultAPIURL+`)
  SALESCTL_TOKEN      Bearer token from "salesctl login"
`, "\n"))
}
