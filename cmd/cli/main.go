package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
	userID  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tradeledger-cli",
		Short: "TradeLedger CLI tool",
		Long:  `A command line interface for interacting with the TradeLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the TradeLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "", "Acting user recorded on the activity trail")

	rootCmd.AddCommand(balanceCmd())
	rootCmd.AddCommand(loansCmd())
	rootCmd.AddCommand(expenseCmd())
	rootCmd.AddCommand(activityCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the current cash balance",
		Run: func(cmd *cobra.Command, args []string) {
			body := getJSON("/api/v1/balance")
			printJSON(body)
		},
	}
}

func loansCmd() *cobra.Command {
	loansCmd := &cobra.Command{
		Use:   "loans",
		Short: "Loan operations",
	}

	var unpaidOnly bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List loans",
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/loans/"
			if unpaidOnly {
				path += "?unpaid=true"
			}
			printJSON(getJSON(path))
		},
	}
	listCmd.Flags().BoolVar(&unpaidOnly, "unpaid", false, "Only show unpaid loans")

	var repayAmount string
	var partial bool
	repayCmd := &cobra.Command{
		Use:   "repay <loan-id>",
		Short: "Repay a loan in part or settle it in full",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			payload := map[string]any{
				"amount":  repayAmount,
				"partial": partial,
			}
			printJSON(postJSON("/api/v1/loans/"+args[0]+"/repayments", payload))
		},
	}
	repayCmd.Flags().StringVar(&repayAmount, "amount", "", "Repayment amount")
	repayCmd.Flags().BoolVar(&partial, "partial", false, "Record a partial repayment instead of settling")
	repayCmd.MarkFlagRequired("amount")

	paymentsCmd := &cobra.Command{
		Use:   "payments <loan-id>",
		Short: "Show a loan's payment history",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(getJSON("/api/v1/loans/" + args[0] + "/payments"))
		},
	}

	loansCmd.AddCommand(listCmd)
	loansCmd.AddCommand(repayCmd)
	loansCmd.AddCommand(paymentsCmd)
	return loansCmd
}

func expenseCmd() *cobra.Command {
	var amount, description, orderID string
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record an expense",
		Run: func(cmd *cobra.Command, args []string) {
			payload := map[string]any{
				"amount":      amount,
				"description": description,
			}
			if orderID != "" {
				payload["order_id"] = orderID
			}
			printJSON(postJSON("/api/v1/expenses/", payload))
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "Expense amount")
	cmd.Flags().StringVar(&description, "description", "", "Expense description")
	cmd.Flags().StringVar(&orderID, "order", "", "Order to attribute the expense to")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("description")
	return cmd
}

func activityCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show recent activity trail entries",
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(getJSON(fmt.Sprintf("/api/v1/activity?limit=%d", limit)))
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries")
	return cmd
}

func getJSON(path string) []byte {
	return doRequest(http.MethodGet, path, nil)
}

func postJSON(path string, payload any) []byte {
	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Failed to encode request: %v\n", err)
		os.Exit(1)
	}
	return doRequest(http.MethodPost, path, body)
}

func doRequest(method, path string, body []byte) []byte {
	client := &http.Client{Timeout: timeout}

	var reader io.Reader
	if body != nil {
		reader = strings.NewReader(string(body))
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, truncate(string(respBody), 500))
		os.Exit(1)
	}

	return respBody
}

func printJSON(v any) {
	var data any
	switch val := v.(type) {
	case []byte:
		if err := json.Unmarshal(val, &data); err != nil {
			fmt.Println(string(val))
			return
		}
	default:
		data = val
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Printf("Failed to format response: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
