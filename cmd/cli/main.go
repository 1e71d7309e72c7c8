package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pharmacy-ledger-cli",
		Short: "Pharmacy ledger CLI tool",
		Long:  `A command line interface for interacting with the pharmacy ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the pharmacy ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	txCmd := &cobra.Command{
		Use:   "transaction",
		Short: "Transaction operations",
	}

	txCmd.AddCommand(
		&cobra.Command{
			Use:   "get <id>",
			Short: "Fetch a transaction",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				get("/api/v1/transactions/" + args[0])
			},
		},
		&cobra.Command{
			Use:   "validate <file>",
			Short: "Validate a transaction payload without persisting it",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				postFile("/api/v1/transactions/validate", args[0])
			},
		},
		&cobra.Command{
			Use:   "confirm <id>",
			Short: "Confirm a draft transaction",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				post("/api/v1/transactions/" + args[0] + "/confirm")
			},
		},
		&cobra.Command{
			Use:   "cancel <id>",
			Short: "Cancel a draft transaction",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				post("/api/v1/transactions/" + args[0] + "/cancel")
			},
		},
		&cobra.Command{
			Use:   "permissions <id>",
			Short: "Show what may be done with a transaction",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				get("/api/v1/transactions/" + args[0] + "/permissions")
			},
		},
		&cobra.Command{
			Use:   "copy <id>",
			Short: "Fetch a copy seed for a transaction",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				get("/api/v1/transactions/" + args[0] + "/copy")
			},
		},
		&cobra.Command{
			Use:   "chain <id>",
			Short: "Show the funding chain of a transaction, oldest first",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				get("/api/v1/transactions/" + args[0] + "/funding-chain")
			},
		},
	)

	rootCmd.AddCommand(txCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func get(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	printResponse(resp)
}

func post(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", nil)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	printResponse(resp)
}

func postFile(path, file string) {
	payload, err := os.ReadFile(file)
	if err != nil {
		fmt.Printf("Error reading payload: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	printResponse(resp)
}

func printResponse(resp *http.Response) {
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(pretty.String())
}
