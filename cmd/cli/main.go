package main

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
	outDir  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "farmbooks-cli",
		Short: "FarmBooks CLI tool",
		Long:  `A command line interface for interacting with the FarmBooks API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the FarmBooks API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		Run: func(cmd *cobra.Command, args []string) {
			checkHealth()
		},
	}
	rootCmd.AddCommand(healthCmd)

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income, expense and net totals",
		Run: func(cmd *cobra.Command, args []string) {
			showSummary()
		},
	}
	rootCmd.AddCommand(summaryCmd)

	exportCmd := &cobra.Command{
		Use:   "export [profit-and-loss|balance-sheet|cash-flow|owners-equity]",
		Short: "Export a financial statement as CSV",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exportReport(args[0])
		},
	}
	exportCmd.Flags().StringVar(&outDir, "out", ".", "Directory to write the CSV file into")
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func checkHealth() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/ready")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Health check FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	fmt.Printf("Health check PASSED\n%s\n", string(body))
}

func showSummary() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/summary/")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Summary request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var summary struct {
		TotalIncome   string `json:"total_income"`
		TotalExpenses string `json:"total_expenses"`
		NetIncome     string `json:"net_income"`
	}
	if err := json.Unmarshal(body, &summary); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Total Income:   %s\n", summary.TotalIncome)
	fmt.Printf("Total Expenses: %s\n", summary.TotalExpenses)
	fmt.Printf("Net Income:     %s\n", summary.NetIncome)
}

func exportReport(name string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/reports/" + name + "?format=csv")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Export failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	filename := name + ".csv"
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		if fn, ok := params["filename"]; ok {
			filename = fn
		}
	}

	path := filepath.Join(outDir, filename)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		fmt.Printf("Failed to write %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", path)
}
