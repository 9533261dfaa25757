// Package main provides the entry point for the Skillvize HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillvize",
	Short: "Skillvize HTTP API Server",
	Long:  "Skillvize analyzes resumes against job descriptions, scores the skill overlap, and generates learning roadmaps for the missing skills via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
