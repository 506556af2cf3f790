// Demo entry point: runs the built-in sample estate documents through the
// pipeline and prints per-document results plus the batch summary.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/avasilev/estate-doc-agent/internal/documents"
	"github.com/avasilev/estate-doc-agent/internal/models"
	"github.com/avasilev/estate-doc-agent/internal/setup"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	docID := flag.String("doc", "", "Process a single sample document by ID")
	showHistory := flag.Bool("history", false, "Print the processing history after the run")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	logger := log.Logger

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	cfg := setup.LoadConfig()
	deps, err := setup.Wire(cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	if *docID != "" {
		doc, ok := documents.ByID(*docID)
		if !ok {
			log.Fatal().Str("document_id", *docID).Msg("Sample document not found")
		}

		result := deps.Pipeline.Process(doc)
		printResult(result)
		return
	}

	docs := documents.All()
	log.Info().Int("total", len(docs)).Msg("Loaded sample documents")

	summary := deps.Pipeline.ProcessBatch(docs)

	printSeparator("BATCH PROCESSING SUMMARY")
	fmt.Printf("Total Documents Processed: %d\n", summary.TotalDocuments)
	fmt.Printf("Successfully Processed:    %d\n", summary.Succeeded)
	fmt.Printf("Approved Documents:        %d\n", summary.Approved)
	fmt.Printf("Rejected Documents:        %d\n", summary.Rejected)
	fmt.Printf("Error Documents:           %d\n", summary.Errored)
	fmt.Printf("Total Processing Time:     %s\n", summary.Duration)

	printSeparator("DETAILED RESULTS")
	fmt.Printf("%-8s %-20s %-12s %-6s %-10s %-12s\n", "Doc ID", "Category", "Code", "Valid", "Status", "Duration")
	fmt.Println(strings.Repeat("-", 72))

	for _, result := range summary.Results {
		category, code, valid := "-", "-", "-"
		if result.Classification != nil {
			category = result.Classification.Category
			code = result.Classification.CategoryCode
		}
		if result.Validation != nil {
			valid = fmt.Sprintf("%t", result.Validation.Valid)
		}
		fmt.Printf("%-8s %-20s %-12s %-6s %-10s %-12s\n",
			result.DocumentID, category, code, valid, result.FinalDecision, result.Duration)
	}

	if *showHistory {
		printSeparator("PROCESSING HISTORY")
		for i, result := range deps.Pipeline.History() {
			fmt.Printf("%3d. %s  %s  %s\n", i+1, result.DocumentID, result.FinalDecision, result.ProcessedAt.Format(time.RFC3339))
		}
	}
}

func printResult(result models.ProcessingResult) {
	printSeparator("PROCESSING RESULT: " + result.DocumentID)
	fmt.Printf("Processing Status: %s\n", result.Status)
	fmt.Printf("Final Status:      %s\n", result.FinalDecision)
	fmt.Printf("Duration:          %s\n", result.Duration)

	if result.Classification != nil {
		fmt.Printf("Category:          %s\n", result.Classification.Category)
		fmt.Printf("Category Code:     %s\n", result.Classification.CategoryCode)
		fmt.Printf("Confidence:        %.2f\n", result.Classification.Confidence)
	}
	if result.Validation != nil {
		fmt.Printf("Compliance Valid:  %t\n", result.Validation.Valid)
		fmt.Printf("Compliance Reason: %s\n", result.Validation.Reason)
	}
	if result.ErrorDetail != "" {
		fmt.Printf("Error:             %s\n", result.ErrorDetail)
	}
}

func printSeparator(title string) {
	fmt.Println()
	fmt.Printf("===== %s =====\n", title)
}
