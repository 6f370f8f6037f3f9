// Command interaction-checker is an interactive terminal front end for the
// drug interaction table. It prompts for two drug names in a loop and prints
// the lookup result.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ericjunior52/MED-SAFE/interactions"
	"github.com/joho/godotenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const separator = "======================================================================"

var titleCaser = cases.Title(language.Und)

func main() {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	path := os.Getenv("DATA_FILE")
	if path == "" {
		path = "drug_interaction.csv"
	}
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	table, err := interactions.FileLoader{Path: path}.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		fmt.Fprintf(os.Stderr, "Make sure %q exists and is a readable CSV file.\n", path)
		os.Exit(1)
	}

	fmt.Println(separator)
	fmt.Println("                  DRUG-DRUG INTERACTION CHECKER")
	fmt.Println(separator)
	fmt.Printf("Loaded %d drug interactions from %s\n", table.Len(), path)
	fmt.Println("Enter two drug names to check for interactions")
	fmt.Println("Type 'quit' or 'exit' at any time to close")
	fmt.Println(separator)

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println()

		drug1, ok := prompt(scanner, "Enter Drug 1: ")
		if !ok || isQuit(drug1) {
			sayGoodbye()
			return
		}

		drug2, ok := prompt(scanner, "Enter Drug 2: ")
		if !ok || isQuit(drug2) {
			sayGoodbye()
			return
		}

		printResult(table.CheckInteraction(drug1, drug2))
	}
}

// prompt reads one trimmed line; ok is false on EOF
func prompt(scanner *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func isQuit(input string) bool {
	switch strings.ToLower(input) {
	case "quit", "exit", "q":
		return true
	}
	return false
}

func sayGoodbye() {
	fmt.Println("\nThank you for using Drug Interaction Checker. Goodbye!")
}

func printResult(result interactions.QueryResult) {
	fmt.Println("\n" + separator)
	fmt.Printf("STATUS: %s\n", strings.ToUpper(string(result.Status)))
	fmt.Println(separator)
	fmt.Println(result.Message)

	if len(result.Records) > 0 {
		fmt.Println(strings.Repeat("-", len(separator)))
		for _, rec := range result.Records {
			fmt.Printf("\nDrug A: %s\n", titleCaser.String(rec.DrugA))
			fmt.Printf("Drug B: %s\n", titleCaser.String(rec.DrugB))
			fmt.Printf("Interaction Level: %s\n", rec.Level)
		}
	}

	fmt.Println(separator)
}
