package main

import (
	"fmt"
	"os"

	"github.com/erraggy/oastables"
	"github.com/erraggy/oastables/cmd/oastables/commands"
)

// commandNames lists every top-level command, used for typo suggestions.
var commandNames = []string{"export", "list", "show", "merge", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oastables v%s\n", oastables.Version())
		fmt.Printf("Commit: %s\n", oastables.Commit())
		fmt.Printf("Build Time: %s\n", oastables.BuildTime())
		fmt.Printf("Go Version: %s\n", oastables.GoVersion())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "export":
		err = commands.HandleExport(args)
	case "list":
		err = commands.HandleList(args)
	case "show":
		err = commands.HandleShow(args)
	case "merge":
		err = commands.HandleMerge(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		commands.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			commands.Writef(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		commands.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		commands.Writef(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when none is
// within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func printUsage() {
	usage := `oastables - Flatten OpenAPI documents into CSV files and workbooks

Usage:
  oastables <command> [options]

Commands:
  export      Write every section as CSV plus a multi-sheet workbook
  list        Write the endpoint summary as a single CSV file
  show        Print one section as a table, JSON or YAML
  merge       Combine the CSV files of a directory into one file
  mcp         Start the MCP server over stdio
  version     Show version information
  help        Show this help message

Sections:
  endpoints, parameters, responses, tags, models, schemas, security

Examples:
  oastables export petstore.json
  oastables export -o out --workbook petstore.xlsx petstore.json
  oastables list --excel-bom petstore.json
  oastables show parameters petstore.json
  oastables show --format yaml security petstore.json
  oastables merge -o all.csv petstore_tables

Run 'oastables <command> --help' for more information on a command.`

	fmt.Println(usage)
}
