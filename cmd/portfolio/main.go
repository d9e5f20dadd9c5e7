package main

import (
	"fmt"
	"os"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	var err error
	switch cmd {
	case "serve":
		err = runServe()
	case "snapshot":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: portfolio snapshot <base-url>")
			os.Exit(1)
		}
		err = runSnapshot(os.Args[2], os.Stdout)
	case "init":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: portfolio init <dir>")
			os.Exit(1)
		}
		err = runInit(os.Args[2])
	case "version":
		fmt.Printf("portfolio %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`portfolio - A single-page personal portfolio built with Go, Echo, and templ

Usage:
  portfolio [command] [arguments]

Commands:
  serve              Start the server (default); reads .env if present
  snapshot <url>     Load a deployed portfolio and print the merged data as JSON
  init <dir>         Write .env.example and skeleton override files into dir
  version            Print the portfolio version
  help               Show this help message

Examples:
  portfolio
  portfolio snapshot https://example.com
  portfolio init mysite`)
}
