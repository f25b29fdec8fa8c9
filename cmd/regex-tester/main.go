package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"github.com/rxlab/regex-tester/pkg/config"
	"github.com/rxlab/regex-tester/pkg/engine"
)

var version = "dev"

func main() {
	var (
		configPath  string
		engineName  string
		pattern     string
		showVersion bool
		help        bool
	)

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&engineName, "engine", "", "Regex engine to use (stdlib or coregex)")
	flag.StringVar(&pattern, "pattern", "", "Pattern to pre-fill the input with")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.Parse()

	if help {
		printUsage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Println("regex-tester " + version)
		return
	}

	// Make an explicit --config visible to config.Load
	if configPath != "" {
		if err := os.Setenv("REGEX_TESTER_CONFIG", configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config path: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Override config with command line flags
	if engineName != "" {
		cfg.Engine = engineName
	}
	if pattern != "" {
		cfg.Pattern = pattern
	}

	deps, err := NewDependencies(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer deps.Close()

	prog := tea.NewProgram(deps.Model, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("regex-tester - interactive regular expression tester")
	fmt.Println()
	fmt.Println("Usage: regex-tester [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Printf("Available engines: %v\n", engine.Names())
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  REGEX_TESTER_CONFIG    Path to config file")
	fmt.Println("  REGEX_TESTER_ENGINE    Regex engine (stdlib or coregex)")
	fmt.Println("  REGEX_TESTER_LOG_FILE  Debug log destination")
	fmt.Println()
	fmt.Println("Configuration file: ~/.config/regex-tester/config.yaml")
}
