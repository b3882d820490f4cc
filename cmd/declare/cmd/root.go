// Package cmd implements the declare CLI commands.
//
// The root command dispatches to subcommands (init, inspect, new, version) that
// load a declare.yaml manifest and work with the types it declares.
package cmd

import (
	"fmt"
	"os"
	"strings"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "declare",
	Short: "declare - runtime types from a manifest",
	Long: `declare builds runtime types from a declare.yaml manifest: named
traits, single-parent inheritance and statics, assembled with the same
merge rules the Go API uses.

Use "declare <command> --help" for more information about a command.`,
	Usage: "declare <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// Global flags.
var (
	manifestFlag string
	verboseFlag  bool
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags and extract --manifest
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version":
			if len(filteredArgs) == 0 {
				printVersion()
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose", "-verbose":
			verboseFlag = true
		case "--manifest":
			if i+1 >= len(args) {
				return fmt.Errorf("--manifest requires a file path")
			}
			manifestFlag = args[i+1]
			i++
		default:
			if strings.HasPrefix(arg, "--manifest=") {
				manifestFlag = strings.TrimPrefix(arg, "--manifest=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printVersion() {
	fmt.Printf("declare version %s (built %s)\n", Version, BuildTime)
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  --manifest FILE      Manifest to load (default: declare.yaml in the project root)")
	fmt.Println("  --verbose            Log merge skips and stack traces")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  DECLARE_MANIFEST     Manifest path (lower priority than --manifest)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  declare inspect                          List declared types")
	fmt.Println("  declare new CalendarWidget date=2015-05-01")
	fmt.Println("                                           Construct an instance and print it")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
