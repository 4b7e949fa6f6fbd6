// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/notely/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with parsed arguments
	Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)
}

// HandlerFunc adapts a plain function to Handler
type HandlerFunc func(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)

// Execute calls f
func (f HandlerFunc) Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error) {
	return f(ctx, c, args)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Flags map[string]any
	Args  []string
	cmd   *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// Command wraps common command execution logic.
// Returns a cobra RunE compatible function.
func Command(handler Handler, parseFlags func(*cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		formatter := Formatter(cmd)

		// Parse flags
		if err := parseFlags(cmd); err != nil {
			return formatter.Fail(fmt.Errorf("%w: %w", cli.ErrUsage, err))
		}

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return formatter.Fail(fmt.Errorf("initialization error: %w", err))
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("failed to close CLI", "error", err)
			}
		}()

		// Build arguments map from all flags
		arguments := &Arguments{
			Flags: parseFlagsToMap(cmd),
			Args:  args,
			cmd:   cmd,
		}

		result, err := handler.Execute(ctx, cliInstance, arguments)
		if err != nil {
			slog.Debug("command failed", "command", cmd.CommandPath(), "error", err)
			return formatter.Fail(err)
		}
		if result == nil {
			return nil
		}

		// Common output formatting
		return formatter.Success(result)
	}
}

// SimpleCommand wraps command execution with minimal setup.
// Use this for commands that don't need complex flag parsing.
func SimpleCommand(handler Handler) func(*cobra.Command, []string) error {
	return Command(handler, func(cmd *cobra.Command) error {
		return nil
	})
}

// Formatter builds the output formatter from the --json and --quiet flags
func Formatter(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

// parseFlagsToMap converts cobra command flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	// Visit all flags that were explicitly set
	cmd.Flags().Visit(func(f *pflag.Flag) {
		// Get the value based on flag type
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "stringSlice":
			if v, err := cmd.Flags().GetStringSlice(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "stringArray":
			if v, err := cmd.Flags().GetStringArray(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
		}
	})

	return flags
}

// RequireString retrieves a string flag that must have been set
func (a *Arguments) RequireString(name string) (string, error) {
	v, ok := a.Flags[name]
	if !ok {
		return "", fmt.Errorf("%w: --%s is required", cli.ErrUsage, name)
	}
	val, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("flag --%s: expected string, got %T", name, v)
	}
	return val, nil
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(string)
	if !ok {
		return defaultVal
	}
	return val
}

// Has reports whether the flag was set on the command line
func (a *Arguments) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	v, ok := a.Flags[name]
	if !ok {
		return false
	}
	val, ok := v.(bool)
	if !ok {
		return false
	}
	return val
}

// GetStrings retrieves a repeated string flag with default
func (a *Arguments) GetStrings(name string, defaultVal []string) []string {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.([]string)
	if !ok {
		return defaultVal
	}
	return val
}
