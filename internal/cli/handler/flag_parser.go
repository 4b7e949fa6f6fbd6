// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseString extracts a required, non-blank string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("--%s is required", flagName)
	}
	return value, nil
}

// ParseID extracts an id flag. IDs are opaque but never contain whitespace.
func (p *FlagParser) ParseID(flagName string) (string, error) {
	id, err := p.ParseString(flagName)
	if err != nil {
		return "", err
	}
	if strings.ContainsAny(id, " \t\r\n") {
		return "", fmt.Errorf("--%s must not contain whitespace", flagName)
	}
	return id, nil
}

// RequireOne checks that exactly one of the named flags was set
func (p *FlagParser) RequireOne(flagNames ...string) error {
	set := 0
	for _, name := range flagNames {
		if p.cmd.Flags().Changed(name) {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("exactly one of --%s is required", strings.Join(flagNames, ", --"))
	}
	return nil
}
