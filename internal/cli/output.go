package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// HumanReadable is implemented by results that format themselves for a terminal
type HumanReadable interface {
	Human() string
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract IDs if possible
		switch v := data.(type) {
		case interface{ GetID() string }:
			fmt.Fprintln(os.Stdout, v.GetID())
			return nil
		case interface{ GetIDs() []string }:
			for _, id := range v.GetIDs() {
				fmt.Fprintln(os.Stdout, id)
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err in the current output mode and wraps it with its exit code
func (f *OutputFormatter) Fail(err error) error {
	code, errCode := Classify(err)
	if fmtErr := f.Error(errCode, err.Error()); fmtErr != nil {
		return fmtErr
	}
	return &CodedError{Code: code, Err: err}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if h, ok := data.(HumanReadable); ok {
		fmt.Fprintln(os.Stdout, h.Human())
		return nil
	}
	fmt.Fprintf(os.Stdout, "%+v\n", data)
	return nil
}
