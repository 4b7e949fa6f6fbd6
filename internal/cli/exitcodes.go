package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or an ambiguous label reference.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Label not found, note not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable config or theme files.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Label names that are empty, too short, too long or taken,
	// and note titles that are empty or too long.
	ExitValidation = 5
)
