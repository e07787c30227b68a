// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package errors provides structured error handling for the sorry CLI.
//
// This package defines UserError, a type that carries structured error
// information including what went wrong, why it happened, and how to fix
// it. Every error also carries a Kind that classifies the failure and a
// consistent exit code for its category.
//
// # Usage Example
//
// Creating and displaying errors:
//
//	err := errors.NewNoProviderError()
//	if err != nil {
//	    // Print and exit with colored output
//	    errors.FatalError(err, false)
//	}
//
// # Formatted Output
//
// The Format() method provides colored terminal output:
//
//	Error: No provider configured
//	Cause: Queries need an active provider with an API key
//	Fix:   Run 'sorry --config-openai' or 'sorry --config-groq' first
//
// # Exit Codes
//
// The package defines semantic exit codes following Unix conventions:
//   - ExitSuccess (0): Successful execution
//   - ExitConfig (1): Configuration errors (missing provider, missing key, corrupt file)
//   - ExitNetwork (3): Provider/API errors (rejected, unavailable, bad response)
//   - ExitInput (4): Invalid user input (no message, empty key)
//   - ExitPermission (5): Filesystem errors (config file not writable)
//   - ExitInternal (10): Internal errors (bugs, panics)
package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/kraklabs/sorry/internal/output"
)

// Exit codes for different error categories.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitConfig indicates configuration errors (no provider, missing
	// API key, corrupt config file).
	ExitConfig = 1

	// ExitNetwork indicates provider or API errors (request rejected,
	// endpoint unavailable, unusable response).
	ExitNetwork = 3

	// ExitInput indicates invalid user input (no message, empty key).
	ExitInput = 4

	// ExitPermission indicates filesystem errors (config not writable).
	ExitPermission = 5

	// ExitInternal indicates internal errors (bugs, unexpected panics).
	// Exit code 10 signals "this is a bug that should be reported".
	ExitInternal = 10
)

// Kind classifies a UserError so callers can branch on the failure
// class without parsing messages.
type Kind string

// Error kinds.
const (
	// KindInvalidInput: the user gave bad or missing data.
	KindInvalidInput Kind = "invalid_input"

	// KindNoProvider: no active provider is configured.
	KindNoProvider Kind = "no_provider_configured"

	// KindMissingKey: the active provider has no API key, or the
	// provider answered 401/403.
	KindMissingKey Kind = "missing_api_key"

	// KindCorruptConfig: the config file exists but cannot be parsed.
	KindCorruptConfig Kind = "corrupt_config"

	// KindIO: the config file could not be written.
	KindIO Kind = "io_error"

	// KindRejected: the provider rejected the request (4xx).
	KindRejected Kind = "provider_rejected"

	// KindEmptyResponse: the provider answered 2xx with no reply.
	KindEmptyResponse Kind = "empty_response"

	// KindMalformedResponse: the provider answered 2xx with a body
	// that does not parse.
	KindMalformedResponse Kind = "malformed_response"

	// KindUnavailable: the provider could not be reached (5xx,
	// network failure, timeout).
	KindUnavailable Kind = "provider_unavailable"
)

// UserError represents an error with structured context for end users.
//
// It provides three levels of information:
//   - Message: What went wrong (user-facing error description)
//   - Cause: Why it happened (diagnostic information)
//   - Fix: How to fix it (actionable suggestion)
//
// UserError also carries a Kind for classification, an exit code for
// consistent CLI exit behavior, and optionally wraps an underlying
// error for error chain compatibility.
type UserError struct {
	// Kind classifies the failure.
	Kind Kind

	// Message describes what went wrong in user-friendly language.
	Message string

	// Cause explains why the error occurred (diagnostic information).
	Cause string

	// Fix provides an actionable suggestion on how to resolve the error.
	Fix string

	// ExitCode is the exit code that should be used when exiting due to this error.
	ExitCode int

	// Err is the underlying error that caused this error (optional).
	Err error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements error unwrapping for compatibility with errors.Is
// and errors.As.
func (e *UserError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a UserError of the given kind.
func IsKind(err error, kind Kind) bool {
	ue, ok := err.(*UserError)
	return ok && ue.Kind == kind
}

// NewInvalidInput creates an input validation error with exit code ExitInput.
func NewInvalidInput(msg, cause, fix string) *UserError {
	return &UserError{
		Kind:     KindInvalidInput,
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitInput,
	}
}

// NewNoProviderError creates the "no provider configured" error.
func NewNoProviderError() *UserError {
	return &UserError{
		Kind:     KindNoProvider,
		Message:  "No provider configured",
		Cause:    "Queries need an active provider with an API key",
		Fix:      "Run 'sorry --config-openai' or 'sorry --config-groq' first",
		ExitCode: ExitConfig,
	}
}

// NewMissingKeyError creates a missing API key error for the named
// provider. Pass an empty provider for the 401/403 remote variant.
func NewMissingKeyError(provider string) *UserError {
	if provider == "" {
		return &UserError{
			Kind:     KindMissingKey,
			Message:  "The provider rejected the API key",
			Cause:    "The request was refused as unauthorized (401/403)",
			Fix:      "Check your API key and reconfigure with 'sorry --config-<provider>'",
			ExitCode: ExitNetwork,
		}
	}
	return &UserError{
		Kind:     KindMissingKey,
		Message:  fmt.Sprintf("API key not set for provider '%s'", provider),
		Cause:    "The provider entry exists but its key is empty",
		Fix:      fmt.Sprintf("Run 'sorry --config-%s' to configure it", provider),
		ExitCode: ExitConfig,
	}
}

// NewCorruptConfigError creates a corrupt config file error with exit
// code ExitConfig. The path is included so the user can inspect or
// delete the file; it is never silently discarded since that would
// lose a saved API key.
func NewCorruptConfigError(path string, err error) *UserError {
	return &UserError{
		Kind:     KindCorruptConfig,
		Message:  "Cannot parse config file",
		Cause:    fmt.Sprintf("%s exists but is not valid config JSON", path),
		Fix:      "Fix or remove the file, then reconfigure with 'sorry --config-<provider>'",
		ExitCode: ExitConfig,
		Err:      err,
	}
}

// NewIOError creates a filesystem error with exit code ExitPermission.
func NewIOError(msg, path string, err error) *UserError {
	return &UserError{
		Kind:     KindIO,
		Message:  msg,
		Cause:    fmt.Sprintf("Accessing %s failed", path),
		Fix:      "Check permissions on the config directory",
		ExitCode: ExitPermission,
		Err:      err,
	}
}

// NewRejectedError creates a provider rejection error (4xx) with exit
// code ExitNetwork.
func NewRejectedError(status int, message string) *UserError {
	if message == "" {
		message = "request rejected"
	}
	return &UserError{
		Kind:     KindRejected,
		Message:  fmt.Sprintf("Provider rejected the request (status %d)", status),
		Cause:    message,
		Fix:      "Check the configured model and base URL with 'sorry --show-config'",
		ExitCode: ExitNetwork,
	}
}

// NewEmptyResponseError creates the "no reply" error with exit code
// ExitNetwork.
func NewEmptyResponseError() *UserError {
	return &UserError{
		Kind:     KindEmptyResponse,
		Message:  "Provider returned no reply",
		Cause:    "The response parsed but contained zero choices",
		Fix:      "Try again; if it persists, try another model",
		ExitCode: ExitNetwork,
	}
}

// NewMalformedResponseError creates an unparseable-response error with
// exit code ExitNetwork. A short excerpt of the body is included for
// diagnosis.
func NewMalformedResponseError(excerpt string, err error) *UserError {
	return &UserError{
		Kind:     KindMalformedResponse,
		Message:  "Cannot parse provider response",
		Cause:    fmt.Sprintf("Body starts with: %s", excerpt),
		Fix:      "Check that the base URL points at a chat-completions API",
		ExitCode: ExitNetwork,
		Err:      err,
	}
}

// NewUnavailableError creates a provider-unreachable error (5xx,
// network failure, timeout) with exit code ExitNetwork.
func NewUnavailableError(cause string, err error) *UserError {
	return &UserError{
		Kind:     KindUnavailable,
		Message:  "Provider unavailable",
		Cause:    cause,
		Fix:      "Check your network connection and try again",
		ExitCode: ExitNetwork,
		Err:      err,
	}
}

// NewInternalError creates an internal error with exit code ExitInternal.
func NewInternalError(msg string, err error) *UserError {
	return &UserError{
		Message:  msg,
		Cause:    "This is a bug in sorry",
		Fix:      "Please report it at github.com/kraklabs/sorry/issues",
		ExitCode: ExitInternal,
		Err:      err,
	}
}

// Color definitions for error formatting.
var (
	colorError = color.New(color.FgRed, color.Bold)
	colorCause = color.New(color.FgYellow)
	colorFix   = color.New(color.FgGreen)
)

// Format returns a formatted error message for terminal display.
//
// The output includes colored sections for Error (red/bold), Cause
// (yellow), and Fix (green). Color output respects the NO_COLOR
// environment variable and can be explicitly disabled with the
// noColor parameter.
//
// Empty Cause or Fix fields are omitted from the output.
func (e *UserError) Format(noColor bool) string {
	// Save and restore global color state to avoid side effects
	originalNoColor := color.NoColor
	defer func() { color.NoColor = originalNoColor }()

	if noColor || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	var out strings.Builder
	out.WriteString(colorError.Sprint("Error: "))
	out.WriteString(e.Message)
	out.WriteString("\n")

	if e.Cause != "" {
		out.WriteString(colorCause.Sprint("Cause: "))
		out.WriteString(e.Cause)
		out.WriteString("\n")
	}

	if e.Fix != "" {
		out.WriteString(colorFix.Sprint("Fix:   "))
		out.WriteString(e.Fix)
		out.WriteString("\n")
	}

	return out.String()
}

// ErrorJSON represents error information in JSON format.
//
// This structure is suitable for machine consumption and integrates
// with the --json output mode.
type ErrorJSON struct {
	Error    string `json:"error"`
	Kind     string `json:"kind,omitempty"`
	Cause    string `json:"cause,omitempty"`
	Fix      string `json:"fix,omitempty"`
	ExitCode int    `json:"exit_code"`
}

// ToJSON converts the UserError to a JSON-serializable structure.
func (e *UserError) ToJSON() ErrorJSON {
	return ErrorJSON{
		Error:    e.Message,
		Kind:     string(e.Kind),
		Cause:    e.Cause,
		Fix:      e.Fix,
		ExitCode: e.ExitCode,
	}
}

// FatalError prints the error and exits with the appropriate code.
//
// If the error is a UserError, it uses Format() for colored output or
// ToJSON() for JSON mode. For non-UserError types, it prints a simple
// error message and exits with ExitInternal.
//
// This function never returns - it always calls os.Exit().
func FatalError(err error, jsonOutput bool) {
	if err == nil {
		return
	}
	os.Exit(fprintError(os.Stderr, err, jsonOutput))
}

// fprintError writes err to w in the requested mode and returns the
// exit code the process should terminate with.
func fprintError(w io.Writer, err error, jsonOutput bool) int {
	ue, ok := err.(*UserError)
	if !ok {
		if jsonOutput {
			// Encode error is intentionally ignored since we're about to exit.
			_ = output.JSONTo(w, ErrorJSON{Error: err.Error(), ExitCode: ExitInternal})
		} else {
			fmt.Fprintf(w, "Error: %v\n", err)
		}
		return ExitInternal
	}

	if jsonOutput {
		_ = output.JSONTo(w, ue.ToJSON())
	} else {
		fmt.Fprint(w, ue.Format(false))
	}
	return ue.ExitCode
}
