package apperror

import "fmt"

// Configuration errors are terminal at startup; they are never converted to
// HTTP responses because the listener is not bound yet.

// MissingVarError reports a required environment variable that resolved to
// an empty value after all merge passes.
type MissingVarError struct {
	Var string
}

func (e *MissingVarError) Error() string {
	return fmt.Sprintf("Missing required environment variable: %s", e.Var)
}

// MissingVar creates a MissingVarError naming the exact variable.
func MissingVar(name string) *MissingVarError {
	return &MissingVarError{Var: name}
}

// InvalidConfigError reports a section that failed semantic validation.
type InvalidConfigError struct {
	Section string
	Reason  error
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("Invalid configuration in section %q: %v", e.Section, e.Reason)
}

func (e *InvalidConfigError) Unwrap() error {
	return e.Reason
}

// InvalidConfig creates an InvalidConfigError for a named section.
func InvalidConfig(sectionName string, reason error) *InvalidConfigError {
	return &InvalidConfigError{Section: sectionName, Reason: reason}
}
