// ABOUTME: ProcessEnvironment port over the process-wide PATH variable
// ABOUTME: Splits and joins on the platform list separator
package host

import (
	"fmt"
	"os"
	"strings"
)

// OSPathEnv reads and rewrites the process PATH variable. The orchestrator
// reads the list once and writes it once per run; this type is not a
// cache, every call goes to the environment.
type OSPathEnv struct {
	Var string
}

// NewOSPathEnv returns a path accessor over the standard PATH variable.
func NewOSPathEnv() *OSPathEnv {
	return &OSPathEnv{Var: "PATH"}
}

// List returns the current path elements in order.
func (e *OSPathEnv) List() ([]string, error) {
	value, ok := os.LookupEnv(e.Var)
	if !ok {
		return nil, fmt.Errorf("environment variable %s is not set", e.Var)
	}
	if value == "" {
		return nil, nil
	}
	return strings.Split(value, string(os.PathListSeparator)), nil
}

// SetList joins the elements with the platform separator and writes the
// variable back.
func (e *OSPathEnv) SetList(elements []string) error {
	return os.Setenv(e.Var, strings.Join(elements, string(os.PathListSeparator)))
}
