package acceptance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/omegalearn/ts"
)

// TestRunError VERIFIES escape diagnostics pass through and foreign run
// errors are not mistaken for escapes.
func TestRunError(t *testing.T) {
	re := &ts.RunError{State: 1, Position: 2, Prefix: "aba"}
	assert.Same(t, re, runError(re))
	assert.Panics(t, func() { runError(errors.New("broken backend")) })
}
