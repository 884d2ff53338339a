package toolerr

import (
	"testing"
)

// TestDefaultsRegistered verifies that default recovery hints are registered
// at init time for every ErrorKind code, under the wildcard tool.
func TestDefaultsRegistered(t *testing.T) {
	tests := []struct {
		name      string
		tool      string
		errorCode string
		wantHints bool
	}{
		{name: "tool not registered", tool: "*", errorCode: ErrCodeToolNotRegistered, wantHints: true},
		{name: "invalid tool params", tool: "*", errorCode: ErrCodeInvalidToolParams, wantHints: true},
		{name: "user denied", tool: "*", errorCode: ErrCodeUserDenied, wantHints: true},
		{name: "cancelled in queue", tool: "*", errorCode: ErrCodeCancelledInQueue, wantHints: true},
		{name: "cancelled during execution", tool: "*", errorCode: ErrCodeCancelledDuringExecution, wantHints: true},
		{name: "execution failed", tool: "*", errorCode: ErrCodeExecutionFailed, wantHints: true},
		{name: "unhandled exception", tool: "*", errorCode: ErrCodeUnhandledException, wantHints: true},
		{name: "generic timeout", tool: "*", errorCode: ErrCodeTimeout, wantHints: true},
		{name: "generic network error", tool: "*", errorCode: ErrCodeNetworkError, wantHints: true},
		{name: "unknown tool", tool: "unknown", errorCode: ErrCodeBinaryNotFound, wantHints: false},
		{name: "wildcard parse error not registered", tool: "*", errorCode: ErrCodeParseError, wantHints: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hints := GetHints(tt.tool, tt.errorCode)
			hasHints := len(hints) > 0

			if hasHints != tt.wantHints {
				t.Errorf("GetHints(%q, %q) returned hints=%v, want hints=%v",
					tt.tool, tt.errorCode, hasHints, tt.wantHints)
			}
		})
	}
}

// TestToolNotRegisteredHint verifies the ToolNotRegistered hint steers away
// from retrying.
func TestToolNotRegisteredHint(t *testing.T) {
	hints := GetHints("*", ErrCodeToolNotRegistered)
	if len(hints) != 1 {
		t.Fatalf("expected 1 hint, got %d", len(hints))
	}
	if hints[0].Strategy != StrategySkip {
		t.Errorf("expected strategy %q, got %q", StrategySkip, hints[0].Strategy)
	}
}

// TestInvalidToolParamsHint verifies the InvalidToolParams hint points at
// retrying with modified parameters.
func TestInvalidToolParamsHint(t *testing.T) {
	hints := GetHints("*", ErrCodeInvalidToolParams)
	if len(hints) != 1 {
		t.Fatalf("expected 1 hint, got %d", len(hints))
	}
	if hints[0].Strategy != StrategyModifyParams {
		t.Errorf("expected strategy %q, got %q", StrategyModifyParams, hints[0].Strategy)
	}
}

// TestEnrichErrorWithDefaults verifies EnrichError uses default hints and
// DefaultClassForCode together.
func TestEnrichErrorWithDefaults(t *testing.T) {
	err := NewKind("edit_file", "build", KindInvalidToolParams, "missing required field: file_path")

	enriched := EnrichError(err)

	if enriched.Class != ErrorClassSemantic {
		t.Errorf("expected class %q, got %q", ErrorClassSemantic, enriched.Class)
	}
	if len(enriched.Hints) == 0 {
		t.Error("expected hints to be attached after enrichment")
	}
}

// TestConfidenceScores verifies all confidence scores are in a realistic range.
func TestConfidenceScores(t *testing.T) {
	codes := []string{
		ErrCodeToolNotRegistered,
		ErrCodeInvalidToolParams,
		ErrCodeUserDenied,
		ErrCodeCancelledInQueue,
		ErrCodeCancelledDuringExecution,
		ErrCodeExecutionFailed,
		ErrCodeUnhandledException,
		ErrCodeTimeout,
		ErrCodeNetworkError,
	}

	for _, code := range codes {
		hints := GetHints("*", code)
		for i, hint := range hints {
			if hint.Confidence < 0.0 || hint.Confidence > 1.0 {
				t.Errorf("*/%s hint %d: confidence %f out of range [0.0, 1.0]", code, i, hint.Confidence)
			}
		}
	}
}

// TestAllHintsHaveReasons verifies every default hint has a meaningful reason.
func TestAllHintsHaveReasons(t *testing.T) {
	codes := []string{
		ErrCodeToolNotRegistered,
		ErrCodeInvalidToolParams,
		ErrCodeUserDenied,
		ErrCodeCancelledInQueue,
		ErrCodeCancelledDuringExecution,
		ErrCodeExecutionFailed,
		ErrCodeUnhandledException,
	}

	for _, code := range codes {
		hints := GetHints("*", code)
		for i, hint := range hints {
			if hint.Reason == "" {
				t.Errorf("*/%s hint %d: missing reason", code, i)
			}
			if len(hint.Reason) < 10 {
				t.Errorf("*/%s hint %d: reason too short (%d chars): %q", code, i, len(hint.Reason), hint.Reason)
			}
		}
	}
}

// TestErrorKindCodeRoundTrip verifies every ErrorKind maps to a non-empty,
// distinct Code.
func TestErrorKindCodeRoundTrip(t *testing.T) {
	kinds := []ErrorKind{
		KindToolNotRegistered,
		KindInvalidToolParams,
		KindUserDenied,
		KindCancelledInQueue,
		KindCancelledDuringExecution,
		KindExecutionFailed,
		KindUnhandledException,
	}

	seen := make(map[string]ErrorKind, len(kinds))
	for _, k := range kinds {
		code := k.Code()
		if code == "" {
			t.Errorf("ErrorKind %q has empty Code()", k)
		}
		if other, dup := seen[code]; dup {
			t.Errorf("ErrorKind %q and %q share Code() %q", k, other, code)
		}
		seen[code] = k
	}
}
