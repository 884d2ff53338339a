package toolerr

// This file registers default recovery hints for the scheduler's own error
// taxonomy. The init() function runs automatically on import, so every
// terminal Error a ToolCall carries comes pre-enriched once EnrichError runs
// over it.

func init() {
	registerSchedulerHints()
}

// registerSchedulerHints registers recovery hints for the ErrorKind values
// defined in kind.go, scoped under the wildcard tool "*" since they apply
// regardless of which tool produced the error.
func registerSchedulerHints() {
	Register("*", ErrCodeToolNotRegistered,
		RecoveryHint{
			Strategy:   StrategySkip,
			Reason:     "the requested tool name has no registry entry; retrying with the same name will not help",
			Confidence: 0.9,
			Priority:   1,
		},
	)

	Register("*", ErrCodeInvalidToolParams,
		RecoveryHint{
			Strategy:   StrategyModifyParams,
			Reason:     "arguments failed schema validation; the model should retry with corrected arguments",
			Confidence: 0.8,
			Priority:   1,
		},
	)

	Register("*", ErrCodeUserDenied,
		RecoveryHint{
			Strategy:   StrategySkip,
			Reason:     "the user declined the confirmation; re-issuing the same call will prompt again without new information",
			Confidence: 0.7,
			Priority:   1,
		},
	)

	Register("*", ErrCodeCancelledInQueue,
		RecoveryHint{
			Strategy:   StrategySkip,
			Reason:     "the submission was cancelled before any ToolCall state was created",
			Confidence: 0.9,
			Priority:   1,
		},
	)

	Register("*", ErrCodeCancelledDuringExecution,
		RecoveryHint{
			Strategy:   StrategyRetry,
			Reason:     "cancellation during execution may reflect a transient user decision; a fresh call can be retried if still needed",
			Confidence: 0.4,
			Priority:   1,
		},
	)

	Register("*", ErrCodeExecutionFailed,
		RecoveryHint{
			Strategy:   StrategyRetry,
			Reason:     "the tool reported a failure rather than throwing; a retry may succeed if the failure was transient",
			Confidence: 0.5,
			Priority:   1,
		},
	)

	Register("*", ErrCodeUnhandledException,
		RecoveryHint{
			Strategy:   StrategyRetryWithBackoff,
			Reason:     "the tool panicked or otherwise failed outside its own error reporting path",
			Confidence: 0.4,
			Priority:   1,
		},
	)

	Register("*", ErrCodeTimeout,
		RecoveryHint{
			Strategy:   StrategyRetry,
			Reason:     "timeouts may be transient; a single retry often succeeds",
			Confidence: 0.6,
			Priority:   1,
		},
	)

	Register("*", ErrCodeNetworkError,
		RecoveryHint{
			Strategy:   StrategyRetryWithBackoff,
			Reason:     "network issues are often temporary and resolve within seconds",
			Confidence: 0.7,
			Priority:   1,
		},
	)
}
