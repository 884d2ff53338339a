package toolerr

// ErrorKind is the scheduler-level error taxonomy: every error that reaches
// a terminal ToolCall Error state carries exactly one of these, set via
// WithClass/Code on the wrapping Error.
type ErrorKind string

const (
	// KindToolNotRegistered fires when a request names a tool the registry
	// has no entry for.
	KindToolNotRegistered ErrorKind = "ToolNotRegistered"

	// KindInvalidToolParams fires when Tool.Build rejects the raw args.
	KindInvalidToolParams ErrorKind = "InvalidToolParams"

	// KindUserDenied fires when a confirmation resolves with Cancel.
	KindUserDenied ErrorKind = "UserDenied"

	// KindCancelledInQueue fires when a cancel signal trips while a
	// submission is still sitting behind an in-flight batch; the
	// submission is rejected before any ToolCall state is created.
	KindCancelledInQueue ErrorKind = "CancelledInQueue"

	// KindCancelledDuringExecution fires when a cancel signal trips after
	// a ToolCall has been scheduled or started executing.
	KindCancelledDuringExecution ErrorKind = "CancelledDuringExecution"

	// KindExecutionFailed fires when an invocation runs to completion but
	// reports its own failure.
	KindExecutionFailed ErrorKind = "ExecutionFailed"

	// KindUnhandledException fires when an invocation panics or otherwise
	// fails in a way it did not itself report.
	KindUnhandledException ErrorKind = "UnhandledException"
)

// Code maps an ErrorKind to the Error.Code string used throughout this
// package's constructors and the recovery registry.
func (k ErrorKind) Code() string {
	switch k {
	case KindToolNotRegistered:
		return ErrCodeToolNotRegistered
	case KindInvalidToolParams:
		return ErrCodeInvalidToolParams
	case KindUserDenied:
		return ErrCodeUserDenied
	case KindCancelledInQueue:
		return ErrCodeCancelledInQueue
	case KindCancelledDuringExecution:
		return ErrCodeCancelledDuringExecution
	case KindExecutionFailed:
		return ErrCodeExecutionFailed
	case KindUnhandledException:
		return ErrCodeUnhandledException
	default:
		return ""
	}
}

// Scheduler-level error codes, parallel to the tool-level ErrCode* constants
// in error.go.
const (
	ErrCodeToolNotRegistered        = "TOOL_NOT_REGISTERED"
	ErrCodeInvalidToolParams        = "INVALID_TOOL_PARAMS"
	ErrCodeUserDenied               = "USER_DENIED"
	ErrCodeCancelledInQueue         = "CANCELLED_IN_QUEUE"
	ErrCodeCancelledDuringExecution = "CANCELLED_DURING_EXECUTION"
	ErrCodeUnhandledException       = "UNHANDLED_EXCEPTION"
)

// NewKind builds an Error already classified with kind, convenient at the
// scheduler/execution boundary where the ErrorKind is known up front.
func NewKind(tool, operation string, kind ErrorKind, message string) *Error {
	return New(tool, operation, kind.Code(), message).WithClass(DefaultClassForCode(kind.Code()))
}
