// Package response is the Response Converter (C6): it normalises
// heterogeneous tool output — plain text, binary blobs, file references, or
// an already-nested function-response — into a canonical function-response
// part list the model can consume.
//
// Convert is total: it never returns an error. Every ToolCall that reaches
// a terminal state gets at least one function-response part out of it, even
// if the tool's own output shape was unexpected.
package response
