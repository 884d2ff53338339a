package response

// Part is one element of an llm_content sequence or the canonical output of
// Convert. Exactly one of Text, InlineData, FileData, or FunctionResponse is
// set; a zero-value Part has none of them set ("any other part shape").
type Part struct {
	Text string

	InlineData *BlobData
	FileData   *FileData

	FunctionResponse *FunctionResponsePart
}

// BlobData is inline binary data carried directly in the part.
type BlobData struct {
	MimeType string
	Data     []byte
}

// FileData references binary data stored elsewhere.
type FileData struct {
	MimeType string
	FileURI  string
}

// FunctionResponsePart is the canonical return shape fed back into the
// model: `{ id: call_id, name: tool_name, response: {...} }`.
type FunctionResponsePart struct {
	ID       string
	Name     string
	Response map[string]any
}

func (p Part) isText() bool {
	return p.Text != "" && p.InlineData == nil && p.FileData == nil && p.FunctionResponse == nil
}

func (p Part) isBinary() bool {
	return p.InlineData != nil || p.FileData != nil
}

func functionResponsePart(callID, toolName string, fields map[string]any) Part {
	return Part{FunctionResponse: &FunctionResponsePart{ID: callID, Name: toolName, Response: fields}}
}

// OutputResponse wraps a value as `response: { output: value }`, the shape
// a successful ToolCall's function-response carries.
func OutputResponse(value any) map[string]any {
	return map[string]any{"output": value}
}

// ErrorResponse wraps a message as `response: { error: message }`, the
// shape a terminal Error or Cancelled ToolCall's function-response carries.
func ErrorResponse(message string) map[string]any {
	return map[string]any{"error": message}
}
