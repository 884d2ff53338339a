package response

import "testing"

func TestConvertString(t *testing.T) {
	parts := Convert("a", "echo", "hi")
	if len(parts) != 1 {
		t.Fatalf("len(parts) = %d, want 1", len(parts))
	}
	if parts[0].FunctionResponse.Response["output"] != "hi" {
		t.Errorf("response[output] = %v, want hi", parts[0].FunctionResponse.Response["output"])
	}
}

func TestConvertSingleElementSequenceUnwraps(t *testing.T) {
	parts := Convert("a", "echo", []Part{{Text: "hi"}})
	if len(parts) != 1 {
		t.Fatalf("len(parts) = %d, want 1", len(parts))
	}
	if parts[0].FunctionResponse.Response["output"] != "hi" {
		t.Errorf("response[output] = %v, want hi", parts[0].FunctionResponse.Response["output"])
	}
}

func TestConvertMultiElementSequence(t *testing.T) {
	seq := []Part{{Text: "a"}, {Text: "b"}}
	parts := Convert("a", "echo", seq)
	if len(parts) != 3 {
		t.Fatalf("len(parts) = %d, want 3", len(parts))
	}
	if parts[0].FunctionResponse.Response["status"] != "Tool execution succeeded." {
		t.Errorf("unexpected head status: %v", parts[0].FunctionResponse.Response["status"])
	}
	if parts[1] != seq[0] || parts[2] != seq[1] {
		t.Error("expected original sequence appended verbatim")
	}
}

func TestConvertNestedFunctionResponseWithContent(t *testing.T) {
	nested := Part{FunctionResponse: &FunctionResponsePart{
		ID:   "x",
		Name: "sub",
		Response: map[string]any{
			"content": "nested text",
		},
	}}
	parts := Convert("a", "echo", nested)
	if len(parts) != 1 {
		t.Fatalf("len(parts) = %d, want 1", len(parts))
	}
	if parts[0].FunctionResponse.Response["output"] != "nested text" {
		t.Errorf("response[output] = %v, want %q", parts[0].FunctionResponse.Response["output"], "nested text")
	}
}

func TestConvertNestedFunctionResponsePassesThrough(t *testing.T) {
	nested := Part{FunctionResponse: &FunctionResponsePart{
		ID:       "x",
		Name:     "sub",
		Response: map[string]any{"output": "already canonical"},
	}}
	parts := Convert("a", "echo", nested)
	if len(parts) != 1 || parts[0] != nested {
		t.Error("expected nested function-response to pass through unchanged")
	}
}

func TestConvertInlineData(t *testing.T) {
	p := Part{InlineData: &BlobData{MimeType: "image/png", Data: []byte{1, 2, 3}}}
	parts := Convert("a", "echo", p)
	if len(parts) != 2 {
		t.Fatalf("len(parts) = %d, want 2", len(parts))
	}
	want := "Binary content of type image/png was processed."
	if parts[0].FunctionResponse.Response["status"] != want {
		t.Errorf("status = %v, want %q", parts[0].FunctionResponse.Response["status"], want)
	}
	if parts[1] != p {
		t.Error("expected original part appended after the status part")
	}
}

func TestConvertTextPart(t *testing.T) {
	parts := Convert("a", "echo", Part{Text: "plain"})
	if len(parts) != 1 {
		t.Fatalf("len(parts) = %d, want 1", len(parts))
	}
	if parts[0].FunctionResponse.Response["output"] != "plain" {
		t.Errorf("response[output] = %v, want plain", parts[0].FunctionResponse.Response["output"])
	}
}

func TestConvertOtherShape(t *testing.T) {
	parts := Convert("a", "echo", Part{})
	if len(parts) != 2 {
		t.Fatalf("len(parts) = %d, want 2", len(parts))
	}
	if parts[0].FunctionResponse.Response["status"] != "Tool execution succeeded." {
		t.Errorf("unexpected status: %v", parts[0].FunctionResponse.Response["status"])
	}
}

// TestConvertIdempotentOnCanonical is property P6: converting an
// already-canonical function-response part through Convert yields an
// equivalent function-response part.
func TestConvertIdempotentOnCanonical(t *testing.T) {
	canonical := Part{FunctionResponse: &FunctionResponsePart{
		ID:       "a",
		Name:     "echo",
		Response: map[string]any{"output": "hi"},
	}}
	parts := Convert("a", "echo", canonical)
	if len(parts) != 1 || parts[0] != canonical {
		t.Error("expected idempotent conversion of an already-canonical part")
	}
}
