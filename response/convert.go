package response

import "fmt"

// Convert canonicalises llmContent into an ordered function-response part
// list for (callID, toolName). llmContent is a string, a single Part, or an
// ordered []Part; any other type falls back to the "any other part shape"
// rule.
//
// The eight rules are evaluated in order and are mutually exclusive — each
// input shape matches exactly one.
func Convert(callID, toolName string, llmContent any) []Part {
	switch v := llmContent.(type) {
	case string:
		// Rule 1.
		return []Part{functionResponsePart(callID, toolName, OutputResponse(v))}

	case []Part:
		switch len(v) {
		case 0:
			return convertPart(callID, toolName, Part{})
		case 1:
			// Rule 2: unwrap and re-evaluate.
			return Convert(callID, toolName, v[0])
		default:
			// Rule 3.
			head := functionResponsePart(callID, toolName, map[string]any{"status": "Tool execution succeeded."})
			return append([]Part{head}, v...)
		}

	case Part:
		return convertPart(callID, toolName, v)

	default:
		return convertPart(callID, toolName, Part{})
	}
}

// convertPart handles rules 4 through 8, the single-Part cases.
func convertPart(callID, toolName string, p Part) []Part {
	if p.FunctionResponse != nil {
		if p.FunctionResponse.Response != nil {
			if content, ok := p.FunctionResponse.Response["content"]; ok {
				// Rule 4.
				return []Part{functionResponsePart(callID, toolName, OutputResponse(fmt.Sprint(content)))}
			}
		}
		// Rule 5: pass through unchanged.
		return []Part{p}
	}

	if p.isBinary() {
		// Rule 6.
		mime := ""
		if p.InlineData != nil {
			mime = p.InlineData.MimeType
		} else if p.FileData != nil {
			mime = p.FileData.MimeType
		}
		head := functionResponsePart(callID, toolName, map[string]any{
			"status": fmt.Sprintf("Binary content of type %s was processed.", mime),
		})
		return []Part{head, p}
	}

	if p.isText() {
		// Rule 7.
		return []Part{functionResponsePart(callID, toolName, OutputResponse(p.Text))}
	}

	// Rule 8.
	head := functionResponsePart(callID, toolName, map[string]any{"status": "Tool execution succeeded."})
	return []Part{head, p}
}
