package llm

import "strings"

// CleanJSONBlock extracts the JSON document from a model response. It
// unwraps ```json or bare ``` fences and drops conversational text before
// the first brace or bracket and after the matching last one.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		body := strings.TrimPrefix(text, "```")
		if nl := strings.IndexByte(body, '\n'); nl >= 0 {
			if tag := strings.TrimSpace(body[:nl]); tag == "" || isLanguageTag(tag) {
				body = body[nl+1:]
			}
		} else {
			body = strings.TrimPrefix(body, "json")
		}
		if end := strings.LastIndex(body, "```"); end >= 0 {
			body = body[:end]
		}
		text = strings.TrimSpace(body)
	}

	return trimToDocument(text)
}

func trimToDocument(text string) string {
	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return text
	}
	closer := "}"
	if text[start] == '[' {
		closer = "]"
	}
	end := strings.LastIndex(text, closer)
	if end < start {
		return text[start:]
	}
	return text[start : end+1]
}

func isLanguageTag(s string) bool {
	return len(s) < 20 && !strings.ContainsAny(s, " {[\"")
}
