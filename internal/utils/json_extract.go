package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// DecodeLooseJSON parses JSON from assistant backend output that may arrive
// as pure JSON, JSON wrapped in markdown code blocks, or JSON embedded in
// surrounding chat text.
func DecodeLooseJSON(input string, target interface{}) error {
	if input == "" {
		return fmt.Errorf("empty input")
	}

	// Most common case: the backend returned plain JSON.
	if err := json.Unmarshal([]byte(input), target); err == nil {
		return nil
	}

	if extracted := extractFromMarkdown(input); extracted != "" {
		if err := json.Unmarshal([]byte(extracted), target); err == nil {
			return nil
		}
	}

	if start := strings.Index(input, "{"); start >= 0 {
		if extracted := extractBalancedBraces(input[start:]); extracted != "" {
			if err := json.Unmarshal([]byte(extracted), target); err == nil {
				return nil
			}
		}
	}

	return fmt.Errorf("failed to parse JSON from input: %s", truncateString(input, 100))
}

// extractFromMarkdown extracts JSON from ```json ... ``` or bare ``` ... ```
// code blocks.
func extractFromMarkdown(input string) string {
	re1 := regexp.MustCompile("(?s)```json\\s*(.+?)\\s*```")
	if matches := re1.FindStringSubmatch(input); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	re2 := regexp.MustCompile("(?s)```\\s*(.+?)\\s*```")
	if matches := re2.FindStringSubmatch(input); len(matches) > 1 {
		content := strings.TrimSpace(matches[1])
		if strings.HasPrefix(content, "{") || strings.HasPrefix(content, "[") {
			return content
		}
	}

	return ""
}

// extractBalancedBraces returns the first brace-balanced object in input,
// respecting string literals and escapes.
func extractBalancedBraces(input string) string {
	depth := 0
	inString := false
	escape := false

	for i, ch := range input {
		if escape {
			escape = false
			continue
		}
		if ch == '\\' {
			escape = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return input[:i+1]
			}
		}
	}
	return ""
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
