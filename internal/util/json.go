package util

import (
	"fmt"
	"strings"
)

// ExtractJSONObject pulls the first top-level JSON object out of model text.
// LLMs often wrap JSON in markdown fences or commentary despite being told
// not to, so parsing the raw response directly is unreliable.
func ExtractJSONObject(s string) (string, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return cleaned[start : end+1], nil
}
