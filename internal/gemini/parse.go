package gemini

import (
	"encoding/json"
	"errors"
	"strings"
)

// Prospecting responses are free text that should contain a JSON array,
// possibly wrapped in code fences. The UI layer never sees the raw text;
// parsing resolves to records or one of these sentinel outcomes.
var (
	ErrMalformedResponse = errors.New("gemini: response does not contain a valid JSON array")
	ErrEmptyResult       = errors.New("gemini: response contains no records")
)

// ProspectRecord is one company row extracted from a prospecting response.
type ProspectRecord struct {
	Company string `json:"company"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// ExtractRecords isolates the JSON array inside raw and parses it. The array
// is located between the first '[' and the last ']'; when no brackets are
// present, code-fence markers are stripped before a last parse attempt.
func ExtractRecords(raw string) ([]ProspectRecord, error) {
	jsonString := raw
	start := strings.Index(jsonString, "[")
	end := strings.LastIndex(jsonString, "]")
	if start != -1 && end != -1 && end > start {
		jsonString = jsonString[start : end+1]
	} else {
		jsonString = strings.ReplaceAll(jsonString, "```json", "")
		jsonString = strings.ReplaceAll(jsonString, "```", "")
		jsonString = strings.TrimSpace(jsonString)
	}

	var records []ProspectRecord
	if err := json.Unmarshal([]byte(jsonString), &records); err != nil {
		return nil, ErrMalformedResponse
	}
	if len(records) == 0 {
		return nil, ErrEmptyResult
	}
	return records, nil
}
