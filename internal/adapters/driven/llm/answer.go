package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/custodia-labs/clauser-cli/internal/core/domain"
)

// wireAnswer is the JSON shape the prompt contract demands.
type wireAnswer struct {
	Answer    string `json:"answer"`
	Citations []struct {
		Standard string `json:"standard"`
		Clause   string `json:"clause"`
		Page     int    `json:"page"`
	} `json:"citations"`
}

// ParseAnswer decodes a model reply into a structured answer.
//
// Models often wrap JSON in markdown fences or add prose around it, so
// the parser strips fences and takes the outermost object. A reply with
// no parsable object, or with an empty answer field, is
// domain.ErrMalformedAnswer.
func ParseAnswer(raw string) (*domain.Answer, error) {
	payload := extractJSON(raw)
	if payload == "" {
		return nil, fmt.Errorf("%w: no JSON object in reply", domain.ErrMalformedAnswer)
	}

	var wire wireAnswer
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedAnswer, err)
	}

	if strings.TrimSpace(wire.Answer) == "" {
		return nil, fmt.Errorf("%w: empty answer field", domain.ErrMalformedAnswer)
	}

	answer := &domain.Answer{Text: strings.TrimSpace(wire.Answer)}
	for _, c := range wire.Citations {
		if c.Standard == "" {
			continue
		}
		answer.Citations = append(answer.Citations, domain.Citation{
			Standard: c.Standard,
			Clause:   c.Clause,
			Page:     c.Page,
		})
	}

	return answer, nil
}

// extractJSON returns the outermost {...} in the reply, with any
// markdown code fences already stripped.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
