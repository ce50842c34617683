// Package decode parses unwrapped provider output as the shared response
// schema and classifies the officer's decision.
package decode

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/nimblefox/pullover/internal/types"
)

// SchemaError means the model produced output that is not the shared
// response schema. Recoverable only by re-prompting.
type SchemaError struct {
	Reason string
	Raw    string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("ai response violates schema: %s", e.Reason)
}

// responseSchema is the shared contract every provider must satisfy after
// unwrapping. Only dialogue is required; models routinely omit or mistype
// decision and leniency_score, so those are normalized after validation.
var responseSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"dialogue"},
	Properties: map[string]*jsonschema.Schema{
		"dialogue": {Type: "string"},
	},
}

var resolvedSchema = mustResolve(responseSchema)

func mustResolve(s *jsonschema.Schema) *jsonschema.Resolved {
	resolved, err := s.Resolve(nil)
	if err != nil {
		panic(err)
	}
	return resolved
}

// Decode parses the unwrapped text and normalizes it into an AIResponse.
// The leniency score is clamped into [0,100]; unknown decision strings map
// to Pending.
func Decode(text string) (types.AIResponse, error) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return types.AIResponse{}, &SchemaError{Reason: err.Error(), Raw: text}
	}
	if err := resolvedSchema.Validate(payload); err != nil {
		return types.AIResponse{}, &SchemaError{Reason: err.Error(), Raw: text}
	}

	dialogue, _ := payload["dialogue"].(string)
	if strings.TrimSpace(dialogue) == "" {
		return types.AIResponse{}, &SchemaError{Reason: "dialogue field is empty", Raw: text}
	}

	return types.AIResponse{
		Dialogue:      dialogue,
		LeniencyScore: types.ClampLeniency(intField(payload, "leniency_score")),
		Decision:      types.ParseDecision(stringField(payload, "decision")),
	}, nil
}

func intField(payload map[string]any, key string) int {
	switch v := payload[key].(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return 0
}

func stringField(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}
