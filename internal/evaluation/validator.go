package evaluation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// requiredKeys are the five top-level members every evaluation must carry.
var requiredKeys = []string{
	"score",
	"swotAnalysis",
	"mvpSuggestions",
	"businessModelIdeas",
	"marketAnalysis",
}

// scoreKeys are the numeric ratings the score member must carry.
var scoreKeys = []string{"overall", "marketPotential", "technicalFeasibility"}

// ValidationError reports which field paths kept a parsed document from
// becoming a StartupEvaluation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "evaluation failed validation: " + strings.Join(e.Fields, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations by JSON name so logs match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseEvaluation decodes a repaired completion and checks it against the
// evaluation schema: the document must be an object holding all five
// required keys, every field must carry its declared type, and every list
// must be present (an empty list is fine, a missing or null one is not).
// Non-conforming documents come back as a *ValidationError naming the
// offending paths.
func ParseEvaluation(doc string) (*StartupEvaluation, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal([]byte(doc), &members); err != nil {
		return nil, fmt.Errorf("completion is not a JSON object: %w", err)
	}

	var missing []string
	for _, key := range requiredKeys {
		if _, ok := members[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	if fields := checkScoreShape(members["score"]); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	var eval StartupEvaluation
	if err := json.Unmarshal([]byte(doc), &eval); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ValidationError{Fields: []string{typeErr.Field}}
		}
		return nil, err
	}

	if err := validate.Struct(&eval); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, trimNamespace(fe.Namespace()))
			}
			return nil, &ValidationError{Fields: fields}
		}
		return nil, err
	}

	return &eval, nil
}

// checkScoreShape verifies the score member is an object carrying all three
// numeric ratings. Every other member has a list field for the required
// check to catch; a null or hollow score would otherwise decode to zero
// ratings and pass as genuine.
func checkScoreShape(raw json.RawMessage) []string {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil || members == nil {
		return []string{"score"}
	}

	var missing []string
	for _, key := range scoreKeys {
		v, ok := members[key]
		if !ok || strings.TrimSpace(string(v)) == "null" {
			missing = append(missing, "score."+key)
		}
	}
	return missing
}

// trimNamespace drops the root struct name from a validator namespace,
// leaving the JSON path (swotAnalysis.strengths).
func trimNamespace(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
