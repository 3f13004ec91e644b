package evaluation

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

// validEvaluationJSON is a complete, conforming completion shared by the
// validator, service and handler tests.
const validEvaluationJSON = `{
  "isGibberish": false,
  "score": {"overall": 82, "marketPotential": 78, "technicalFeasibility": 85},
  "swotAnalysis": {
    "strengths": ["Clear problem"],
    "weaknesses": ["Crowded space"],
    "opportunities": ["Growing demand"],
    "threats": ["Incumbents"]
  },
  "mvpSuggestions": ["Landing page", "Waitlist", "Pilot"],
  "businessModelIdeas": ["Freemium"],
  "marketAnalysis": {
    "targetMarket": "Urban renters",
    "tam": "$2000000000",
    "sam": "$400000000",
    "som": "$40000000",
    "growthRate": "12% CAGR driven by urbanization",
    "trends": ["Sustainability"],
    "competitors": ["Too Good To Go"],
    "customerNeeds": ["Less waste"],
    "barriersToEntry": ["Habits"]
  }
}`

// dropKey returns the document with one top-level member removed.
func dropKey(t *testing.T, doc, key string) string {
	t.Helper()

	var m map[string]any
	if err := json.Unmarshal([]byte(doc), &m); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	delete(m, key)

	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return string(out)
}

func TestParseEvaluation_Complete(t *testing.T) {
	eval, err := ParseEvaluation(validEvaluationJSON)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if eval.Score.Overall != 82 {
		t.Errorf("expected overall 82, got %v", eval.Score.Overall)
	}
	if len(eval.MVPSuggestions) != 3 {
		t.Errorf("expected 3 mvp suggestions, got %d", len(eval.MVPSuggestions))
	}
	if eval.MarketAnalysis.TAM != "$2000000000" {
		t.Errorf("expected tam kept verbatim, got %q", eval.MarketAnalysis.TAM)
	}
}

func TestParseEvaluation_ExtraKeysIgnored(t *testing.T) {
	// isGibberish is in the fixture and not in the schema; it must be
	// silently dropped, not rejected.
	if _, err := ParseEvaluation(validEvaluationJSON); err != nil {
		t.Fatalf("expected extra keys tolerated, got %v", err)
	}
}

func TestParseEvaluation_MissingTopLevelKey(t *testing.T) {
	for _, key := range requiredKeys {
		doc := dropKey(t, validEvaluationJSON, key)

		_, err := ParseEvaluation(doc)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected *ValidationError, got %v", key, err)
		}
		if len(verr.Fields) != 1 || verr.Fields[0] != key {
			t.Errorf("%s: expected the missing key reported, got %v", key, verr.Fields)
		}
	}
}

func TestParseEvaluation_WrongType(t *testing.T) {
	doc := dropKey(t, validEvaluationJSON, "score")
	doc = doc[:len(doc)-1] + `,"score":{"overall":"eighty","marketPotential":78,"technicalFeasibility":85}}`

	_, err := ParseEvaluation(doc)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0] != "score.overall" {
		t.Errorf("expected path score.overall, got %v", verr.Fields)
	}
}

func TestParseEvaluation_NullScore(t *testing.T) {
	// A present-but-null score must not decode to zero ratings and pass as
	// genuine.
	var m map[string]any
	if err := json.Unmarshal([]byte(validEvaluationJSON), &m); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	m["score"] = nil
	out, _ := json.Marshal(m)

	_, err := ParseEvaluation(string(out))

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0] != "score" {
		t.Errorf("expected score reported, got %v", verr.Fields)
	}
}

func TestParseEvaluation_HollowScore(t *testing.T) {
	var m map[string]any
	if err := json.Unmarshal([]byte(validEvaluationJSON), &m); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	m["score"] = map[string]any{}
	out, _ := json.Marshal(m)

	_, err := ParseEvaluation(string(out))

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	want := []string{"score.overall", "score.marketPotential", "score.technicalFeasibility"}
	if !reflect.DeepEqual(verr.Fields, want) {
		t.Errorf("expected all three ratings reported, got %v", verr.Fields)
	}
}

func TestParseEvaluation_NullScoreMember(t *testing.T) {
	var m map[string]any
	if err := json.Unmarshal([]byte(validEvaluationJSON), &m); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	m["score"] = map[string]any{"overall": 82, "marketPotential": nil, "technicalFeasibility": 85}
	out, _ := json.Marshal(m)

	_, err := ParseEvaluation(string(out))

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0] != "score.marketPotential" {
		t.Errorf("expected the null rating reported, got %v", verr.Fields)
	}
}

func TestParseEvaluation_NullList(t *testing.T) {
	var m map[string]any
	if err := json.Unmarshal([]byte(validEvaluationJSON), &m); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	m["marketAnalysis"].(map[string]any)["trends"] = nil
	out, _ := json.Marshal(m)

	_, err := ParseEvaluation(string(out))

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0] != "marketAnalysis.trends" {
		t.Errorf("expected path marketAnalysis.trends, got %v", verr.Fields)
	}
}

func TestParseEvaluation_EmptyListAllowed(t *testing.T) {
	var m map[string]any
	if err := json.Unmarshal([]byte(validEvaluationJSON), &m); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	m["swotAnalysis"].(map[string]any)["threats"] = []string{}
	out, _ := json.Marshal(m)

	eval, err := ParseEvaluation(string(out))
	if err != nil {
		t.Fatalf("expected empty list accepted, got %v", err)
	}
	if eval.SwotAnalysis.Threats == nil || len(eval.SwotAnalysis.Threats) != 0 {
		t.Errorf("expected present empty threats, got %v", eval.SwotAnalysis.Threats)
	}
}

func TestParseEvaluation_NotAnObject(t *testing.T) {
	if _, err := ParseEvaluation(`[1, 2, 3]`); err == nil {
		t.Fatal("expected error for a non-object document")
	}
}
