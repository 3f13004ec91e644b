package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Models rarely return the bare JSON object the prompt demands. The usual
// damage: markdown code fences, a chatty preamble ("Sure! Here is the
// JSON:"), Python literals, trailing commas, or a fully escaped document.
// Repair normalizes all of that best-effort before the validator sees it.

// repairs run in order over the whole text. Each one is pure, textual and
// idempotent — and each can rewrite legitimate string content, so they only
// run once the verbatim parses have failed.
var repairs = []func(string) string{
	normalizePythonLiterals,
	stripTrailingCommas,
}

// Repair turns a raw completion into a string a strict JSON parser accepts.
// A completion that is already a valid object passes through untouched, with
// or without a code fence around it: a fence is pure wrapping, so a fenced
// document always repairs to the same content as its unfenced twin.
// The second return is false when no amount of repair produced valid JSON;
// that is a recoverable no-result, not an error.
func Repair(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	// Fast path, same as returning the model's own text verbatim.
	if wellFormed(s) {
		return s, true
	}

	s = stripCodeFences(s)
	if wellFormed(s) {
		return s, true
	}

	for _, fix := range repairs {
		s = fix(s)
	}

	s = sliceObject(s)
	if s == "" {
		return "", false
	}
	if json.Valid([]byte(s)) {
		return s, true
	}

	// Last resort. Collapsing escape sequences can corrupt legitimate string
	// content, so it only runs once everything gentler has failed.
	s = collapseEscapes(s)
	if json.Valid([]byte(s)) {
		return s, true
	}
	return "", false
}

// wellFormed reports whether the text is already a strict JSON object.
func wellFormed(s string) bool {
	return strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") && json.Valid([]byte(s))
}

// stripCodeFences removes a leading ```json (or bare ```) marker and the
// matching trailing fence.
func stripCodeFences(s string) string {
	out := strings.TrimSpace(s)
	if strings.HasPrefix(out, "```") {
		out = strings.TrimPrefix(out, "```json")
		out = strings.TrimPrefix(out, "```")
		out = strings.TrimSpace(out)
	}
	if strings.HasSuffix(out, "```") {
		out = strings.TrimSuffix(out, "```")
		out = strings.TrimSpace(out)
	}
	return out
}

var pythonLiteralRe = regexp.MustCompile(`\b(True|False|None)\b`)

// normalizePythonLiterals rewrites True/False/None into their JSON
// spellings.
func normalizePythonLiterals(s string) string {
	return pythonLiteralRe.ReplaceAllStringFunc(s, func(m string) string {
		switch m {
		case "True":
			return "true"
		case "False":
			return "false"
		default:
			return "null"
		}
	})
}

var trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)

// stripTrailingCommas deletes commas sitting directly before a closing brace
// or bracket.
func stripTrailingCommas(s string) string {
	return trailingCommaRe.ReplaceAllString(s, "$1")
}

// sliceObject cuts the span from the first "{" to the last "}", dropping any
// prose around the object. Empty string when no such span exists.
func sliceObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// collapseEscapes removes literal \n sequences and unescapes \" so a
// document the model escaped wholesale can still parse.
func collapseEscapes(s string) string {
	out := strings.ReplaceAll(s, `\n`, "")
	out = strings.ReplaceAll(out, `\"`, `"`)
	return out
}
