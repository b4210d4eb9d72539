package jsonutil

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

// ExtractError reports that no cascade step could recover a JSON value.
// It carries the original model text for diagnostics.
type ExtractError struct {
	Raw string
}

func (e *ExtractError) Error() string {
	preview := e.Raw
	const max = 240
	if len(preview) > max {
		preview = preview[:max] + "..."
	}
	return "jsonutil: no JSON object could be extracted from model output: " + preview
}

var (
	fenceRe       = regexp.MustCompile("(?s)```(?:json)?[ \t]*\\n(.*?)```")
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
	bareKeyRe     = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	smartQuotes   = strings.NewReplacer(
		"“", `"`, "”", `"`, "‘", `'`, "’", `'`,
	)
)

// ExtractObject recovers one JSON object from free-form model text.
// Steps are attempted in order, each only if the previous failed, and each
// either fully parses or is discarded:
//  1. the whole text as JSON
//  2. the interior of a fenced code block
//  3. the longest {...} substring
//  4. the same substring after fixed textual repairs
//
// The same input always yields the same output or the same *ExtractError.
func ExtractObject(text string) (json.RawMessage, error) {
	if raw, ok := tryParse(text); ok {
		return raw, nil
	}
	if m := fenceRe.FindStringSubmatch(text); len(m) > 1 {
		if raw, ok := tryParse(m[1]); ok {
			return raw, nil
		}
	}
	if body := longestBraceSpan(text); body != "" {
		if raw, ok := tryParse(body); ok {
			return raw, nil
		}
		if raw, ok := tryParse(repair(body)); ok {
			return raw, nil
		}
	}
	return nil, &ExtractError{Raw: text}
}

// Unmarshal runs ExtractObject and decodes the recovered value into v.
func Unmarshal(text string, v any) error {
	raw, err := ExtractObject(text)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func tryParse(s string) (json.RawMessage, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	var scratch any
	if err := json.Unmarshal([]byte(s), &scratch); err != nil {
		return nil, false
	}
	return json.RawMessage(s), true
}

// longestBraceSpan returns the substring from the first '{' to the last '}'.
func longestBraceSpan(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// repair applies the fixed textual repair sequence: straighten smart quotes,
// collapse raw newlines, strip trailing commas, quote bare object keys.
func repair(s string) string {
	s = smartQuotes.Replace(s)
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = trailingComma.ReplaceAllString(s, "$1")
	s = bareKeyRe.ReplaceAllString(s, `$1"$2":`)
	return s
}

// MarshalNoEscape encodes v into JSON without HTML-escaping <, > and &.
func MarshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalIndentNoEscape is MarshalNoEscape with indentation, for file exports.
func MarshalIndentNoEscape(v any, prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
