package form

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Answers holds the founder's replies to the seven guided questions.
// JSON tags double as the prompt placeholder names.
type Answers struct {
	ProductIntent string `json:"product_intent"`
	CoreProblem   string `json:"core_problem"`
	SolutionIdea  string `json:"solution_idea"`
	IdealUser     string `json:"ideal_user"`
	Platform      string `json:"platform"`
	Inspirations  string `json:"inspirations"`
	DataStorage   string `json:"data_storage"`
}

// FieldSpec describes one question: either a free-text field with rune-length
// bounds, or an enumerated choice.
type FieldSpec struct {
	Name     string
	Question string
	Min      int
	Max      int
	Choices  []string
}

// Fields lists the seven questions in presentation order. The index into this
// slice is the form's active-question index.
var Fields = []FieldSpec{
	{Name: "product_intent", Question: "What are you trying to build?", Min: 35, Max: 500},
	{Name: "core_problem", Question: "What is the core problem you're solving?", Min: 100, Max: 500},
	{Name: "solution_idea", Question: "Do you have an idea of how the solution should work?", Min: 100, Max: 2000},
	{Name: "ideal_user", Question: "Who is your ideal user?", Min: 20, Max: 150},
	{Name: "platform", Question: "Are you thinking of launching as a web app, mobile app, or both?", Choices: []string{"Web App", "Mobile App", "Both"}},
	{Name: "inspirations", Question: "What are similar products or inspirations?", Min: 100, Max: 500},
	{Name: "data_storage", Question: "Will you collect user data or require backend storage?", Choices: []string{"Yes", "No", "Not Sure"}},
}

// FieldCount is the number of questions and the exclusive upper bound of the
// active index.
const FieldCount = 7

func specByName(name string) (FieldSpec, bool) {
	for _, f := range Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Get returns the answer for a field name.
func (a *Answers) Get(name string) string {
	switch name {
	case "product_intent":
		return a.ProductIntent
	case "core_problem":
		return a.CoreProblem
	case "solution_idea":
		return a.SolutionIdea
	case "ideal_user":
		return a.IdealUser
	case "platform":
		return a.Platform
	case "inspirations":
		return a.Inspirations
	case "data_storage":
		return a.DataStorage
	}
	return ""
}

// Set writes the answer for a field name. Writes are unconstrained; bounds are
// only enforced by validation, never by truncation.
func (a *Answers) Set(name, value string) error {
	switch name {
	case "product_intent":
		a.ProductIntent = value
	case "core_problem":
		a.CoreProblem = value
	case "solution_idea":
		a.SolutionIdea = value
	case "ideal_user":
		a.IdealUser = value
	case "platform":
		a.Platform = value
	case "inspirations":
		a.Inspirations = value
	case "data_storage":
		a.DataStorage = value
	default:
		return fmt.Errorf("form: unknown field %q", name)
	}
	return nil
}

// Values returns the answers keyed by placeholder name for prompt rendering.
func (a *Answers) Values() map[string]string {
	out := make(map[string]string, FieldCount)
	for _, f := range Fields {
		out[f.Name] = a.Get(f.Name)
	}
	return out
}

// CheckField validates one answer against its spec. For free-text fields the
// rune count must lie within [Min, Max] inclusive; for choice fields the value
// must be one of the listed choices.
func CheckField(spec FieldSpec, value string) error {
	if len(spec.Choices) > 0 {
		v := strings.TrimSpace(value)
		if v == "" {
			return fmt.Errorf("%s: a choice is required", spec.Name)
		}
		for _, c := range spec.Choices {
			if v == c {
				return nil
			}
		}
		return fmt.Errorf("%s: %q is not one of the offered choices", spec.Name, v)
	}
	n := utf8.RuneCountInString(value)
	if n < spec.Min {
		return fmt.Errorf("%s: %d characters, minimum is %d", spec.Name, n, spec.Min)
	}
	if n > spec.Max {
		return fmt.Errorf("%s: %d characters, maximum is %d", spec.Name, n, spec.Max)
	}
	return nil
}

// Violations checks every field independently and returns all failures, so the
// aggregate never masks a later field behind an earlier one.
func Violations(a *Answers) []string {
	var out []string
	for _, f := range Fields {
		if err := CheckField(f, a.Get(f.Name)); err != nil {
			out = append(out, err.Error())
		}
	}
	return out
}

// Submittable reports whether all seven fields pass their own checks.
func Submittable(a *Answers) bool {
	return len(Violations(a)) == 0
}
