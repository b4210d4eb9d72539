package form

import (
	"strings"
	"testing"
)

func textOf(n int) string {
	return strings.Repeat("a", n)
}

// validAnswers is long enough for every free-text bound and uses offered
// choices for the two enumerated fields.
func validAnswers() Answers {
	return Answers{
		ProductIntent: "A mobile app for freelancers to track billable time across projects",
		CoreProblem:   textOf(120),
		SolutionIdea:  textOf(150),
		IdealUser:     textOf(40),
		Platform:      "Mobile App",
		Inspirations:  textOf(110),
		DataStorage:   "Yes",
	}
}

func TestCheckField_BoundaryLengths(t *testing.T) {
	for _, spec := range Fields {
		if len(spec.Choices) > 0 {
			continue
		}
		cases := []struct {
			n  int
			ok bool
		}{
			{spec.Min - 1, false},
			{spec.Min, true},
			{spec.Max, true},
			{spec.Max + 1, false},
		}
		for _, c := range cases {
			err := CheckField(spec, textOf(c.n))
			if c.ok && err != nil {
				t.Fatalf("%s: length %d should pass: %v", spec.Name, c.n, err)
			}
			if !c.ok && err == nil {
				t.Fatalf("%s: length %d should fail", spec.Name, c.n)
			}
		}
	}
}

func TestCheckField_RunesNotBytes(t *testing.T) {
	spec, _ := specByName("ideal_user")
	// 20 multibyte runes meet the minimum even though the byte count is higher.
	if err := CheckField(spec, strings.Repeat("ä", spec.Min)); err != nil {
		t.Fatalf("rune-counted minimum rejected: %v", err)
	}
}

func TestCheckField_Choices(t *testing.T) {
	spec, _ := specByName("platform")
	if err := CheckField(spec, "Mobile App"); err != nil {
		t.Fatalf("valid choice rejected: %v", err)
	}
	if err := CheckField(spec, ""); err == nil {
		t.Fatal("empty choice accepted")
	}
	if err := CheckField(spec, "Desktop"); err == nil {
		t.Fatal("unknown choice accepted")
	}
}

func TestSubmittable_AllFieldsIndependent(t *testing.T) {
	base := validAnswers()
	if !Submittable(&base) {
		t.Fatalf("baseline answers should submit: %v", Violations(&base))
	}
	for _, spec := range Fields {
		a := validAnswers()
		if err := a.Set(spec.Name, ""); err != nil {
			t.Fatalf("set: %v", err)
		}
		if Submittable(&a) {
			t.Fatalf("invalidating %s did not flip the aggregate", spec.Name)
		}
		// Every other field still reports independently.
		if got := len(Violations(&a)); got != 1 {
			t.Fatalf("invalidating %s produced %d violations, want 1", spec.Name, got)
		}
	}
}

func TestAnswers_Values(t *testing.T) {
	a := validAnswers()
	vals := a.Values()
	if len(vals) != FieldCount {
		t.Fatalf("got %d values", len(vals))
	}
	if vals["platform"] != "Mobile App" {
		t.Fatalf("got %q", vals["platform"])
	}
}

func TestAnswers_SetUnknownField(t *testing.T) {
	var a Answers
	if err := a.Set("budget", "x"); err == nil {
		t.Fatal("unknown field accepted")
	}
}
