package schema

import "strings"

// Step is one page of the wizard: an ordered slice of the template's fields
type Step struct {
	ID     int
	Fields []FieldSpec
}

// StepPlan partitions a template's fields into at most three sequential
// wizard steps
type StepPlan struct {
	Steps []Step
}

// Keyword groups, checked in fixed priority order. A field matching both an
// identity keyword and a date/contract keyword goes to the identity step.
// Note that the match is a plain substring check, so a field like
// "taxNumber" matches "number" and is grouped with the contract fields.
var (
	identityKeywords = []string{"name", "id", "email", "address", "position", "phone"}
	contractKeywords = []string{"date", "salary", "type", "duration", "number", "reason"}
)

// BuildStepPlan groups fields into steps by keyword heuristics on field
// names: identity/contact fields first, date/numeric/contract fields second,
// everything else third. The result depends only on the input order of
// fields, every field lands in exactly one step, and empty steps are
// dropped while the remaining ones stay in order.
func BuildStepPlan(fields []FieldSpec) StepPlan {
	groups := [3][]FieldSpec{}

	for _, f := range fields {
		groups[groupIndex(f.Name)] = append(groups[groupIndex(f.Name)], f)
	}

	plan := StepPlan{}
	for i, g := range groups {
		if len(g) == 0 {
			continue
		}
		plan.Steps = append(plan.Steps, Step{ID: i + 1, Fields: g})
	}

	return plan
}

func groupIndex(fieldName string) int {
	lower := strings.ToLower(fieldName)

	for _, kw := range identityKeywords {
		if strings.Contains(lower, kw) {
			return 0
		}
	}
	for _, kw := range contractKeywords {
		if strings.Contains(lower, kw) {
			return 1
		}
	}
	return 2
}

// StepByID returns the step with the given heuristic ID, or nil if that
// step came out empty for this template
func (p StepPlan) StepByID(id int) *Step {
	for i := range p.Steps {
		if p.Steps[i].ID == id {
			return &p.Steps[i]
		}
	}
	return nil
}
