package prompts

import (
	"strings"

	"github.com/briefforge/briefforge-backend/internal/types"
)

// InferredPlaceholder is rendered in place of an optional field the user left
// blank; the generator is told to fill the gap with plausible content.
const InferredPlaceholder = "(to be inferred)"

// Input is the superset of fields any prompt might need. Missing fields render
// empty strings (templates use missingkey=zero).
type Input struct {
	ProjectName        string
	CoreIdea           string
	BusinessChallenge  string
	TargetAudience     string
	BudgetRange        string
	BrandName          string
	ProductDescription string
	KeyDifferentiator  string
	PrimaryGoal        string
	TargetPlatforms    string
	Timeline           string
	MustHaveElements   string
}

// FromIntake maps an intake record onto prompt input, substituting the
// inferred-placeholder for absent optional fields.
func FromIntake(r types.IntakeRecord) Input {
	must := strings.TrimSpace(r.MustHaveElements)
	if must == "" {
		must = InferredPlaceholder
	}
	return Input{
		ProjectName:        strings.TrimSpace(r.ProjectName),
		CoreIdea:           strings.TrimSpace(r.CoreIdea),
		BusinessChallenge:  strings.TrimSpace(r.BusinessChallenge),
		TargetAudience:     strings.TrimSpace(r.TargetAudience),
		BudgetRange:        strings.TrimSpace(r.BudgetRange),
		BrandName:          strings.TrimSpace(r.BrandName),
		ProductDescription: strings.TrimSpace(r.ProductDescription),
		KeyDifferentiator:  strings.TrimSpace(r.KeyDifferentiator),
		PrimaryGoal:        strings.TrimSpace(r.PrimaryGoal),
		TargetPlatforms:    strings.TrimSpace(r.TargetPlatforms),
		Timeline:           strings.TrimSpace(r.Timeline),
		MustHaveElements:   must,
	}
}
