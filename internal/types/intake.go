package types

import (
	"fmt"
	"strings"
)

// IntakeRecord is the flat questionnaire that seeds brief generation. Every
// field except MustHaveElements must be a non-empty string before the record
// is handed to the generation service.
type IntakeRecord struct {
	ProjectName        string `json:"project_name"`
	CoreIdea           string `json:"core_idea"`
	BusinessChallenge  string `json:"business_challenge"`
	TargetAudience     string `json:"target_audience"`
	BudgetRange        string `json:"budget_range"`
	BrandName          string `json:"brand_name"`
	ProductDescription string `json:"product_description"`
	KeyDifferentiator  string `json:"key_differentiator"`
	PrimaryGoal        string `json:"primary_goal"`
	TargetPlatforms    string `json:"target_platforms"`
	Timeline           string `json:"timeline"`

	// Optional advanced context; rendered as "(to be inferred)" when empty.
	MustHaveElements string `json:"must_have_elements,omitempty"`
}

// Validate reports every missing required field in one error so the UI can
// surface the full list at once.
func (r IntakeRecord) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"project_name", r.ProjectName},
		{"core_idea", r.CoreIdea},
		{"business_challenge", r.BusinessChallenge},
		{"target_audience", r.TargetAudience},
		{"budget_range", r.BudgetRange},
		{"brand_name", r.BrandName},
		{"product_description", r.ProductDescription},
		{"key_differentiator", r.KeyDifferentiator},
		{"primary_goal", r.PrimaryGoal},
		{"target_platforms", r.TargetPlatforms},
		{"timeline", r.Timeline},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("intake incomplete, missing: %s", strings.Join(missing, ", "))
	}
	return nil
}
