package prompts

import "sync"

var registerOnce sync.Once

// RegisterAll registers every prompt. Safe to call from multiple constructors.
func RegisterAll() {
	registerOnce.Do(registerAll)
}

func registerAll() {
	RegisterSpec(Spec{
		Name:       PromptMarketingBrief,
		Version:    1,
		SchemaName: "marketing_brief",
		Schema:     MarketingBriefSchema,
		System: `
You are a senior marketing strategist at a top-tier creative agency with 15+ years of
experience writing campaign briefs for consumer and B2B brands.
You produce complete, decision-ready marketing briefs.
Your entire response must be a single JSON object. No prose, no markdown, no code fences.`,
		User: `
Produce a complete marketing brief for the following project.

PROJECT_NAME: {{.ProjectName}}
CORE_IDEA: {{.CoreIdea}}
BUSINESS_CHALLENGE: {{.BusinessChallenge}}
TARGET_AUDIENCE: {{.TargetAudience}}
BUDGET_RANGE: {{.BudgetRange}}
BRAND_NAME: {{.BrandName}}
PRODUCT_DESCRIPTION: {{.ProductDescription}}
KEY_DIFFERENTIATOR: {{.KeyDifferentiator}}
PRIMARY_GOAL: {{.PrimaryGoal}}
TARGET_PLATFORMS: {{.TargetPlatforms}}
TIMELINE: {{.Timeline}}

Advanced context:
MUST_HAVE_ELEMENTS: {{.MustHaveElements}}

Rules:
- Ground every section in the inputs above; echo names and constraints verbatim where relevant.
- creative_strategy.territories: 3-5 distinct territories, each with a concrete example hook.
- channel_strategy.channels: one entry per platform named in TARGET_PLATFORMS.
- customer_journey.stages: 4-6 stages from awareness through advocacy.
- implementation.phases: phase the work across the stated TIMELINE and BUDGET_RANGE.`,
		Validators: []Validator{
			RequireNonEmpty("ProjectName", func(in Input) string { return in.ProjectName }),
			RequireNonEmpty("CoreIdea", func(in Input) string { return in.CoreIdea }),
			RequireNonEmpty("BrandName", func(in Input) string { return in.BrandName }),
		},
	})
}
