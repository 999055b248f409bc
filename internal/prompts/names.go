package prompts

type PromptName string

const (
	// Brief realization
	PromptMarketingBrief PromptName = "marketing_brief"
)
