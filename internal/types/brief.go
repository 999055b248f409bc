package types

// MarketingBrief is the full generated brief. The shape is a contract shared
// with the prompt schema in internal/prompts: every top-level section below
// must be populated by the generator, with plausible inferred content where
// the intake under-specifies it.
type MarketingBrief struct {
	DocumentMeta        DocumentMeta         `json:"document_meta"`
	ExecutiveSummary    ExecutiveSummary     `json:"executive_summary"`
	StrategicFoundation StrategicFoundation  `json:"strategic_foundation"`
	BrandPositioning    BrandPositioning     `json:"brand_positioning"`
	CreativeStrategy    CreativeStrategy     `json:"creative_strategy"`
	ChannelStrategy     ChannelStrategy      `json:"channel_strategy"`
	CustomerJourney     CustomerJourney      `json:"customer_journey"`
	Measurement         MeasurementFramework `json:"measurement_framework"`
	Implementation      ImplementationPlan   `json:"implementation"`
	Compliance          ComplianceFramework  `json:"compliance_framework"`
}

// RequiredSections lists the top-level JSON keys a generated brief must carry.
// The generation service treats a missing or null section as malformed output.
func RequiredSections() []string {
	return []string{
		"document_meta",
		"executive_summary",
		"strategic_foundation",
		"brand_positioning",
		"creative_strategy",
		"channel_strategy",
		"customer_journey",
		"measurement_framework",
		"implementation",
		"compliance_framework",
	}
}

type DocumentMeta struct {
	ProjectName string `json:"project_name"`
	BrandName   string `json:"brand_name"`
	PreparedFor string `json:"prepared_for"`
	Version     string `json:"version"`
	Summary     string `json:"summary"`
}

type ExecutiveSummary struct {
	Overview            string   `json:"overview"`
	Objective           string   `json:"objective"`
	KeyOpportunity      string   `json:"key_opportunity"`
	RecommendedApproach string   `json:"recommended_approach"`
	SuccessCriteria     []string `json:"success_criteria"`
}

type StrategicFoundation struct {
	BusinessChallenge string   `json:"business_challenge"`
	MarketContext     string   `json:"market_context"`
	CoreInsight       string   `json:"core_insight"`
	StrategicApproach string   `json:"strategic_approach"`
	Objectives        []string `json:"objectives"`
}

type BrandPositioning struct {
	PositioningStatement string   `json:"positioning_statement"`
	ValueProposition     string   `json:"value_proposition"`
	BrandPersonality     []string `json:"brand_personality"`
	ToneOfVoice          string   `json:"tone_of_voice"`
	Differentiators      []string `json:"differentiators"`
}

type CreativeStrategy struct {
	BigIdea           string              `json:"big_idea"`
	CreativeRationale string              `json:"creative_rationale"`
	Territories       []CreativeTerritory `json:"territories"`
	MustHaveElements  []string            `json:"must_have_elements"`
}

type CreativeTerritory struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	ExampleHook     string `json:"example_hook"`
	VisualDirection string `json:"visual_direction"`
	TargetEmotion   string `json:"target_emotion"`
}

type ChannelStrategy struct {
	PlatformRationale string        `json:"platform_rationale"`
	Channels          []ChannelPlan `json:"channels"`
}

type ChannelPlan struct {
	Platform        string   `json:"platform"`
	Role            string   `json:"role"`
	ContentApproach string   `json:"content_approach"`
	KPIs            []string `json:"kpis"`
	BudgetShare     string   `json:"budget_share"`
}

type CustomerJourney struct {
	Stages []JourneyStage `json:"stages"`
}

type JourneyStage struct {
	Stage           string   `json:"stage"`
	CustomerMindset string   `json:"customer_mindset"`
	Touchpoints     []string `json:"touchpoints"`
	Message         string   `json:"message"`
	DesiredAction   string   `json:"desired_action"`
}

type MeasurementFramework struct {
	NorthStarMetric    string   `json:"north_star_metric"`
	PrimaryKPIs        []string `json:"primary_kpis"`
	SecondaryKPIs      []string `json:"secondary_kpis"`
	MeasurementCadence string   `json:"measurement_cadence"`
	ReportingApproach  string   `json:"reporting_approach"`
}

type ImplementationPlan struct {
	Timeline         string                `json:"timeline"`
	Phases           []ImplementationPhase `json:"phases"`
	BudgetAllocation string                `json:"budget_allocation"`
	TeamRequirements []string              `json:"team_requirements"`
	Risks            []string              `json:"risks"`
}

type ImplementationPhase struct {
	Name         string   `json:"name"`
	Duration     string   `json:"duration"`
	Activities   []string `json:"activities"`
	Deliverables []string `json:"deliverables"`
}

type ComplianceFramework struct {
	RegulatoryConsiderations []string `json:"regulatory_considerations"`
	PlatformPolicies         []string `json:"platform_policies"`
	BrandSafety              string   `json:"brand_safety"`
	DisclosureRequirements   []string `json:"disclosure_requirements"`
	ApprovalProcess          string   `json:"approval_process"`
}
