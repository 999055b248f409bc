package prompts

// MarketingBriefSchema states the full output contract for a generated brief.
// It must stay in lockstep with types.MarketingBrief: the generation service
// unmarshals the model output straight into that struct.
func MarketingBriefSchema() map[string]any {
	return ObjectSchema(map[string]any{
		"document_meta": ObjectSchema(map[string]any{
			"project_name": StringSchema(),
			"brand_name":   StringSchema(),
			"prepared_for": StringSchema(),
			"version":      StringSchema(),
			"summary":      StringSchema(),
		}, []string{"project_name", "brand_name", "prepared_for", "version", "summary"}),

		"executive_summary": ObjectSchema(map[string]any{
			"overview":             StringSchema(),
			"objective":            StringSchema(),
			"key_opportunity":      StringSchema(),
			"recommended_approach": StringSchema(),
			"success_criteria":     StringArraySchema(),
		}, []string{"overview", "objective", "key_opportunity", "recommended_approach", "success_criteria"}),

		"strategic_foundation": ObjectSchema(map[string]any{
			"business_challenge": StringSchema(),
			"market_context":     StringSchema(),
			"core_insight":       StringSchema(),
			"strategic_approach": StringSchema(),
			"objectives":         StringArraySchema(),
		}, []string{"business_challenge", "market_context", "core_insight", "strategic_approach", "objectives"}),

		"brand_positioning": ObjectSchema(map[string]any{
			"positioning_statement": StringSchema(),
			"value_proposition":     StringSchema(),
			"brand_personality":     StringArraySchema(),
			"tone_of_voice":         StringSchema(),
			"differentiators":       StringArraySchema(),
		}, []string{"positioning_statement", "value_proposition", "brand_personality", "tone_of_voice", "differentiators"}),

		"creative_strategy": ObjectSchema(map[string]any{
			"big_idea":           StringSchema(),
			"creative_rationale": StringSchema(),
			"territories": ArraySchema(ObjectSchema(map[string]any{
				"name":             StringSchema(),
				"description":      StringSchema(),
				"example_hook":     StringSchema(),
				"visual_direction": StringSchema(),
				"target_emotion":   StringSchema(),
			}, []string{"name", "description", "example_hook", "visual_direction", "target_emotion"})),
			"must_have_elements": StringArraySchema(),
		}, []string{"big_idea", "creative_rationale", "territories", "must_have_elements"}),

		"channel_strategy": ObjectSchema(map[string]any{
			"platform_rationale": StringSchema(),
			"channels": ArraySchema(ObjectSchema(map[string]any{
				"platform":         StringSchema(),
				"role":             StringSchema(),
				"content_approach": StringSchema(),
				"kpis":             StringArraySchema(),
				"budget_share":     StringSchema(),
			}, []string{"platform", "role", "content_approach", "kpis", "budget_share"})),
		}, []string{"platform_rationale", "channels"}),

		"customer_journey": ObjectSchema(map[string]any{
			"stages": ArraySchema(ObjectSchema(map[string]any{
				"stage":            StringSchema(),
				"customer_mindset": StringSchema(),
				"touchpoints":      StringArraySchema(),
				"message":          StringSchema(),
				"desired_action":   StringSchema(),
			}, []string{"stage", "customer_mindset", "touchpoints", "message", "desired_action"})),
		}, []string{"stages"}),

		"measurement_framework": ObjectSchema(map[string]any{
			"north_star_metric":   StringSchema(),
			"primary_kpis":        StringArraySchema(),
			"secondary_kpis":      StringArraySchema(),
			"measurement_cadence": StringSchema(),
			"reporting_approach":  StringSchema(),
		}, []string{"north_star_metric", "primary_kpis", "secondary_kpis", "measurement_cadence", "reporting_approach"}),

		"implementation": ObjectSchema(map[string]any{
			"timeline": StringSchema(),
			"phases": ArraySchema(ObjectSchema(map[string]any{
				"name":         StringSchema(),
				"duration":     StringSchema(),
				"activities":   StringArraySchema(),
				"deliverables": StringArraySchema(),
			}, []string{"name", "duration", "activities", "deliverables"})),
			"budget_allocation": StringSchema(),
			"team_requirements": StringArraySchema(),
			"risks":             StringArraySchema(),
		}, []string{"timeline", "phases", "budget_allocation", "team_requirements", "risks"}),

		"compliance_framework": ObjectSchema(map[string]any{
			"regulatory_considerations": StringArraySchema(),
			"platform_policies":         StringArraySchema(),
			"brand_safety":              StringSchema(),
			"disclosure_requirements":   StringArraySchema(),
			"approval_process":          StringSchema(),
		}, []string{"regulatory_considerations", "platform_policies", "brand_safety", "disclosure_requirements", "approval_process"}),
	}, []string{
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
	})
}
