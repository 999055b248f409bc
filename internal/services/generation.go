package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/briefforge/briefforge-backend/internal/pkg/logger"
	"github.com/briefforge/briefforge-backend/internal/prompts"
	"github.com/briefforge/briefforge-backend/internal/types"
)

// ErrInvalidIntake wraps intake validation failures; they are caught before
// any remote call is attempted.
var ErrInvalidIntake = errors.New("invalid intake")

type GenerationErrorKind string

const (
	// KindServiceUnavailable: the remote call itself failed (network, timeout,
	// rate limit). Retryable from the caller's perspective.
	KindServiceUnavailable GenerationErrorKind = "service_unavailable"
	// KindMalformedOutput: the remote call succeeded but the payload was not a
	// structurally complete JSON brief. The generator is only schema-bound by
	// prompt instruction, so this is an expected failure mode.
	KindMalformedOutput GenerationErrorKind = "malformed_output"
)

type GenerationError struct {
	Kind GenerationErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("generation failed (%s): %s", e.Kind, e.Err.Error())
	}
	return fmt.Sprintf("generation failed (%s)", e.Kind)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// AsGenerationError unwraps err to a *GenerationError if one is in the chain.
func AsGenerationError(err error) (*GenerationError, bool) {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// TextGenerator is the remote text-generation collaborator. The openai client
// satisfies it; tests stub it.
type TextGenerator interface {
	GenerateText(ctx context.Context, system string, user string) (string, error)
}

type GenerationService interface {
	Generate(ctx context.Context, intake types.IntakeRecord) (*types.MarketingBrief, error)
}

type generationService struct {
	log *logger.Logger
	gen TextGenerator
}

func NewGenerationService(baseLog *logger.Logger, gen TextGenerator) GenerationService {
	prompts.RegisterAll()
	return &generationService{
		log: baseLog.With("service", "GenerationService"),
		gen: gen,
	}
}

// Generate compiles the intake into the brief prompt, invokes the remote
// generator once, and parses the payload into a MarketingBrief. It persists
// nothing: callers decide whether a generation is worth saving, and a failure
// leaves no state behind to undo.
func (gs *generationService) Generate(ctx context.Context, intake types.IntakeRecord) (*types.MarketingBrief, error) {
	if err := intake.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidIntake, err.Error())
	}

	p, err := prompts.Build(prompts.PromptMarketingBrief, prompts.FromIntake(intake))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidIntake, err.Error())
	}

	gs.log.Info("Generating brief",
		"project", intake.ProjectName,
		"prompt", p.Name,
		"prompt_fingerprint", p.Fingerprint(),
	)

	raw, err := gs.gen.GenerateText(ctx, p.System, p.User)
	if err != nil {
		gs.log.Warn("Remote generation call failed", "project", intake.ProjectName, "error", err)
		return nil, &GenerationError{Kind: KindServiceUnavailable, Err: err}
	}

	brief, err := decodeBrief(raw)
	if err != nil {
		gs.log.Warn("Generator returned malformed output", "project", intake.ProjectName, "error", err)
		return nil, &GenerationError{Kind: KindMalformedOutput, Err: err}
	}
	return brief, nil
}

// decodeBrief accepts only a single JSON object covering every required
// top-level section. A markdown code fence around the object is tolerated;
// any other surrounding prose is rejected. Nested fields are not deep-checked.
func decodeBrief(payload string) (*types.MarketingBrief, error) {
	text := stripCodeFence(strings.TrimSpace(payload))
	if !strings.HasPrefix(text, "{") {
		return nil, fmt.Errorf("output is not a JSON object")
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &top); err != nil {
		return nil, fmt.Errorf("parse output JSON: %w", err)
	}

	var missing []string
	for _, key := range types.RequiredSections() {
		raw, ok := top[key]
		if !ok || string(bytes.TrimSpace(raw)) == "null" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("output missing required sections: %s", strings.Join(missing, ", "))
	}

	var brief types.MarketingBrief
	if err := json.Unmarshal([]byte(text), &brief); err != nil {
		return nil, fmt.Errorf("decode brief: %w", err)
	}
	return &brief, nil
}

func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	if idx := strings.Index(text, "\n"); idx >= 0 {
		text = text[idx+1:]
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
