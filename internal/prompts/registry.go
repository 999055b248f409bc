package prompts

import (
	"fmt"
	"strings"
)

type Template struct {
	Name       PromptName
	Version    int
	SchemaName string
	Schema     func() map[string]any
	System     func(Input) string
	User       func(Input) string
	Validate   Validator
}

var registry = map[PromptName]Template{}

// Register registers a compiled Template.
func Register(t Template) {
	registry[t.Name] = t
}

// Build renders the instruction pair for a prompt. It is pure: the same Input
// always yields byte-identical System and User strings. The literal output
// schema is appended to the user instructions on every call; prompt-restated
// schema is the only enforcement the remote generator sees.
func Build(name PromptName, in Input) (Prompt, error) {
	t, ok := registry[name]
	if !ok {
		return Prompt{}, fmt.Errorf("unknown prompt: %s", string(name))
	}
	if t.Schema == nil {
		return Prompt{}, fmt.Errorf("prompt %s missing schema", string(name))
	}
	if t.System == nil || t.User == nil {
		return Prompt{}, fmt.Errorf("prompt %s missing system/user renderers", string(name))
	}
	if t.Validate != nil {
		if err := t.Validate(in); err != nil {
			return Prompt{}, fmt.Errorf("%s: %w", string(name), err)
		}
	}

	schema := t.Schema()
	user := strings.TrimSpace(t.User(in)) +
		"\n\nOUTPUT_SCHEMA (your entire response must be a single JSON object matching exactly this shape):\n" +
		SchemaJSON(schema) +
		"\n\nEvery field is required. Where the inputs under-specify a field, fill it with industry-plausible inferred content; never leave a field blank or null."

	return Prompt{
		Name:       string(t.Name),
		Version:    t.Version,
		SchemaName: strings.TrimSpace(t.SchemaName),
		Schema:     schema,
		System:     strings.TrimSpace(t.System(in)),
		User:       user,
	}, nil
}

func Schema(name PromptName) (schemaName string, schema map[string]any, ok bool) {
	t, ok := registry[name]
	if !ok || t.Schema == nil {
		return "", nil, false
	}
	return t.SchemaName, t.Schema(), true
}
