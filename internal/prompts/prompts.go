package prompts

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
)

// Prompt is a fully rendered instruction pair ready to send to the text
// generation client. User already carries the literal output schema appended
// by Build.
type Prompt struct {
	Name       string
	Version    int
	System     string
	User       string
	SchemaName string
	Schema     map[string]any
}

// Fingerprint identifies the exact instruction text that produced a brief, so
// regenerated documents can be traced back to a prompt revision.
func (p Prompt) Fingerprint() string {
	h := sha256.Sum256([]byte(
		strings.TrimSpace(p.Name) + "|" +
			strconv.Itoa(p.Version) + "|" +
			strings.TrimSpace(p.System) + "|" +
			strings.TrimSpace(p.User),
	))
	return hex.EncodeToString(h[:])
}

// SchemaJSON renders a schema map as stable, indented JSON. json.Marshal
// orders map keys, so the output is deterministic for a given schema.
func SchemaJSON(schema map[string]any) string {
	b, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
