package gemini

// Schema is the subset of the structured output schema accepted by the
// generateContent endpoint. Types follow the REST API spelling.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
}

const (
	TypeString  = "STRING"
	TypeInteger = "INTEGER"
	TypeNumber  = "NUMBER"
	TypeArray   = "ARRAY"
	TypeObject  = "OBJECT"
)
