package createlead

import "lead-intake/internal/common/validation"

var inputSchema = validation.MustCompile(map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"phone"},
	"properties": map[string]interface{}{
		"phone": map[string]interface{}{
			"type":        "string",
			"minLength":   1,
			"description": "Caller phone number, forwarded to the CRM unchanged",
		},
	},
})

// GetInputSchema returns the schema every decoded request body must satisfy.
func GetInputSchema() *validation.Schema {
	return inputSchema
}
