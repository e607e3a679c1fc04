package provider

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// payloadSchema describes the template payload wire format.
const payloadSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "description", "framework", "files"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "description": {"type": "string"},
    "framework": {"type": "string", "enum": ["nextjs", "express", "react", "fastify", "hono", "nestjs"]},
    "files": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["content", "target", "type"],
        "properties": {
          "content": {"type": "string"},
          "target": {"type": "string", "minLength": 1},
          "type": {"type": "string", "enum": ["template", "config", "types"]}
        }
      }
    },
    "dependencies": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    }
  }
}`

var payloadSchemaLoader = gojsonschema.NewStringLoader(payloadSchema)

// ValidatePayload checks raw JSON against the payload schema.
func ValidatePayload(data []byte) error {
	result, err := gojsonschema.Validate(payloadSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("payload validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}
