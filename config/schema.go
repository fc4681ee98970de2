package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	jsv "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaResource = "tzclock.config.json"

// GenerateSchema generates the JSON Schema for config.toml from the Go types.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Unknown keys are typos; reject them. Extensions are listed explicitly.
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		Anonymous:                 true,
		FieldNameTag:              "toml",
	}

	type fileConfig struct {
		Terminal TerminalConfig         `toml:"terminal,omitempty" jsonschema:"description=Event loop and local clock"`
		Frontend FrontendConfig         `toml:"frontend,omitempty" jsonschema:"description=Table appearance"`
		Storage  StorageConfig          `toml:"storage,omitempty" jsonschema:"description=Persistence"`
		Keys     KeybindingsConfig      `toml:"keys,omitempty" jsonschema:"description=Keybinding overrides by action name"`
		Logging  map[string]interface{} `toml:"logging,omitempty" jsonschema:"description=Logging configuration"`
	}

	schema := r.Reflect(&fileConfig{})
	schema.Title = "tzclock configuration"
	schema.Description = "Schema for config.toml."

	return json.MarshalIndent(schema, "", "  ")
}

// SchemaValidator validates raw configuration data against the generated schema.
type SchemaValidator struct {
	schema *jsv.Schema
}

// NewSchemaValidator generates and compiles the configuration schema.
func NewSchemaValidator() (*SchemaValidator, error) {
	data, err := GenerateSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema: %w", err)
	}

	compiler := jsv.NewCompiler()
	if err := compiler.AddResource(schemaResource, strings.NewReader(string(data))); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile(schemaResource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &SchemaValidator{schema: schema}, nil
}

// Validate validates configuration data against the schema.
// The data is round-tripped through JSON so TOML-native types (int64,
// time.Time) arrive as plain JSON values.
func (v *SchemaValidator) Validate(configData interface{}) error {
	jsonData, err := json.Marshal(configData)
	if err != nil {
		return fmt.Errorf("failed to marshal config to JSON for validation: %w", err)
	}

	var dataToValidate interface{}
	if err := json.Unmarshal(jsonData, &dataToValidate); err != nil {
		return fmt.Errorf("failed to unmarshal JSON for validation: %w", err)
	}

	if err := v.schema.Validate(dataToValidate); err != nil {
		if validationErr, ok := err.(*jsv.ValidationError); ok {
			var errorMessages []string
			collectErrors(validationErr, &errorMessages)
			return fmt.Errorf("schema validation failed:\n%s", strings.Join(errorMessages, "\n"))
		}
		return fmt.Errorf("schema validation failed: %w", err)
	}

	return nil
}

// collectErrors recursively collects all validation errors into a slice
func collectErrors(err *jsv.ValidationError, messages *[]string) {
	if err.InstanceLocation != "" || len(err.Causes) == 0 {
		*messages = append(*messages, fmt.Sprintf("- %s: %s", err.InstanceLocation, err.Message))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, messages)
	}
}
