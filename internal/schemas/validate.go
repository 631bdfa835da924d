package schemas

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaLoadError represents errors loading or parsing the schema itself.
type SchemaLoadError struct {
	Category string
	Cause    error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema for %s: %v", e.Category, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Validate checks a JSON record array against the category's schema and
// returns one warning per violation. An unknown category yields no warnings.
// Only schema loading itself is a hard error.
func Validate(category, jsonArray string) ([]string, error) {
	schemaSource, ok := SchemaFor(category)
	if !ok {
		return nil, nil
	}

	schemaLoader := gojsonschema.NewStringLoader(schemaSource)
	documentLoader := gojsonschema.NewStringLoader(jsonArray)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, &SchemaLoadError{Category: category, Cause: err}
	}
	if result.Valid() {
		return nil, nil
	}

	warnings := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		warnings = append(warnings, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return warnings, nil
}
