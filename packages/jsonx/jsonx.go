package jsonx

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"

	"github.com/vaneclient/vane/packages/client"
)

// Pretty parses body as JSON and re-serializes it with two-space
// indentation. The output re-parses to the same value as the input.
func Pretty(body []byte) (string, error) {
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return "", &client.Error{Kind: client.KindJSON, Message: "body is not valid JSON", Cause: err}
	}
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", &client.Error{Kind: client.KindGeneric, Message: "serialize JSON", Cause: err}
	}
	return string(out), nil
}

// Valid confirms that input is valid JSON and returns it unchanged. Purely a
// validation pass-through, no transformation.
func Valid(input string) (string, error) {
	if !gjson.Valid(input) {
		return "", &client.Error{Kind: client.KindJSON, Message: "input is not valid JSON"}
	}
	return input, nil
}

// Get queries a JSON body by gjson path, e.g. "items.0.name".
func Get(body []byte, path string) gjson.Result {
	return gjson.GetBytes(body, path)
}

// ValidateSchema validates a JSON body against a JSON Schema document.
func ValidateSchema(body, schema []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(body)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &client.Error{Kind: client.KindJSON, Message: "schema validation failed", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return &client.Error{
		Kind:    client.KindJSON,
		Message: fmt.Sprintf("body does not match schema: %s", strings.Join(problems, "; ")),
	}
}
