package themes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/linkbay/cms/themes"
)

// manifestSchema constrains theme.json. Page files under pages/ are validated
// separately through their frontmatter.
const manifestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "head": {"type": "string"},
    "foot": {"type": "string"},
    "script": {"type": "string"},
    "pages": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["slug", "content"],
        "properties": {
          "slug": {"type": "string", "minLength": 1},
          "title": {"type": "string"},
          "description": {"type": "string"},
          "keywords": {"type": "string"},
          "content": {"type": "string"},
          "styles": {"type": "string"},
          "language": {"type": "string"},
          "published": {"type": "boolean"}
        }
      }
    }
  }
}`

type manifest struct {
	Name   string         `json:"name"`
	Head   string         `json:"head"`
	Foot   string         `json:"foot"`
	Script string         `json:"script"`
	Pages  []manifestPage `json:"pages"`
}

type manifestPage struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Content     string `json:"content"`
	Styles      string `json:"styles"`
	Language    string `json:"language"`
	Published   *bool  `json:"published"`
}

func compileManifestSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("manifest.json", strings.NewReader(manifestSchema)); err != nil {
		return nil, err
	}
	return compiler.Compile("manifest.json")
}

func parseManifest(schema *jsonschema.Schema, themeName string, raw []byte) (*manifest, error) {
	var instance any
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&instance); err != nil {
		return nil, &themes.BundleError{
			ThemeName: themeName,
			Reason:    fmt.Sprintf("manifest is not valid JSON: %v", err),
		}
	}
	if err := schema.Validate(instance); err != nil {
		return nil, &themes.BundleError{
			ThemeName: themeName,
			Reason:    fmt.Sprintf("manifest failed validation: %v", err),
		}
	}

	var m manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, &themes.BundleError{
			ThemeName: themeName,
			Reason:    fmt.Sprintf("manifest decode: %v", err),
		}
	}
	return &m, nil
}
