/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package statefile reads and writes calculator state documents for the CLI.
// Documents are JSON or YAML (by extension) and are validated against a JSON
// Schema before use, so a typoed field fails loudly instead of silently
// computing with defaults.
package statefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"bordercalc/internal/domain"
)

// Schema describes a valid state document.
const Schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "border calculator state",
  "type": "object",
  "additionalProperties": false,
  "required": ["paperSize", "aspectRatio"],
  "properties": {
    "paperSize": {"type": "string", "minLength": 1},
    "customPaperWidth": {"type": "number", "exclusiveMinimum": 0},
    "customPaperHeight": {"type": "number", "exclusiveMinimum": 0},
    "aspectRatio": {"type": "string", "minLength": 1},
    "customRatioWidth": {"type": "number", "exclusiveMinimum": 0},
    "customRatioHeight": {"type": "number", "exclusiveMinimum": 0},
    "minBorder": {"type": "number", "minimum": 0},
    "enableOffset": {"type": "boolean"},
    "horizontalOffset": {"type": "number"},
    "verticalOffset": {"type": "number"},
    "ignoreMinBorder": {"type": "boolean"},
    "isLandscape": {"type": "boolean"},
    "isRatioFlipped": {"type": "boolean"},
    "showBlades": {"type": "boolean"}
  }
}`

// Load reads a state document from path. Files ending in .yaml or .yml are
// parsed as YAML, everything else as JSON.
func Load(path string) (domain.State, error) {
	var st domain.State
	data, err := os.ReadFile(path)
	if err != nil {
		return st, fmt.Errorf("read state file: %w", err)
	}

	if isYAML(path) {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return st, fmt.Errorf("parse yaml: %w", err)
		}
		if data, err = json.Marshal(doc); err != nil {
			return st, fmt.Errorf("convert yaml: %w", err)
		}
	}

	if err := Validate(data); err != nil {
		return st, err
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("decode state: %w", err)
	}
	return st, nil
}

// Validate checks a JSON state document against the schema.
func Validate(doc []byte) error {
	res, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(Schema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validate state: %w", err)
	}
	if !res.Valid() {
		var parts []string
		for _, e := range res.Errors() {
			parts = append(parts, e.String())
		}
		return fmt.Errorf("invalid state document: %s", strings.Join(parts, "; "))
	}
	return nil
}

// Save writes a state document to path, format chosen by extension.
func Save(path string, st domain.State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if isYAML(path) {
		// Round-trip through JSON so YAML keys match the json tags and the
		// document validates against the schema on load.
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("encode state: %w", err)
		}
		if data, err = yaml.Marshal(doc); err != nil {
			return fmt.Errorf("encode state: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
