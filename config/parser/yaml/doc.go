// Package yaml implements config.Parser with github.com/goccy/go-yaml.
//
// Sections are colon-separated and converted to a YAML path before reading:
//   - "" decodes the entire document
//   - "environments" reads "$.environments"
//   - "environments:prod" reads "$.environments.prod"
package yaml
