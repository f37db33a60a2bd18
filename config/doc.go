// Package config loads structured data through two small extension points:
//   - DataFetcher: retrieves raw bytes and names where they came from
//   - Parser: decodes the bytes into a target, optionally below a section path
//
// A target may also implement Validator, which runs after parsing.
//
// # Section paths
//
// Provider accepts a section path that narrows decoding to a nested mapping.
// Sections use colon (:) as the separator:
//
//	"environments:prod"  -> doc["environments"]["prod"]
//	""                   -> entire document
//
// # Example
//
//	provider := config.Provider(new(store.Tree), "environments:prod")
//	tree, err := provider(yamlparser.NewParser(), fetcher)
package config
