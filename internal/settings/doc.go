// Package settings defines the configuration record produced for one scaffold
// run (Values) and the ordered question set used to fill it interactively
// (PromptSpec). A PromptSpec is either the embedded default or an external
// YAML file validated against an embedded JSON Schema.
package settings
