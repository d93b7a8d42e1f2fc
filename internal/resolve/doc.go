// Package resolve merges command-line values with interactive answers into
// the settings.Values record for one scaffold run. Questions are asked only
// for fields the command line left undefined, in PromptSpec order.
package resolve
