package settings

// Recognized field names. These double as CLI flag names.
const (
	FieldName                = "name"
	FieldElasticsearchHost   = "elasticsearchHost"
	FieldElasticsearchIndex  = "elasticsearchIndex"
	FieldElasticsearchAPIKey = "elasticsearchApiKey"
	FieldOpenAIAPIKey        = "openaiApiKey"
	FieldColor               = "color"
)

// Field describes one recognized configuration field.
type Field struct {
	Name  string
	Usage string
}

// Fields is the recognized field set in canonical order.
var Fields = []Field{
	{Name: FieldName, Usage: "Name of the project"},
	{Name: FieldElasticsearchHost, Usage: "Elasticsearch host URL"},
	{Name: FieldElasticsearchIndex, Usage: "Elasticsearch index"},
	{Name: FieldElasticsearchAPIKey, Usage: "Elasticsearch API key"},
	{Name: FieldOpenAIAPIKey, Usage: "OpenAI API key"},
	{Name: FieldColor, Usage: "Primary color for the frontend"},
}

// IsField reports whether name is a recognized field.
func IsField(name string) bool {
	for _, f := range Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Values maps field names to their resolved strings. A missing key means the
// field was never supplied, which is distinct from an empty answer.
type Values map[string]string

// Get returns the value for name and whether it is present.
func (v Values) Get(name string) (string, bool) {
	s, ok := v[name]
	return s, ok
}

// Has reports whether name is present.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// Clone returns a shallow copy of v. A nil receiver yields an empty map.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, s := range v {
		out[k] = s
	}
	return out
}
