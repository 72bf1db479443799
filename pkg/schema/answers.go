package schema

// AnswerMap holds the user's current responses keyed by question ID. Values
// are JSON-shaped: a scalar string, a []string or []any for multi-selects, a
// number-as-string, an ISO date string, or a small map describing an uploaded
// file. The evaluation engine only ever reads it.
type AnswerMap map[string]any

// Clone returns a shallow copy of the map. Values are treated as immutable by
// every consumer, so copying the top level is enough to decouple callers.
func (m AnswerMap) Clone() AnswerMap {
	if m == nil {
		return nil
	}
	out := make(AnswerMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// FileAnswer is the descriptor stored for file-upload questions.
type FileAnswer struct {
	Name     string `json:"name" yaml:"name"`
	Size     int64  `json:"size" yaml:"size"`
	MimeType string `json:"mimeType" yaml:"mimeType"`
}
