package server

// EvaluateParams are the parameters of the "evaluate" method.
type EvaluateParams struct {
	Text    string            `json:"text"`
	Symbols map[string]uint32 `json:"symbols,omitempty"` // Overrides the service symbol table.
}

// EvaluateResult is the result of the "evaluate" method.
type EvaluateResult struct {
	Unsigned  uint32   `json:"unsigned"`
	Signed    int32    `json:"signed"`
	Tree      string   `json:"tree"`
	Variables []string `json:"variables"`
}

// RegisterParams are the parameters of the "register" method.
type RegisterParams struct {
	Text  string `json:"text"`
	Float bool   `json:"float,omitempty"`
}

// RegisterResult is the result of the "register" method.
type RegisterResult struct {
	Index uint32 `json:"index"`
	Name  string `json:"name"`
	Alias string `json:"alias,omitempty"`
}

// Literal kinds of LiteralParams.
const (
	LITERAL_NUMBER = "number"
	LITERAL_INT    = "int"
	LITERAL_CHAR   = "char"
	LITERAL_STRING = "string"
	LITERAL_FLOAT  = "float"
)

// LiteralParams are the parameters of the "literal" method.
type LiteralParams struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
}

// LiteralResult is the result of the "literal" method. String literals
// fill Bytes, all other kinds fill Value.
type LiteralResult struct {
	Bytes []int `json:"bytes,omitempty"`
	Value any   `json:"value,omitempty"`
}

// DefineParams are the parameters of the "define" method.
type DefineParams struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// DefineResult is the result of the "define" method.
type DefineResult struct {
	Value uint32 `json:"value"`
}

// TextPosition is a 0-based line and byte column.
type TextPosition struct {
	Line int `json:"line"`
	Char int `json:"character"`
}

// TextRange is a half open range of text.
type TextRange struct {
	Start TextPosition `json:"start"`
	End   TextPosition `json:"end"`
}

type DiagnosticSeverity int

const (
	SEVERITY_ERROR   = DiagnosticSeverity(1)
	SEVERITY_WARNING = DiagnosticSeverity(2)
)

// Diagnostic is the data of a failed request's error reply.
type Diagnostic struct {
	Range    TextRange          `json:"range"`
	Message  string             `json:"message"`
	Kind     string             `json:"kind"`
	Source   string             `json:"source,omitempty"`
	Severity DiagnosticSeverity `json:"severity,omitempty"`
}
