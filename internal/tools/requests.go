package tools

// AskRequest is the input of ask_proofessor.
type AskRequest struct {
	Question string
	Context  string // optional
}

// ExplainRequest is the input of explain_code.
type ExplainRequest struct {
	Code     string
	Language string // optional
	Focus    string // optional
}

// ArchitectureRequest is the input of analyze_architecture.
type ArchitectureRequest struct {
	Description string
	Concerns    string // optional
}

// DebugRequest is the input of debug_help.
type DebugRequest struct {
	ErrorMessage       string
	CodeContext        string // optional
	AttemptedSolutions string // optional
}

// BestPracticesRequest is the input of best_practices.
type BestPracticesRequest struct {
	Topic   string
	Context string // optional
}

// stringArg returns args[key] when it holds a string. Missing, null, or
// non-string values yield "".
func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

// DecodeAsk extracts an AskRequest from call arguments.
func DecodeAsk(args map[string]any) AskRequest {
	return AskRequest{
		Question: stringArg(args, "question"),
		Context:  stringArg(args, "context"),
	}
}

// DecodeExplain extracts an ExplainRequest from call arguments.
func DecodeExplain(args map[string]any) ExplainRequest {
	return ExplainRequest{
		Code:     stringArg(args, "code"),
		Language: stringArg(args, "language"),
		Focus:    stringArg(args, "focus"),
	}
}

// DecodeArchitecture extracts an ArchitectureRequest from call arguments.
func DecodeArchitecture(args map[string]any) ArchitectureRequest {
	return ArchitectureRequest{
		Description: stringArg(args, "description"),
		Concerns:    stringArg(args, "concerns"),
	}
}

// DecodeDebug extracts a DebugRequest from call arguments.
func DecodeDebug(args map[string]any) DebugRequest {
	return DebugRequest{
		ErrorMessage:       stringArg(args, "error_message"),
		CodeContext:        stringArg(args, "code_context"),
		AttemptedSolutions: stringArg(args, "attempted_solutions"),
	}
}

// DecodeBestPractices extracts a BestPracticesRequest from call arguments.
func DecodeBestPractices(args map[string]any) BestPracticesRequest {
	return BestPracticesRequest{
		Topic:   stringArg(args, "topic"),
		Context: stringArg(args, "context"),
	}
}
