package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool names.
const (
	AskProofessor       = "ask_proofessor"
	ExplainCode         = "explain_code"
	AnalyzeArchitecture = "analyze_architecture"
	DebugHelp           = "debug_help"
	BestPractices       = "best_practices"
)

// Descriptor describes one invocable tool and its argument contract.
type Descriptor struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
}

// Required returns the names of the required fields.
func (d Descriptor) Required() []string {
	if d.InputSchema == nil {
		return nil
	}

	return slices.Clone(d.InputSchema.Required)
}

// Optional returns the names of the optional fields, sorted.
func (d Descriptor) Optional() []string {
	if d.InputSchema == nil {
		return nil
	}

	out := make([]string, 0, len(d.InputSchema.Properties))
	for name := range d.InputSchema.Properties {
		if !slices.Contains(d.InputSchema.Required, name) {
			out = append(out, name)
		}
	}
	slices.Sort(out)

	return out
}

// SchemaMap returns the input schema in its generic JSON form.
func (d Descriptor) SchemaMap() (map[string]any, error) {
	return schemaToMap(d.InputSchema)
}

// MCPTool converts the descriptor to the MCP wire type.
// Every tool is read-only and idempotent.
func (d Descriptor) MCPTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        d.Name,
		Description: d.Description,
		InputSchema: d.InputSchema,
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
		},
	}
}

// Catalog is an ordered, immutable set of tool descriptors.
type Catalog struct {
	tools []Descriptor
	index map[string]int
}

// New creates a catalog from descriptors in declaration order.
// It returns an error if a name is empty or declared twice.
func New(descriptors ...Descriptor) (*Catalog, error) {
	c := &Catalog{
		tools: make([]Descriptor, 0, len(descriptors)),
		index: make(map[string]int, len(descriptors)),
	}

	for _, d := range descriptors {
		if d.Name == "" {
			return nil, errors.New("tool descriptor without name")
		}

		if _, dup := c.index[d.Name]; dup {
			return nil, fmt.Errorf("duplicate tool name %q", d.Name)
		}

		c.index[d.Name] = len(c.tools)
		c.tools = append(c.tools, d)
	}

	return c, nil
}

// Tools returns every descriptor in declaration order.
// The slice is a copy. Input schemas are shared and must be treated as read-only.
func (c *Catalog) Tools() []Descriptor {
	return slices.Clone(c.tools)
}

// Names returns the tool names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.tools))
	for i, d := range c.tools {
		names[i] = d.Name
	}

	return names
}

// Lookup returns the descriptor registered under name.
func (c *Catalog) Lookup(name string) (Descriptor, bool) {
	i, ok := c.index[name]
	if !ok {
		return Descriptor{}, false
	}

	return c.tools[i], true
}

// Len returns the number of tools.
func (c *Catalog) Len() int {
	return len(c.tools)
}

// Default returns the process-wide Proofessor catalog.
var Default = sync.OnceValue(func() *Catalog {
	c, err := New(defaultDescriptors()...)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}

	return c
})

func defaultDescriptors() []Descriptor {
	return []Descriptor{
		{
			Name:        AskProofessor,
			Description: "Ask Proofessor (an AI expert in code explanation and technical concepts) a question about code, architecture, debugging, or technical concepts. Proofessor will provide clear, comprehensive explanations.",
			InputSchema: ObjectSchema([]Field{
				{Name: "question", Description: "The question to ask Proofessor. Can be about code understanding, technical concepts, debugging strategies, architecture decisions, or any programming-related topic."},
				{Name: "context", Description: "Optional additional context like code snippets, error messages, or project details that will help Proofessor provide a better answer."},
			}, "question"),
		},
		{
			Name:        ExplainCode,
			Description: "Request Proofessor to explain how specific code works, including its purpose, logic flow, patterns used, and design decisions.",
			InputSchema: ObjectSchema([]Field{
				{Name: "code", Description: "The code snippet to explain."},
				{Name: "language", Description: "Programming language of the code (e.g., 'javascript', 'python', 'typescript')."},
				{Name: "focus", Description: "Optional: Specific aspect to focus on (e.g., 'performance', 'security', 'design patterns', 'best practices')."},
			}, "code"),
		},
		{
			Name:        AnalyzeArchitecture,
			Description: "Ask Proofessor to analyze system architecture, design patterns, or project structure and provide insights and recommendations.",
			InputSchema: ObjectSchema([]Field{
				{Name: "description", Description: "Description of the architecture, system design, or project structure to analyze."},
				{Name: "concerns", Description: "Optional: Specific concerns or questions about the architecture (e.g., 'scalability', 'maintainability', 'security')."},
			}, "description"),
		},
		{
			Name:        DebugHelp,
			Description: "Get Proofessor's help with debugging issues, understanding error messages, or troubleshooting problems.",
			InputSchema: ObjectSchema([]Field{
				{Name: "error_message", Description: "The error message or description of the problem."},
				{Name: "code_context", Description: "Optional: Relevant code that's causing or related to the error."},
				{Name: "attempted_solutions", Description: "Optional: Solutions you've already tried."},
			}, "error_message"),
		},
		{
			Name:        BestPractices,
			Description: "Ask Proofessor about best practices for a specific technology, pattern, or development approach.",
			InputSchema: ObjectSchema([]Field{
				{Name: "topic", Description: "The technology, pattern, or approach to get best practices for (e.g., 'React hooks', 'API design', 'error handling in Node.js')."},
				{Name: "context", Description: "Optional: Specific context or use case for the best practices."},
			}, "topic"),
		},
	}
}
