package tools

import (
	"fmt"
	"strings"
)

const separator = "\n\n---\n\n"

// FormatAsk renders the ask_proofessor response.
func FormatAsk(req AskRequest) string {
	var b strings.Builder

	b.WriteString("Question for Proofessor: " + req.Question)
	if req.Context != "" {
		b.WriteString("\n\nContext: " + req.Context)
	}

	b.WriteString(separator)
	b.WriteString("Proofessor's Response:\n\n")
	b.WriteString("This is a simulated response. In a real implementation, this would connect to Proofessor's AI system " +
		"to provide comprehensive explanations about code, technical concepts, and development practices.\n\n")
	b.WriteString("For your question: \"" + req.Question + "\"\n\n")
	b.WriteString("Proofessor would analyze the question and any provided context to give you a clear, " +
		"detailed explanation that helps you understand the topic thoroughly.")

	return b.String()
}

// FormatExplain renders the explain_code response. The code is placed in a
// fenced block tagged with the language, if any.
func FormatExplain(req ExplainRequest) string {
	var b strings.Builder

	b.WriteString("Code Explanation Request:\n\n")
	if req.Language != "" {
		b.WriteString("Language: " + req.Language + "\n")
	}
	if req.Focus != "" {
		b.WriteString("Focus: " + req.Focus + "\n")
	}

	b.WriteString("\nCode:\n```" + req.Language + "\n" + req.Code + "\n```")
	b.WriteString(separator)
	b.WriteString("Proofessor's Analysis:\n\n")
	b.WriteString("This is a simulated response. Proofessor would analyze this code and explain:\n\n")
	writeList(&b,
		"What the code does (purpose and functionality)",
		"How it works (logic flow and implementation details)",
		"Design patterns or techniques used",
		"Potential improvements or considerations",
	)
	if req.Focus != "" {
		b.WriteString("\n5. Specific insights about " + req.Focus)
	}

	return b.String()
}

// FormatArchitecture renders the analyze_architecture response.
func FormatArchitecture(req ArchitectureRequest) string {
	var b strings.Builder

	b.WriteString("Architecture Analysis Request:\n\n" + req.Description)
	if req.Concerns != "" {
		b.WriteString("\n\nSpecific Concerns: " + req.Concerns)
	}

	b.WriteString(separator)
	b.WriteString("Proofessor's Architectural Analysis:\n\n")
	b.WriteString("This is a simulated response. Proofessor would provide:\n\n")
	writeList(&b,
		"Overview of the architectural approach",
		"Strengths and potential weaknesses",
		"Scalability considerations",
		"Maintainability assessment",
		"Security implications",
		"Recommendations for improvements",
	)
	if req.Concerns != "" {
		b.WriteString("\n7. Specific guidance on: " + req.Concerns)
	}

	return b.String()
}

// FormatDebug renders the debug_help response.
func FormatDebug(req DebugRequest) string {
	var b strings.Builder

	b.WriteString("Debugging Assistance Request:\n\nError: " + req.ErrorMessage)
	if req.CodeContext != "" {
		b.WriteString("\n\nCode Context:\n```\n" + req.CodeContext + "\n```")
	}
	if req.AttemptedSolutions != "" {
		b.WriteString("\n\nAttempted Solutions: " + req.AttemptedSolutions)
	}

	b.WriteString(separator)
	b.WriteString("Proofessor's Debugging Guidance:\n\n")
	b.WriteString("This is a simulated response. Proofessor would help you by:\n\n")
	writeList(&b,
		"Analyzing the error message and its likely causes",
		"Examining the code context for potential issues",
		"Explaining why the error occurs",
		"Providing step-by-step debugging strategies",
		"Suggesting specific fixes",
		"Recommending preventive measures",
	)

	return b.String()
}

// FormatBestPractices renders the best_practices response.
func FormatBestPractices(req BestPracticesRequest) string {
	var b strings.Builder

	b.WriteString("Best Practices Request:\n\nTopic: " + req.Topic)
	if req.Context != "" {
		b.WriteString("\nContext: " + req.Context)
	}

	b.WriteString(separator)
	b.WriteString("Proofessor's Best Practices Guide:\n\n")
	b.WriteString("This is a simulated response. Proofessor would provide:\n\n")
	writeList(&b,
		"Industry-standard best practices for "+req.Topic,
		"Common pitfalls to avoid",
		"Recommended patterns and approaches",
		"Code examples demonstrating best practices",
		"Trade-offs and considerations",
		"Resources for further learning",
	)

	return b.String()
}

// writeList writes a 1-based numbered list without a trailing newline.
func writeList(b *strings.Builder, items ...string) {
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(b, "%d. %s", i+1, item)
	}
}
