// Package prompt renders the task prompts sent to the models and holds the
// per-task sampling defaults.
package prompt

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"llmgateway/pkg/types"
)

// Request defaults applied when the caller omits a field.
const (
	DefaultLanguage     = "java"
	DefaultFramework    = "OFBiz"
	DefaultInstructions = "Improve code quality, readability, and performance"
	DefaultRole         = "user"
)

// Sampling is the fixed max-token budget and temperature of a task.
type Sampling struct {
	MaxTokens   int
	Temperature float32
}

// Per-task sampling. Complete's MaxTokens is the default; callers may override it.
var (
	Complete = Sampling{MaxTokens: 200, Temperature: 0.2}
	Explain  = Sampling{MaxTokens: 800, Temperature: 0.3}
	Refactor = Sampling{MaxTokens: 1000, Temperature: 0.3}
	Reason   = Sampling{MaxTokens: 1500, Temperature: 0.5}
	Generate = Sampling{MaxTokens: 1500, Temperature: 0.4}
	Chat     = Sampling{MaxTokens: 1000, Temperature: 0.6}
)

// Completion kinds reported in the /complete response.
const (
	TypeFIM        = "fim"
	TypeCompletion = "completion"
)

// Completion renders a completion prompt. A non-empty suffix selects the
// fill-in-the-middle format; otherwise the plain completion template is used.
func Completion(prefix, suffix, language string) (text, kind string) {
	if suffix != "" {
		return "<PRE> " + prefix + " <SUF> " + suffix + " <MID>", TypeFIM
	}
	return "Complete the following " + language + " code:\n\n" + prefix +
		"\n\nContinue the code implementation:", TypeCompletion
}

// Explanation renders the code explanation prompt.
func Explanation(code, language string) string {
	var b strings.Builder
	b.WriteString("Explain the following " + language + " code in detail.\n")
	b.WriteString("Focus on:\n")
	b.WriteString("1. What the code does\n")
	b.WriteString("2. Key design patterns used\n")
	b.WriteString("3. Potential issues or improvements\n")
	b.WriteString("4. How it fits in an ERP system context\n\n")
	b.WriteString("Code:\n```" + language + "\n" + code + "\n```\n\n")
	b.WriteString("Explanation:")
	return b.String()
}

// Refactoring renders the refactor prompt.
func Refactoring(code, language, instructions string) string {
	var b strings.Builder
	b.WriteString("Refactor the following " + language + " code.\n\n")
	b.WriteString("Instructions: " + instructions + "\n\n")
	b.WriteString("Original code:\n```" + language + "\n" + code + "\n```\n\n")
	b.WriteString("Provide:\n")
	b.WriteString("1. Refactored code\n")
	b.WriteString("2. Explanation of changes\n")
	b.WriteString("3. Benefits of the refactoring\n\n")
	b.WriteString("Refactored code:")
	return b.String()
}

// Reasoning renders the domain-expert reasoning prompt.
func Reasoning(question, context string) string {
	var b strings.Builder
	b.WriteString("You are an expert in Apache OFBiz ERP systems and enterprise Java development.\n\n")
	b.WriteString("Context: " + context + "\n\n")
	b.WriteString("Question: " + question + "\n\n")
	b.WriteString("Provide a detailed, reasoned response with:\n")
	b.WriteString("1. Analysis of the situation\n")
	b.WriteString("2. Recommended approach\n")
	b.WriteString("3. Step-by-step implementation plan\n")
	b.WriteString("4. Potential pitfalls to avoid\n\n")
	b.WriteString("Response:")
	return b.String()
}

// Generation renders the code generation prompt.
func Generation(description, language, framework string) string {
	return "Generate " + language + " code for " + framework + ".\n\n" +
		"Requirements:\n" + description + "\n\n" +
		"Generate well-structured, documented code following " + framework + " best practices.\n\n" +
		"Code:"
}

// Conversation renders chat history as "Role: content" lines followed by the
// assistant cue. An empty role counts as user.
func Conversation(msgs []types.ChatMessage) string {
	var b strings.Builder
	for _, m := range msgs {
		b.WriteString(capitalize(orDefault(m.Role, DefaultRole)))
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	b.WriteString("Assistant: ")
	return b.String()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
