package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"llmgateway/pkg/types"
)

func TestCompletion_FIMOnlyWithSuffix(t *testing.T) {
	text, kind := Completion("int add(int a, int b) {", "}", "java")
	assert.Equal(t, TypeFIM, kind)
	assert.Equal(t, "<PRE> int add(int a, int b) { <SUF> } <MID>", text)

	text, kind = Completion("def f(", "", "python")
	assert.Equal(t, TypeCompletion, kind)
	assert.Equal(t, "Complete the following python code:\n\ndef f(\n\nContinue the code implementation:", text)
	assert.NotContains(t, text, "<PRE>")
}

func TestExplanation(t *testing.T) {
	p := Explanation("int x = 1;", "java")
	assert.True(t, strings.HasPrefix(p, "Explain the following java code in detail.\nFocus on:\n1. What the code does\n"))
	assert.Contains(t, p, "4. How it fits in an ERP system context\n\nCode:\n```java\nint x = 1;\n```\n\nExplanation:")
}

func TestRefactoring(t *testing.T) {
	p := Refactoring("x()", "go", DefaultInstructions)
	assert.Contains(t, p, "Refactor the following go code.\n\nInstructions: Improve code quality, readability, and performance\n\n")
	assert.Contains(t, p, "Original code:\n```go\nx()\n```\n\n")
	assert.True(t, strings.HasSuffix(p, "3. Benefits of the refactoring\n\nRefactored code:"))
}

func TestReasoning(t *testing.T) {
	p := Reasoning("Which entity?", "")
	assert.True(t, strings.HasPrefix(p, "You are an expert in Apache OFBiz ERP systems"))
	assert.Contains(t, p, "Context: \n\nQuestion: Which entity?\n\n")
	assert.True(t, strings.HasSuffix(p, "4. Potential pitfalls to avoid\n\nResponse:"))
}

func TestGeneration(t *testing.T) {
	p := Generation("an invoice service", DefaultLanguage, DefaultFramework)
	assert.Equal(t, "Generate java code for OFBiz.\n\nRequirements:\nan invoice service\n\n"+
		"Generate well-structured, documented code following OFBiz best practices.\n\nCode:", p)
}

func TestConversation(t *testing.T) {
	p := Conversation([]types.ChatMessage{
		{Role: "system", Content: "be brief"},
		{Content: "hi"},
		{Role: "ASSISTANT", Content: "hello"},
	})
	assert.Equal(t, "System: be brief\nUser: hi\nAssistant: hello\nAssistant: ", p)
	assert.Equal(t, "Assistant: ", Conversation(nil))
}

func TestConversation_MultibyteRole(t *testing.T) {
	p := Conversation([]types.ChatMessage{{Role: "ébauche", Content: "x"}})
	assert.Equal(t, "Ébauche: x\nAssistant: ", p)
	assert.Equal(t, "Ünïcode", capitalize("üNÏCODE"))
}

func TestSamplingTable(t *testing.T) {
	cases := map[string]struct {
		s    Sampling
		max  int
		temp float32
	}{
		"complete": {Complete, 200, 0.2},
		"explain":  {Explain, 800, 0.3},
		"refactor": {Refactor, 1000, 0.3},
		"reason":   {Reason, 1500, 0.5},
		"generate": {Generate, 1500, 0.4},
		"chat":     {Chat, 1000, 0.6},
	}
	for name, c := range cases {
		assert.Equal(t, c.max, c.s.MaxTokens, name)
		assert.Equal(t, c.temp, c.s.Temperature, name)
	}
}
