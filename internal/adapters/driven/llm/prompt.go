// Package llm holds the prompt contract and answer parsing shared by
// the provider-specific query clients, plus a rate-limiting decorator.
package llm

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/clauser-cli/internal/core/domain"
)

// answerInstructions is the system contract every provider sends. The
// model must reply with a single JSON object so citations can be
// resolved against the library.
const answerInstructions = `You are an assistant answering questions about engineering standards.
Answer strictly from the documents provided below. If the documents do not
contain the answer, say so.

Respond with a single JSON object and nothing else, in this exact shape:
{
  "answer": "the answer text",
  "citations": [
    {"standard": "document name", "clause": "clause or section", "page": 12}
  ]
}

Every citation must name one of the provided documents. Use an empty
citations array when no document supports the answer.`

// BuildPrompt assembles the full prompt: instructions, each standard's
// extracted text under its display name, then the question.
func BuildPrompt(question string, standards []domain.Standard) string {
	var b strings.Builder
	b.WriteString(answerInstructions)
	b.WriteString("\n\n# Documents\n")

	for _, std := range standards {
		fmt.Fprintf(&b, "\n## %s\n%s\n", std.Name, std.Text)
	}

	b.WriteString("\n# Question\n")
	b.WriteString(question)
	return b.String()
}
