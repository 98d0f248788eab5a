// Package prompt assembles the text sent to the model. The
// instruction prefix is fixed; only the user's question varies.
package prompt

import "strings"

// Instruction constrains the model to the one output shape the tool
// renders: a single terse, CLI-oriented answer. Kept as one constant
// so the outbound text is reproducible across invocations.
const Instruction = "You are a command-line assistant. " +
	"Answer with a single concise, CLI-oriented response. " +
	"No explanations, no markdown. " +
	"Never suppress errors in suggested commands (no 2>/dev/null, no || true). " +
	"Start the answer with the ➜ glyph.\n\nQuestion: "

// Build joins the raw command-line arguments into a question and
// appends it to the instruction prefix. Arguments are passed through
// untouched; JSON encoding is the transport's concern.
func Build(args []string) string {
	return Instruction + strings.Join(args, " ")
}
