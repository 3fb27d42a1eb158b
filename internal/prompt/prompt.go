package prompt

import "strings"

const contentHeader = "Content:\n"

// Build composes the outbound request text. The system instruction and the
// resolved content are joined with a fixed header, the whole is trimmed, and
// a non-empty extra instruction is appended after a blank line. Empty content
// is a valid input; the function is pure and never fails.
func Build(systemInstruction, resolvedContent, extraInstruction string) string {
	text := strings.TrimSpace(systemInstruction + "\n\n" + contentHeader + resolvedContent)
	if extraInstruction != "" {
		text += "\n\n" + extraInstruction
	}
	return text
}
