package agent

import (
	"fmt"
	"strings"

	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// Stage briefs for the CLI back-end. The primary back-end gets these
// behaviours from its slash-command prompt templates; the CLI is
// one-shot, so the expectations ride along in the prompt itself.
var stageBriefs = map[models.Command]string{
	models.CommandPlan: "Plan the requested work. Write a specification markdown file " +
		"under specs/ describing scope, approach and acceptance criteria. " +
		"Do not implement anything yet.",
	models.CommandImplement: "Implement the work described by the specification. " +
		"Make the code changes in the working directory, following the existing style.",
	models.CommandTest: "Test the implementation. Run the project's test suite and " +
		"report results. If tests fail, include the failing output verbatim.",
	models.CommandReview: "Review the implementation against its specification. " +
		"Point out defects and deviations; summarise whether it is ready.",
}

// briefForPrompt picks the stage brief from the prompt's leading slash
// command. Unknown prompts get no brief.
func briefForPrompt(prompt string) string {
	cmd := prompt
	if i := strings.IndexAny(prompt, " \n"); i > 0 {
		cmd = prompt[:i]
	}
	return stageBriefs[models.Command(cmd)]
}

// buildCLIPrompt assembles the one-shot prompt handed to the CLI.
func buildCLIPrompt(workdir, prompt string) string {
	var b strings.Builder
	b.WriteString("You are an AI assistant helping with software development tasks.\n")
	fmt.Fprintf(&b, "Current working directory: %s\n\n", workdir)
	if brief := briefForPrompt(prompt); brief != "" {
		b.WriteString(brief)
		b.WriteString("\n\n")
	}
	b.WriteString(prompt)
	b.WriteString("\n")
	return b.String()
}
