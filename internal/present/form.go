// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package present

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// formQuestions is the fixed supplementary-information questionnaire shown
// when the extracted data is too thin to analyze.
var formQuestions = []string{
	"What is the primary target market for your business?",
	"What are your main competitors?",
	"What is your unique value proposition?",
	"What are your business goals for the next year?",
	"Who is your ideal customer persona?",
	"What cultural aspects are important for your audience?",
	"What tone should the content have (formal, casual, professional, etc.)?",
	"Are there any specific topics you want to avoid?",
}

// Form asks the supplementary-information questions over a line-based
// session.
type Form struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewForm builds a Form over the given reader and writer.
func NewForm(in io.Reader, out io.Writer) *Form {
	return &Form{in: bufio.NewScanner(in), out: out}
}

// RequestAdditionalInfo walks the question list and returns the non-empty
// answers in question order. Skipped questions leave no trace.
func (f *Form) RequestAdditionalInfo() []string {
	fmt.Fprintf(f.out, "\n%s\n", strings.Repeat("=", 50))
	fmt.Fprintln(f.out, "ADDITIONAL INFORMATION REQUESTED")
	fmt.Fprintln(f.out, strings.Repeat("=", 50))
	fmt.Fprintln(f.out, "Please provide the following information to improve analysis:")

	var answers []string
	for i, question := range formQuestions {
		fmt.Fprintf(f.out, "\n%d. %s\n", i+1, question)
		fmt.Fprint(f.out, "> ")
		if !f.in.Scan() {
			break
		}
		if answer := strings.TrimSpace(f.in.Text()); answer != "" {
			answers = append(answers, answer)
		}
	}

	fmt.Fprintln(f.out, "\nThank you for providing additional information!")
	return answers
}
