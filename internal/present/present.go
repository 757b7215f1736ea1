// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package present collects idea selections and feedback from the user. The
// pipeline depends only on the Presenter interface, never on which surface
// is active.
package present

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

// Presenter shows a batch of ideas and returns the user's selection plus
// feedback. Called once per generation or improvement cycle.
type Presenter interface {
	Present(ctx context.Context, ideas []types.ScriptIdea) ([]types.ScriptIdea, types.Feedback, error)
}

const defaultShowLimit = 10

// Console is a synchronous line-based presenter. Reader and writer are
// injected so tests can script the session.
type Console struct {
	in        *bufio.Scanner
	out       io.Writer
	showLimit int
}

// NewConsole builds a Console presenter. showLimit caps how many ideas are
// offered for selection; zero or negative means the default of 10.
func NewConsole(in io.Reader, out io.Writer, showLimit int) *Console {
	if showLimit <= 0 {
		showLimit = defaultShowLimit
	}
	return &Console{in: bufio.NewScanner(in), out: out, showLimit: showLimit}
}

// Present walks the first showLimit ideas one by one, asking for a y/n
// selection, then collects feedback for the selected set. No selection
// means empty feedback and a finished loop.
func (c *Console) Present(_ context.Context, ideas []types.ScriptIdea) ([]types.ScriptIdea, types.Feedback, error) {
	fmt.Fprintf(c.out, "\nGenerated %d script ideas!\n", len(ideas))

	fmt.Fprintf(c.out, "\n%s\n", strings.Repeat("=", 80))
	fmt.Fprintln(c.out, "SCRIPT IDEAS GENERATED")
	fmt.Fprintln(c.out, strings.Repeat("=", 80))

	shown := ideas
	if len(shown) > c.showLimit {
		shown = shown[:c.showLimit]
	}

	var selected []types.ScriptIdea
	for _, idea := range shown {
		fmt.Fprintf(c.out, "\nID: %d\n", idea.ID)
		fmt.Fprintf(c.out, "Title: %s\n", idea.Title)
		fmt.Fprintf(c.out, "Format: %s\n", idea.Format)
		fmt.Fprintf(c.out, "Theme: %s\n", idea.Theme)
		fmt.Fprintf(c.out, "Description: %s\n", idea.Description)
		fmt.Fprintf(c.out, "Duration: %s\n", idea.EstimatedDuration)
		fmt.Fprintf(c.out, "Platforms: %s\n", strings.Join(idea.TargetPlatforms, ", "))

		if strings.ToLower(c.prompt("Select this idea? (y/n): ")) == "y" {
			selected = append(selected, idea)
		}
	}

	if len(selected) == 0 {
		return nil, types.Feedback{}, nil
	}
	return selected, c.collectFeedback(), nil
}

func (c *Console) collectFeedback() types.Feedback {
	fmt.Fprintf(c.out, "\n%s\n", strings.Repeat("=", 50))
	fmt.Fprintln(c.out, "FEEDBACK COLLECTION")
	fmt.Fprintln(c.out, strings.Repeat("=", 50))

	fb := types.Feedback{
		Rating:       c.prompt("Rate the selected ideas (1-5): "),
		Improvements: c.prompt("What improvements would you like?: "),
		ToneChange:   c.prompt("Preferred tone change (leave empty for none): "),
		FormatChange: c.prompt("Preferred format change (leave empty for none): "),
	}
	if raw := c.prompt("Additional elements to include: "); raw != "" {
		fb.AdditionalElements = strings.Split(raw, ",")
	}
	fb.Improve = strings.ToLower(c.prompt("Generate improved versions? (y/n): ")) == "y"
	return fb
}

// prompt writes the label and reads one trimmed line. Exhausted input reads
// as empty, which every caller treats as "none".
func (c *Console) prompt(label string) string {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}
