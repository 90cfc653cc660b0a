// Package prompt assembles the system/user prompt pairs sent to a
// provider from one or more page extractions.
//
// Header and paragraph lists are always capped before they reach a
// prompt; assembly tolerates empty and failed extractions.
package prompt

import (
	"fmt"
	"strings"

	"github.com/mirvald-space/WebNinja/pkg/types"
)

// Caps applied during prompt assembly.
const (
	// TaskHeaderLimit and TaskParagraphLimit bound single-task prompts.
	TaskHeaderLimit    = 10
	TaskParagraphLimit = 15

	// ResearchHeaderLimit and ResearchParagraphLimit bound each source
	// section of a research prompt.
	ResearchHeaderLimit    = 8
	ResearchParagraphLimit = 10

	// researchParagraphHardCap is a defensive guard on the paragraph
	// list before the per-source limit is applied, not a meaningful
	// content limit.
	researchParagraphHardCap = 500
)

// BuildTaskPrompt assembles the prompt pair for a single-task run over
// one extraction record.
func BuildTaskPrompt(task string, record types.Extraction) types.PromptPair {
	system := fmt.Sprintf(
		"You're an expert at analyzing web content. Analyze the information provided and give a concise, informative answer to the problem: %q.",
		task)

	var user strings.Builder
	fmt.Fprintf(&user, "Task: %s\n\n", task)
	fmt.Fprintf(&user, "Data from page %s:\n", urlOrUnknown(record.URL))

	if record.Failed() {
		fmt.Fprintf(&user, "Error collecting data: %s", record.Error)
		return types.PromptPair{System: system, User: user.String()}
	}

	if headers := capped(record.Content.Headers, TaskHeaderLimit); len(headers) > 0 {
		user.WriteString("Headers:\n")
		user.WriteString(bulleted(headers))
		user.WriteString("\n\n")
	}

	if paragraphs := capped(record.Content.Paragraphs, TaskParagraphLimit); len(paragraphs) > 0 {
		user.WriteString("Content:\n")
		user.WriteString(strings.Join(paragraphs, "\n\n"))
	}

	return types.PromptPair{System: system, User: user.String()}
}

// BuildResearchPrompt assembles the prompt pair for a multi-source
// research report. Each record becomes a delimited SOURCE section;
// failed records render a short failure note instead of content.
func BuildResearchPrompt(topic string, records []types.Extraction) types.PromptPair {
	system := fmt.Sprintf(
		"You are an experienced researcher. Analyze information from multiple sources about %q.\n"+
			"Create a structured report including:\n"+
			"1. Key facts and data\n"+
			"2. Comparison of information from different sources\n"+
			"3. Conclusions and findings",
		topic)

	var user strings.Builder
	fmt.Fprintf(&user, "Research topic: %s\n\n", topic)

	for i, record := range records {
		fmt.Fprintf(&user, "--- SOURCE %d: %s ---\n", i+1, urlOrUnknown(record.URL))

		if record.Failed() || record.Empty() {
			user.WriteString("Failed to extract structured content\n\n")
		} else {
			if headers := capped(record.Content.Headers, ResearchHeaderLimit); len(headers) > 0 {
				user.WriteString("Main headers:\n")
				user.WriteString(bulleted(headers))
				user.WriteString("\n\n")
			}

			paragraphs := capped(record.Content.Paragraphs, researchParagraphHardCap)
			if paragraphs = capped(paragraphs, ResearchParagraphLimit); len(paragraphs) > 0 {
				user.WriteString("Key excerpts:\n")
				user.WriteString(strings.Join(paragraphs, "\n\n"))
				user.WriteString("\n\n")
			}
		}

		user.WriteString("---\n\n")
	}

	return types.PromptPair{System: system, User: user.String()}
}

func urlOrUnknown(url string) string {
	if url == "" {
		return "unknown URL"
	}
	return url
}

func capped(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

func bulleted(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}
