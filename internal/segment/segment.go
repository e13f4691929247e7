// Package segment splits message text into plain and highlighted runs.
package segment

import "strings"

// Segment is one contiguous run of message text.
type Segment struct {
	Text      string
	Highlight bool
}

// Parse splits a comma-separated keyword list, trimming surrounding
// whitespace from each entry. An empty input yields no keywords.
func Parse(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		keywords = append(keywords, strings.TrimSpace(p))
	}
	return keywords
}

// Split marks keyword occurrences in content as highlighted segments.
//
// Keywords are processed in input order against a cursor that starts at the
// full text: each keyword consumes its first occurrence in what remains,
// so a keyword listed twice highlights two successive occurrences, and a
// keyword absent from the remainder is skipped. Concatenating the Text
// fields of the result reproduces content exactly.
func Split(content string, keywords []string) []Segment {
	if len(keywords) == 0 {
		return []Segment{{Text: content}}
	}

	var segments []Segment
	remaining := content

	for _, keyword := range keywords {
		idx := strings.Index(remaining, keyword)
		if idx < 0 {
			continue
		}
		if before := remaining[:idx]; before != "" {
			segments = append(segments, Segment{Text: before})
		}
		segments = append(segments, Segment{Text: keyword, Highlight: true})
		remaining = remaining[idx+len(keyword):]
	}

	if remaining != "" {
		segments = append(segments, Segment{Text: remaining})
	}
	return segments
}
