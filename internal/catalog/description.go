package catalog

import "strings"

// SegmentKind classifies one line of a product description.
type SegmentKind string

const (
	SegmentText   SegmentKind = "text"
	SegmentBullet SegmentKind = "bullet"
	SegmentHeader SegmentKind = "header"
	SegmentBlank  SegmentKind = "blank"
)

// Segment is a structural piece of a formatted description. Bullet segments
// keep their original marker so clients can render it verbatim.
type Segment struct {
	Kind   SegmentKind `json:"kind"`
	Text   string      `json:"text,omitempty"`
	Marker string      `json:"marker,omitempty"`
}

// FormatDescription splits a free-text description into display segments.
// Lines starting with "»" or "•" become bullets, lines ending with a colon
// become section headers, and empty lines become spacing hints.
func FormatDescription(description string) []Segment {
	lines := strings.Split(description, "\n")
	segments := make([]Segment, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "»"):
			segments = append(segments, Segment{
				Kind:   SegmentBullet,
				Marker: "»",
				Text:   strings.TrimSpace(strings.TrimPrefix(trimmed, "»")),
			})
		case strings.HasPrefix(trimmed, "•"):
			segments = append(segments, Segment{
				Kind:   SegmentBullet,
				Marker: "•",
				Text:   strings.TrimSpace(strings.TrimPrefix(trimmed, "•")),
			})
		case strings.HasSuffix(trimmed, ":") && len(trimmed) > 1:
			segments = append(segments, Segment{Kind: SegmentHeader, Text: trimmed})
		case trimmed == "":
			segments = append(segments, Segment{Kind: SegmentBlank})
		default:
			segments = append(segments, Segment{Kind: SegmentText, Text: line})
		}
	}
	return segments
}
