package caption

import (
	"regexp"
	"strings"

	"github.com/mediashelf/mediashelf/core"
)

// Fixed marker patterns, one field per caption line. The markers are a
// string-matching convention, not a grammar: each pattern anchors on its
// label glyphs and captures the remainder of that line.
var (
	videoTitlePattern  = regexp.MustCompile(`🎞️𝐓𝐢𝐭𝐥𝐞 »\s*([^\n]+)`)
	pdfTitlePattern    = regexp.MustCompile(`📕𝐓𝐢𝐭𝐥𝐞 »\s*([^\n]+)`)
	coursePattern      = regexp.MustCompile(`📚 Course :\s*([^\n]+)`)
	extractedByPattern = regexp.MustCompile(`🌟𝐄𝐱𝐭𝐫𝐚𝐜𝐭𝐞𝐝 𝐁𝐲 »\s*([^\n]+)`)
)

// Fields holds the labeled values recovered from one caption.
type Fields struct {
	// Kind reports which title marker matched. The video marker wins even
	// if the document marker would also match later in the text. Note that
	// the stored record's kind is resolved from the attachment type by the
	// ingestion pipeline; this field only reflects the caption.
	Kind core.MediaKind

	// Title is the trimmed remainder of the matched title line.
	Title string

	// Course is the trimmed remainder of the course line, or empty when the
	// marker is absent.
	Course string

	// ExtractedBy is the trimmed remainder of the attribution line, or
	// empty when the marker is absent.
	ExtractedBy string
}

// Extract applies the fixed marker patterns to a caption and returns the
// recovered fields. The second return value is false when neither title
// marker matches; title is the gating field, so a caption with only a
// course or attribution line yields nothing. Extract is pure and tolerates
// the empty string (a message without a caption).
func Extract(text string) (Fields, bool) {
	title, kind, ok := extractTitle(text)
	if !ok {
		return Fields{}, false
	}

	return Fields{
		Kind:        kind,
		Title:       title,
		Course:      extractLine(coursePattern, text),
		ExtractedBy: extractLine(extractedByPattern, text),
	}, true
}

// extractTitle tries the video title pattern first, then the document one.
func extractTitle(text string) (string, core.MediaKind, bool) {
	if m := videoTitlePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), core.MediaKindVideo, true
	}
	if m := pdfTitlePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), core.MediaKindPDF, true
	}
	return "", "", false
}

func extractLine(pattern *regexp.Regexp, text string) string {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
