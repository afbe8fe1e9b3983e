// Package markdown converts author-written markdown into HTML for display
// and into plain-text excerpts for listing previews.
package markdown

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Adjacent paragraphs originate from blank-line-separated paragraphs in the
// source; default HTML block rendering collapses that visual gap, so an
// explicit spacing marker is inserted between them.
var reAdjacentParagraphs = regexp.MustCompile(`</p>\s*<p>`)

var (
	reHeaders    = regexp.MustCompile(`(?m)^#+\s+`)
	reFencedCode = regexp.MustCompile("(?s)```.*?```")
	reInlineCode = regexp.MustCompile("`[^`]+`")
	reBold       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	reItalic     = regexp.MustCompile(`\*([^*]+)\*`)
	reImage      = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	reLink       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
)

// Renderer converts markdown to HTML and plain-text excerpts.
type Renderer struct {
	md        goldmark.Markdown
	stripHTML *bluemonday.Policy
}

// NewRenderer creates a Renderer with a CommonMark parser. No sanitization is
// applied to rendered HTML: content is author-controlled, not user-submitted.
func NewRenderer() *Renderer {
	return &Renderer{
		md:        goldmark.New(),
		stripHTML: bluemonday.StrictPolicy(),
	}
}

// Render converts markdown source to HTML. Blank input yields empty output.
func (r *Renderer) Render(content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	out := reAdjacentParagraphs.ReplaceAllString(buf.String(), "</p><div class='h-4'></div><p>")
	return out, nil
}

// Excerpt produces a plain-text preview of markdown source. Markdown syntax
// is stripped, at most the given number of whitespace-delimited tokens are
// kept, and an ellipsis marker is appended only when the source was truncated.
func (r *Renderer) Excerpt(content string, words int) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	text := reHeaders.ReplaceAllString(content, "")
	text = reFencedCode.ReplaceAllString(text, "")
	text = reInlineCode.ReplaceAllString(text, "")
	text = reBold.ReplaceAllString(text, "$1")
	text = reItalic.ReplaceAllString(text, "$1")
	text = reImage.ReplaceAllString(text, "")
	text = reLink.ReplaceAllString(text, "$1")

	// Raw HTML embedded in the markdown must not leak into a plain-text
	// preview. The strict policy strips every tag; entities it escapes are
	// folded back to text.
	text = html.UnescapeString(r.stripHTML.Sanitize(text))
	text = strings.TrimSpace(text)

	tokens := strings.Fields(text)
	if len(tokens) <= words {
		return strings.Join(tokens, " ")
	}
	return strings.Join(tokens[:words], " ") + "..."
}
