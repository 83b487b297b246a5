package banglish

import (
	"context"
	"fmt"
	"html"
	"strings"
)

// htmlTemplate wraps composed content in a complete HTML5 document
// with a leading title block.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
<h1 class="doc-title">%s</h1>
<div class="spacer"></div>
%s
</body>
</html>`

// baseStyleCSS reproduces the reference document styling: a centered
// 16pt title over 12pt left-aligned body paragraphs, with fixed-height
// spacers standing in for blank lines. User CSS is appended after it
// and can override any rule.
const baseStyleCSS = `body { font-family: sans-serif; font-size: 12pt; text-align: left; }
h1.doc-title { font-size: 16pt; text-align: center; margin-bottom: 30pt; }
p { margin: 0 0 12pt 0; }
div.spacer { height: 12pt; }
`

// htmlComposer builds a standalone HTML document from transliterated
// content.
type htmlComposer interface {
	Compose(ctx context.Context, content, title string) (string, error)
}

// paragraphComposer lays plain text out as paragraphs: every non-blank
// line becomes one paragraph, every blank line becomes a fixed-height
// spacer. Nothing of the source document's layout is reproduced.
type paragraphComposer struct{}

func (paragraphComposer) Compose(ctx context.Context, content, title string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lines := strings.Split(content, "\n")
	blocks := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			blocks = append(blocks, `<div class="spacer"></div>`)
			continue
		}
		blocks = append(blocks, "<p>"+html.EscapeString(trimmed)+"</p>")
	}

	return wrapDocument(title, strings.Join(blocks, "\n")), nil
}

// wrapDocument puts a composed body into the shared document shell.
func wrapDocument(title, body string) string {
	escTitle := html.EscapeString(title)
	return fmt.Sprintf(htmlTemplate, escTitle, escTitle, body)
}
