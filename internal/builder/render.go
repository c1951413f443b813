// internal/builder/render.go
package builder

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

var (
	markdownRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(newFragmentLinkTransformer(), 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	htmlSanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown converts a markdown fragment to HTML. The result is
// sanitized unless unsafe is set.
func renderMarkdown(source []byte, unsafe bool) (string, error) {
	var htmlBuffer bytes.Buffer
	if err := markdownRenderer.Convert(source, &htmlBuffer); err != nil {
		return "", fmt.Errorf("failed to render markdown with goldmark: %w", err)
	}

	if !unsafe {
		return string(htmlSanitizer.SanitizeBytes(htmlBuffer.Bytes())), nil
	}
	return htmlBuffer.String(), nil
}
