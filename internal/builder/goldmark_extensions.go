// internal/builder/goldmark_extensions.go
package builder

import (
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"wikigen/internal/catalog"
	"wikigen/internal/util"
)

// fragmentLinkTransformer rewrites links that point at another content
// fragment ("team-members.md") to the page generated from it ("Members.html").
type fragmentLinkTransformer struct{}

func newFragmentLinkTransformer() parser.ASTTransformer {
	return &fragmentLinkTransformer{}
}

func (t *fragmentLinkTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}
		if dest, ok := fragmentLinkTarget(string(link.Destination)); ok {
			link.Destination = []byte(dest)
		}
		return ast.WalkContinue, nil
	})
}

// fragmentExts are the extensions a link must carry to be read as a
// fragment. Images, downloads and other assets keep their links.
var fragmentExts = map[string]bool{
	".md":   true,
	".html": true,
	".htm":  true,
	".txt":  true,
}

// fragmentLinkTarget returns the output file for a link destination that
// names a sibling fragment. Anchors are carried over. Anything with a
// scheme, a path or a query is left alone.
func fragmentLinkTarget(dest string) (string, bool) {
	if dest == "" || strings.ContainsAny(dest, "/?:") {
		return "", false
	}
	anchor := ""
	if i := strings.IndexByte(dest, '#'); i >= 0 {
		dest, anchor = dest[:i], dest[i:]
	}
	if dest == "" || !fragmentExts[strings.ToLower(filepath.Ext(dest))] {
		return "", false
	}
	_, rawName, err := catalog.ParseFileName(dest)
	if err != nil {
		return "", false
	}
	return OutputFileName(util.TitleCase(rawName)) + anchor, true
}
