package builder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"wikigen/internal/catalog"
)

func TestResolveBanner_IsTotal(t *testing.T) {
	for _, name := range []string{"", "Members", "unknown_page", "Index", "ünïcode"} {
		require.NotEmpty(t, ResolveBanner(name), name)
		require.NotEmpty(t, ResolveSmallBanner(name), name)
	}
	require.Equal(t, banners["index"].Desktop, ResolveBanner("Members"))
	require.Equal(t, banners["index"].Small, ResolveSmallBanner("Members"))
}

func TestResolveBanner_DedicatedEntries(t *testing.T) {
	require.Equal(t, banners["human_practices"].Desktop, ResolveBanner("Human_Practices"))
	require.Equal(t, banners["hardware"].Small, ResolveSmallBanner("HARDWARE"))
	for key, b := range banners {
		require.NotEmpty(t, b.Desktop, key)
		require.NotEmpty(t, b.Small, key)
	}
}

func TestHeader_TemplateVariants(t *testing.T) {
	page := catalog.Page{Name: "Team", Category: "Team", HasContent: true, IconURL: "http://icons/team"}

	wiki, err := testRenderer(t, PresetWiki).Header(page)
	require.NoError(t, err)
	require.Contains(t, wiki, ".menu #team, .menu #team-category { color: goldenrod; }")
	require.Contains(t, wiki, `<div class="page-team">`)
	require.Contains(t, wiki, "@media screen and (max-width: 720px)")
	require.Contains(t, wiki, banners["team"].Small)
	require.Contains(t, wiki, `$('#icon').load("http://icons/team?action=raw&ctype=text/html");`)
	require.Contains(t, wiki, "<h1>Team</h1>")
	require.True(t, strings.HasPrefix(wiki, "<html>\n<head>"))

	classic, err := testRenderer(t, PresetClassic).Header(page)
	require.NoError(t, err)
	require.NotContains(t, classic, `class="page-team"`)
	require.NotContains(t, classic, "@media screen")
	require.Contains(t, classic, banners["team"].Desktop)
}

func TestHeader_PartsInOrder(t *testing.T) {
	page := catalog.Page{Name: "Build", Category: "hardware", IconURL: "http://icons/build"}
	header, err := testRenderer(t, PresetWiki).Header(page)
	require.NoError(t, err)

	order := []string{
		`<link rel="stylesheet"`,
		".menu #build, .menu #hardware-category",
		".under-construction {",
		"</style>\n</head>\n<body>",
		`<div id="navbar"`,
		`<div class="header">`,
		`<div class="page-build">`,
	}
	last := -1
	for _, part := range order {
		idx := strings.Index(header, part)
		require.Greater(t, idx, last, part)
		last = idx
	}
}

func TestFooter_ClosesWrapperOnlyWhenOpened(t *testing.T) {
	wiki, err := testRenderer(t, PresetWiki).Footer()
	require.NoError(t, err)
	require.Contains(t, wiki, `<div id="footer"></div>`)
	require.Contains(t, wiki, "\n</div>\n</body>\n</html>\n")

	classic, err := testRenderer(t, PresetClassic).Footer()
	require.NoError(t, err)
	require.NotContains(t, classic, "</div>\n</body>")
	require.True(t, strings.HasSuffix(classic, "</script>\n</body>\n</html>\n"))
}

func TestResolveContent_VerbatimBytes(t *testing.T) {
	r := testRenderer(t, PresetWiki)
	raw := "<p>Hi</p>\n<script>alert('kept as is')</script>\r\n  trailing  "
	require.NoError(t, os.WriteFile(filepath.Join(r.InputDir, "team-members.txt"), []byte(raw), 0o644))

	body, kind, err := r.ResolveContent(catalog.Page{SourceFileName: "team-members.txt", Name: "Members", HasContent: true, Ext: ".txt"})
	require.NoError(t, err)
	require.Equal(t, raw, body)
	require.Equal(t, "content", kind)
}

func TestResolveContent_Placeholder(t *testing.T) {
	body, kind, err := testRenderer(t, PresetWiki).ResolveContent(catalog.Page{Name: "Human_Practices"})
	require.NoError(t, err)
	require.Equal(t, "placeholder", kind)
	require.Contains(t, body, `<div class="under-construction">`)
	require.Contains(t, body, "<h1>Human_Practices</h1>")
	require.Contains(t, body, NoContentMessage)
}

func TestResolveContent_MarkdownOffIsVerbatim(t *testing.T) {
	r := testRenderer(t, PresetWiki)
	raw := "<div style=\"color:red\" id=\"x\"><iframe src=\"https://example.org\"></iframe>Hi</div>\n# not a heading\n"
	require.NoError(t, os.WriteFile(filepath.Join(r.InputDir, "team-members.md"), []byte(raw), 0o644))
	page := catalog.Page{SourceFileName: "team-members.md", Name: "Members", Category: "team", HasContent: true, Ext: ".md"}

	body, kind, err := r.ResolveContent(page)
	require.NoError(t, err)
	require.Equal(t, "content", kind)
	require.Equal(t, raw, body)
}

func TestResolveContent_Markdown(t *testing.T) {
	r := testRenderer(t, PresetWiki)
	r.Options.Markdown = true
	md := "# Outreach\n\nSee [the team](team-members.txt), [home](misc-index.md#top), [the photo](team-photo.jpg) and [docs](https://example.org/a-b.md).\n\n<script>alert(1)</script>\n"
	require.NoError(t, os.WriteFile(filepath.Join(r.InputDir, "project-outreach.md"), []byte(md), 0o644))
	page := catalog.Page{SourceFileName: "project-outreach.md", Name: "Outreach", HasContent: true, Ext: ".md"}

	body, kind, err := r.ResolveContent(page)
	require.NoError(t, err)
	require.Equal(t, "markdown", kind)
	require.Contains(t, body, ">Outreach</h1>")
	require.Contains(t, body, `href="Members.html"`)
	require.Contains(t, body, `href="index.html#top"`)
	require.Contains(t, body, `href="team-photo.jpg"`)
	require.Contains(t, body, `href="https://example.org/a-b.md"`)
	require.NotContains(t, body, "<script>")

	r.Options.Unsafe = true
	body, _, err = r.ResolveContent(page)
	require.NoError(t, err)
	require.Contains(t, body, "<script>alert(1)</script>")
}

func TestFragmentLinkTarget(t *testing.T) {
	cases := map[string]struct {
		want string
		ok   bool
	}{
		"team-members.md":          {"Members.html", true},
		"misc-index.html":          {"index.html", true},
		"team-human_practices.txt": {"Human_Practices.html", true},
		"team-members.md#bio":      {"Members.html#bio", true},
		"team-members.HTM":         {"Members.html", true},
		"team-photo.jpg":           {"", false},
		"lab-protocol.pdf":         {"", false},
		"data-sheet.csv":           {"", false},
		"data-sheet.csv#row":       {"", false},
		"Members.html":             {"", false},
		"#anchor":                  {"", false},
		"mailto:a-b.org":           {"", false},
		"../team-members.md":       {"", false},
		"":                         {"", false},
	}
	for dest, tc := range cases {
		got, ok := fragmentLinkTarget(dest)
		require.Equal(t, tc.ok, ok, dest)
		require.Equal(t, tc.want, got, dest)
	}
}
