package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testIconBase = "http://example.org/icon/"

func writeFragment(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestParseFileName(t *testing.T) {
	category, name, err := ParseFileName("team-members.txt")
	require.NoError(t, err)
	require.Equal(t, "team", category)
	require.Equal(t, "members", name)

	category, name, err = ParseFileName("project-human_practices.html")
	require.NoError(t, err)
	require.Equal(t, "project", category)
	require.Equal(t, "human_practices", name)
}

func TestParseFileName_Malformed(t *testing.T) {
	for _, fileName := range []string{
		"members.txt",
		"a-b-c.txt",
		"-members.txt",
		"team-.txt",
		"team-members",
	} {
		_, _, err := ParseFileName(fileName)
		require.Error(t, err, fileName)
		require.True(t, errors.Is(err, ErrMalformedName), fileName)

		var nameErr *NameError
		require.True(t, errors.As(err, &nameErr))
		require.Equal(t, fileName, nameErr.FileName)
	}
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "team-members.txt", "<p>Hi</p>")
	writeFragment(t, dir, "hardware-build.txt", "")
	writeFragment(t, dir, "project-human_practices.html", "<p>HP</p>")
	writeFragment(t, dir, ".team-members.txt.swp", "junk")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "drafts"), 0o755))

	pages, err := Build(dir, testIconBase)
	require.NoError(t, err)
	require.Len(t, pages, 3)

	// os.ReadDir sorts by file name.
	require.Equal(t, Page{
		SourceFileName: "hardware-build.txt",
		Name:           "Build",
		Category:       "hardware",
		HasContent:     false,
		IconURL:        testIconBase + "build",
		Ext:            ".txt",
	}, pages[0])

	require.Equal(t, "Human_Practices", pages[1].Name)
	require.Equal(t, "project", pages[1].Category)
	require.Equal(t, testIconBase+"human_practices", pages[1].IconURL)
	require.True(t, pages[1].HasContent)

	require.Equal(t, "Members", pages[2].Name)
	require.Equal(t, "team", pages[2].Category)
	require.True(t, pages[2].HasContent)
}

func TestBuild_MalformedAbortsCatalog(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "team-members.txt", "x")
	writeFragment(t, dir, "broken.txt", "x")

	pages, err := Build(dir, testIconBase)
	require.Nil(t, pages)
	require.ErrorIs(t, err, ErrMalformedName)
}

func TestBuild_MissingDirectory(t *testing.T) {
	_, err := Build(filepath.Join(t.TempDir(), "nope"), testIconBase)
	require.ErrorIs(t, err, os.ErrNotExist)
}
