package services

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDocx builds a minimal .docx archive whose document body is the given
// WordprocessingML fragment.
func writeDocx(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "resume.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)

	doc, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = doc.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body + `</w:body></w:document>`))
	require.NoError(t, err)

	rels, err := zw.Create("word/_rels/document.xml.rels")
	require.NoError(t, err)
	_, err = rels.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	return path
}

func TestAllowedExtension(t *testing.T) {
	assert.True(t, AllowedExtension(".pdf"))
	assert.True(t, AllowedExtension(".docx"))
	assert.False(t, AllowedExtension(".txt"))
	assert.False(t, AllowedExtension(".doc"))
	assert.False(t, AllowedExtension(""))
}

func TestExtractText_UnsupportedExtension(t *testing.T) {
	e := NewTextExtractor()

	_, err := e.ExtractText("whatever.txt", ".txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file extension")
}

func TestExtractText_CorruptPDFDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0644))

	e := NewTextExtractor()
	text, err := e.ExtractText(path, ".pdf")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractText_CorruptDocxDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.docx")
	require.NoError(t, os.WriteFile(path, []byte("this is not a docx"), 0644))

	e := NewTextExtractor()
	text, err := e.ExtractText(path, ".docx")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractText_DocxParagraphs(t *testing.T) {
	path := writeDocx(t,
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t xml:space="preserve">Senior Engineer</w:t></w:r></w:p>`)

	e := NewTextExtractor()
	text, err := e.ExtractText(path, ".docx")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSenior Engineer\n", text)
}

func TestExtractText_DocxDecodesEntities(t *testing.T) {
	path := writeDocx(t,
		`<w:p><w:r><w:t>Worked at AT&amp;T on C# &amp; .NET</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Shipped &lt;1s p99 latency</w:t></w:r></w:p>`)

	e := NewTextExtractor()
	text, err := e.ExtractText(path, ".docx")
	require.NoError(t, err)
	assert.Equal(t, "Worked at AT&T on C# & .NET\nShipped <1s p99 latency\n", text)
	assert.NotContains(t, text, "&amp;")
}

func TestExtractText_MissingFileDegradesToEmpty(t *testing.T) {
	e := NewTextExtractor()

	text, err := e.ExtractText(filepath.Join(t.TempDir(), "missing.pdf"), ".pdf")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestCleanText(t *testing.T) {
	input := "  Line one  \n\n\n   Line two\t\n \nLine three   "
	assert.Equal(t, "Line one\nLine two\nLine three", CleanText(input))
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText("   \n \n  "))
}
