package kb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		filename string
		data     []byte
		want     string
		wantErr  bool
	}{
		{"report.pdf", []byte("%PDF-1.7 ..."), "pdf", false},
		{"report.pdf", []byte("not a pdf"), "", true},
		{"doc.docx", []byte("PK\x03\x04..."), "docx", false},
		{"doc.docx", []byte("plain text"), "", true},
		{"notes.txt", []byte("anything"), "txt", false},
		{"readme.md", []byte("# Title"), "md", false},
		{"data.csv", []byte("a,b,c"), "csv", false},
		{"image.png", []byte("\x89PNG"), "", true},
		{"noext", []byte("x"), "", true},
	}
	for _, tc := range cases {
		got, err := DetectFormat(tc.filename, tc.data)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrUnsupportedFormat, tc.filename)
		} else {
			require.NoError(t, err, tc.filename)
			assert.Equal(t, tc.want, got)
		}
	}
}

func TestExtractTextPlainFormats(t *testing.T) {
	text, err := ExtractText("txt", []byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)

	text, err = ExtractText("md", []byte("# Title\n\nBody."))
	require.NoError(t, err)
	assert.Contains(t, text, "Body.")

	_, err = ExtractText("txt", []byte{0xff, 0xfe, 0x00})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ExtractText("txt", []byte("   \n"))
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestExtractTextEnforcesSizeCap(t *testing.T) {
	_, err := ExtractText("txt", make([]byte, MaxUploadBytes+1))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestExtractTextRejectsCorruptBinaries(t *testing.T) {
	_, err := ExtractText("pdf", []byte("%PDF garbage"))
	assert.Error(t, err)

	_, err = ExtractText("docx", []byte("PK garbage"))
	assert.Error(t, err)
}

func TestStripXMLTags(t *testing.T) {
	got := stripXMLTags("<w:p>Hello</w:p><w:p>World</w:p>")
	assert.Equal(t, "Hello", strings.TrimSpace(strings.Split(got, "\n")[1]))
	assert.Contains(t, got, "World")
	assert.NotContains(t, got, "<w:p>")
}
