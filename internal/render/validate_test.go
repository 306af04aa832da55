package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePDF builds a minimal byte blob that passes the structural checks.
func fakePDF(pages int) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n")
	buf.WriteString("1 0 obj << /Type /Pages /Count 1 >> endobj\n")
	for i := 0; i < pages; i++ {
		buf.WriteString("2 0 obj << /Type /Page >> endobj\n")
	}
	buf.Write(bytes.Repeat([]byte(" "), minPDFSize))
	buf.WriteString("%%EOF\n")
	return buf.Bytes()
}

func TestCheckPDF(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr string
	}{
		{
			name: "valid document",
			data: fakePDF(1),
		},
		{
			name:    "empty",
			data:    nil,
			wantErr: "empty output",
		},
		{
			name:    "not a PDF",
			data:    []byte("<html>error page</html>"),
			wantErr: "missing PDF header",
		},
		{
			name:    "truncated",
			data:    []byte("%PDF-1.7\nshort"),
			wantErr: "too small",
		},
		{
			name:    "missing EOF",
			data:    append([]byte("%PDF-1.7\n"), bytes.Repeat([]byte("x"), minPDFSize)...),
			wantErr: "EOF marker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPDF(tt.data)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var invalid *InvalidPDFError
			require.ErrorAs(t, err, &invalid)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCountPages(t *testing.T) {
	assert.Equal(t, 1, CountPages(fakePDF(1)))
	assert.Equal(t, 3, CountPages(fakePDF(3)))
	assert.Equal(t, 0, CountPages([]byte("no pages here")))
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, 8.5, opts.PaperWidth)
	assert.Equal(t, 11.0, opts.PaperHeight)
	assert.Equal(t, 0.5, opts.MarginTop)
	assert.Equal(t, DefaultTimeout, opts.Timeout)
}

func TestWriteTempHTML(t *testing.T) {
	path, cleanup, err := writeTempHTML("<html><body>hi</body></html>")
	require.NoError(t, err)
	defer cleanup()

	assert.FileExists(t, path)
	cleanup()
	assert.NoFileExists(t, path)
}
