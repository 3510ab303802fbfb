package decoder_test

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log-explorer-backend/internal/decoder"
)

const sample = "2024-01-15T10:30:00.123Z ERROR [com.app.Service] [thread-1] : Something failed\n"

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDecode_PlainText(t *testing.T) {
	text, err := decoder.DecodeReader("app.log", bytes.NewReader([]byte(sample)), decoder.DefaultMaxBytes)
	require.NoError(t, err)
	assert.Equal(t, sample, text)
}

func TestDecode_Gzip(t *testing.T) {
	text, err := decoder.DecodeReader("app.log.GZ", bytes.NewReader(gzipBytes(t, sample)), decoder.DefaultMaxBytes)
	require.NoError(t, err)
	assert.Equal(t, sample, text)
}

func TestDecode_CorruptGzip(t *testing.T) {
	_, err := decoder.DecodeReader("app.log.gz", bytes.NewReader([]byte("definitely not gzip")), decoder.DefaultMaxBytes)
	assert.ErrorIs(t, err, decoder.ErrDecompress)
}

func TestDecode_SizeCap(t *testing.T) {
	_, err := decoder.DecodeReader("app.log", bytes.NewReader([]byte(sample)), 10)
	assert.ErrorIs(t, err, decoder.ErrFileTooLarge)

	_, err = decoder.DecodeReader("app.log.gz", bytes.NewReader(gzipBytes(t, sample)), 10)
	assert.ErrorIs(t, err, decoder.ErrFileTooLarge)
}

func TestDecode_InvalidUTF8AndBOM(t *testing.T) {
	text, err := decoder.DecodeReader("app.txt", bytes.NewReader([]byte("\xEF\xBB\xBFhello \xff world")), 0)
	require.NoError(t, err)
	assert.Equal(t, "hello \uFFFD world", text)
}

func TestValidateFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		size    int64
		wantErr error
	}{
		{name: "Log file", file: "server.log", size: 10},
		{name: "Uppercase gzip", file: "SERVER.LOG.GZ", size: 10},
		{name: "Text file", file: "notes.txt", size: 10},
		{name: "Wrong extension", file: "image.png", size: 10, wantErr: decoder.ErrUnsupportedFile},
		{name: "Too large", file: "big.log", size: decoder.DefaultMaxBytes + 1, wantErr: decoder.ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := decoder.ValidateFile(tt.file, tt.size, decoder.DefaultMaxBytes)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0 Bytes", decoder.FormatSize(0))
	assert.Equal(t, "512 Bytes", decoder.FormatSize(512))
	assert.Equal(t, "1.5 KB", decoder.FormatSize(1536))
	assert.Equal(t, "100 MB", decoder.FormatSize(decoder.DefaultMaxBytes))
}
