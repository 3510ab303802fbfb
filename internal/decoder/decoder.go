// Package decoder turns uploaded or stored log files into UTF-8 text, inflating
// gzip archives chosen by file name.
package decoder

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog/log"
)

const DefaultMaxBytes int64 = 100 * 1024 * 1024

var (
	ErrUnsupportedFile = errors.New("unsupported file type, expected .log, .txt or .gz")
	ErrFileTooLarge    = errors.New("file exceeds the maximum allowed size")
	ErrDecompress      = errors.New("failed to decompress .gz file")
)

var allowedExtensions = []string{".log", ".gz", ".txt"}

// IsGzip reports whether the file name asks for gzip inflation.
func IsGzip(fileName string) bool {
	return strings.HasSuffix(strings.ToLower(fileName), ".gz")
}

// ValidateFile checks the extension and size of an upload before it is read.
func ValidateFile(fileName string, size int64, maxBytes int64) error {
	name := strings.ToLower(fileName)
	valid := false
	for _, ext := range allowedExtensions {
		if strings.HasSuffix(name, ext) {
			valid = true
			break
		}
	}
	if !valid {
		log.Warn().Str("file", fileName).Msg("Rejected file with unsupported extension")
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, filepath.Base(fileName))
	}
	if maxBytes > 0 && size > maxBytes {
		log.Warn().Str("file", fileName).Int64("size", size).Int64("max_bytes", maxBytes).Msg("Rejected oversized file")
		return fmt.Errorf("%w: %d > %d bytes", ErrFileTooLarge, size, maxBytes)
	}
	return nil
}

// DecodeReader reads r fully, inflating it when fileName ends in .gz. At most
// maxBytes of decoded text are accepted; maxBytes <= 0 disables the cap.
// Invalid UTF-8 sequences are replaced with U+FFFD and a leading BOM is dropped.
func DecodeReader(fileName string, r io.Reader, maxBytes int64) (string, error) {
	src := r
	if IsGzip(fileName) {
		zr, err := gzip.NewReader(r)
		if err != nil {
			log.Error().Err(err).Str("file", fileName).Msg("Failed to open gzip stream")
			return "", fmt.Errorf("%w: %v", ErrDecompress, err)
		}
		defer zr.Close()
		src = zr
	}

	if maxBytes > 0 {
		src = io.LimitReader(src, maxBytes+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		if IsGzip(fileName) {
			log.Error().Err(err).Str("file", fileName).Msg("Failed to inflate gzip stream")
			return "", fmt.Errorf("%w: %v", ErrDecompress, err)
		}
		return "", fmt.Errorf("failed to read file %s: %w", fileName, err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w: decoded content over %d bytes", ErrFileTooLarge, maxBytes)
	}

	text := strings.TrimPrefix(strings.ToValidUTF8(string(data), "\uFFFD"), "\uFEFF")
	log.Debug().Str("file", fileName).Bool("gzip", IsGzip(fileName)).Int("length", len(text)).Msg("Decoded file content")
	return text, nil
}

// FormatSize renders a byte count the way the file picker shows it, e.g. "1.5 MB".
func FormatSize(size int64) string {
	if size <= 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	value := float64(size)
	i := 0
	for value >= 1024 && i < len(units)-1 {
		value /= 1024
		i++
	}
	return strconv.FormatFloat(math.Round(value*100)/100, 'f', -1, 64) + " " + units[i]
}
