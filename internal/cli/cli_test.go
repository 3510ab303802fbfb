package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log-explorer-backend/internal/decoder"
	"log-explorer-backend/internal/model"
	"log-explorer-backend/internal/parser"
)

const sampleLog = `2024-01-15 10:30:00,123 ERROR [com.app.PaymentService] [http-nio-1] : Payment declined
java.lang.IllegalStateException: card expired
	at com.app.PaymentService.charge(PaymentService.java:42)
2024-01-15T10:30:01.000Z INFO [com.app.Main] [main] : Application started
2024-01-16T08:00:00.000Z WARN [com.app.Pool] [pool-2] : Pool nearly exhausted
2024-01-16T09:15:00.000Z error [com.app.PaymentService] [http-nio-2] : Payment timeout
`

func writeSample(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStatsCommand_JSON(t *testing.T) {
	path := writeSample(t, "app.log", []byte(sampleLog))

	out, err := run(t, "stats", path, "--json")
	require.NoError(t, err)

	var stats model.LogStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, model.LogStats{Total: 4, Info: 1, Warn: 1, Error: 2}, stats)
}

func TestStatsCommand_Text(t *testing.T) {
	path := writeSample(t, "app.log", []byte(sampleLog))

	out, err := run(t, "stats", path)
	require.NoError(t, err)
	assert.Contains(t, out, "LEVEL")
	assert.Contains(t, out, "COUNT")
	assert.Regexp(t, `(?m)^[|│]?\s*TOTAL\s*[|│]\s*4\s*[|│]?\s*$`, out)
	assert.Regexp(t, `(?m)^[|│]?\s*ERROR\s*[|│]\s*2\s*[|│]?\s*$`, out)
	assert.Regexp(t, `(?m)^[|│]?\s*TRACE\s*[|│]\s*0\s*[|│]?\s*$`, out)
}

func TestStatsCommand_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(sampleLog))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	path := writeSample(t, "app.log.gz", buf.Bytes())

	out, err := run(t, "stats", path, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"total": 4`)
}

func TestFilterCommand(t *testing.T) {
	path := writeSample(t, "app.log", []byte(sampleLog))

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "Level is case-insensitive on the command line",
			args:     []string{"--level", "error"},
			expected: []string{"Payment declined", "Payment timeout"},
		},
		{
			name:     "Search matches continuation lines",
			args:     []string{"--search", "card expired"},
			expected: []string{"Payment declined"},
		},
		{
			name:     "Date range",
			args:     []string{"--from", "2024-01-16", "--to", "2024-01-16"},
			expected: []string{"Pool nearly exhausted", "Payment timeout"},
		},
		{
			name:     "Sorted by message with limit",
			args:     []string{"--sort-by", "message", "--limit", "2"},
			expected: []string{"Application started", "Payment declined"},
		},
		{
			name:     "No match",
			args:     []string{"--search", "nothing like this"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"filter", path, "--json"}, tt.args...)...)
			require.NoError(t, err)

			var entries []model.LogEntry
			require.NoError(t, json.Unmarshal([]byte(out), &entries))
			messages := make([]string, 0, len(entries))
			for _, e := range entries {
				messages = append(messages, strings.SplitN(e.Message, "\n", 2)[0])
			}
			assert.Equal(t, tt.expected, messages)
		})
	}
}

func TestFilterCommand_Raw(t *testing.T) {
	path := writeSample(t, "app.log", []byte(sampleLog))

	out, err := run(t, "filter", path, "--raw", "--search", "expired")
	require.NoError(t, err)
	assert.Equal(t, strings.Join(strings.Split(sampleLog, "\n")[:3], "\n")+"\n", out)
}

func TestFilterCommand_Errors(t *testing.T) {
	t.Run("Unknown sort field", func(t *testing.T) {
		path := writeSample(t, "app.log", []byte(sampleLog))
		_, err := run(t, "filter", path, "--sort-by", "severity")
		assert.Error(t, err)
	})

	t.Run("Unsupported extension", func(t *testing.T) {
		path := writeSample(t, "app.csv", []byte(sampleLog))
		_, err := run(t, "filter", path)
		assert.ErrorIs(t, err, decoder.ErrUnsupportedFile)
	})

	t.Run("No entries", func(t *testing.T) {
		path := writeSample(t, "app.log", []byte("just some text\nwithout timestamps\n"))
		_, err := run(t, "stats", path)
		assert.ErrorIs(t, err, parser.ErrNoEntriesFound)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := run(t, "stats", filepath.Join(t.TempDir(), "missing.log"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
