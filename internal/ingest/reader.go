// Package ingest reads delimited export files and maps their columns onto the
// logical field names the analyzer consumes. HR exports arrive in a mix of
// UTF-8 and legacy Windows encodings, so decoding falls back through a fixed
// chain before parsing.
package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/models"
)

// DefaultSeparator matches the semicolon-delimited exports the source system
// produces.
const DefaultSeparator = ';'

// DefaultColumnMapping maps logical field names onto the column headers of
// the source export.
var DefaultColumnMapping = map[string]string{
	models.FieldObjective:        "Objetivo de Desenvolvimento (GAP)",
	models.FieldActions:          "Ações a serem realizadas",
	models.FieldLearningActivity: "Atividade de Aprendizagem",
}

// legacyEncodings is the fallback chain tried when the input is not valid
// UTF-8. Windows-1252 first: it covers ISO-8859-1's printable range and the
// 0x80-0x9F punctuation Windows exports actually contain.
var legacyEncodings = []encoding.Encoding{
	charmap.Windows1252,
	charmap.ISO8859_1,
}

// Options configures reading a delimited file.
type Options struct {
	// Separator is the field delimiter; zero selects DefaultSeparator.
	Separator rune
	// ColumnMapping maps logical field names to source column headers;
	// nil selects DefaultColumnMapping.
	ColumnMapping map[string]string
}

// ReadFile reads path and returns one record per data row, keyed by logical
// field names, plus the logical column names in file order. Columns not
// covered by the mapping pass through under their own (trimmed) header so
// identity fields survive the round trip.
func ReadFile(path string, opts Options) ([]map[string]string, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading input file: %w", err)
	}
	records, fields, err := Read(bytes.NewReader(data), opts)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, fields, nil
}

// Read parses delimited content from r.
func Read(r io.Reader, opts Options) ([]map[string]string, []string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("reading input: %w", err)
	}

	text, err := decode(raw)
	if err != nil {
		return nil, nil, err
	}

	sep := opts.Separator
	if sep == 0 {
		sep = DefaultSeparator
	}
	mapping := opts.ColumnMapping
	if mapping == nil {
		mapping = DefaultColumnMapping
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = sep
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing delimited content: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	headers := rows[0]
	fields := make([]string, 0, len(headers))
	logicalFor := make(map[int]string, len(headers))
	for i, header := range headers {
		name := logicalName(header, mapping)
		logicalFor[i] = name
		if name != "" {
			fields = append(fields, name)
		}
	}

	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(headers))
		for i, value := range row {
			name, ok := logicalFor[i]
			if !ok || name == "" {
				continue
			}
			record[name] = strings.TrimSpace(value)
		}
		records = append(records, record)
	}
	return records, fields, nil
}

// logicalName resolves a source header to its logical field name, or passes
// the trimmed header through when it is unmapped.
func logicalName(header string, mapping map[string]string) string {
	trimmed := strings.TrimSpace(strings.TrimPrefix(header, "\uFEFF"))
	for logical, source := range mapping {
		if strings.EqualFold(trimmed, source) {
			return logical
		}
	}
	return trimmed
}

// decode returns data as UTF-8 text, falling back through the legacy
// encoding chain when it is not already valid UTF-8.
func decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	for _, enc := range legacyEncodings {
		decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
		if err == nil && utf8.Valid(decoded) {
			return string(decoded), nil
		}
	}
	return "", fmt.Errorf("input is not valid UTF-8 and no fallback encoding applied")
}
