package dataset

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"

	"plazas-monitor/internal/logger"
	"plazas-monitor/internal/metrics"
)

// ErrNotFound: the vacancy file does not exist. Fatal for a session.
var ErrNotFound = errors.New("dataset: file not found")

// nullTokens are read as missing, the usual spreadsheet NaN spellings.
var nullTokens = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {}, "-NaN": {}, "-nan": {},
	"1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {},
	"n/a": {}, "nan": {}, "null": {},
}

// IsMissing reports whether a raw cell counts as a missing value.
// Whitespace-only cells are missing too.
func IsMissing(v string) bool {
	if strings.TrimSpace(v) == "" {
		return true
	}
	_, ok := nullTokens[v]
	return ok
}

// Options controls how delimited files are read.
type Options struct {
	Delimiter rune
	Encoding  string
}

func DefaultOptions() Options { return Options{Delimiter: ',', Encoding: "utf-8"} }

// OptionsFromEnv reads CSV_DELIMITER and CSV_ENCODING; bad values fall back to the defaults.
func OptionsFromEnv() Options {
	o := DefaultOptions()
	if d := os.Getenv("CSV_DELIMITER"); d != "" {
		if d == `\t` || d == "tab" {
			o.Delimiter = '\t'
		} else if r, size := utf8.DecodeRuneInString(d); r != utf8.RuneError && size == len(d) {
			o.Delimiter = r
		}
	}
	if e := os.Getenv("CSV_ENCODING"); e != "" {
		o.Encoding = e
	}
	return o
}

func decoder(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin1", "latin-1", "iso-8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("dataset: unsupported encoding %q", encoding)
	}
}

// ReadRecords parses a delimited stream into a trimmed header and raw data rows, without normalization.
func ReadRecords(r io.Reader, opts Options) ([]string, [][]string, error) {
	dr, err := decoder(r, opts.Encoding)
	if err != nil {
		return nil, nil, err
	}
	cr := csv.NewReader(dr)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: read records: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, errors.New("dataset: empty file")
	}
	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	return header, records[1:], nil
}

// Normalize applies the load-time cleanup: PROVINCIA and DISTRITO are trimmed, every missing or blank cell becomes
// Sentinel, and the remaining region values are upper-cased. Normalize takes ownership of rows and rewrites them in place.
func Normalize(columns []string, rows [][]string) *Table {
	t := NewTable(columns, rows)
	upper := cases.Upper(language.Spanish)
	regionCols := make(map[int]bool, 2)
	for _, c := range []string{ColProvince, ColDistrict} {
		if j, ok := t.index[c]; ok {
			regionCols[j] = true
		}
	}
	for _, r := range t.rows {
		for j := range t.columns {
			v := r[j]
			if regionCols[j] {
				v = strings.TrimSpace(v)
			}
			switch {
			case IsMissing(v):
				v = Sentinel
			case regionCols[j]:
				v = upper.String(v)
			}
			r[j] = v
		}
	}
	return t
}

// ReadVacancies parses and normalizes a vacancy table from r.
func ReadVacancies(r io.Reader, opts Options) (*Table, error) {
	header, rows, err := ReadRecords(r, opts)
	if err != nil {
		return nil, err
	}
	return Normalize(header, rows), nil
}

// LoadVacancies reads the vacancy file at path. A missing file yields an error matching ErrNotFound.
func LoadVacancies(path string, opts Options) (*Table, error) {
	start := time.Now()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	t, err := ReadVacancies(bytes.NewReader(b), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.Source = path
	t.Hash = contentHash(b)
	metrics.DatasetLoadDurationMs.WithLabelValues("vacancies").Observe(float64(time.Since(start).Milliseconds()))
	logger.L().Info("dataset_load_ok", "dataset", "vacancies", "path", path, "rows", t.Len(), "columns", len(t.columns))
	return t, nil
}

func contentHash(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
