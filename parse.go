package areaslack

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	Separator = "/"
	NumFields = 3
)

// MalformedLineError describes an input line that does not split into
// exactly NumFields fields. It is reported as a warning; the line is
// skipped and scanning continues.
type MalformedLineError struct {
	Line   int
	Text   string
	Fields int
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: unable to parse %q (%d fields, expected %d)", e.Line, e.Text, e.Fields, NumFields)
}

// EncodingError is returned for input that is not valid UTF-8.
type EncodingError struct {
	Line int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("line %d: invalid UTF-8", e.Line)
}

// Scanner reads records one line at a time.
type Scanner struct {
	// Warn, if set, is called for every malformed line.
	Warn func(*MalformedLineError)

	sc   *bufio.Scanner
	line int
	rec  Record
	err  error
}

func NewScanner(r io.Reader) *Scanner {
	// Drop a leading byte order mark, pass everything else through.
	r = transform.NewReader(r, unicode.BOMOverride(transform.Nop))

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), math.MaxInt)
	sc.Split(scanLines)
	return &Scanner{sc: sc}
}

// Scan advances to the next record, skipping blank and malformed lines.
// It returns false at end of input or on error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	for s.sc.Scan() {
		s.line++

		text := s.sc.Text()
		if !utf8.ValidString(text) {
			s.err = &EncodingError{Line: s.line}
			return false
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		fields := strings.Split(text, Separator)
		if len(fields) != NumFields {
			if s.Warn != nil {
				s.Warn(&MalformedLineError{Line: s.line, Text: text, Fields: len(fields)})
			}
			continue
		}

		s.rec = Record{
			Folder:   fields[0],
			ChipArea: ParseNumber(fields[1]),
			Slack:    ParseNumber(fields[2]),
		}
		return true
	}

	if err := s.sc.Err(); err != nil {
		s.err = fmt.Errorf("line %d: %w", s.line+1, err)
	}
	return false
}

// Record returns the record read by the last successful Scan.
func (s *Scanner) Record() Record {
	return s.rec
}

// Line returns the number of the last line read, starting at one.
func (s *Scanner) Line() int {
	return s.line
}

func (s *Scanner) Err() error {
	return s.err
}

// Parse reads all records from r in input order. warn may be nil.
func Parse(r io.Reader, warn func(*MalformedLineError)) ([]Record, error) {
	sc := NewScanner(r)
	sc.Warn = warn

	var recs []Record
	for sc.Scan() {
		recs = append(recs, sc.Record())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// ParseFile is Parse on the named file.
func ParseFile(path string, warn func(*MalformedLineError)) ([]Record, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	recs, err := Parse(fd, warn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
