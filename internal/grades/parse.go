package grades

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrMalformedRecord = errors.New("malformed record")

// columns of a dataset line; column 7 is a placeholder and is never read.
const (
	columnYear = iota
	columnTerm
	columnDepartment
	columnCourseNumber
	columnCourseCode
	columnSection
	columnTitle
	_
	columnInstructor
	columnA

	columnsCount = columnA + len(Distribution{})
)

// Parse reads tab separated records, one per line. A trailing blank line is
// discarded.
func Parse(r io.Reader) ([]Record, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	records := make([]Record, 0, len(lines))
	for i, line := range lines {
		record, err := parseLine(strings.TrimSuffix(line, "\r"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		record.ID = len(records)
		records = append(records, *record)
	}
	return records, nil
}

func parseLine(line string) (*Record, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < columnsCount {
		return nil, fmt.Errorf("%w: got %d fields, need %d", ErrMalformedRecord, len(fields), columnsCount)
	}
	record := &Record{
		Year:         fields[columnYear],
		Term:         Term(fields[columnTerm]),
		Department:   fields[columnDepartment],
		CourseNumber: fields[columnCourseNumber],
		CourseCode:   fields[columnCourseCode],
		Section:      fields[columnSection],
		Title:        fields[columnTitle],
		Instructor:   fields[columnInstructor],
	}
	for i := range record.Distribution {
		raw := strings.TrimSpace(fields[columnA+i])
		count, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: grade count %q", ErrMalformedRecord, raw)
		}
		if count < 0 {
			return nil, fmt.Errorf("%w: negative grade count %d", ErrMalformedRecord, count)
		}
		record.Distribution[i] = count
	}
	return record, nil
}
