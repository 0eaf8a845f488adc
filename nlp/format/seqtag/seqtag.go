package seqtag

// Package seqtag reads and writes linearized trees as sequence-tagging
// data: one "word TAB tag TAB feats TAB label" row per token, sentences
// separated by blank lines and delimited by -BOS-/-EOS- boundary rows.

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	nlp "yatl/nlp/types"
)

const (
	FieldSeparator = "\t"
	NumFields      = 4

	BeginOfSentence = "-BOS-"
	EndOfSentence   = "-EOS-"
)

func formatRow(row nlp.LinRow, separator byte) string {
	featStr := row.FeatStr
	if featStr == "" {
		featStr = "_"
	}
	fields := []string{row.Word, row.POS, featStr, row.Label.String(separator)}
	for i, field := range fields {
		if len(field) == 0 {
			fields[i] = "_"
		}
	}
	return strings.Join(fields, FieldSeparator)
}

func Write(writer io.Writer, corpus []*nlp.LinearizedTree, separator byte) error {
	boundary := func(marker string) string {
		return strings.Join([]string{marker, marker, marker, marker}, FieldSeparator)
	}
	for _, lt := range corpus {
		if _, err := fmt.Fprintln(writer, boundary(BeginOfSentence)); err != nil {
			return err
		}
		for _, row := range lt.Rows {
			if _, err := fmt.Fprintln(writer, formatRow(row, separator)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(writer, boundary(EndOfSentence)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
	}
	return nil
}

func WriteFile(filename string, corpus []*nlp.LinearizedTree, separator byte) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	var writer io.Writer = file
	closeWriter := func() error { return nil }
	if strings.HasSuffix(filename, ".gz") {
		zw := gzip.NewWriter(file)
		writer, closeWriter = zw, zw.Close
	}
	if err := Write(writer, corpus, separator); err != nil {
		closeWriter()
		return err
	}
	return closeWriter()
}

// Read parses linearized trees until EOF or limit (0 means no limit).
// Boundary rows are recognized by their first column and dropped; a
// blank line closes the current sentence either way, so input without
// -BOS-/-EOS- markers is accepted too.
func Read(reader io.Reader, separator byte, limit int) ([]*nlp.LinearizedTree, error) {
	var corpus []*nlp.LinearizedTree
	var rows []nlp.LinRow
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 16384), 1024*1024)
	line := 0
	flush := func() {
		if len(rows) > 0 {
			corpus = append(corpus, nlp.NewLinearizedTree(rows))
			rows = nil
		}
	}
	for scanner.Scan() {
		line++
		curLine := scanner.Text()
		if len(curLine) == 0 {
			flush()
			if limit > 0 && len(corpus) >= limit {
				return corpus, nil
			}
			continue
		}
		record := strings.Split(curLine, FieldSeparator)
		if record[0] == BeginOfSentence {
			continue
		}
		if record[0] == EndOfSentence {
			flush()
			if limit > 0 && len(corpus) >= limit {
				return corpus, nil
			}
			continue
		}
		if len(record) != NumFields {
			return nil, fmt.Errorf("line %d: %d fields, need %d", line, len(record), NumFields)
		}
		label, err := nlp.ParseLabel(record[3], separator)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", line, err.Error())
		}
		featStr := record[2]
		if featStr == "_" {
			featStr = ""
		}
		rows = append(rows, nlp.LinRow{
			Word:    record[0],
			POS:     record[1],
			FeatStr: featStr,
			Label:   label,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return corpus, nil
}

func ReadFile(filename string, separator byte, limit int) ([]*nlp.LinearizedTree, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var reader io.Reader = file
	if strings.HasSuffix(filename, ".gz") {
		zr, err := gzip.NewReader(file)
		if err != nil {
			return nil, err
		}
		reader = zr
	}
	return Read(reader, separator, limit)
}
