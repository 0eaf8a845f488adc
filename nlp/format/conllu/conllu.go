package conllu

// Package conllu reads and writes CoNLL-U format corpora as flat
// dependency trees. For a description of the format see
// https://universaldependencies.org/format.html

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	nlp "yatl/nlp/types"
)

const (
	FieldSeparator = "\t"
	NumFields      = 10
)

// A Row is a single parsed row of a CoNLL-U data set.
type Row struct {
	ID      int
	Form    string
	Lemma   string
	UPosTag string
	XPosTag string
	Feats   nlp.Features
	FeatStr string
	Head    int
	DepRel  string
	Deps    string
	Misc    string
}

func (r Row) String() string {
	fields := []string{
		fmt.Sprintf("%d", r.ID),
		r.Form,
		r.Lemma,
		r.UPosTag,
		r.XPosTag,
		r.FeatStr,
		fmt.Sprintf("%d", r.Head),
		r.DepRel,
		r.Deps,
		r.Misc,
	}
	for i, field := range fields {
		if len(field) == 0 {
			fields[i] = "_"
		}
	}
	return strings.Join(fields, FieldSeparator)
}

// A Sentence is an ordered row sequence plus its leading comments.
type Sentence struct {
	Rows     []Row
	Comments []string
}

type Sentences []*Sentence

func ParseInt(value string) (int, error) {
	if value == "_" {
		return 0, nil
	}
	i, err := strconv.ParseInt(value, 10, 0)
	return int(i), err
}

func ParseString(value string) string {
	if value == "_" {
		return ""
	}
	return value
}

func ParseRow(record []string) (Row, error) {
	var row Row
	id, err := ParseInt(record[0])
	if err != nil {
		return row, fmt.Errorf("error parsing ID field (%s): %s", record[0], err.Error())
	}
	row.ID = id
	row.Form = record[1]
	row.Lemma = ParseString(record[2])
	row.UPosTag = ParseString(record[3])
	row.XPosTag = ParseString(record[4])

	features, err := nlp.ParseFeatures(record[5])
	if err != nil {
		return row, fmt.Errorf("error parsing FEATS field (%s): %s", record[5], err.Error())
	}
	row.Feats = features
	row.FeatStr = ParseString(record[5])

	head, err := ParseInt(record[6])
	if err != nil {
		return row, fmt.Errorf("error parsing HEAD field (%s): %s", record[6], err.Error())
	}
	row.Head = head
	row.DepRel = ParseString(record[7])
	row.Deps = ParseString(record[8])
	row.Misc = ParseString(record[9])
	return row, nil
}

// Read parses sentences until EOF or limit (0 means no limit). Multiword
// token rows (id "a-b") and empty nodes (id "a.b") do not take part in the
// dependency tree and are skipped.
func Read(reader io.Reader, limit int) (Sentences, error) {
	var sentences Sentences
	currentSent := &Sentence{}
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 16384), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		curLine := scanner.Text()
		if len(curLine) == 0 {
			if len(currentSent.Rows) > 0 {
				sentences = append(sentences, currentSent)
				currentSent = &Sentence{}
				if limit > 0 && len(sentences) >= limit {
					return sentences, nil
				}
			}
			continue
		}
		if curLine[0] == '#' {
			currentSent.Comments = append(currentSent.Comments, curLine)
			continue
		}
		record := strings.Split(curLine, FieldSeparator)
		if len(record) != NumFields {
			return nil, fmt.Errorf("line %d: %d fields, need %d", line, len(record), NumFields)
		}
		if strings.ContainsAny(record[0], "-.") {
			continue
		}
		row, err := ParseRow(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", line, err.Error())
		}
		currentSent.Rows = append(currentSent.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(currentSent.Rows) > 0 {
		sentences = append(sentences, currentSent)
	}
	return sentences, nil
}

func ReadFile(filename string, limit int) (Sentences, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	reader, err := maybeGunzip(file, filename)
	if err != nil {
		return nil, err
	}
	return Read(reader, limit)
}

func Write(writer io.Writer, sents Sentences) error {
	for _, sent := range sents {
		for _, comment := range sent.Comments {
			if _, err := fmt.Fprintln(writer, comment); err != nil {
				return err
			}
		}
		for _, row := range sent.Rows {
			if _, err := fmt.Fprintln(writer, row.String()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
	}
	return nil
}

func WriteFile(filename string, sents Sentences) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	writer, closeWriter := maybeGzip(file, filename)
	if err := Write(writer, sents); err != nil {
		closeWriter()
		return err
	}
	return closeWriter()
}

// maybeGunzip wraps the reader for transparent decompression when the
// file carries a .gz suffix.
func maybeGunzip(reader io.Reader, filename string) (io.Reader, error) {
	if !strings.HasSuffix(filename, ".gz") {
		return reader, nil
	}
	return gzip.NewReader(reader)
}

func maybeGzip(writer io.Writer, filename string) (io.Writer, func() error) {
	if !strings.HasSuffix(filename, ".gz") {
		return writer, func() error { return nil }
	}
	zw := gzip.NewWriter(writer)
	return zw, zw.Close
}

// Sentence2Tree converts a parsed sentence to the internal tree model.
// Row ids must be the dense range 1..n in order.
func Sentence2Tree(sent *Sentence) (*nlp.DepTree, error) {
	tree := nlp.NewDepTree(len(sent.Rows))
	for i, row := range sent.Rows {
		if row.ID != i+1 {
			return nil, errors.New("non-contiguous row ids: expected " +
				strconv.Itoa(i+1) + ", got " + strconv.Itoa(row.ID))
		}
		tree.UpdateWord(row.ID, row.Form)
		tree.UpdatePOS(row.ID, row.UPosTag)
		tree.UpdateRelation(row.ID, row.DepRel)
		tree.UpdateHead(row.ID, row.Head)
		tree.UpdateFeatures(row.ID, row.FeatStr)
	}
	return tree, nil
}

func Tree2Sentence(tree *nlp.DepTree) *Sentence {
	sent := &Sentence{Rows: make([]Row, tree.Len())}
	for id := 1; id <= tree.Len(); id++ {
		node := tree.Nodes[id]
		sent.Rows[id-1] = Row{
			ID:      id,
			Form:    node.Word,
			UPosTag: node.POS,
			Feats:   node.Feats,
			FeatStr: node.FeatStr,
			Head:    node.Head,
			DepRel:  node.Relation,
		}
	}
	return sent
}

func ConllU2TreeCorpus(corpus Sentences) ([]*nlp.DepTree, error) {
	trees := make([]*nlp.DepTree, len(corpus))
	for i, sent := range corpus {
		tree, err := Sentence2Tree(sent)
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %s", i+1, err.Error())
		}
		trees[i] = tree
	}
	return trees, nil
}

func Tree2ConllUCorpus(trees []*nlp.DepTree) Sentences {
	corpus := make(Sentences, len(trees))
	for i, tree := range trees {
		corpus[i] = Tree2Sentence(tree)
	}
	return corpus
}
