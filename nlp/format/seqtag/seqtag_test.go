package seqtag

import (
	"reflect"
	"strings"
	"testing"

	nlp "yatl/nlp/types"
)

func sampleCorpus() []*nlp.LinearizedTree {
	return []*nlp.LinearizedTree{
		nlp.NewLinearizedTree([]nlp.LinRow{
			{Word: "she", POS: "PRON", FeatStr: "Case=Nom", Label: nlp.Label{Payload: "<0*", Relation: "nsubj"}},
			{Word: "saw", POS: "VERB", Label: nlp.Label{Payload: "\\0/0", Relation: "root"}},
			{Word: "stars", POS: "NOUN", Label: nlp.Label{Payload: ">0*", Relation: "obj"}},
		}),
		nlp.NewLinearizedTree([]nlp.LinRow{
			{Word: "ok", POS: "INTJ", Label: nlp.Label{Payload: nlp.NoneLabel, Relation: "root"}},
		}),
	}
}

func TestWriteRead(t *testing.T) {
	corpus := sampleCorpus()
	var buf strings.Builder
	if err := Write(&buf, corpus, '_'); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), BeginOfSentence) || !strings.Contains(buf.String(), EndOfSentence) {
		t.Error("boundary rows missing from output")
	}

	reread, err := Read(strings.NewReader(buf.String()), '_', 0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(corpus, reread) {
		t.Error("expected", corpus, "got", reread)
	}
}

func TestReadWithoutBoundaries(t *testing.T) {
	input := "a\tX\t_\t1_dep\nb\tX\t_\t0_root\n\nc\tX\t_\t-NONE-_root\n"
	corpus, err := Read(strings.NewReader(input), '_', 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(corpus) != 2 {
		t.Fatal("expected 2 sentences, got", len(corpus))
	}
	if corpus[0].Len() != 2 || corpus[1].Len() != 1 {
		t.Error("bad sentence lengths:", corpus[0].Len(), corpus[1].Len())
	}
	if corpus[1].Rows[0].Label.Payload != nlp.NoneLabel {
		t.Error("empty-payload sentinel not preserved:", corpus[1].Rows[0].Label)
	}
}

func TestReadLimit(t *testing.T) {
	corpus := sampleCorpus()
	var buf strings.Builder
	if err := Write(&buf, corpus, '_'); err != nil {
		t.Fatal(err)
	}
	limited, err := Read(strings.NewReader(buf.String()), '_', 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 {
		t.Error("expected 1 sentence with limit 1, got", len(limited))
	}
}

func TestNumFeats(t *testing.T) {
	corpus := sampleCorpus()
	if corpus[0].NumFeats != 1 {
		t.Error("expected max feature count 1, got", corpus[0].NumFeats)
	}
}
