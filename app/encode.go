package app

import (
	"log"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"yatl/alg/planar"
	"yatl/nlp/format/conllu"
	"yatl/nlp/format/seqtag"
	nlp "yatl/nlp/types"
)

func EncodeConfigOut() {
	log.Println("Configuration")
	log.Printf("Encoding:\t\t%s", encName)
	log.Printf("Partition policy:\t%s", policy)
	log.Printf("Label separator:\t%s", sepStr)
	log.Printf("Concurrent:\t\t%v", ConcurrentEnc)
	log.Println()
	log.Println("Data")
	log.Printf("Input file  (conllu):\t%s", input)
	log.Printf("Output file (labels):\t%s", output)
}

func Encode(cmd *commander.Command, args []string) error {
	VerifyFlags(cmd, []string{"in", "out"})
	if allOut {
		EncodeConfigOut()
	}
	encoding, ok := NewEncoding(encName, policy, Separator())
	if !ok {
		log.Fatalln("Unknown encoding/policy", encName, policy)
	}
	if !VerifyExists(input) {
		log.Fatalln("Input file not found")
	}

	sents, err := conllu.ReadFile(input, limit)
	if err != nil {
		log.Fatalln(err)
	}
	if allOut {
		log.Println("Read", len(sents), "sentences from", input)
		log.Println("Converting from conllu to internal format")
	}
	trees, err := conllu.ConllU2TreeCorpus(sents)
	if err != nil {
		log.Fatalln(err)
	}

	if allOut {
		log.Println("Linearizing with", encoding)
	}
	linearized := make([]*nlp.LinearizedTree, len(trees))
	droppedArcs := make([][]planar.Arc, len(trees))
	errs := make([]error, len(trees))
	forEachIndex(len(trees), ConcurrentEnc, func(i int) {
		linearized[i], droppedArcs[i], errs[i] = encoding.Encode(trees[i])
	})

	encoded := make([]*nlp.LinearizedTree, 0, len(trees))
	skipped, dropped := 0, 0
	for i := range trees {
		if errs[i] != nil {
			log.Println("Skipping sentence", i+1, ":", errs[i])
			skipped++
			continue
		}
		if len(droppedArcs[i]) > 0 {
			log.Println("Warning: sentence", i+1, "has", len(droppedArcs[i]),
				"arc(s) no plane could hold; their dependents fall back to the root")
			dropped += len(droppedArcs[i])
		}
		encoded = append(encoded, linearized[i])
	}

	if err := seqtag.WriteFile(output, encoded, Separator()); err != nil {
		log.Fatalln(err)
	}
	if allOut {
		log.Println("Wrote", len(encoded), "sentences to", output)
		if skipped > 0 {
			log.Println("Skipped", skipped, "malformed sentence(s)")
		}
		if dropped > 0 {
			log.Println("Dropped", dropped, "unencodable arc(s)")
		}
	}
	return nil
}

func EncodeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Encode,
		UsageLine: "encode <file options> [arguments]",
		Short:     "linearizes a dependency corpus into sequence-tagging labels",
		Long: `
linearizes a dependency corpus into sequence-tagging labels

	$ ./yatl encode -in <conllu> -out <labels> [-enc brk2p|abs|rel] [-policy greedy|propagate] [options]

`,
		Flag: *flag.NewFlagSet("encode", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "in", "", "Input CoNLL-U File (.gz accepted)")
	cmd.Flag.StringVar(&output, "out", "", "Output Labels File (.gz accepted)")
	cmd.Flag.StringVar(&encName, "enc", "brk2p", "Encoding [brk2p, abs, rel]")
	cmd.Flag.StringVar(&policy, "policy", "greedy", "Plane partition policy [greedy, propagate]")
	cmd.Flag.StringVar(&sepStr, "sep", "_", "Label payload/relation separator")
	cmd.Flag.IntVar(&limit, "limit", 0, "Limit input corpus size")
	cmd.Flag.BoolVar(&ConcurrentEnc, "conc", true, "Concurrent linearization")
	return cmd
}
