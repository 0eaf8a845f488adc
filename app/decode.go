package app

import (
	"log"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"yatl/nlp/format/conllu"
	"yatl/nlp/format/seqtag"
	nlp "yatl/nlp/types"
)

func DecodeConfigOut() {
	log.Println("Configuration")
	log.Printf("Encoding:\t\t%s", encName)
	log.Printf("Label separator:\t%s", sepStr)
	log.Printf("Concurrent:\t\t%v", ConcurrentEnc)
	log.Println()
	log.Println("Data")
	log.Printf("Input file  (labels):\t%s", input)
	log.Printf("Output file (conllu):\t%s", output)
}

func Decode(cmd *commander.Command, args []string) error {
	VerifyFlags(cmd, []string{"in", "out"})
	if allOut {
		DecodeConfigOut()
	}
	encoding, ok := NewEncoding(encName, policy, Separator())
	if !ok {
		log.Fatalln("Unknown encoding/policy", encName, policy)
	}
	if !VerifyExists(input) {
		log.Fatalln("Input file not found")
	}

	corpus, err := seqtag.ReadFile(input, Separator(), limit)
	if err != nil {
		log.Fatalln(err)
	}
	if allOut {
		log.Println("Read", len(corpus), "label sequences from", input)
		log.Println("Rebuilding trees with", encoding)
	}

	trees := make([]*nlp.DepTree, len(corpus))
	errs := make([]error, len(corpus))
	forEachIndex(len(corpus), ConcurrentEnc, func(i int) {
		trees[i], errs[i] = encoding.Decode(corpus[i])
	})

	decoded := make([]*nlp.DepTree, 0, len(corpus))
	for i := range corpus {
		if errs[i] != nil {
			log.Println("Skipping sequence", i+1, ":", errs[i])
			continue
		}
		decoded = append(decoded, trees[i])
	}

	if err := conllu.WriteFile(output, conllu.Tree2ConllUCorpus(decoded)); err != nil {
		log.Fatalln(err)
	}
	if allOut {
		log.Println("Wrote", len(decoded), "in conllu format to", output)
	}
	return nil
}

func DecodeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Decode,
		UsageLine: "decode <file options> [arguments]",
		Short:     "rebuilds a dependency corpus from sequence-tagging labels",
		Long: `
rebuilds a dependency corpus from sequence-tagging labels

	$ ./yatl decode -in <labels> -out <conllu> [-enc brk2p|abs|rel] [options]

`,
		Flag: *flag.NewFlagSet("decode", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "in", "", "Input Labels File (.gz accepted)")
	cmd.Flag.StringVar(&output, "out", "", "Output CoNLL-U File (.gz accepted)")
	cmd.Flag.StringVar(&encName, "enc", "brk2p", "Encoding [brk2p, abs, rel]")
	cmd.Flag.StringVar(&policy, "policy", "greedy", "Plane partition policy [greedy, propagate]")
	cmd.Flag.StringVar(&sepStr, "sep", "_", "Label payload/relation separator")
	cmd.Flag.IntVar(&limit, "limit", 0, "Limit input corpus size")
	cmd.Flag.BoolVar(&ConcurrentEnc, "conc", true, "Concurrent decoding")
	return cmd
}
