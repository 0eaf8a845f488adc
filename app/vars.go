package app

import (
	"log"
	"os"
	"runtime"
	"sync"

	"github.com/gonuts/commander"

	"yatl/alg/planar"
	"yatl/nlp/encode"
	"yatl/nlp/encode/bracket"
	"yatl/nlp/encode/offset"
)

var (
	allOut bool = true

	// processing options
	ConcurrentEnc bool

	// file names
	input   string
	output  string
	encName string
	policy  string
	sepStr  string
	limit   int
)

// NewEncoding instantiates the encoding selected on the command line.
func NewEncoding(name, policyName string, separator byte) (encode.Encoding, bool) {
	switch name {
	case "brk2p":
		partitionPolicy, ok := planar.PolicyFromString(policyName)
		if !ok {
			return nil, false
		}
		return bracket.Encoding{Separator: separator, Policy: partitionPolicy}, true
	case "abs":
		return offset.Encoding{Separator: separator, Variant: offset.Absolute}, true
	case "rel":
		return offset.Encoding{Separator: separator, Variant: offset.Relative, HangFromRoot: true}, true
	}
	return nil, false
}

func Separator() byte {
	if len(sepStr) != 1 {
		log.Fatalln("Separator must be a single character, got", sepStr)
	}
	return sepStr[0]
}

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		log.Println("Error accessing file", filename)
		log.Println(err)
		return false
	}
	return true
}

func VerifyFlags(cmd *commander.Command, required []string) {
	for _, flag := range required {
		f := cmd.Flag.Lookup(flag)
		if f.Value.String() == "" {
			log.Printf("Required flag %s not set", f.Name)
			cmd.Usage()
			os.Exit(1)
		}
	}
}

// forEachIndex runs f over 0..n-1, fanning out to one worker per CPU
// when concurrent. Results keyed by index stay ordered; the encodings
// themselves are read-only, so sentences are embarrassingly parallel.
func forEachIndex(n int, concurrent bool, f func(i int)) {
	if !concurrent {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}
	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	var wg sync.WaitGroup
	for w := 0; w < runtime.GOMAXPROCS(0); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				f(i)
			}
		}()
	}
	wg.Wait()
}
