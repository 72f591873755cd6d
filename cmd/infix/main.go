package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tdmoss/infix"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		keep         bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting verb")
	flag.BoolVar(&keep, "k", false, "report errors and continue instead of exiting")
	flag.Parse()
	verb += "\n"

	for _, arg := range flag.Args() {
		eval(arg, verb, keep)
	}

	in, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if in == nil {
		return
	}
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		eval(line, verb, keep)
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

// eval evaluates one expression and prints its result. Errors go to stderr
// and end the process unless keep is set.
func eval(src, verb string, keep bool) {
	r, err := infix.EvalString(src)
	if err != nil {
		if !keep {
			log.Fatal(err)
		}
		log.Print(err)
		return
	}
	fmt.Printf(verb, r)
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
