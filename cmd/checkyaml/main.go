// Command checkyaml runs a braille translation test document against an
// external translation command and reports the aggregated results.
//
// Usage:
//
//	checkyaml [-translator cmd] [-json] file.yaml
//
// The exit code is 0 when every test case met its expectation, 1 on any
// test failure or malformed document, and 2 on usage errors.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	j "github.com/goccy/go-json"

	louis "github.com/jcsteh/liblouis"
	"github.com/jcsteh/liblouis/checkyaml"
	"github.com/jcsteh/liblouis/internal/event"
	"github.com/jcsteh/liblouis/source/jsonsource"
	"github.com/jcsteh/liblouis/source/yamlsource"
)

func main() {
	var translator string
	var jsonOut bool
	flag.StringVar(&translator, "translator", "lou_translate", "external translation command test cases are checked against")
	flag.BoolVar(&jsonOut, "json", false, "additionally write the run summary as JSON on stdout")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	file := flag.Arg(0)

	data, err := os.ReadFile(file)
	if err != nil {
		fatalf("%v", err)
	}

	var src event.Source
	if strings.EqualFold(filepath.Ext(file), ".json") {
		src, err = jsonsource.NewBytes(data)
	} else {
		src, err = yamlsource.NewBytes(data)
	}
	if err != nil {
		fatalf("%s: %v", file, err)
	}

	r := &checkyaml.Runner{
		File:  file,
		Check: louis.CommandChecker(translator),
		Out:   os.Stdout,
	}
	sum, err := r.Run(src)
	if err != nil {
		// GrammarError already carries the file:line prefix.
		fatalf("%v", err)
	}
	if jsonOut {
		enc := j.NewEncoder(os.Stdout)
		if err := enc.Encode(sum); err != nil {
			fatalf("encoding summary: %v", err)
		}
	}
	if !sum.Passed() {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: checkyaml [-translator cmd] [-json] file.yaml")
	flag.PrintDefaults()
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
