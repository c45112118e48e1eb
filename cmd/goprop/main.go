package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	j "github.com/goccy/go-json"

	goprop "github.com/reoring/goprop"
	"github.com/reoring/goprop/ruleset"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "check":
		checkCmd(os.Args[2:])
	case "rules":
		rulesCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "goprop CLI\n\nUsage:\n  goprop check -rules rules.yaml [document.json]\n  goprop rules -rules rules.yaml\n\nNotes:\n  - check re-encodes the document's top-level properties through a validating\n    session and exits 1 when any rule fails; the report goes to stderr.\n  - reads the document from stdin when no file is given.")
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var rulesPath string
	var order string
	fs.StringVar(&rulesPath, "rules", "", "YAML ruleset file")
	fs.StringVar(&order, "order", "sorted", "sink ordering: unordered|insertion|reverse|sorted")
	_ = fs.Parse(args)
	if rulesPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	vld := loadRules(rulesPath)
	doc := readDocument(fs.Args())

	var props map[string]any
	if err := j.Unmarshal(doc, &props); err != nil {
		fatalf("parse document: %v", err)
	}

	e := goprop.NewEncoder(goprop.EncodeOpt{Order: orderFromName(order), Validator: vld})
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		e.Property(name, props[name])
	}

	fmt.Fprintln(os.Stdout, e.Document())
	if e.HasIssues() {
		fmt.Fprint(os.Stderr, e.Report())
		os.Exit(1)
	}
}

func rulesCmd(args []string) {
	fs := flag.NewFlagSet("rules", flag.ExitOnError)
	var rulesPath string
	fs.StringVar(&rulesPath, "rules", "", "YAML ruleset file")
	_ = fs.Parse(args)
	if rulesPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	vld := loadRules(rulesPath)
	for _, line := range vld.Rules() {
		fmt.Fprintln(os.Stdout, line)
	}
}

func loadRules(path string) *goprop.Validator {
	b, err := os.ReadFile(path)
	if err != nil {
		fatalf("read rules: %v", err)
	}
	vld, err := ruleset.FromYAML(b)
	if err != nil {
		fatalf("%v", err)
	}
	return vld
}

func readDocument(args []string) []byte {
	if len(args) > 0 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			fatalf("read document: %v", err)
		}
		return b
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatalf("read stdin: %v", err)
	}
	return b
}

func orderFromName(name string) goprop.Order {
	switch name {
	case "insertion":
		return goprop.OrderInsertion
	case "reverse":
		return goprop.OrderReverse
	case "sorted":
		return goprop.OrderSorted
	default:
		return goprop.OrderUnordered
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
