package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aodr3w/doubly/demo"
)

var _ demo.Handler = &Printer{}

func main() {
	var kind, script string
	var quiet, stats bool
	flag.StringVar(&kind, "type", "both", "Value type of the list: int, string or both")
	flag.StringVar(&script, "script", "", "Steps to run instead of the stock script, separated by ';'")
	flag.BoolVar(&quiet, "quiet", false, "Print renderings only, without step titles")
	flag.BoolVar(&stats, "stats", false, "Print statistics after the run")
	flag.Parse()

	printer := &Printer{out: os.Stdout, quiet: quiet}

	runInt := kind == "int" || kind == "both"
	runString := kind == "string" || kind == "both"
	if !runInt && !runString {
		log.Fatalf("unknown value type %q", kind)
	}

	if runInt {
		fmt.Println("----- Integer list demo -----")
		runner := demo.NewRunner(printer, demo.ParseInt)
		if err := runner.Run(pick(script, demo.IntScript)); err != nil {
			log.Fatal(err)
		}
	}

	if runString {
		if runInt {
			fmt.Println()
		}
		fmt.Println("----- String list demo -----")
		runner := demo.NewRunner(printer, demo.ParseString)
		if err := runner.Run(pick(script, demo.StringScript)); err != nil {
			log.Fatal(err)
		}
	}

	if stats {
		fmt.Println()
		printer.PrintStatistics()
	}
}

func pick(script, fallback string) string {
	if script != "" {
		return script
	}
	return fallback
}
