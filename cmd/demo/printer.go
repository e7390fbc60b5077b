package main

import (
	"fmt"
	"io"
)

type Printer struct {
	out     io.Writer
	quiet   bool
	steps   uint64
	finds   uint64
	errors  uint64
	maxSize int
}

func (p *Printer) OnStep(title string, rendered string, size int) {
	p.steps++
	if size > p.maxSize {
		p.maxSize = size
	}
	if !p.quiet {
		fmt.Fprintln(p.out, title)
	}
	fmt.Fprintln(p.out, rendered)
}

func (p *Printer) OnFind(value string, found int) {
	p.finds++
	fmt.Fprintf(p.out, "Found %d node(s) holding %s\n", found, value)
}

func (p *Printer) OnError(step string, err error) {
	p.errors++
	fmt.Fprintf(p.out, "Step %q failed: %s\n", step, err)
}

func (p *Printer) PrintStatistics() {
	fmt.Fprintln(p.out, "Steps:", p.steps)
	fmt.Fprintln(p.out, "Finds:", p.finds)
	fmt.Fprintln(p.out, "Errors:", p.errors)
	fmt.Fprintln(p.out, "Max list size:", p.maxSize)
}
