package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mspl-lang/gomspl/internal/fileinput"
)

func main() {
	ctx := context.Background()

	var timeout time.Duration
	var trace bool
	var graphOut string
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.StringVar(&graphOut, "graph", "",
		"write a control flow graph to the given path (\".dot\" appended) instead of running")
	flag.Parse()

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if flag.NArg() == 0 {
		if err := repl(ctx, trace); err != nil {
			die(err)
		}
		return
	}

	in, err := fileinput.Load(flag.Arg(0))
	if err != nil {
		die(err)
	}

	src, err := Parse(tokenize(in.Name, in.Lines))
	if err != nil {
		die(err)
	}

	if graphOut != "" {
		fmt.Printf("[Info] Generating .dot file for source file %q\n", in.Name)
		if err := writeGraph(src, graphOut); err != nil {
			die(err)
		}
		fmt.Printf("[Info] .dot file %q generated!\n", graphOut+".dot")
		return
	}

	fmt.Printf("[Info] Running source file %q\n", in.Name)
	opts := []VMOption{
		WithSource(src),
		WithOutput(os.Stdout),
	}
	if trace {
		opts = append(opts, WithLogf(log.Printf))
	}
	vm := New(opts...)
	if err := vm.Run(ctx); err != nil {
		die(err)
	}
	fmt.Printf("[Info] File %q was run!\n", in.Name)
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "[Error] %v\n", err)
	os.Exit(1)
}
