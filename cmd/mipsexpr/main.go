// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ezrec/mipslang/parser"
	"github.com/ezrec/mipslang/server"
	"github.com/ezrec/mipslang/symbols"
	"github.com/ezrec/mipslang/translate"
)

// defines collects repeated -D NAME=EXPR flags.
type defines []string

func (d *defines) String() string {
	return strings.Join(*d, ",")
}

func (d *defines) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("%v: expected NAME=EXPR", value)
	}
	*d = append(*d, value)
	return nil
}

// report prints err against the text it occurred in, marking the column
// of a parse failure.
func report(text string, err error) {
	fmt.Fprintf(os.Stderr, "%v: %v\n", text, err)

	var perr *parser.Error
	if errors.As(err, &perr) && perr.Span.Line == 1 {
		fmt.Fprintf(os.Stderr, "  %v\n  %v^\n", text, strings.Repeat(" ", perr.Span.Column-1))
	}
}

func main() {
	var predefine defines
	var scripts []string
	var lang string
	var reg bool
	var fp bool
	var str bool
	var char bool
	var serve string
	var ws string
	var stdio bool
	var verbose bool

	flag.Var(&predefine, "D", "Define symbol NAME=EXPR (repeatable)")
	flag.Func("s", "Starlark symbol script to load (repeatable)", func(value string) error {
		scripts = append(scripts, value)
		return nil
	})
	flag.StringVar(&lang, "lang", "", "Message language, ie en-US")
	flag.BoolVar(&reg, "reg", false, "Arguments are general purpose registers")
	flag.BoolVar(&fp, "fp", false, "Arguments are floating point registers")
	flag.BoolVar(&str, "string", false, "Arguments are string literals")
	flag.BoolVar(&char, "char", false, "Arguments are character literals")
	flag.StringVar(&serve, "serve", "", "Serve JSON-RPC on TCP address")
	flag.StringVar(&ws, "ws", "", "Serve JSON-RPC over websocket on address")
	flag.BoolVar(&stdio, "stdio", false, "Serve JSON-RPC on stdin/stdout")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if len(lang) != 0 {
		err := translate.SetLanguage(lang)
		if err != nil {
			log.Fatalf("%v: %v", lang, err)
		}
	}

	tbl := symbols.NewTable()
	tbl.Verbose = verbose

	for _, script := range scripts {
		err := tbl.LoadStarlark(script, nil)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	for _, def := range predefine {
		name, text, _ := strings.Cut(def, "=")
		_, err := tbl.DefineExpr(name, text)
		if err != nil {
			log.Fatalf("-D %v: %v", def, err)
		}
	}

	if len(serve) != 0 || len(ws) != 0 || stdio {
		if flag.NArg() != 0 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}

		svc := server.NewService(tbl)
		svc.Verbose = verbose

		ctx := context.Background()
		errs := make(chan error, 2)
		servers := 0
		if len(serve) != 0 {
			servers++
			go func() { errs <- svc.ListenAndServe(ctx, serve) }()
		}
		if len(ws) != 0 {
			servers++
			go func() { errs <- svc.ListenAndServeWebsocket(ws) }()
		}
		if stdio {
			svc.ServeStdio(ctx)
			return
		}

		for range servers {
			err := <-errs
			if err != nil {
				log.Fatalf("%v: %v", os.Args[0], err)
			}
		}
		return
	}

	failed := false
	for _, text := range flag.Args() {
		var err error
		switch {
		case reg:
			r, perr := parser.ParseRegister(text)
			err = perr
			if err == nil {
				fmt.Printf("%v %v %v\n", r.Index(), r, r.Alias())
			}
		case fp:
			r, perr := parser.ParseFpRegister(text)
			err = perr
			if err == nil {
				fmt.Printf("%v %v\n", r.Index(), r)
			}
		case str:
			bytes, perr := parser.Complete(text, parser.String)
			err = perr
			if err == nil {
				fmt.Printf("% x\n", bytes)
			}
		case char:
			c, perr := parser.Complete(text, parser.Char)
			err = perr
			if err == nil {
				fmt.Printf("0x%02x %d\n", c, c)
			}
		default:
			value, perr := tbl.Evaluate(text)
			err = perr
			if err == nil {
				fmt.Printf("0x%08x %d\n", value.Unsigned(), value.Signed())
			}
		}

		if err != nil {
			report(text, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
