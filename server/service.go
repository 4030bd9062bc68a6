// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package server serves the operand parser and evaluator over JSON-RPC 2.0.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"slices"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/ezrec/mipslang/expr"
	"github.com/ezrec/mipslang/parser"
	"github.com/ezrec/mipslang/source"
	"github.com/ezrec/mipslang/symbols"
)

// Service answers operand requests against a shared symbol table.
type Service struct {
	Verbose bool           // If set, logs every request and message.
	Symbols *symbols.Table // Symbols visible to every request.
}

// NewService returns a service resolving names with tbl. A nil tbl is
// replaced by an empty table.
func NewService(tbl *symbols.Table) *Service {
	if tbl == nil {
		tbl = symbols.NewTable()
	}
	return &Service{Symbols: tbl}
}

// Handler returns the JSON-RPC handler of the service.
func (svc *Service) Handler() jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(svc.handle)
}

func (svc *Service) connOpts() (opts []jsonrpc2.ConnOpt) {
	if svc.Verbose {
		opts = append(opts, jsonrpc2.LogMessages(log.Default()))
	}
	return
}

// decode unmarshals the request parameters into params.
func decode(req *jsonrpc2.Request, params any) (err error) {
	if req.Params == nil || string(*req.Params) == "null" {
		err = &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: f("missing parameters")}
		return
	}

	err = json.Unmarshal(*req.Params, params)
	if err != nil {
		err = &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
	}
	return
}

func (svc *Service) handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (result any, err error) {
	if svc.Verbose {
		log.Printf("server: request %v", req.Method)
	}

	switch req.Method {
	case "evaluate":
		var params EvaluateParams
		if err = decode(req, &params); err != nil {
			return
		}
		return svc.Evaluate(params)
	case "register":
		var params RegisterParams
		if err = decode(req, &params); err != nil {
			return
		}
		return svc.Register(params)
	case "literal":
		var params LiteralParams
		if err = decode(req, &params); err != nil {
			return
		}
		return svc.Literal(params)
	case "define":
		var params DefineParams
		if err = decode(req, &params); err != nil {
			return
		}
		return svc.Define(params)
	case "symbols":
		values := map[string]uint32{}
		for name := range svc.Symbols.Names() {
			values[name], _ = svc.Symbols.Lookup(name)
		}
		return values, nil
	case "shutdown", "exit":
		conn.Close()
		return nil, nil
	}

	err = &jsonrpc2.Error{
		Code:    jsonrpc2.CodeMethodNotFound,
		Message: ErrMethod(req.Method).Error(),
	}
	return
}

// Evaluate parses and evaluates an operand expression.
func (svc *Service) Evaluate(params EvaluateParams) (result *EvaluateResult, err error) {
	op, err := parser.ParseExpression(params.Text)
	if err != nil {
		err = replyError(params.Text, err)
		return
	}

	resolve := func(name string) (uint32, error) {
		if value, ok := params.Symbols[name]; ok {
			return value, nil
		}
		return svc.Symbols.Resolve(name)
	}

	value, err := expr.Eval(op, resolve)
	if err != nil {
		err = replyError(params.Text, err)
		return
	}

	result = &EvaluateResult{
		Unsigned:  value.Unsigned(),
		Signed:    value.Signed(),
		Tree:      op.String(),
		Variables: slices.Collect(expr.Variables(op)),
	}
	if result.Variables == nil {
		result.Variables = []string{}
	}
	return
}

// Register parses a general purpose or floating point register.
func (svc *Service) Register(params RegisterParams) (result *RegisterResult, err error) {
	if params.Float {
		reg, perr := parser.ParseFpRegister(params.Text)
		if perr != nil {
			err = replyError(params.Text, perr)
			return
		}
		result = &RegisterResult{Index: reg.Index(), Name: reg.String()}
		return
	}

	reg, err := parser.ParseRegister(params.Text)
	if err != nil {
		err = replyError(params.Text, err)
		return
	}

	result = &RegisterResult{Index: reg.Index(), Name: reg.String(), Alias: reg.Alias()}
	return
}

// Literal decodes a single literal of the requested kind.
func (svc *Service) Literal(params LiteralParams) (result *LiteralResult, err error) {
	result = &LiteralResult{}

	switch params.Kind {
	case LITERAL_NUMBER, "":
		result.Value, err = parser.Complete(params.Text, parser.Unsigned)
	case LITERAL_INT:
		result.Value, err = parser.Complete(params.Text, parser.Int)
	case LITERAL_CHAR:
		result.Value, err = parser.Complete(params.Text, parser.Char)
	case LITERAL_FLOAT:
		result.Value, err = parser.Complete(params.Text, parser.Double)
	case LITERAL_STRING:
		var bytes []byte
		bytes, err = parser.Complete(params.Text, parser.String)
		for _, b := range bytes {
			result.Bytes = append(result.Bytes, int(b))
		}
	default:
		err = &jsonrpc2.Error{
			Code:    jsonrpc2.CodeInvalidParams,
			Message: f("%v: '%v'", ErrLiteralKind, params.Kind),
		}
		return nil, err
	}

	if err != nil {
		return nil, replyError(params.Text, err)
	}

	return
}

// Define sets a symbol of the shared table to the value of an expression.
func (svc *Service) Define(params DefineParams) (result *DefineResult, err error) {
	value, err := svc.Symbols.DefineExpr(params.Name, params.Text)
	if err != nil {
		err = replyError(params.Text, err)
		return
	}

	if svc.Verbose {
		log.Printf("server: define %v = %#x", params.Name, value)
	}

	result = &DefineResult{Value: value}
	return
}

// position converts a source position to a 0-based text position.
func position(pos source.Position) TextPosition {
	return TextPosition{Line: pos.Line - 1, Char: pos.Column - 1}
}

// NewDiagnostic describes err, which occurred while handling text.
// Parse errors are located at their failure; any other error covers
// all of text.
func NewDiagnostic(text string, err error) (diag Diagnostic) {
	diag = Diagnostic{
		Message:  err.Error(),
		Source:   "mipslang",
		Severity: SEVERITY_ERROR,
	}

	var perr *parser.Error
	if errors.As(err, &perr) {
		start := perr.Span.Position
		end := start
		if !perr.Span.Empty() && perr.Span.Peek() != '\n' {
			end.Column++
		}
		diag.Kind = perr.Kind.String()
		diag.Range = TextRange{Start: position(start), End: position(end)}
		return
	}

	diag.Kind = "evaluation"
	whole := source.New(text)
	diag.Range = TextRange{
		Start: position(whole.Position),
		End:   position(whole.Advance(whole.Len()).Position),
	}
	return
}

// replyError converts err into a JSON-RPC error carrying its Diagnostic.
func replyError(text string, err error) error {
	var rpcErr *jsonrpc2.Error
	if errors.As(err, &rpcErr) {
		return rpcErr
	}

	code := CODE_EVALUATION
	var perr *parser.Error
	if errors.As(err, &perr) {
		code = CODE_SYNTAX
	}

	rpcErr = &jsonrpc2.Error{Code: code, Message: err.Error()}
	rpcErr.SetError(NewDiagnostic(text, err))
	return rpcErr
}
