// Package repl implements the interactive Read-Eval-Print Loop.
//
// Grounded on the teacher's repl/repl.go: readline for line editing and
// history, fatih/color for feedback coloring. Rebuilt against MIL's
// lexer/parser/eval/object stack instead of go-mix's parser/eval, and
// narrowed to spec.md §6.3's exact contract: prompt ">>", tab-prefixed
// parse errors (one per line), results via Inspect(), persistent
// environment across lines, EOF terminates the loop.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/dariusmocan/interpreter/environment"
	"github.com/dariusmocan/interpreter/eval"
	"github.com/dariusmocan/interpreter/lexer"
	"github.com/dariusmocan/interpreter/object"
	"github.com/dariusmocan/interpreter/parser"
	"github.com/dariusmocan/interpreter/token"
)

// PROMPT is the REPL prompt mandated by spec.md §6.3, used when
// Repl.Prompt is empty.
const PROMPT = ">>"

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the REPL's ambient presentation (banner, version, license)
// that sits outside the interpreter core (spec.md §1 names the REPL loop
// as an external collaborator, not part of the evaluated core).
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl constructs a Repl with the given banner/metadata.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner, mirroring the teacher's
// color scheme (blue separators, green banner, yellow metadata, cyan
// instructions).
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to the MIL REPL!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop: read a line, lex+parse+eval it against a
// persistent environment, print either parse errors or the evaluated
// result, repeat until EOF.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	basePrompt := r.Prompt
	if basePrompt == "" {
		basePrompt = PROMPT
	}

	rl, err := readline.New(basePrompt + " ")
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := environment.New()
	var pending strings.Builder

	for {
		prompt := basePrompt + " "
		if pending.Len() > 0 {
			prompt = strings.Repeat(" ", len(basePrompt)) + ".. "
		}
		rl.SetPrompt(prompt)

		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.TrimRight(line, " \t\r")
		if pending.Len() == 0 && strings.TrimSpace(line) == "" {
			continue
		}
		if pending.Len() == 0 && strings.TrimSpace(line) == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		if pending.Len() > 0 {
			pending.WriteString("\n")
		}
		pending.WriteString(line)

		// Multi-line continuation: an unterminated `{` or `(` keeps
		// reading further lines into the same buffer before parsing,
		// so a function literal or grouped expression can be entered
		// one line at a time.
		if !isBalanced(pending.String()) {
			continue
		}

		input := pending.String()
		pending.Reset()

		rl.SaveHistory(input)
		r.executeWithRecovery(writer, input, env)
	}
}

// isBalanced reports whether input has no unterminated `{`/`(` nesting,
// lexing it the same way the evaluator will so string contents and
// unrecognized bytes never skew the brace count.
func isBalanced(input string) bool {
	l := lexer.New(input)
	depth := 0
	for {
		tok := l.NextToken()
		switch tok.Type {
		case token.LBRACE, token.LPAREN:
			depth++
		case token.RBRACE, token.RPAREN:
			depth--
		case token.EOF:
			return depth <= 0
		}
	}
}

// executeWithRecovery parses and evaluates a single input line,
// recovering from any evaluator panic so a mistake never kills the
// session — the REPL keeps running against the same environment either
// way, per spec.md §7's "runtime errors are recoverable at the REPL
// boundary".
func (r *Repl) executeWithRecovery(writer io.Writer, line string, env *environment.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	l := lexer.New(line)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			redColor.Fprintf(writer, "\t%s\n", msg)
		}
		return
	}

	result := eval.Eval(program, env)
	if result == nil {
		return
	}

	if errObj, ok := result.(*object.Error); ok {
		redColor.Fprintf(writer, "%s\n", errObj.Inspect())
		return
	}

	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
