package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ErrCancelled is returned when the user closes stdin or interrupts a prompt.
var ErrCancelled = errors.New("cancelled by user")

// Prompter asks questions on a line-oriented terminal.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	fd     int
	tty    bool
	lines  chan lineResult
	failed func(string)
}

type lineResult struct {
	text string
	err  error
}

func NewPrompter(in *os.File, out io.Writer) *Prompter {
	fd := int(in.Fd())
	return newPrompter(in, out, fd, term.IsTerminal(fd))
}

func newPrompter(in io.Reader, out io.Writer, fd int, tty bool) *Prompter {
	warn := color.New(color.FgRed)
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		fd:  fd,
		tty: tty,
		failed: func(msg string) {
			_, _ = warn.Fprintf(out, "  ! %s\n", msg)
		},
	}
}

// read returns the next line or ErrCancelled when ctx ends first.
// A read abandoned by ctx is picked up by the next call.
func (p *Prompter) read(ctx context.Context, hidden bool) (string, error) {
	if p.lines == nil {
		p.lines = make(chan lineResult, 1)
		go p.readLine(hidden)
	}
	select {
	case <-ctx.Done():
		return "", ErrCancelled
	case r := <-p.lines:
		p.lines = nil
		if r.err != nil {
			if errors.Is(r.err, io.EOF) {
				return "", ErrCancelled
			}
			return "", r.err
		}
		return r.text, nil
	}
}

func (p *Prompter) readLine(hidden bool) {
	ch := p.lines
	if hidden && p.tty {
		b, err := term.ReadPassword(p.fd)
		_, _ = fmt.Fprintln(p.out)
		ch <- lineResult{text: strings.TrimSpace(string(b)), err: err}
		return
	}
	s, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		ch <- lineResult{err: err}
		return
	}
	ch <- lineResult{text: strings.TrimSpace(s)}
}

func (p *Prompter) label(text, def string) {
	if def != "" {
		_, _ = fmt.Fprintf(p.out, "%s [%s]: ", text, def)
		return
	}
	_, _ = fmt.Fprintf(p.out, "%s: ", text)
}

// Ask repeats the question until validate accepts the answer. An empty answer takes def.
func (p *Prompter) Ask(ctx context.Context, text, def string, validate func(string) error) (string, error) {
	return p.ask(ctx, text, def, false, validate)
}

// Secret is Ask without echo when stdin is a terminal.
func (p *Prompter) Secret(ctx context.Context, text string, validate func(string) error) (string, error) {
	return p.ask(ctx, text, "", true, validate)
}

func (p *Prompter) ask(ctx context.Context, text, def string, hidden bool, validate func(string) error) (string, error) {
	for {
		p.label(text, def)
		s, err := p.read(ctx, hidden)
		if err != nil {
			return "", err
		}
		if s == "" {
			s = def
		}
		if validate == nil {
			return s, nil
		}
		if err := validate(s); err != nil {
			p.failed(err.Error())
			continue
		}
		return s, nil
	}
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(ctx context.Context, text string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		_, _ = fmt.Fprintf(p.out, "%s (%s): ", text, hint)
		s, err := p.read(ctx, false)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(s) {
		case "":
			return def, nil
		case "y", "yes", "д", "да":
			return true, nil
		case "n", "no", "н", "нет":
			return false, nil
		}
	}
}

// Choose prints numbered options and returns the index of the picked one.
func (p *Prompter) Choose(ctx context.Context, text string, options []string, def int) (int, error) {
	_, _ = fmt.Fprintln(p.out, text)
	for i, o := range options {
		_, _ = fmt.Fprintf(p.out, "  %d) %s\n", i+1, o)
	}
	picked, err := p.Ask(ctx, ">", strconv.Itoa(def+1), func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > len(options) {
			return fmt.Errorf("1..%d", len(options))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	n, _ := strconv.Atoi(picked)
	return n - 1, nil
}

// Line reads one raw answer.
func (p *Prompter) Line(ctx context.Context, text string) (string, error) {
	_, _ = fmt.Fprint(p.out, text)
	return p.read(ctx, false)
}
