package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"coffee-van/internal/codec"
	"coffee-van/internal/model"
)

const maxInputLine = 64 * 1024

// prompter reads answers line by line and writes prompts to out.
type prompter struct {
	in    io.Reader
	out   io.Writer
	lines chan scanResult
}

type scanResult struct {
	line string
	err  error
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: in, out: out}
}

// scan feeds input lines to p.lines until the input ends. It runs in its own
// goroutine so that a blocked read does not delay cancellation.
func (p *prompter) scan() {
	defer close(p.lines)

	scanner := bufio.NewScanner(p.in)
	scanner.Buffer(make([]byte, 0, 4096), maxInputLine)
	for scanner.Scan() {
		p.lines <- scanResult{line: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		p.lines <- scanResult{err: fmt.Errorf("failed to read input: %w", err)}
	}
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *prompter) println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// readLine prints prompt and returns the next line of input.
// It returns io.EOF once the input is exhausted and ctx.Err() if ctx is
// cancelled while waiting.
func (p *prompter) readLine(ctx context.Context, prompt string) (string, error) {
	p.printf("%s", prompt)

	if p.lines == nil {
		p.lines = make(chan scanResult)
		go p.scan()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}

// readText reads a trimmed line that can be stored in a data file.
func (p *prompter) readText(ctx context.Context, prompt, emptyMsg string, allowEmpty bool) (string, error) {
	for {
		s, err := p.readLine(ctx, prompt)
		if err != nil {
			return "", err
		}
		s = strings.TrimSpace(s)
		switch {
		case s == "" && !allowEmpty:
			p.println(emptyMsg)
		case strings.Contains(s, codec.Separator):
			p.printf("Text must not contain '%s'!\n", codec.Separator)
		default:
			return s, nil
		}
	}
}

// readFloat re-prompts until the input is a finite number accepted by check.
// check returns an empty string for acceptable values and a complaint otherwise.
func (p *prompter) readFloat(ctx context.Context, prompt string, check func(float64) string) (float64, error) {
	for {
		s, err := p.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		v, err := model.ParseDecimal(s)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			p.println("Invalid input! Enter a number.")
			continue
		}
		if msg := check(v); msg != "" {
			p.println(msg)
			continue
		}
		return v, nil
	}
}

// readScore reads a value between 1 and 10 inclusive.
func (p *prompter) readScore(ctx context.Context, prompt string) (float64, error) {
	return p.readFloat(ctx, prompt, func(v float64) string {
		if v < 1 || v > model.MaxScore {
			return "Value must be between 1 and 10!"
		}
		return ""
	})
}

// readChoice re-prompts until parse accepts the trimmed input.
func readChoice[T any](ctx context.Context, p *prompter, prompt, complaint string, parse func(string) (T, error)) (T, error) {
	for {
		s, err := p.readLine(ctx, prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(s)
		if err == nil {
			return v, nil
		}
		p.println(complaint)
	}
}

func positive(what string) func(float64) string {
	return func(v float64) string {
		if v <= 0 {
			return what + " must be positive!"
		}
		return ""
	}
}
