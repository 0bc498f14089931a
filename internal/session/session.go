// Package session runs a turn-based text loop over one world and one scanner.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gridscout/scanner/internal/dispatcher"
	"github.com/gridscout/scanner/internal/scanner"
	"github.com/gridscout/scanner/internal/storage"
	"github.com/gridscout/scanner/internal/world"
)

// Prompt is printed before every command read by Run.
const Prompt = "> "

// ErrQuit is returned by Execute for the quit command.
var ErrQuit = errors.New("quit")

// Dependencies holds everything the session commands operate on.
type Dependencies struct {
	World   *world.World
	Scanner *scanner.Scanner
	History storage.Backend // optional, enables the history command
	Logger  dispatcher.Logger
}

// Session owns a dispatcher with every command registered.
type Session struct {
	deps       Dependencies
	dispatcher *dispatcher.Dispatcher
}

// New creates a session and registers its commands.
func New(deps Dependencies) (*Session, error) {
	if deps.World == nil || deps.Scanner == nil {
		return nil, errors.New("session needs a world and a scanner")
	}
	if deps.Logger == nil {
		deps.Logger = nopLogger{}
	}

	d, err := dispatcher.New(deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create dispatcher: %w", err)
	}

	s := &Session{deps: deps, dispatcher: d}
	s.RegisterHandlers(d)
	return s, nil
}

// Execute runs one command line and returns its printable result.
func (s *Session) Execute(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	cmd := strings.ToLower(fields[0])
	if cmd == "quit" || cmd == "exit" {
		return "", ErrQuit
	}

	result, err := s.dispatcher.Dispatch(dispatcher.Event{
		Command:   cmd,
		Args:      fields[1:],
		Timestamp: time.Now(),
	})
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", nil
	}
	return fmt.Sprint(result), nil
}

// Run reads commands from in until EOF, quit or ctx is done. Command errors
// are printed and do not end the session.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, Prompt)
		if !lines.Scan() {
			fmt.Fprintln(out)
			return lines.Err()
		}

		result, err := s.Execute(lines.Text())
		switch {
		case errors.Is(err, ErrQuit):
			return nil
		case err != nil:
			fmt.Fprintf(out, "error: %v\n", err)
		case result != "":
			fmt.Fprintln(out, result)
		}
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any) {}
func (nopLogger) Error(string, ...any) {}
