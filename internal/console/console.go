// Package console is the line-oriented command surface of tilefill.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/go-theft-craft/tilefill/internal/blocks"
	"github.com/go-theft-craft/tilefill/internal/interact"
	"github.com/go-theft-craft/tilefill/internal/storage"
	"github.com/go-theft-craft/tilefill/internal/world"
	"github.com/go-theft-craft/tilefill/pkg/fill"
)

// errQuit ends Run without error.
var errQuit = errors.New("quit")

// Deps are the collaborators a Console drives.
type Deps struct {
	World      *world.World
	Blocks     *blocks.Registry
	Runner     *fill.Runner
	Dispatcher *interact.Dispatcher
	Tracker    *interact.Tracker
	Wand       *interact.Wand
	Store      storage.Store
	Log        *slog.Logger
}

// Console parses and executes commands, writing replies to out.
type Console struct {
	Deps
	view fill.World
	out  io.Writer
}

// New creates a Console writing to out.
func New(d Deps, out io.Writer) *Console {
	if d.Log == nil {
		d.Log = slog.Default()
	}
	return &Console{Deps: d, view: fill.States(d.World), out: out}
}

// Run executes one command per input line until in is exhausted, a quit
// command is read, or ctx is cancelled. Jobs still running are waited for
// before Run returns.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	defer c.Runner.Wait()
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("read commands: %w", err)
					}
				default:
				}
				return nil
			}
			if err := c.Exec(line); errors.Is(err, errQuit) {
				return nil
			}
		}
	}
}

// Exec runs a single command line. Errors are reported to the output and
// returned; an empty line is a no-op.
func (c *Console) Exec(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	name := strings.ToLower(strings.TrimPrefix(parts[0], "/"))
	args := parts[1:]

	cmd, ok := lookup(name)
	if !ok {
		err := fmt.Errorf("unknown command: %s, type help for a list of commands", name)
		c.errorf("%v", err)
		return err
	}

	if cmd.raw {
		// Keep trailing whitespace, it selects the next argument.
		rest := strings.TrimLeftFunc(line, unicode.IsSpace)[len(parts[0]):]
		args = []string{strings.TrimLeftFunc(rest, unicode.IsSpace)}
	}

	err := cmd.handler(c, args)
	switch {
	case err == nil, errors.Is(err, errQuit):
	case errors.Is(err, errUsage):
		c.errorf("usage: %s", cmd.usage)
	default:
		c.errorf("%v", err)
	}
	return err
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) errorf(format string, args ...any) {
	fmt.Fprintf(c.out, "error: "+format+"\n", args...)
}
