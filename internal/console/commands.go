package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-theft-craft/tilefill/internal/interact"
	"github.com/go-theft-craft/tilefill/pkg/fill"
)

var errUsage = errors.New("usage")

type command struct {
	name    string
	usage   string
	desc    string
	raw     bool
	handler func(c *Console, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{name: "help", usage: "help", desc: "Show available commands", handler: cmdHelp},
		{name: "get", usage: "get <x> <y> <z>", desc: "Show the block at a position", handler: cmdGet},
		{name: "set", usage: "set <x> <y> <z> <block>", desc: "Place a single block", handler: cmdSet},
		{name: "fill", usage: "fill <xy|xz|yz> <x> <y> <z> [block] [target] [max]", desc: "Fill the region connected to a position", handler: cmdFill},
		{name: "use", usage: "use <x> <y> <z> <face> [item]", desc: "Use an item on a block face", handler: cmdUse},
		{name: "replace", usage: "replace <x> <y> <z> [block] [target]", desc: "Replace around a position using the last used face", handler: cmdReplace},
		{name: "brush", usage: "brush [block]", desc: "Show or set the block the wand paints with", handler: cmdBrush},
		{name: "complete", usage: "complete <text>", desc: "List completions for a partial command", raw: true, handler: cmdComplete},
		{name: "wait", usage: "wait", desc: "Wait for running fills to finish", handler: cmdWait},
		{name: "save", usage: "save", desc: "Save modified blocks", handler: cmdSave},
		{name: "quit", usage: "quit", desc: "Wait for running fills and exit", handler: cmdQuit},
	}
}

func lookup(name string) (command, bool) {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}
	return command{}, false
}

var faceNames = []string{"bottom", "top", "north", "south", "west", "east"}

func parseFace(s string) (fill.Face, error) {
	for i, name := range faceNames {
		if strings.EqualFold(s, name) {
			return fill.Face(i), nil
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad face %q, want 0-5 or one of %s", s, strings.Join(faceNames, ", "))
	}
	// Out-of-range numbers are passed through; the fill ignores them.
	return fill.Face(v), nil
}

func parsePos(args []string) (fill.Pos, error) {
	if len(args) < 3 {
		return fill.Pos{}, errUsage
	}
	var v [3]int
	for i := range v {
		n, err := strconv.Atoi(args[i])
		if err != nil {
			return fill.Pos{}, fmt.Errorf("bad coordinate %q", args[i])
		}
		v[i] = n
	}
	return fill.Pos{X: v[0], Y: v[1], Z: v[2]}, nil
}

func (c *Console) describe(b fill.Block) string {
	return fmt.Sprintf("%s (%s)", c.Blocks.Format(b), c.Blocks.Describe(b))
}

func cmdHelp(c *Console, _ []string) error {
	c.printf("--- Available Commands ---")
	for _, cmd := range commands {
		c.printf("%s - %s", cmd.usage, cmd.desc)
	}
	return nil
}

func cmdGet(c *Console, args []string) error {
	if len(args) != 3 {
		return errUsage
	}
	p, err := parsePos(args)
	if err != nil {
		return err
	}
	c.printf("%v: %s", p, c.describe(c.view.Block(p.X, p.Y, p.Z)))
	return nil
}

func cmdSet(c *Console, args []string) error {
	if len(args) != 4 {
		return errUsage
	}
	p, err := parsePos(args)
	if err != nil {
		return err
	}
	b, err := c.Blocks.Parse(args[3])
	if err != nil {
		return err
	}
	c.view.SetBlock(p.X, p.Y, p.Z, b)
	c.printf("%v set to %s", p, c.describe(b))
	return nil
}

func cmdFill(c *Console, args []string) error {
	if len(args) < 4 || len(args) > 7 {
		return errUsage
	}
	plane, err := fill.ParsePlane(args[0])
	if err != nil {
		return err
	}
	p, err := parsePos(args[1:4])
	if err != nil {
		return err
	}

	var opts []fill.Option
	if len(args) > 4 {
		b, err := c.Blocks.Parse(args[4])
		if err != nil {
			return err
		}
		opts = append(opts, fill.WithReplacement(b))
	}
	if len(args) > 5 {
		b, err := c.Blocks.Parse(args[5])
		if err != nil {
			return err
		}
		opts = append(opts, fill.WithTarget(b))
	}
	if len(args) > 6 {
		n, err := strconv.Atoi(args[6])
		if err != nil || n <= 0 {
			return fmt.Errorf("bad max %q", args[6])
		}
		opts = append(opts, fill.WithMaxTiles(n))
	}

	id := c.Runner.Fill(plane, p, opts...)
	c.printf("fill %s at %v queued as %s", plane, p, id)
	return nil
}

func cmdUse(c *Console, args []string) error {
	if len(args) < 4 || len(args) > 5 {
		return errUsage
	}
	p, err := parsePos(args)
	if err != nil {
		return err
	}
	face, err := parseFace(args[3])
	if err != nil {
		return err
	}
	var item fill.Block
	if len(args) == 5 {
		if item, err = c.Blocks.Parse(args[4]); err != nil {
			return err
		}
	}

	c.Dispatcher.Dispatch(interact.Event{
		Pos:     p,
		Face:    face,
		Touched: c.view.Block(p.X, p.Y, p.Z),
		Item:    item,
	})
	return nil
}

func cmdReplace(c *Console, args []string) error {
	if len(args) < 3 || len(args) > 5 {
		return errUsage
	}
	p, err := parsePos(args)
	if err != nil {
		return err
	}
	last, ok := c.Tracker.Last()
	if !ok {
		return errors.New("no face to replace on yet, use a block first")
	}

	var opts []fill.Option
	if len(args) > 3 {
		b, err := c.Blocks.Parse(args[3])
		if err != nil {
			return err
		}
		opts = append(opts, fill.WithReplacement(b))
	}
	if len(args) > 4 {
		b, err := c.Blocks.Parse(args[4])
		if err != nil {
			return err
		}
		opts = append(opts, fill.WithTarget(b))
	}

	id := c.Runner.Replace(fill.Interaction{Pos: p, Face: last.Face, Touched: last.Touched}, opts...)
	c.printf("replace at %v (face %d) queued as %s", p, last.Face, id)
	return nil
}

func cmdBrush(c *Console, args []string) error {
	switch len(args) {
	case 0:
	case 1:
		b, err := c.Blocks.Parse(args[0])
		if err != nil {
			return err
		}
		c.Wand.SetBrush(b)
	default:
		return errUsage
	}
	c.printf("brush: %s", c.describe(c.Wand.Brush()))
	return nil
}

func cmdComplete(c *Console, args []string) error {
	c.printf("%s", strings.Join(computeCompletions(args[0], c.Blocks.Names()), " "))
	return nil
}

func cmdWait(c *Console, _ []string) error {
	c.Runner.Wait()
	c.printf("all fills finished")
	return nil
}

func cmdSave(c *Console, _ []string) error {
	c.Runner.Wait()
	if err := c.Store.SaveWorld(c.World); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	c.printf("saved")
	return nil
}

func cmdQuit(c *Console, _ []string) error {
	return errQuit
}
