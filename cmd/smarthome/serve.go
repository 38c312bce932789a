package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nerrad567/smart-house-core/internal/device"
	"github.com/nerrad567/smart-house-core/internal/infrastructure/logging"
	"github.com/nerrad567/smart-house-core/internal/report"
)

// console serialises writes from the command handler and the reporter.
type console struct {
	mu sync.Mutex
	w  io.Writer
}

func newConsole(w io.Writer) *console {
	return &console{w: w}
}

// Print writes s as is.
func (c *console) Print(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.w, s)
}

// Printf writes a formatted line.
func (c *console) Printf(format string, args ...any) {
	c.Print(fmt.Sprintf(format, args...) + "\n")
}

// serve runs the command handler and, when interval is positive, the
// periodic reporter until the operator exits, input ends, or ctx is done.
func serve(ctx context.Context, interval time.Duration, h report.RoomLister, registry *device.Registry,
	in io.Reader, con *console, log *logging.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	lines := readLines(in)
	g.Go(func() error {
		// Leaving the command loop stops the reporter too.
		defer cancel()
		return handleCommands(gctx, lines, registry, con, log)
	})

	if interval > 0 {
		g.Go(func() error {
			return runReporter(gctx, interval, h, registry, con)
		})
	}

	return g.Wait()
}

// readLines feeds lines from r into a channel that is closed at EOF.
// The goroutine is not tied to a context because a blocked read cannot be
// interrupted; it ends with the process.
func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

// handleCommands executes operator commands until exit, EOF or cancellation.
func handleCommands(ctx context.Context, lines <-chan string, registry *device.Registry,
	con *console, log *logging.Logger) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				log.Info("command input closed")
				return nil
			}
			if done := handleLine(line, registry, con); done {
				log.Info("exit requested")
				return nil
			}
		}
	}
}

// handleLine runs one "<device name> <code>" line and reports whether the
// operator asked to exit.
func handleLine(line string, registry *device.Registry, con *console) bool {
	name, code, err := splitLine(line)
	if err != nil {
		con.Printf("error: %v", err)
		return false
	}

	req := device.ParseRequest(name, code)
	switch req.Type {
	case device.RequestExit:
		return true
	case device.RequestUnknown:
		con.Printf("error: %v", req.Err)
		return false
	}

	res, err := registry.ExecuteCommand(req.Data)
	if err != nil {
		con.Printf("error: %v", err)
		return false
	}
	con.Printf("%s: %s", req.Data.DeviceName, res)
	return false
}

// splitLine separates the device name from the trailing command code.
// Device names may contain spaces. A lone word is passed through with code 0
// so "exit" works on its own.
func splitLine(line string) (string, uint8, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		return "", 0, nil
	case 1:
		if strings.EqualFold(fields[0], "exit") {
			return fields[0], 0, nil
		}
		return "", 0, fmt.Errorf("usage: <device name> <code>")
	}

	last := fields[len(fields)-1]
	code, err := strconv.ParseUint(last, 10, 8)
	if err != nil {
		return "", 0, fmt.Errorf("command code %q: must be a number from 0 to 255", last)
	}
	return strings.Join(fields[:len(fields)-1], " "), uint8(code), nil
}

// runReporter prints a report every interval until ctx is done.
func runReporter(ctx context.Context, interval time.Duration, h report.RoomLister,
	provider report.InfoProvider, con *console) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			con.Print(report.Generate(h, provider))
		}
	}
}
