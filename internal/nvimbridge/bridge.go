// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/nvimbridge/bridge.go
// Summary: Runs an embedded editor and relays redraw batches and client requests.
// Usage: Start(opts) then read Commands and write Requests; Close when the loop ends.

package nvimbridge

import (
	"fmt"
	"log"
	"sync"

	"github.com/neovim/go-client/nvim"

	"github.com/framegrace/texelvim/protocol"
)

// rpcClient is the subset of *nvim.Nvim the bridge uses.
type rpcClient interface {
	RegisterHandler(method string, fn interface{}) error
	AttachUI(width, height int, options map[string]interface{}) error
	Input(keys string) (int, error)
	InputMouse(button, action, modifier string, grid, row, col int) error
	TryResizeUI(width, height int) error
	Serve() error
	Close() error
}

// Options configures the child editor and the bridge queues.
type Options struct {
	Command string
	Args    []string
	Cols    int
	Rows    int

	// QueueSize bounds the command and request channels.
	QueueSize int
	Logf      func(format string, args ...interface{})
	// Go starts a named background goroutine.
	Go func(name string, fn func())
}

func (o *Options) normalize() {
	if o.Command == "" {
		o.Command = "nvim"
	}
	if o.Cols < 1 {
		o.Cols = 80
	}
	if o.Rows < 1 {
		o.Rows = 24
	}
	if o.QueueSize <= 0 {
		o.QueueSize = 256
	}
	if o.Logf == nil {
		o.Logf = log.Printf
	}
	if o.Go == nil {
		o.Go = func(_ string, fn func()) { go fn() }
	}
}

// Bridge owns the editor connection. The redraw handler and the write loop
// never touch grid state; they only exchange values over channels.
type Bridge struct {
	rpc      rpcClient
	decoder  *protocol.Decoder
	logf     func(format string, args ...interface{})
	commands chan protocol.Command
	requests chan protocol.ClientCommand
	done     chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// Start launches the editor with --embed and attaches a linegrid UI.
func Start(opts Options) (*Bridge, error) {
	opts.normalize()
	args := append([]string{"--embed"}, opts.Args...)
	child, err := nvim.NewChildProcess(
		nvim.ChildProcessCommand(opts.Command),
		nvim.ChildProcessArgs(args...),
		nvim.ChildProcessServe(false),
		nvim.ChildProcessLogf(opts.Logf),
	)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", opts.Command, err)
	}
	return start(child, opts)
}

func start(rpc rpcClient, opts Options) (*Bridge, error) {
	opts.normalize()
	b := &Bridge{
		rpc:      rpc,
		decoder:  protocol.NewDecoder(opts.Logf),
		logf:     opts.Logf,
		commands: make(chan protocol.Command, opts.QueueSize),
		requests: make(chan protocol.ClientCommand, opts.QueueSize),
		done:     make(chan struct{}),
	}
	if err := rpc.RegisterHandler("redraw", b.handleRedraw); err != nil {
		b.Close()
		return nil, fmt.Errorf("register redraw handler: %w", err)
	}
	opts.Go("nvimServe", b.serve)
	if err := rpc.AttachUI(opts.Cols, opts.Rows, map[string]interface{}{
		"rgb":          true,
		"ext_linegrid": true,
	}); err != nil {
		b.Close()
		return nil, fmt.Errorf("attach ui: %w", err)
	}
	opts.Go("nvimWrite", b.writeLoop)
	return b, nil
}

// Commands delivers decoded redraw commands in arrival order. It is never
// closed; a Close command marks the end.
func (b *Bridge) Commands() <-chan protocol.Command { return b.commands }

// Requests accepts client commands for the editor.
func (b *Bridge) Requests() chan<- protocol.ClientCommand { return b.requests }

// Close detaches from the editor. Safe to call more than once.
func (b *Bridge) Close() error {
	b.closeOnce.Do(func() {
		close(b.done)
		b.closeErr = b.rpc.Close()
	})
	return b.closeErr
}

func (b *Bridge) serve() {
	err := b.rpc.Serve()
	if err != nil {
		b.logf("nvimbridge: serve ended: %v", err)
	}
	b.emit(protocol.Close{Err: err})
}

// emit blocks until the presentation loop takes cmd or the bridge closes.
func (b *Bridge) emit(cmd protocol.Command) bool {
	select {
	case b.commands <- cmd:
		return true
	case <-b.done:
		return false
	}
}
