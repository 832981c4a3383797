package nvimbridge

import (
	"github.com/framegrace/texelvim/protocol"
)

// handleRedraw runs on the RPC read goroutine, one batch at a time.
// A malformed batch is dropped whole.
func (b *Bridge) handleRedraw(updates ...[]interface{}) {
	cmds, err := b.decoder.Decode(updates)
	if err != nil {
		b.logf("nvimbridge: dropping redraw batch: %v", err)
		return
	}
	for _, cmd := range cmds {
		if !b.emit(cmd) {
			return
		}
	}
}

func (b *Bridge) writeLoop() {
	for {
		select {
		case <-b.done:
			return
		case req := <-b.requests:
			if err := b.send(req); err != nil {
				b.logf("nvimbridge: %T failed: %v", req, err)
			}
		}
	}
}

func (b *Bridge) send(req protocol.ClientCommand) error {
	switch r := req.(type) {
	case protocol.InputText:
		_, err := b.rpc.Input(r.Keys)
		return err
	case protocol.InputMouse:
		return b.rpc.InputMouse(r.Button, r.Action, r.Modifier, r.Grid, r.Row, r.Col)
	case protocol.TryResize:
		return b.rpc.TryResizeUI(r.Cols, r.Rows)
	default:
		b.logf("nvimbridge: ignoring unsupported request %T", req)
		return nil
	}
}
