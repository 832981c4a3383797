// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/runtime/client/message_sender.go
// Summary: Non-blocking delivery of client requests to the editor bridge.
// Usage: sendRequests from the presentation loop; a full queue drops the request.

package clientruntime

import (
	"log"

	"github.com/framegrace/texelvim/protocol"
)

// sendRequests queues reqs without blocking the presentation loop. It
// returns how many were dropped.
func sendRequests(out chan<- protocol.ClientCommand, reqs []protocol.ClientCommand) int {
	dropped := 0
	for _, req := range reqs {
		select {
		case out <- req:
		default:
			dropped++
			log.Printf("client: request queue full, dropping %T", req)
		}
	}
	return dropped
}
