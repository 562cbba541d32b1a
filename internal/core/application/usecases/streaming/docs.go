// Package streaming contains the stream-shaped use cases of the platform:
// order tracking (server stream), kitchen preparation and driver location
// reporting (client streams), the order chat (bidirectional, joined with
// proactive follow-ups) and the available-orders dispatch stream (server
// stream fed by a demand source).
//
// Handlers speak ports.Receiver and ports.Sender, never a concrete
// transport, so the same logic runs under the websocket adapter and under
// in-memory streams in tests.
package streaming
