package ports

import "context"

// Receiver is the inbound half of a typed message stream. Recv blocks until
// the next item is available, the stream ends, or ctx is done. End of
// stream is reported as io.EOF; any other error means the stream failed and
// no further items will arrive.
//
// The transport behind a Receiver delivers items in the order the remote
// caller produced them.
type Receiver[T any] interface {
	Recv(ctx context.Context) (T, error)
}

// Sender is the outbound half of a typed message stream. Send blocks while
// the transport's flow-control window is exhausted, which is how downstream
// demand limits propagate back to producers. A Send error means the stream
// is broken; callers stop producing and return.
type Sender[T any] interface {
	Send(ctx context.Context, item T) error
}
