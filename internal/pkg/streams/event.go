package streams

// Kind tags the origin of a joined event so handlers can branch on it
// exhaustively instead of inspecting payloads at runtime.
type Kind int

const (
	// KindClient marks an event forwarded from the caller-driven inbound stream.
	KindClient Kind = iota + 1

	// KindProducer marks an out-of-band event pulled from a demand source.
	KindProducer
)

// Event is the closed tagged union flowing out of a Joiner: either an item
// the remote caller sent (Client is set) or an item the local producer
// emitted (Producer is set). Exactly one side is meaningful, selected by Kind.
type Event[C, P any] struct {
	Kind     Kind
	Client   C
	Producer P
}

func clientEvent[C, P any](item C) Event[C, P] {
	return Event[C, P]{Kind: KindClient, Client: item}
}

func producerEvent[C, P any](item P) Event[C, P] {
	return Event[C, P]{Kind: KindProducer, Producer: item}
}
