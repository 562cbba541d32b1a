// Package streams provides the joiner that merges a caller-driven inbound
// stream with a pull-driven local producer into one outbound event
// sequence, plus the closed Event union that tags each merged item with its
// origin.
//
// Ordering guarantees: inbound items keep their arrival order, producer
// events keep their pull order, and there is no ordering guarantee across
// the two sources — only that both are pumped independently, so neither
// starves the other. Demand is bounded: at most MaxDemand items sit between
// the pumps and the consumer, and when that bound is reached both pumps
// pause until the consumer drains.
package streams
