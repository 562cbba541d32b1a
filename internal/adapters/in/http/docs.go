// Package http is the inbound transport adapter. Unary operations (placing
// and claiming orders, debug listing, health) are plain JSON endpoints on
// echo; stream operations (tracking, kitchen preparation, driver location,
// chat, dispatch offers) are websocket endpoints whose connections are
// adapted into the stream ports the use cases consume.
package http
