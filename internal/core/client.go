package core

import "sync"

// Client is one live connection as seen by the core layer. Room and actor
// are bound exactly once, on join, and only ever touched from the hub loop.
type Client struct {
	ID string

	outbound  chan []byte
	closed    chan struct{}
	closeOnce sync.Once

	// Hub-owned session state.
	room   string
	actor  Actor
	joined bool
	left   bool
}

// NewClient constructs a client with a buffered outbound queue.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		outbound: make(chan []byte, 16),
		closed:   make(chan struct{}),
	}
}

// Send queues an encoded frame for delivery. Returns false when the
// connection is closed or the queue is full; slow consumers are dropped
// rather than allowed to stall the room.
func (c *Client) Send(frame []byte) bool {
	select {
	case <-c.closed:
		return false
	default:
	}

	select {
	case c.outbound <- frame:
		return true
	default:
		return false
	}
}

// Outbound exposes the delivery queue to the transport write loop.
func (c *Client) Outbound() <-chan []byte {
	return c.outbound
}

// Close marks the connection dead. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.closed)
	})
}

// Done is closed once the connection has been marked dead.
func (c *Client) Done() <-chan struct{} {
	return c.closed
}

// Room returns the room bound at join time, or "" before joining.
func (c *Client) Room() string { return c.room }

// Actor returns the role bound at join time.
func (c *Client) Actor() Actor { return c.actor }
