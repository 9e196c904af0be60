package game

import "context"

// replyRule is the terminal fallback: everything no earlier rule claimed
// gets a generated persona answer.
type replyRule struct {
	responder Responder
}

func (replyRule) Name() string { return "reply" }

// Evaluate always handles. Generation may block on an external call, so it
// runs off-loop and answers through the emitter when done.
func (r replyRule) Evaluate(ctx context.Context, in Input, em Emitter) bool {
	go func() {
		em.Say(r.responder.Reply(ctx, in.History, in.Text))
	}()
	return true
}
