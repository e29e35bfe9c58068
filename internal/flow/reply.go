package flow

// Reply is one outbound message, transport-neutral so the engine can be
// driven in tests without a live bot API.
type Reply struct {
	Text         string
	Markdown     bool
	DocumentPath string
	Caption      string
}

func text(s string) Reply {
	return Reply{Text: s}
}

func markdown(s string) Reply {
	return Reply{Text: s, Markdown: true}
}
