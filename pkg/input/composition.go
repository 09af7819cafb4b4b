package input

// compositionState tracks the IME pre-edit lifecycle. The platform may
// deliver composition updates out of band from key events, so the state
// machine is driven solely by RawComposition events:
// idle -> composing -> (committed | canceled) -> idle.
type compositionState int

const (
	compositionIdle compositionState = iota
	compositionComposing
)

type composition struct {
	state compositionState
	text  string
}

// apply advances the state machine for one raw composition event and
// returns the toolkit events it produces.
func (c *composition) apply(raw RawComposition) []Event {
	switch {
	case raw.Cancel:
		if c.state == compositionIdle {
			return nil
		}
		c.state = compositionIdle
		c.text = ""
		return []Event{CompositionEvent{Phase: CompositionCancel, Time: raw.Time}}

	case raw.Commit:
		// A commit without a preceding update is legal: the IME may commit
		// a full run in one shot.
		c.state = compositionIdle
		c.text = ""
		return []Event{CompositionEvent{Phase: CompositionCommit, Text: raw.Text, Time: raw.Time}}

	default:
		c.state = compositionComposing
		c.text = raw.Text
		return []Event{CompositionEvent{Phase: CompositionUpdate, Text: raw.Text, Time: raw.Time}}
	}
}

// active reports whether a pre-edit span is in progress.
func (c *composition) active() bool {
	return c.state == compositionComposing
}
