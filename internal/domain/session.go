package domain

// CollectSession is the ephemeral per-user context of an in-progress data
// collection for one deal. It lives only in memory and is released as a whole
// on completion, cancellation or abandonment.
type CollectSession struct {
	DealID   int64
	DealName string
	Fields   []string       // pending field names, in data_needed order
	Cursor   int            // index of the next field to ask
	Answers  map[string]any // validated values keyed by field name
	Awaiting string         // field currently awaited, empty when none
}

// NewCollectSession seeds a session for the deal's required fields
func NewCollectSession(deal *Deal) *CollectSession {
	return &CollectSession{
		DealID:   deal.ID,
		DealName: deal.Name,
		Fields:   deal.RequiredFields(),
		Answers:  make(map[string]any),
	}
}

// Exhausted reports whether every required field has been collected
func (s *CollectSession) Exhausted() bool {
	return s.Cursor >= len(s.Fields)
}

// DraftStep is the position in the admin deal-creation questionnaire
type DraftStep int

const (
	DraftName DraftStep = iota
	DraftDescription
	DraftOriginalPrice
	DraftDealPrice
	DraftDataNeeded
	DraftInstructions
)

// DealDraft is the admin's in-progress deal, kept strictly separate from
// CollectSession so clearing one flow never disturbs the other.
type DealDraft struct {
	Step DraftStep
	Deal Deal
}
