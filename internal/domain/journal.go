package domain

// TodayState is the visible state of a couple's daily prompt for one member.
type TodayState string

const (
	TodayStateNoPrompt   TodayState = "NO_PROMPT"
	TodayStateUnanswered TodayState = "UNANSWERED"
	TodayStateWaiting    TodayState = "WAITING"
	TodayStateRevealed   TodayState = "REVEALED"
)

func (s TodayState) String() string { return string(s) }

func (s TodayState) IsValid() bool {
	switch s {
	case TodayStateNoPrompt, TodayStateUnanswered, TodayStateWaiting, TodayStateRevealed:
		return true
	}
	return false
}

// TodayView is what the requesting member may see of today's prompt.
// PartnerEntry is only ever set in the REVEALED state.
type TodayView struct {
	State        TodayState
	Prompt       *Prompt
	OwnEntry     *Entry
	PartnerEntry *Entry
	Partner      *Partner
}

// Reveal computes the view from today's prompt and the two optional entries.
// The result is derived on every read and never stored.
func Reveal(prompt *Prompt, own, partner *Entry) TodayView {
	if prompt == nil {
		return TodayView{State: TodayStateNoPrompt}
	}

	view := TodayView{Prompt: prompt}
	switch {
	case own == nil:
		view.State = TodayStateUnanswered
	case partner == nil:
		view.State = TodayStateWaiting
		view.OwnEntry = own
	default:
		view.State = TodayStateRevealed
		view.OwnEntry = own
		view.PartnerEntry = partner
	}
	return view
}

// IsUnlocked reports whether both members answered, i.e. the partner entry
// may be shown alongside the own entry.
func IsUnlocked(own, partner *Entry) bool {
	return own != nil && partner != nil
}

// HistoryItem is one answered prompt in a member's history.
type HistoryItem struct {
	Prompt       *Prompt
	OwnEntry     *Entry
	PartnerEntry *Entry
	Unlocked     bool
}

// HistoryMonth groups history items under a "January 2025" style key.
type HistoryMonth struct {
	Key   string
	Items []HistoryItem
}
