package rest

import (
	"encoding/json"
	"io"
	"time"

	"github.com/heartmarshall/vault-backend/internal/domain"
)

type userResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Timezone    string `json:"timezone"`
	Role        string `json:"role"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		Username:    u.Username,
		DisplayName: u.Name(),
		Timezone:    u.Timezone,
		Role:        u.Role.String(),
	}
}

type partnerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toPartnerResponse(p *domain.Partner) *partnerResponse {
	if p == nil {
		return nil
	}
	return &partnerResponse{ID: p.ID.String(), Name: p.Name}
}

type vaultResponse struct {
	ID              string           `json:"id"`
	InviteCode      string           `json:"inviteCode"`
	Paired          bool             `json:"paired"`
	AnniversaryDate *string          `json:"anniversaryDate"`
	IsEnded         bool             `json:"isEnded"`
	EndedDate       *string          `json:"endedDate"`
	CreatedAt       time.Time        `json:"createdAt"`
	Partner         *partnerResponse `json:"partner,omitempty"`
}

func toVaultResponse(c *domain.Couple, partner *domain.Partner) vaultResponse {
	return vaultResponse{
		ID:              c.ID.String(),
		InviteCode:      c.InviteCode,
		Paired:          c.IsPaired(),
		AnniversaryDate: formatDate(c.AnniversaryDate),
		IsEnded:         c.IsEnded,
		EndedDate:       formatDate(c.EndedDate),
		CreatedAt:       c.CreatedAt,
		Partner:         toPartnerResponse(partner),
	}
}

type promptResponse struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	Category      string `json:"category"`
	CategoryLabel string `json:"categoryLabel"`
	ActiveDate    string `json:"activeDate"`
}

func toPromptResponse(p *domain.Prompt) *promptResponse {
	if p == nil {
		return nil
	}
	return &promptResponse{
		ID:            p.ID.String(),
		Text:          p.Text,
		Category:      string(p.Category),
		CategoryLabel: p.Category.Label(),
		ActiveDate:    p.ActiveDate.Format(dateLayout),
	}
}

type entryResponse struct {
	ID             string    `json:"id"`
	PromptID       string    `json:"promptId"`
	UserID         string    `json:"userId"`
	Text           string    `json:"text"`
	PhotoRef       *string   `json:"photoRef"`
	WordCount      int       `json:"wordCount"`
	SentimentScore *float64  `json:"sentimentScore"`
	LocationTag    string    `json:"locationTag,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toEntryResponse(e *domain.Entry) *entryResponse {
	if e == nil {
		return nil
	}
	return &entryResponse{
		ID:             e.ID.String(),
		PromptID:       e.PromptID.String(),
		UserID:         e.UserID.String(),
		Text:           e.TextContent,
		PhotoRef:       e.PhotoRef,
		WordCount:      e.WordCount,
		SentimentScore: e.SentimentScore,
		LocationTag:    e.LocationTag,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

type todayResponse struct {
	State        string           `json:"state"`
	Prompt       *promptResponse  `json:"prompt"`
	OwnEntry     *entryResponse   `json:"ownEntry"`
	PartnerEntry *entryResponse   `json:"partnerEntry"`
	Partner      *partnerResponse `json:"partner"`
}

func toTodayResponse(v *domain.TodayView) todayResponse {
	return todayResponse{
		State:        string(v.State),
		Prompt:       toPromptResponse(v.Prompt),
		OwnEntry:     toEntryResponse(v.OwnEntry),
		PartnerEntry: toEntryResponse(v.PartnerEntry),
		Partner:      toPartnerResponse(v.Partner),
	}
}

type historyItemResponse struct {
	Prompt       *promptResponse `json:"prompt"`
	OwnEntry     *entryResponse  `json:"ownEntry"`
	PartnerEntry *entryResponse  `json:"partnerEntry"`
	Unlocked     bool            `json:"unlocked"`
}

func toHistoryItemResponse(it *domain.HistoryItem) historyItemResponse {
	return historyItemResponse{
		Prompt:       toPromptResponse(it.Prompt),
		OwnEntry:     toEntryResponse(it.OwnEntry),
		PartnerEntry: toEntryResponse(it.PartnerEntry),
		Unlocked:     it.Unlocked,
	}
}

type historyMonthResponse struct {
	Month string                `json:"month"`
	Items []historyItemResponse `json:"items"`
}

type categoryCountResponse struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
}

func toCategoryCounts(cc []domain.CategoryCount) []categoryCountResponse {
	out := make([]categoryCountResponse, len(cc))
	for i, c := range cc {
		out[i] = categoryCountResponse{Category: string(c.Category), Label: c.Category.Label(), Count: c.Count}
	}
	return out
}

type monthCountResponse struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type locationCountResponse struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type pairedPromptResponse struct {
	Prompt        *promptResponse `json:"prompt"`
	WordsA        int             `json:"wordsA"`
	WordsB        int             `json:"wordsB"`
	CombinedWords int             `json:"combinedWords"`
}

type monthSentimentResponse struct {
	Month string  `json:"month"`
	Score float64 `json:"score"`
}

type momentsResponse struct {
	SharedJoy    int `json:"sharedJoy"`
	ToughDays    int `json:"toughDays"`
	Support      int `json:"support"`
	SupportGiven int `json:"supportGiven"`
}

type coupleWrappedResponse struct {
	VaultID          string                   `json:"vaultId"`
	Partner          *partnerResponse         `json:"partner"`
	TotalWords       int                      `json:"totalWords"`
	ResponseRate     float64                  `json:"responseRate"`
	TopVibes         []categoryCountResponse  `json:"topVibes"`
	MostWordsPrompt  *pairedPromptResponse    `json:"mostWordsPrompt"`
	AverageSentiment *float64                 `json:"averageSentiment"`
	SyncScore        *float64                 `json:"syncScore"`
	MonthlySentiment []monthSentimentResponse `json:"monthlySentiment"`
	HappiestMonth    *monthSentimentResponse  `json:"happiestMonth"`
	Moments          momentsResponse          `json:"moments"`
	Places           []locationCountResponse  `json:"places"`
	DaysTogether     *int                     `json:"daysTogether"`
}

type wrappedResponse struct {
	Year              int                     `json:"year"`
	TotalWords        int                     `json:"totalWords"`
	TotalEntries      int                     `json:"totalEntries"`
	CategoryBreakdown []categoryCountResponse `json:"categoryBreakdown"`
	MonthlyActivity   []monthCountResponse    `json:"monthlyActivity"`
	LongestEntry      *entryResponse          `json:"longestEntry"`
	Couple            *coupleWrappedResponse  `json:"couple"`
}

func toWrappedResponse(wr *domain.Wrapped) wrappedResponse {
	months := make([]monthCountResponse, len(wr.MonthlyActivity))
	for i, m := range wr.MonthlyActivity {
		months[i] = monthCountResponse{Month: m.Month.String(), Count: m.Count}
	}

	resp := wrappedResponse{
		Year:              wr.Year,
		TotalWords:        wr.TotalWords,
		TotalEntries:      wr.TotalEntries,
		CategoryBreakdown: toCategoryCounts(wr.CategoryBreakdown),
		MonthlyActivity:   months,
		LongestEntry:      toEntryResponse(wr.LongestEntry),
	}

	if c := wr.Couple; c != nil {
		places := make([]locationCountResponse, len(c.Places))
		for i, p := range c.Places {
			places[i] = locationCountResponse{Tag: p.Tag, Count: p.Count}
		}
		sentiment := make([]monthSentimentResponse, len(c.MonthlySentiment))
		for i, m := range c.MonthlySentiment {
			sentiment[i] = monthSentimentResponse{Month: m.Month.String(), Score: m.Score}
		}
		cw := &coupleWrappedResponse{
			VaultID:          c.CoupleID.String(),
			Partner:          toPartnerResponse(c.Partner),
			TotalWords:       c.TotalWords,
			ResponseRate:     c.ResponseRate,
			TopVibes:         toCategoryCounts(c.TopVibes),
			AverageSentiment: c.AverageSentiment,
			SyncScore:        c.SyncScore,
			MonthlySentiment: sentiment,
			Moments: momentsResponse{
				SharedJoy:    c.Moments.SharedJoy,
				ToughDays:    c.Moments.ToughDays,
				Support:      c.Moments.Support,
				SupportGiven: c.Moments.SupportGiven,
			},
			Places:       places,
			DaysTogether: c.DaysTogether,
		}
		if mp := c.MostWordsPrompt; mp != nil {
			cw.MostWordsPrompt = &pairedPromptResponse{
				Prompt:        toPromptResponse(&mp.Prompt),
				WordsA:        mp.WordsA,
				WordsB:        mp.WordsB,
				CombinedWords: mp.CombinedWords(),
			}
		}
		if hm := c.HappiestMonth; hm != nil {
			cw.HappiestMonth = &monthSentimentResponse{Month: hm.Month.String(), Score: hm.Score}
		}
		resp.Couple = cw
	}
	return resp
}

type sparkResponse struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Category  string  `json:"category"`
	OptionB   *string `json:"optionB,omitempty"`
	Vibe      string  `json:"vibe"`
	VibeLabel string  `json:"vibeLabel"`
	Subtitle  string  `json:"subtitle,omitempty"`
}

func toSparkResponse(s *domain.Spark) sparkResponse {
	resp := sparkResponse{
		ID:        s.ID.String(),
		Text:      s.Text,
		Category:  string(s.Category),
		Vibe:      string(s.Vibe),
		VibeLabel: s.Vibe.Label(),
		Subtitle:  s.Subtitle,
	}
	if s.OptionB != "" {
		resp.OptionB = &s.OptionB
	}
	return resp
}

type sparkCategoryResponse struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
}

// EncodeWrapped writes wr in its API JSON form, indented for terminals.
func EncodeWrapped(w io.Writer, wr *domain.Wrapped) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toWrappedResponse(wr))
}

type auditRecordResponse struct {
	ID         string         `json:"id"`
	ActorID    string         `json:"actorId"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toAuditRecordResponse(rec *domain.AuditRecord) auditRecordResponse {
	changes := rec.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	return auditRecordResponse{
		ID:         rec.ID.String(),
		ActorID:    rec.ActorID.String(),
		EntityType: rec.EntityType.String(),
		EntityID:   rec.EntityID.String(),
		Action:     string(rec.Action),
		Changes:    changes,
		CreatedAt:  rec.CreatedAt,
	}
}
