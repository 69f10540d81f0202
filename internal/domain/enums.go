package domain

// PromptCategory is the "vibe" of a prompt. Each category maps to a Wrapped slide.
type PromptCategory string

const (
	CategoryWholesome    PromptCategory = "WHOLESOME"
	CategoryLore         PromptCategory = "LORE"
	CategoryChaos        PromptCategory = "CHAOS"
	CategorySpicy        PromptCategory = "SPICY"
	CategoryGrind        PromptCategory = "GRIND"
	CategoryPlot         PromptCategory = "PLOT"
	CategoryIntellectual PromptCategory = "INTELLECTUAL"
	CategoryWildcard     PromptCategory = "WILDCARD"
)

// PromptCategories lists every category in declaration order. Analytics use
// this order to break ties, so appending is safe and reordering is not.
var PromptCategories = []PromptCategory{
	CategoryWholesome,
	CategoryLore,
	CategoryChaos,
	CategorySpicy,
	CategoryGrind,
	CategoryPlot,
	CategoryIntellectual,
	CategoryWildcard,
}

var promptCategoryLabels = map[PromptCategory]string{
	CategoryWholesome:    "Wholesome",
	CategoryLore:         "The Lore",
	CategoryChaos:        "Chaos Mode",
	CategorySpicy:        "Spicy",
	CategoryGrind:        "The Grind",
	CategoryPlot:         "The Plot",
	CategoryIntellectual: "Big Brain",
	CategoryWildcard:     "Wildcard",
}

func (c PromptCategory) String() string { return string(c) }

func (c PromptCategory) IsValid() bool {
	_, ok := promptCategoryLabels[c]
	return ok
}

// Label returns the human-readable name shown in the app.
func (c PromptCategory) Label() string {
	if l, ok := promptCategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Rank returns the position of c in PromptCategories, or len(PromptCategories)
// for unknown values so they sort last.
func (c PromptCategory) Rank() int {
	for i, pc := range PromptCategories {
		if pc == c {
			return i
		}
	}
	return len(PromptCategories)
}

// SparkCategory is the kind of in-person spark card.
type SparkCategory string

const (
	SparkCategoryDate  SparkCategory = "DATE"
	SparkCategoryConvo SparkCategory = "CONVO"
	SparkCategoryWYR   SparkCategory = "WYR"
	SparkCategoryGame  SparkCategory = "GAME"
)

// SparkCategories lists spark categories in display order.
var SparkCategories = []SparkCategory{
	SparkCategoryDate,
	SparkCategoryConvo,
	SparkCategoryWYR,
	SparkCategoryGame,
}

func (c SparkCategory) String() string { return string(c) }

func (c SparkCategory) IsValid() bool {
	switch c {
	case SparkCategoryDate, SparkCategoryConvo, SparkCategoryWYR, SparkCategoryGame:
		return true
	}
	return false
}

// Label returns the human-readable name of the spark category.
func (c SparkCategory) Label() string {
	switch c {
	case SparkCategoryDate:
		return "Date Idea"
	case SparkCategoryConvo:
		return "Conversation"
	case SparkCategoryWYR:
		return "Would You Rather"
	case SparkCategoryGame:
		return "Quick Game"
	}
	return string(c)
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
