package prompt

import "github.com/heartmarshall/vault-backend/internal/domain"

type catalogPrompt struct {
	text     string
	category domain.PromptCategory
}

// catalog is the starter set of daily prompts, scheduled one per day in order.
var catalog = []catalogPrompt{
	{"What's one small thing I did recently that made you smile?", domain.CategoryWholesome},
	{"Describe your perfect lazy Sunday with me.", domain.CategoryWholesome},
	{"What's a song that reminds you of us?", domain.CategoryWholesome},
	{"What comfort food should we make together this week?", domain.CategoryWholesome},
	{"What's your favorite inside joke of ours and how did it start?", domain.CategoryLore},
	{"What moment made you realize we were going to work?", domain.CategoryLore},
	{"What's a childhood memory you haven't told me yet?", domain.CategoryLore},
	{"If we had to go on a spontaneous road trip right now, where would we go?", domain.CategoryChaos},
	{"What's the most unhinged purchase you'd make if you won the lottery?", domain.CategoryChaos},
	{"If we were in a heist movie, what would our roles be?", domain.CategoryChaos},
	{"What outfit of mine drives you crazy (in a good way)?", domain.CategorySpicy},
	{"Describe a perfect date night, no budget, no limits.", domain.CategorySpicy},
	{"What's one goal you're working toward that I could support better?", domain.CategoryGrind},
	{"Where do you want to be career-wise in 5 years?", domain.CategoryGrind},
	{"What's somewhere you've always wanted to travel together?", domain.CategoryPlot},
	{"What's a tradition you'd like us to start?", domain.CategoryPlot},
	{"If we could live anywhere in the world, where would it be?", domain.CategoryPlot},
	{"What's a belief you've completely changed your mind about over the years?", domain.CategoryIntellectual},
	{"If you could have dinner with anyone in history, who and why?", domain.CategoryIntellectual},
	{"What made you laugh out loud this week?", domain.CategoryWildcard},
	{"What's something random you thought about today?", domain.CategoryWildcard},
	{"If you could learn any skill instantly, what would it be?", domain.CategoryWildcard},
	{"What's the best meal you've had recently?", domain.CategoryWildcard},
	{"What show or movie are you obsessed with right now?", domain.CategoryWildcard},
	{"What's something you're looking forward to this month?", domain.CategoryWildcard},
	{"Describe your ideal morning routine.", domain.CategoryWholesome},
	{"What's a hidden talent of yours I might not know about?", domain.CategoryLore},
	{"What would your superhero name and power be?", domain.CategoryChaos},
	{"What's a fear you'd like to overcome together?", domain.CategoryPlot},
	{`What does "home" mean to you?`, domain.CategoryIntellectual},
}
