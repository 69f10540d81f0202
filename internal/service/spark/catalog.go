package spark

import "github.com/heartmarshall/vault-backend/internal/domain"

// catalog is the starter deck of sparks.
var catalog = []domain.Spark{
	// Date ideas
	{Category: domain.SparkCategoryDate, Vibe: domain.CategoryWholesome, Text: "Cook a new recipe together that neither of you has tried before", Subtitle: "Pick something slightly ambitious!"},
	{Category: domain.SparkCategoryDate, Vibe: domain.CategoryWholesome, Text: "Build a blanket fort and watch your favorite childhood movie"},
	{Category: domain.SparkCategoryDate, Vibe: domain.CategoryWholesome, Text: "Have a picnic, inside or outside, your choice"},
	{Category: domain.SparkCategoryDate, Vibe: domain.CategoryWholesome, Text: "Take a sunset walk with no destination in mind"},
	{Category: domain.SparkCategoryDate, Vibe: domain.CategoryWholesome, Text: "Write love letters to each other and read them out loud"},
	{Category: domain.SparkCategoryDate, Vibe: domain.CategoryWholesome, Text: "Make breakfast in bed for each other on the same morning"},
	{Category: domain.SparkCategoryDate, Vibe: domain.CategoryWholesome, Text: "Stargaze from your backyard, balcony, or even a parking lot"},
	{Category: domain.SparkCategoryDate, Vibe: domain.CategoryWholesome, Text: "Create a scrapbook page together of your favorite memories"},
	{Category: domain.SparkCategoryDate, Vibe: domain.CategoryChaos, Text: "Go thrift shopping and pick out the most ridiculous outfit for each other, then wear them to dinner"},
	{Category: domain.SparkCategoryDate, Vibe: domain.CategoryChaos, Text: "Have a \"yes day\" where you say yes to whatever the other person suggests"},
	{Category: domain.SparkCategoryDate, Vibe: domain.CategoryChaos, Text: "Drive somewhere you've never been with no GPS, just vibes"},
	{Category: domain.SparkCategoryDate, Vibe: domain.CategoryChaos, Text: "Do karaoke at home with only songs you don't know the words to"},
	{Category: domain.SparkCategoryDate, Vibe: domain.CategoryPlot, Text: "Go on a sunrise hike and bring hot coffee"},
	{Category: domain.SparkCategoryDate, Vibe: domain.CategoryPlot, Text: "Take a day trip to a town neither of you has visited"},
	{Category: domain.SparkCategoryDate, Vibe: domain.CategoryPlot, Text: "Try a new activity together: rock climbing, pottery, escape room, etc."},
	{Category: domain.SparkCategoryDate, Vibe: domain.CategorySpicy, Text: "Have a fancy at-home dinner with candles, dressed up like it's a five-star restaurant"},
	{Category: domain.SparkCategoryDate, Vibe: domain.CategorySpicy, Text: "Take turns giving each other massages with no phones allowed"},

	// Conversation starters
	{Category: domain.SparkCategoryConvo, Vibe: domain.CategoryWholesome, Text: "What's a small thing I do that makes you feel loved?"},
	{Category: domain.SparkCategoryConvo, Vibe: domain.CategoryWholesome, Text: "What's your happiest memory of us so far?"},
	{Category: domain.SparkCategoryConvo, Vibe: domain.CategoryLore, Text: "What did you think of me the very first time we met?"},
	{Category: domain.SparkCategoryConvo, Vibe: domain.CategoryWholesome, Text: "If we could relive one day together, which would you pick?"},
	{Category: domain.SparkCategoryConvo, Vibe: domain.CategoryPlot, Text: "What's something you want us to do together that we haven't done yet?"},
	{Category: domain.SparkCategoryConvo, Vibe: domain.CategoryIntellectual, Text: "What's something you've never told anyone that you'd trust me with?"},
	{Category: domain.SparkCategoryConvo, Vibe: domain.CategoryIntellectual, Text: "What do you think is the meaning of life? Has your answer changed over time?"},
	{Category: domain.SparkCategoryConvo, Vibe: domain.CategoryIntellectual, Text: "What's a belief you held strongly that you've completely changed your mind about?"},
	{Category: domain.SparkCategoryConvo, Vibe: domain.CategoryIntellectual, Text: "If you could have dinner with anyone, dead or alive, who would it be and what would you ask them?"},
	{Category: domain.SparkCategoryConvo, Vibe: domain.CategoryPlot, Text: "Where do you see us in five years?"},
	{Category: domain.SparkCategoryConvo, Vibe: domain.CategoryGrind, Text: "What's a dream you've been too scared to pursue?"},
	{Category: domain.SparkCategoryConvo, Vibe: domain.CategoryPlot, Text: "What would our ideal life look like if money wasn't a factor?"},
	{Category: domain.SparkCategoryConvo, Vibe: domain.CategoryGrind, Text: "What's one thing you want to accomplish this year?"},
	{Category: domain.SparkCategoryConvo, Vibe: domain.CategoryLore, Text: "What's an inside joke of ours that still makes you laugh?"},
	{Category: domain.SparkCategoryConvo, Vibe: domain.CategoryLore, Text: "What was the moment you knew you wanted to be with me?"},
	{Category: domain.SparkCategoryConvo, Vibe: domain.CategoryLore, Text: "What's a childhood story I don't know about you yet?"},

	// Would you rather
	{Category: domain.SparkCategoryWYR, Vibe: domain.CategoryChaos, Text: "Always have to sing instead of speaking", OptionB: "Always have to dance instead of walking"},
	{Category: domain.SparkCategoryWYR, Vibe: domain.CategoryWildcard, Text: "Have the ability to fly", OptionB: "Have the ability to read minds"},
	{Category: domain.SparkCategoryWYR, Vibe: domain.CategoryWholesome, Text: "Live in a treehouse in the forest", OptionB: "Live in a houseboat on the ocean"},
	{Category: domain.SparkCategoryWYR, Vibe: domain.CategoryChaos, Text: "Only be able to whisper for the rest of your life", OptionB: "Only be able to shout for the rest of your life"},
	{Category: domain.SparkCategoryWYR, Vibe: domain.CategoryWildcard, Text: "Never use social media again", OptionB: "Never watch TV/movies again"},
	{Category: domain.SparkCategoryWYR, Vibe: domain.CategoryGrind, Text: "Have unlimited money but no love", OptionB: "Have true love but struggle financially"},
	{Category: domain.SparkCategoryWYR, Vibe: domain.CategoryIntellectual, Text: "Know when you're going to die", OptionB: "Know how you're going to die"},
	{Category: domain.SparkCategoryWYR, Vibe: domain.CategoryGrind, Text: "Be famous but constantly stressed", OptionB: "Be unknown but deeply content"},
	{Category: domain.SparkCategoryWYR, Vibe: domain.CategoryIntellectual, Text: "Relive the same day forever (a good day)", OptionB: "Live a normal life but forget everything each morning"},
	{Category: domain.SparkCategoryWYR, Vibe: domain.CategoryWholesome, Text: "Have your partner plan every date", OptionB: "Plan every date yourself"},
	{Category: domain.SparkCategoryWYR, Vibe: domain.CategorySpicy, Text: "Give up kissing for a year", OptionB: "Give up hugging for a year"},
	{Category: domain.SparkCategoryWYR, Vibe: domain.CategorySpicy, Text: "Have your partner know every thought you have", OptionB: "Never know what they're thinking ever again"},

	// Quick games
	{Category: domain.SparkCategoryGame, Vibe: domain.CategoryWildcard, Text: "Play 20 Questions, one person thinks of something, the other has 20 yes/no questions to guess it", Subtitle: "Categories: person, place, thing, or idea"},
	{Category: domain.SparkCategoryGame, Vibe: domain.CategoryChaos, Text: "Truth or Dare, take turns, no skipping, and be creative!"},
	{Category: domain.SparkCategoryGame, Vibe: domain.CategoryLore, Text: "Two Truths and a Lie, guess which statement is false"},
	{Category: domain.SparkCategoryGame, Vibe: domain.CategoryChaos, Text: "The \"No Laughing\" Challenge, try to make each other laugh without touching. First to crack loses"},
	{Category: domain.SparkCategoryGame, Vibe: domain.CategoryWildcard, Text: "Guess the Song, hum or describe a song without saying any lyrics. See who can guess the most"},
	{Category: domain.SparkCategoryGame, Vibe: domain.CategoryWildcard, Text: "Word Association, say a word, partner says the first word that comes to mind. No pausing!"},
	{Category: domain.SparkCategoryGame, Vibe: domain.CategoryWholesome, Text: "Rate My Day, both rate your day 1-10, then explain why. Celebrate wins or comfort lows"},
	{Category: domain.SparkCategoryGame, Vibe: domain.CategoryWildcard, Text: "This or That, rapid fire preferences: morning or night? Sweet or savory? Beach or mountains?"},
	{Category: domain.SparkCategoryGame, Vibe: domain.CategoryChaos, Text: "Complete My Sentence, start a sentence, partner finishes it. The weirder the better"},
	{Category: domain.SparkCategoryGame, Vibe: domain.CategoryWholesome, Text: "Rose, Bud, Thorn, share a highlight (rose), something you're looking forward to (bud), and a challenge (thorn) from your day", Subtitle: "Great for daily check-ins"},
	{Category: domain.SparkCategoryGame, Vibe: domain.CategoryWholesome, Text: "Compliment Battle, take turns giving genuine compliments. First to get flustered loses"},
	{Category: domain.SparkCategoryGame, Vibe: domain.CategoryChaos, Text: "Hot Takes, share an unpopular opinion. Partner has to guess if it's real or fake"},
}
