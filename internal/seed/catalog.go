package seed

import "github.com/crashlar/quotesforever/internal/quote"

// CatalogEntry is one curated (text, author, mood) triple. Applicability
// ranges are sampled per run by GenerateMoodCatalog.
type CatalogEntry struct {
	Text   string
	Author string
	Mood   string
}

// MoodCatalog returns the fixed curated list of mood quotes, grouped by
// mood bucket.
func MoodCatalog() []CatalogEntry {
	return append([]CatalogEntry(nil), moodCatalog...)
}

var moodCatalog = []CatalogEntry{
	// happy
	{"The most wasted of days is one without laughter.", "E. E. Cummings", quote.MoodHappy},
	{"Happiness is not something ready made. It comes from your own actions.", "Dalai Lama", quote.MoodHappy},
	{"The purpose of our lives is to be happy.", "Dalai Lama", quote.MoodHappy},
	{"Spread love everywhere you go. Let no one ever come to you without leaving happier.", "Mother Teresa", quote.MoodHappy},
	{"Be happy for this moment. This moment is your life.", "Omar Khayyam", quote.MoodHappy},
	{"Happiness is a butterfly, which when pursued, is always just beyond your grasp.", "Nathaniel Hawthorne", quote.MoodHappy},
	{"The happiness of your life depends upon the quality of your thoughts.", "Marcus Aurelius", quote.MoodHappy},
	{"Joy is the simplest form of gratitude.", "Karl Barth", quote.MoodHappy},
	{"Time you enjoy wasting is not wasted time.", "Marthe Troly-Curtin", quote.MoodHappy},

	// sad
	{"Tears come from the heart and not from the brain.", "Leonardo da Vinci", quote.MoodSad},
	{"The word 'happy' would lose its meaning if it were not balanced by sadness.", "Carl Jung", quote.MoodSad},
	{"Every man has his secret sorrows which the world knows not.", "Henry Wadsworth Longfellow", quote.MoodSad},
	{"Sadness is but a wall between two gardens.", "Kahlil Gibran", quote.MoodSad},
	{"The soul would have no rainbow had the eyes no tears.", "John Vance Cheney", quote.MoodSad},
	{"There are moments when I wish I could roll back the clock.", "Nicholas Sparks", quote.MoodSad},
	{"The tragedy of life is not that it ends so soon, but that we wait so long to begin it.", "W. M. Lewis", quote.MoodSad},

	// motivated
	{"Don't be pushed around by the fears in your mind. Be led by the dreams in your heart.", "Roy T. Bennett", quote.MoodMotivated},
	{"Believe you can and you're halfway there.", "Theodore Roosevelt", quote.MoodMotivated},
	{"The only limit to our realization of tomorrow will be our doubts of today.", "Franklin D. Roosevelt", quote.MoodMotivated},
	{"It always seems impossible until it's done.", "Nelson Mandela", quote.MoodMotivated},
	{"The way to get started is to quit talking and begin doing.", "Walt Disney", quote.MoodMotivated},
	{"Your time is limited, so don't waste it living someone else's life.", "Steve Jobs", quote.MoodMotivated},
	{"The future belongs to those who believe in the beauty of their dreams.", "Eleanor Roosevelt", quote.MoodMotivated},

	// stressed
	{"You can't calm the storm, so stop trying. What you can do is calm yourself.", "Timber Hawkeye", quote.MoodStressed},
	{"It's not the load that breaks you down, it's the way you carry it.", "Lou Holtz", quote.MoodStressed},
	{"Stress is caused by being 'here' but wanting to be 'there'.", "Eckhart Tolle", quote.MoodStressed},
	{"Every stress leaves an indelible scar, and the organism pays for its survival.", "Hans Selye", quote.MoodStressed},
	{"Adopting the right attitude can convert a negative stress into a positive one.", "Hans Selye", quote.MoodStressed},

	// love
	{"The best thing to hold onto in life is each other.", "Audrey Hepburn", quote.MoodLove},
	{"Love is composed of a single soul inhabiting two bodies.", "Aristotle", quote.MoodLove},
	{"To love and be loved is to feel the sun from both sides.", "David Viscott", quote.MoodLove},
	{"Love isn't something you find. Love is something that finds you.", "Loretta Young", quote.MoodLove},
	{"The greatest happiness of life is the conviction that we are loved.", "Victor Hugo", quote.MoodLove},

	// career
	{"Your work is going to fill a large part of your life, so make sure it's something you're passionate about.", "Steve Jobs", quote.MoodCareer},
	{"The only way to do great work is to love what you do.", "Steve Jobs", quote.MoodCareer},
	{"Opportunities don't happen. You create them.", "Chris Grosser", quote.MoodCareer},
	{"Don't be afraid to give up the good to go for the great.", "John D. Rockefeller", quote.MoodCareer},
	{"Success is not the key to happiness. Happiness is the key to success.", "Albert Schweitzer", quote.MoodCareer},

	// angry
	{"Holding onto anger is like drinking poison and expecting the other person to die.", "Buddha", quote.MoodAngry},
	{"For every minute you remain angry, you give up sixty seconds of peace of mind.", "Ralph Waldo Emerson", quote.MoodAngry},
	{"Anger is an acid that can do more harm to the vessel in which it is stored than to anything on which it is poured.", "Mark Twain", quote.MoodAngry},

	// confused
	{"The only true wisdom is in knowing you know nothing.", "Socrates", quote.MoodConfused},
	{"In the middle of difficulty lies opportunity.", "Albert Einstein", quote.MoodConfused},
	{"When we are no longer able to change a situation, we are challenged to change ourselves.", "Viktor Frankl", quote.MoodConfused},
}

// FallbackQuotes returns the bundled catalog used when the remote sources
// yielded too little data. Entries carry explicit categories and a context
// note in the inspiration field.
func FallbackQuotes() []quote.Quote {
	out := make([]quote.Quote, len(fallbackQuotes))
	for i, f := range fallbackQuotes {
		tag := f.inspiration
		out[i] = quote.Quote{
			Text:        f.text,
			Author:      f.author,
			Category:    f.category,
			Inspiration: &tag,
		}
	}
	return out
}

var fallbackQuotes = []struct {
	text, author, category, inspiration string
}{
	{"The only way to do great work is to love what you do.", "Steve Jobs", "Motivation", "Career inspiration"},
	{"Innovation distinguishes between a leader and a follower.", "Steve Jobs", "Innovation", "Leadership qualities"},
	{"Your time is limited, don't waste it living someone else's life.", "Steve Jobs", "Life", "Personal growth"},
	{"The future belongs to those who believe in the beauty of their dreams.", "Eleanor Roosevelt", "Dreams", "Inspirational"},
	{"Don't watch the clock; do what it does. Keep going.", "Sam Levenson", "Perseverance", "Motivation"},
	{"The only impossible journey is the one you never begin.", "Tony Robbins", "Courage", "Starting new things"},
	{"In the middle of difficulty lies opportunity.", "Albert Einstein", "Opportunity", "Problem solving"},
	{"Life is what happens to you while you're busy making other plans.", "John Lennon", "Life", "Mindfulness"},
	{"The way to get started is to quit talking and begin doing.", "Walt Disney", "Action", "Productivity"},
	{"It's not whether you get knocked down, it's whether you get up.", "Vince Lombardi", "Resilience", "Sports motivation"},
	{"Be the change that you wish to see in the world.", "Mahatma Gandhi", "Wisdom", "Social change"},
	{"Live as if you were to die tomorrow. Learn as if you were to live forever.", "Mahatma Gandhi", "Wisdom", "Life philosophy"},
	{"The journey of a thousand miles begins with one step.", "Lao Tzu", "Wisdom", "Starting journeys"},
	{"That which does not kill us makes us stronger.", "Friedrich Nietzsche", "Wisdom", "Resilience"},
	{"Be yourself; everyone else is already taken.", "Oscar Wilde", "Wisdom", "Authenticity"},
	{"Success is not final, failure is not fatal: it is the courage to continue that counts.", "Winston Churchill", "Success", "Persistence"},
	{"The only place where success comes before work is in the dictionary.", "Vidal Sassoon", "Success", "Hard work"},
	{"Don't be afraid to give up the good to go for the great.", "John D. Rockefeller", "Success", "Ambition"},
	{"You know you're in love when you can't fall asleep because reality is finally better than your dreams.", "Dr. Seuss", "Love", "Romance"},
	{"The best thing to hold onto in life is each other.", "Audrey Hepburn", "Love", "Relationships"},
	{"Love is composed of a single soul inhabiting two bodies.", "Aristotle", "Love", "Philosophy"},
	{"I have not failed. I've just found 10,000 ways that won't work.", "Thomas Edison", "Perseverance", "Innovation process"},
	{"If you can dream it, you can do it.", "Walt Disney", "Dreams", "Achievement"},
	{"The only thing we have to fear is fear itself.", "Franklin D. Roosevelt", "Courage", "Overcoming fear"},
	{"It is during our darkest moments that we must focus to see the light.", "Aristotle", "Hope", "Difficult times"},
	{"Whoever is happy will make others happy too.", "Anne Frank", "Happiness", "Positive impact"},
	{"Do what you can, with what you have, where you are.", "Theodore Roosevelt", "Action", "Resourcefulness"},
	{"The purpose of life is to live it, to taste experience to the utmost.", "Eleanor Roosevelt", "Life", "Experience"},
}
