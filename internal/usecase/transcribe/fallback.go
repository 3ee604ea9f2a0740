package transcribe

import "math/rand/v2"

// Fallback corpus: realistic fixture transcripts served when the provider is
// unavailable, keyed by language hint.

var englishFallbackTranscripts = []string{
	"Good morning everyone, thanks for joining today's meeting. Let's start by reviewing our progress from last week. Sarah, could you give us an update on the user authentication feature?",
	"Welcome to our weekly planning session. Today we need to discuss our Q4 roadmap and prioritize the upcoming features.",
	"Hi team, this is our client check-in call. The client has expressed satisfaction with our current progress and they're particularly happy with the new dashboard features.",
	"Thanks everyone for joining this brainstorming session. We need to come up with creative solutions for improving user engagement on our platform.",
}

var hinglishFallbackTranscripts = []string{
	"Aaj ka meeting start karte hain. Sabko dhanyawad for joining. Pehle hum last week ka progress review karenge. Sarah, kya aap authentication feature ke baare mein update de sakti hain?",
	"Namaskar everyone, weekly planning session mein aapka swagat hai. Aaj hum Q4 roadmap discuss karenge aur upcoming features ko prioritize karenge. Mobile app development hamare liye sabse important hai.",
	"Hello team, yeh hamare client ke saath check-in call hai. Client bahut khush hai current progress se aur dashboard features se particularly impressed hain. Unke paas next phase ke liye kuch additional requirements hain.",
	"Thanks sabko joining ke liye. Humein user engagement improve karne ke liye creative solutions chahiye. Current metrics dekh kar lagta hai ki improvement ki scope hai. Innovative approaches explore karte hain.",
}

// fallbackTranscript picks one corpus entry for the requested language
func fallbackTranscript(lang Language) string {
	corpus := englishFallbackTranscripts
	if lang == LanguageHinglish {
		corpus = hinglishFallbackTranscripts
	}
	return corpus[rand.IntN(len(corpus))]
}
