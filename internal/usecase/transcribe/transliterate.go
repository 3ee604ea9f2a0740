package transcribe

import "strings"

type substitution struct {
	from string
	to   string
}

// wordSubstitutions maps common Devanagari words to their Roman spellings.
// Applied before the character pass so frequent words keep their familiar
// Hinglish forms instead of a raw phonetic rendering.
var wordSubstitutions = []substitution{
	{"मैं", "main"},
	{"आज", "aaj"},
	{"कल", "kal"},
	{"अभी", "abhi"},
	{"क्या", "kya"},
	{"कैसे", "kaise"},
	{"कहाँ", "kahan"},
	{"कब", "kab"},
	{"कौन", "kaun"},
	{"कितना", "kitna"},
	{"यह", "yeh"},
	{"वह", "voh"},
	{"हाँ", "haan"},
	{"नहीं", "nahin"},
	{"और", "aur"},
	{"या", "ya"},
	{"भी", "bhi"},
	{"के", "ke"},
	{"का", "ka"},
	{"की", "ki"},
	{"को", "ko"},
	{"से", "se"},
	{"में", "mein"},
	{"पर", "par"},
	{"गया", "gaya"},
	{"आया", "aaya"},
	{"किया", "kiya"},
	{"होगा", "hoga"},
	{"था", "tha"},
	{"है", "hai"},
	{"हैं", "hain"},
	{"थे", "the"},
	{"बहुत", "bahut"},
	{"अच्छा", "accha"},
	{"बुरा", "bura"},
	{"छोटा", "chota"},
	{"बड़ा", "bada"},
	{"अच्छी", "acchi"},
	{"ठीक", "theek"},
	{"सही", "sahi"},
	{"गलत", "galat"},
	{"काम", "kaam"},
	{"घर", "ghar"},
	{"ऑफिस", "office"},
	{"मीटिंग", "meeting"},
	{"टाइम", "time"},
	{"डे", "day"},
	{"वीक", "week"},
	{"ईयर", "year"},
	{"बात", "baat"},
	{"चलो", "chalo"},
	{"जाना", "jaana"},
	{"आना", "aana"},
	{"देखना", "dekhna"},
	{"सुनना", "sunna"},
	{"कहना", "kahna"},
	{"भाई", "bhai"},
	{"यार", "yaar"},
	{"दोस्त", "dost"},
}

// charSubstitutions is the phonetic map for Devanagari characters left over
// after the word pass.
var charSubstitutions = []substitution{
	{"अ", "a"}, {"आ", "aa"}, {"इ", "i"}, {"ई", "ee"}, {"उ", "u"}, {"ऊ", "oo"},
	{"ए", "e"}, {"ऐ", "ai"}, {"ओ", "o"}, {"औ", "au"},
	{"क", "k"}, {"ख", "kh"}, {"ग", "g"}, {"घ", "gh"},
	{"च", "ch"}, {"छ", "chh"}, {"ज", "j"}, {"झ", "jh"},
	{"ट", "t"}, {"ठ", "th"}, {"ड", "d"}, {"ढ", "dh"}, {"ण", "n"},
	{"त", "t"}, {"थ", "th"}, {"द", "d"}, {"ध", "dh"}, {"न", "n"},
	{"प", "p"}, {"फ", "ph"}, {"ब", "b"}, {"भ", "bh"}, {"म", "m"},
	{"य", "y"}, {"र", "r"}, {"ल", "l"}, {"व", "v"},
	{"श", "sh"}, {"ष", "sh"}, {"स", "s"}, {"ह", "h"},
	{"ा", "aa"}, {"ि", "i"}, {"ी", "ee"}, {"ु", "u"}, {"ू", "oo"},
	{"े", "e"}, {"ै", "ai"}, {"ो", "o"}, {"ौ", "au"}, {"्", ""},
}

// TransliterateDevanagari converts Devanagari output from the Hindi model
// back to Roman script. The word pass runs first; the character pass only
// cleans up what the dictionary did not cover. The order is load-bearing:
// reversing it would shred dictionary words before they can match.
func TransliterateDevanagari(text string) string {
	for _, s := range wordSubstitutions {
		text = strings.ReplaceAll(text, s.from, s.to)
	}
	for _, s := range charSubstitutions {
		text = strings.ReplaceAll(text, s.from, s.to)
	}
	return text
}
