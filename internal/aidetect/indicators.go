package aidetect

import "text_humanizer/internal/phrases"

var formalPhrases = []string{
	"it is important to note", "furthermore", "moreover", "in addition",
	"it should be noted", "it is worth mentioning", "as previously mentioned",
	"in conclusion", "to summarize", "in essence", "it can be argued",
	"it is evident that", "it is clear that", "it is apparent that",
	"it is obvious that", "it is noteworthy that", "it is significant that",
	"it is crucial that", "it is essential that", "it is imperative that",
	"it is important to emphasize", "it should be emphasized", "it is worth noting",
	"it is important to highlight", "it is crucial to note", "it is essential to mention",
	"it is imperative to emphasize", "it is important to consider", "it is worth considering",
	"it is important to understand", "it is crucial to understand", "it is essential to understand",
}

var academicPhrases = []string{
	"according to", "based on", "in terms of", "with respect to", "in relation to",
	"in the context of", "in light of", "in view of", "in consideration of",
	"as a result of", "as a consequence of", "due to the fact that",
	"in accordance with", "in compliance with", "in conformity with", "in line with",
	"in keeping with", "in agreement with", "in response to", "in reaction to",
	"in reply to", "in answer to",
}

var complexWords = []string{
	"implementation", "methodology", "comprehensive", "analysis", "framework",
	"optimization", "utilization", "facilitate", "demonstrate", "illustrate",
	"elaborate", "subsequently", "consequently", "furthermore", "moreover",
	"additionally", "nevertheless", "nonetheless", "conversely", "alternatively",
	"specifically", "particularly", "especially", "notably", "significantly",
	"considerably", "substantially", "considerable", "significant", "substantial",
	"extensive", "thorough", "detailed", "sophisticated", "advanced", "complex",
	"intricate", "nuanced", "systematic", "methodical", "analytical", "theoretical",
	"conceptual", "empirical", "quantitative", "qualitative", "statistical",
	"probabilistic", "deterministic", "algorithmic",
}

var contractionWords = []string{
	"don't", "can't", "won't", "isn't", "aren't", "wasn't", "weren't", "hasn't",
	"haven't", "hadn't", "doesn't", "didn't", "wouldn't", "couldn't", "shouldn't",
	"mightn't", "mustn't", "shan't", "i'm", "you're", "he's", "she's", "it's",
	"we're", "they're", "i've", "you've", "we've", "they've", "i'd", "you'd",
	"he'd", "she'd", "we'd", "they'd", "i'll", "you'll", "he'll", "she'll",
	"we'll", "they'll", "that's", "there's", "here's", "where's",
}

var informalWords = []string{
	"gonna", "wanna", "gotta", "lemme", "gimme", "kinda", "sorta", "yeah", "yep",
	"nope", "nah", "uh", "um", "hmm", "wow", "cool", "awesome", "amazing", "great",
	"good", "bad", "terrible", "horrible", "nice", "sweet", "dude", "guy", "buddy",
	"pal", "friend", "mate", "stuff", "thing", "things", "guys", "girl", "girls",
	"kid", "kids", "mom", "dad", "bro", "sis", "fam",
}

var emotionalWords = []string{
	"love", "hate", "like", "dislike", "enjoy", "enjoyed", "enjoying", "happy",
	"sad", "angry", "excited", "worried", "scared", "nervous", "confused",
	"surprised", "shocked", "amazed", "disappointed", "frustrated", "annoyed",
	"irritated", "upset", "mad", "glad", "pleased", "satisfied", "content",
	"relieved", "anxious", "stressed", "furious", "livid", "ecstatic", "thrilled",
	"devastated", "heartbroken", "overjoyed", "delighted", "miserable",
	"terrified", "petrified",
}

var fillerWords = []string{
	"like", "you know", "i mean", "basically", "actually", "literally", "honestly",
	"frankly", "seriously", "obviously", "clearly", "apparently", "supposedly",
	"allegedly", "reportedly", "evidently", "presumably", "probably", "maybe",
	"perhaps", "possibly", "hopefully",
}

// stockPatterns are the boilerplate openers counted by the pattern-density feature.
var stockPatterns = []string{
	"it is important to note", "furthermore", "moreover", "additionally",
	"in conclusion", "to summarize", "it should be noted", "it is worth mentioning",
	"as a result", "consequently", "therefore", "thus", "hence", "in order to",
	"for the purpose of", "with regard to", "in terms of", "in the context of",
	"it is evident that", "it is clear that", "the implementation of",
	"the utilization of", "the demonstration of", "comprehensive framework",
	"systematic approach", "methodological approach", "optimal solution",
	"efficient methodology", "robust analysis",
	"the analysis shows", "the analysis reveals", "the analysis demonstrates",
	"the analysis indicates", "the analysis suggests", "the analysis confirms",
	"the results show", "the results reveal", "the results demonstrate",
	"the findings show", "the findings reveal", "the findings demonstrate",
	"it is important to", "it is crucial to", "it is essential to",
	"it is necessary to", "it is vital to", "it is fundamental to",
}

type indicatorSet struct {
	formal    *phrases.Matcher
	academic  *phrases.Matcher
	complex   *phrases.Matcher
	contract  *phrases.Matcher
	informal  *phrases.Matcher
	emotional *phrases.Matcher
	filler    *phrases.Matcher
	stock     *phrases.Matcher
}

var indicators = indicatorSet{
	formal:    phrases.MustNew(formalPhrases),
	academic:  phrases.MustNew(academicPhrases),
	complex:   phrases.MustNew(complexWords),
	contract:  phrases.MustNew(contractionWords),
	informal:  phrases.MustNew(informalWords),
	emotional: phrases.MustNew(emotionalWords),
	filler:    phrases.MustNew(fillerWords),
	stock:     phrases.MustNew(stockPatterns),
}
