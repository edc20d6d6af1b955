package scoring

import "github.com/prasetyo/idxquant/internal/contracts"

// ClassifySentiment maps price vs. MA50/MA200/EMA21 onto one of four
// labels. Rules are evaluated top to bottom, first match wins.
func ClassifySentiment(snap contracts.IndicatorSnapshot) contracts.Sentiment {
	price := snap.Close

	switch {
	case price > snap.MA50 && price > snap.MA200:
		return contracts.SentimentStrongBullish
	case price > snap.EMA21:
		return contracts.SentimentMildBullish
	case price < snap.MA200:
		return contracts.SentimentBearish
	default:
		return contracts.SentimentNeutral
	}
}
