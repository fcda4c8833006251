package game

const hitLimit = 17

// BasicHit draws while the dealer is below 17.
type BasicHit struct{}

func (BasicHit) DoHit(dealer *Player) bool {
	return dealer.Score() < hitLimit
}

// Soft17Hit also draws on a soft 17. A soft 17 here means exactly 17 with a
// visible Ace and a visible Six in the hand; other soft totals such as
// Ace-Two-Four are treated as hard.
type Soft17Hit struct{}

func (Soft17Hit) DoHit(dealer *Player) bool {
	score := dealer.Score()
	if score < hitLimit {
		return true
	}
	return score == hitLimit && dealer.hasCard(Ace) && dealer.hasCard(Six)
}
