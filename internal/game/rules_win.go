package game

// DealerAlwaysWins gives ties to the dealer.
type DealerAlwaysWins struct{}

func (DealerAlwaysWins) IsDealerWinner(dealer, player *Player) bool {
	ds, ps := dealer.Score(), player.Score()
	switch {
	case ps > MaxScore:
		return true
	case ds > MaxScore:
		return false
	case ds == ps:
		return true
	}
	return ds >= ps
}

// PlayerAlwaysWins gives ties to the player.
type PlayerAlwaysWins struct{}

func (PlayerAlwaysWins) IsDealerWinner(dealer, player *Player) bool {
	ds, ps := dealer.Score(), player.Score()
	switch {
	case ps > MaxScore:
		return true
	case ds > MaxScore:
		return false
	case ds == ps:
		return false
	}
	return ds > ps
}
