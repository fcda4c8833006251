package game

import (
	"fmt"
	"strings"
)

// NewGameStrategy deals the opening cards.
type NewGameStrategy interface {
	NewGame(deck *Deck, dealer *Dealer, player *Player) bool
}

// HitStrategy decides whether the dealer takes another card.
type HitStrategy interface {
	DoHit(dealer *Player) bool
}

// WinStrategy decides who won once both hands are final.
type WinStrategy interface {
	IsDealerWinner(dealer, player *Player) bool
}

// RulesFactory supplies one rule of each family to a new dealer.
type RulesFactory interface {
	NewGameRule() NewGameStrategy
	HitRule() HitStrategy
	WinRule() WinStrategy
}

// DefaultRules is American dealing, hit below 17 and dealer wins ties.
type DefaultRules struct{}

func (DefaultRules) NewGameRule() NewGameStrategy { return AmericanNewGame{} }
func (DefaultRules) HitRule() HitStrategy         { return BasicHit{} }
func (DefaultRules) WinRule() WinStrategy         { return DealerAlwaysWins{} }

// RuleSet is a RulesFactory with fixed members.
type RuleSet struct {
	Deal NewGameStrategy
	Hit  HitStrategy
	Win  WinStrategy
}

func (r RuleSet) NewGameRule() NewGameStrategy { return r.Deal }
func (r RuleSet) HitRule() HitStrategy         { return r.Hit }
func (r RuleSet) WinRule() WinStrategy         { return r.Win }

// ParseRules maps configuration names to a RuleSet. Empty names select the
// DefaultRules member of that family.
func ParseRules(deal, hit, win string) (RuleSet, error) {
	var defaults DefaultRules
	rs := RuleSet{
		Deal: defaults.NewGameRule(),
		Hit:  defaults.HitRule(),
		Win:  defaults.WinRule(),
	}

	switch strings.ToLower(strings.TrimSpace(deal)) {
	case "", "american":
	case "international":
		rs.Deal = InternationalNewGame{}
	default:
		return RuleSet{}, fmt.Errorf("unknown new game rule %q", deal)
	}

	switch strings.ToLower(strings.TrimSpace(hit)) {
	case "", "basic":
	case "soft17":
		rs.Hit = Soft17Hit{}
	default:
		return RuleSet{}, fmt.Errorf("unknown hit rule %q", hit)
	}

	switch strings.ToLower(strings.TrimSpace(win)) {
	case "", "dealer":
	case "player":
		rs.Win = PlayerAlwaysWins{}
	default:
		return RuleSet{}, fmt.Errorf("unknown win rule %q", win)
	}

	return rs, nil
}
