package game

// Player owns a hand and tells its observers about every card it receives.
type Player struct {
	subject
	hand Hand
}

func NewPlayer() *Player {
	return &Player{}
}

// DealCard puts c in the hand and notifies. Callers flip the card before
// dealing so observers see it the way it will lie on the table.
func (p *Player) DealCard(c *Card) {
	p.hand.add(c)
	p.notify()
}

func (p *Player) Hand() []Card {
	return p.hand.Cards()
}

func (p *Player) ShowHand() {
	p.hand.showAll()
}

func (p *Player) Score() int {
	return p.hand.Score()
}

func (p *Player) MaxScore() int {
	return MaxScore
}

func (p *Player) ClearHand() {
	p.hand.clear()
}

func (p *Player) hasCard(v Value) bool {
	return p.hand.has(v)
}
