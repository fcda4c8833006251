package game

const MaxScore = 21

// cardScores is indexed by Value; Ace counts 11 until reduced.
var cardScores = [ValueCount]int{2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10, 11}

type Hand struct {
	cards []*Card
}

func (h *Hand) add(c *Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) clear() {
	h.cards = h.cards[:0]
}

func (h *Hand) showAll() {
	for _, c := range h.cards {
		c.show(true)
	}
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the hand in deal order. Hidden cards stay hidden
// in the copy.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	for i, c := range h.cards {
		out[i] = *c
	}
	return out
}

// Score sums the visible cards and then counts Aces as 1, one at a time in
// deal order, until the total no longer exceeds MaxScore. A hidden Ace adds
// nothing and is not reduced.
func (h *Hand) Score() int {
	score := 0
	for _, c := range h.cards {
		if v := c.Value(); v != ValueHidden {
			score += cardScores[v]
		}
	}

	if score > MaxScore {
		for _, c := range h.cards {
			if c.Value() == Ace && score > MaxScore {
				score -= 10
			}
		}
	}

	return score
}

func (h *Hand) has(v Value) bool {
	for _, c := range h.cards {
		if c.Value() == v {
			return true
		}
	}
	return false
}
