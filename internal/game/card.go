package game

type Color int

const (
	Hearts Color = iota
	Spades
	Diamonds
	Clubs
	ColorCount
	ColorHidden
)

var colorNames = [...]string{"Hearts", "Spades", "Diamonds", "Clubs", "Count", "Hidden"}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "Unknown"
	}
	return colorNames[c]
}

type Value int

const (
	Two Value = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Knight
	Queen
	King
	Ace
	ValueCount
	ValueHidden
)

var valueNames = [...]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
	"Knight", "Queen", "King", "Ace", "Count", "Hidden",
}

func (v Value) String() string {
	if v < 0 || int(v) >= len(valueNames) {
		return "Unknown"
	}
	return valueNames[v]
}

// Card is a playing card that can lie face down. While hidden it reports
// ColorHidden and ValueHidden to every reader.
type Card struct {
	color  Color
	value  Value
	hidden bool
}

// NewCard returns a face-down card.
func NewCard(color Color, value Value) *Card {
	return &Card{color: color, value: value, hidden: true}
}

func (c Card) Color() Color {
	if c.hidden {
		return ColorHidden
	}
	return c.color
}

func (c Card) Value() Value {
	if c.hidden {
		return ValueHidden
	}
	return c.value
}

func (c Card) Hidden() bool {
	return c.hidden
}

func (c *Card) show(visible bool) {
	c.hidden = !visible
}

func (c Card) String() string {
	if c.hidden {
		return "Hidden"
	}
	return c.value.String() + " of " + c.color.String()
}
