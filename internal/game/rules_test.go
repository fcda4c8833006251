package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmericanNewGame(t *testing.T) {
	dealer := NewDealer(DefaultRules{})
	player := NewPlayer()
	obs := &countingObserver{}
	dealer.Attach(obs)
	player.Attach(obs)

	ok := AmericanNewGame{}.NewGame(NewDeck(), dealer, player)
	require.True(t, ok)

	hand := player.Hand()
	require.Len(t, hand, 2)
	for _, c := range hand {
		assert.False(t, c.Hidden())
	}

	dh := dealer.Hand()
	require.Len(t, dh, 2)
	assert.False(t, dh[0].Hidden())
	assert.True(t, dh[1].Hidden())

	assert.Equal(t, 4, obs.updates)
}

func TestInternationalNewGame(t *testing.T) {
	dealer := NewDealer(DefaultRules{})
	player := NewPlayer()
	obs := &countingObserver{}
	dealer.Attach(obs)
	player.Attach(obs)

	ok := InternationalNewGame{}.NewGame(NewDeck(), dealer, player)
	require.True(t, ok)

	assert.Len(t, player.Hand(), 2)
	dh := dealer.Hand()
	require.Len(t, dh, 1)
	assert.False(t, dh[0].Hidden())

	assert.Equal(t, 3, obs.updates)
}

func TestAmericanDealOrder(t *testing.T) {
	dealer := NewDealer(DefaultRules{})
	player := NewPlayer()
	deck := stackedDeck(Two, Three, Four, Five)()

	AmericanNewGame{}.NewGame(deck, dealer, player)

	ph := player.Hand()
	assert.Equal(t, Two, ph[0].Value())
	assert.Equal(t, Four, ph[1].Value())
	assert.Equal(t, Three, dealer.Hand()[0].Value())

	dealer.ShowHand()
	assert.Equal(t, Five, dealer.Hand()[1].Value())
}

// handScoring builds an Ace-free visible hand worth exactly score points.
func handScoring(score int) *Player {
	p := NewPlayer()
	for rem := score; rem > 0; {
		pts := min(rem, 10)
		if rem-pts == 1 {
			pts--
		}
		p.DealCard(faceUp(Value(pts - 2)))
		rem -= pts
	}
	return p
}

func TestBasicHit(t *testing.T) {
	for score := 0; score <= 30; score++ {
		if score == 1 {
			continue
		}
		p := handScoring(score)
		require.Equal(t, score, p.Score())
		assert.Equal(t, score < 17, BasicHit{}.DoHit(p), "score %d", score)
	}
}

func TestSoft17Hit(t *testing.T) {
	tests := []struct {
		name   string
		values []Value
		want   bool
	}{
		{"ace six", []Value{Ace, Six}, true},
		{"king seven", []Value{King, Seven}, false},
		{"below 17", []Value{Ten, Six}, true},
		{"18", []Value{Ten, Eight}, false},
		{"ace two four is not detected", []Value{Ace, Two, Four}, false},
		{"hard 17 holding ace and six", []Value{Six, Ace, Ten}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := playerWith(tt.values...)
			assert.Equal(t, tt.want, Soft17Hit{}.DoHit(p))
		})
	}
}

func TestSoft17HitIgnoresHiddenSix(t *testing.T) {
	p := playerWith(Ace, Ace, Five)
	p.DealCard(NewCard(Spades, Six))

	require.Equal(t, 17, p.Score())
	assert.False(t, Soft17Hit{}.DoHit(p))
}

func TestWinStrategies(t *testing.T) {
	tests := []struct {
		name       string
		dealer     []Value
		player     []Value
		dealerWins bool
		playerTies bool
	}{
		{"tie 19", []Value{Ten, Nine}, []Value{King, Nine}, true, true},
		{"player bust", []Value{Ten, Eight}, []Value{Ten, Eight, Four}, true, false},
		{"both bust", []Value{Ten, Eight, Five}, []Value{Ten, Eight, Four}, true, false},
		{"dealer bust", []Value{Ten, Six, Nine}, []Value{Ten, Two}, false, false},
		{"dealer higher", []Value{Ten, Nine}, []Value{Ten, Eight}, true, false},
		{"player higher", []Value{Ten, Seven}, []Value{Ten, Eight}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, p := playerWith(tt.dealer...), playerWith(tt.player...)

			assert.Equal(t, tt.dealerWins, DealerAlwaysWins{}.IsDealerWinner(d, p))

			want := tt.dealerWins
			if tt.playerTies {
				want = false
			}
			assert.Equal(t, want, PlayerAlwaysWins{}.IsDealerWinner(d, p))
		})
	}
}

func TestParseRules(t *testing.T) {
	rs, err := ParseRules("", "", "")
	require.NoError(t, err)
	assert.Equal(t, AmericanNewGame{}, rs.NewGameRule())
	assert.Equal(t, BasicHit{}, rs.HitRule())
	assert.Equal(t, DealerAlwaysWins{}, rs.WinRule())

	rs, err = ParseRules("International", " soft17 ", "player")
	require.NoError(t, err)
	assert.Equal(t, InternationalNewGame{}, rs.NewGameRule())
	assert.Equal(t, Soft17Hit{}, rs.HitRule())
	assert.Equal(t, PlayerAlwaysWins{}, rs.WinRule())

	_, err = ParseRules("european", "", "")
	assert.ErrorContains(t, err, "new game rule")
	_, err = ParseRules("", "always", "")
	assert.ErrorContains(t, err, "hit rule")
	_, err = ParseRules("", "", "house")
	assert.ErrorContains(t, err, "win rule")
}
