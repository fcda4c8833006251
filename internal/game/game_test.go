package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dealerShouldWin evaluates the tie-to-dealer rules straight from scores.
func dealerShouldWin(dealer, player int) bool {
	if player > MaxScore {
		return true
	}
	if dealer > MaxScore {
		return false
	}
	return dealer >= player
}

func TestGameEndToEnd(t *testing.T) {
	for i := 0; i < 50; i++ {
		g := New(DefaultRules{})

		require.True(t, g.NewGame())
		for g.DealerScore() < 17 {
			require.True(t, g.Stand())
		}
		require.True(t, g.IsGameOver())

		want := dealerShouldWin(g.DealerScore(), g.PlayerScore())
		assert.Equal(t, want, g.IsDealerWinner(),
			"dealer %d player %d", g.DealerScore(), g.PlayerScore())
		assert.Equal(t, 1, g.PlayerWins()+g.DealerWins())
	}
}

func TestGameCountsEachRoundOnce(t *testing.T) {
	g := New(DefaultRules{}, WithDeck(stackedDeck(Ten, Six, Seven, Five, Nine)))

	require.True(t, g.NewGame())
	assert.False(t, g.IsDealerWinner(), "player leads 17 to 6 before the round ends")
	assert.Equal(t, 0, g.PlayerWins(), "unfinished round is not counted")

	require.True(t, g.Stand())
	require.Equal(t, 20, g.DealerScore())

	assert.True(t, g.IsDealerWinner())
	assert.True(t, g.IsDealerWinner())
	assert.Equal(t, 1, g.DealerWins())
	assert.Equal(t, 0, g.PlayerWins())

	require.True(t, g.NewGame())
	require.True(t, g.Stand())
	g.IsDealerWinner()
	assert.Equal(t, 2, g.DealerWins(), "counters survive new rounds")
}

func TestGamePlayerWinsTie(t *testing.T) {
	rules := RuleSet{Deal: AmericanNewGame{}, Hit: BasicHit{}, Win: PlayerAlwaysWins{}}
	g := New(rules, WithDeck(stackedDeck(Ten, Ten, Nine, Nine)))

	require.True(t, g.NewGame())
	require.True(t, g.Stand())
	require.Equal(t, 19, g.DealerScore())
	require.Equal(t, 19, g.PlayerScore())

	assert.False(t, g.IsDealerWinner())
	assert.Equal(t, 1, g.PlayerWins())
}

func TestGameNewGameRefusedMidRound(t *testing.T) {
	g := New(DefaultRules{}, WithDeck(stackedDeck(Ten, Six, Seven, Five, Two, Nine)))

	require.True(t, g.NewGame())
	assert.False(t, g.NewGame())
	assert.False(t, g.IsGameOver())
}

func TestGameHandsHideHoleCard(t *testing.T) {
	g := New(DefaultRules{}, WithDeck(stackedDeck(Ten, Six, Seven, Ace, Nine)))

	require.True(t, g.NewGame())
	dh := g.DealerHand()
	require.Len(t, dh, 2)
	assert.Equal(t, ValueHidden, dh[1].Value())
	assert.Equal(t, ColorHidden, dh[1].Color())
	assert.Len(t, g.PlayerHand(), 2)

	require.True(t, g.Stand())
	assert.Equal(t, Ace, g.DealerHand()[1].Value())
	assert.Equal(t, 17, g.DealerScore())
}

func TestGameAttachSeesBothSides(t *testing.T) {
	g := New(DefaultRules{}, WithDeck(stackedDeck(Ten, Six, Seven, Five, Two)))
	obs := &countingObserver{}
	g.Attach(obs)

	require.True(t, g.NewGame())
	assert.Equal(t, 5, obs.updates, "game start plus four cards")

	g.Detach(obs)
	g.Dealer().Attach(obs)
	obs.updates = 0
	g.Hit()
	assert.Equal(t, 0, obs.updates, "player cards go to player observers")
}

func TestGameIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, New(DefaultRules{}).ID(), New(DefaultRules{}).ID())
}
