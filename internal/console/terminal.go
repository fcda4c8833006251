package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pterm/pterm"
	"golang.org/x/text/message"

	"blackjack/internal/game"
	"blackjack/internal/i18n"
)

// TerminalView is a line-oriented View on a reader and a writer. Text comes
// from the i18n catalogs for the configured language.
type TerminalView struct {
	in    *bufio.Reader
	out   io.Writer
	p     *message.Printer
	pause time.Duration
	sleep func(time.Duration)
}

func NewTerminalView(in io.Reader, out io.Writer, lang string, pause time.Duration) *TerminalView {
	return &TerminalView{
		in:    bufio.NewReader(in),
		out:   out,
		p:     i18n.Printer(lang),
		pause: pause,
		sleep: time.Sleep,
	}
}

func (v *TerminalView) println(a ...any) {
	fmt.Fprintln(v.out, a...)
}

func (v *TerminalView) DisplayWelcome() {
	v.println(pterm.Bold.Sprint(v.p.Sprintf(i18n.WelcomeTitleKey)))
	v.println(v.p.Sprintf(i18n.WelcomeHelpKey))
	v.println()
}

// Input reads lines until one is not blank and maps its first rune. End of
// input counts as Quit.
func (v *TerminalView) Input() Command {
	fmt.Fprint(v.out, v.p.Sprintf(i18n.InputPromptKey))
	for {
		line, err := v.in.ReadString('\n')
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			r, _ := utf8.DecodeRuneInString(trimmed)
			return ParseCommand(r)
		}
		if errors.Is(err, io.EOF) {
			v.println()
			return Quit
		}
		if err != nil {
			v.println(v.p.Sprintf(i18n.InputErrorKey, err))
			return Invalid
		}
	}
}

func (v *TerminalView) DisplayCard(c game.Card) {
	name := i18n.CardName(v.p, c)
	switch c.Color() {
	case game.Hearts, game.Diamonds:
		name = pterm.LightRed(name)
	case game.ColorHidden:
		name = pterm.Gray(name)
	}
	v.println(name)
}

func (v *TerminalView) DisplayDealerHand(hand []game.Card, score int) {
	v.displayHand(i18n.DealerHasKey, hand, score)
}

func (v *TerminalView) DisplayPlayerHand(hand []game.Card, score int) {
	v.displayHand(i18n.PlayerHasKey, hand, score)
}

func (v *TerminalView) displayHand(titleKey string, hand []game.Card, score int) {
	v.println(pterm.Bold.Sprint(v.p.Sprintf(titleKey)))
	for _, c := range hand {
		v.DisplayCard(c)
	}
	v.println(v.p.Sprintf(i18n.ScoreKey, score))
	v.println()
}

func (v *TerminalView) DisplayGameOver(dealerIsWinner bool) {
	v.println(pterm.Bold.Sprint(v.p.Sprintf(i18n.GameOverKey)))
	if dealerIsWinner {
		v.println(pterm.LightRed(v.p.Sprintf(i18n.DealerWonKey)))
	} else {
		v.println(pterm.LightGreen(v.p.Sprintf(i18n.PlayerWonKey)))
	}
}

func (v *TerminalView) DisplayError(msg string) {
	v.println(pterm.Red(v.p.Sprintf(i18n.ErrorKey, msg)))
}

func (v *TerminalView) DisplayPrompt(prompt string) {
	v.println(prompt)
}

func (v *TerminalView) DisplaySummary(playerWins, dealerWins int) {
	v.println()
	v.println(pterm.Bold.Sprint(v.p.Sprintf(i18n.SummaryTitleKey)))
	v.println(v.p.Sprintf(i18n.SummaryPlayerWinsKey, playerWins))
	v.println(v.p.Sprintf(i18n.SummaryDealerWinsKey, dealerWins))
	v.println(v.p.Sprintf(i18n.ThanksKey))
}

func (v *TerminalView) Pause() {
	if v.pause > 0 {
		v.sleep(v.pause)
	}
}

func (v *TerminalView) HandleInvalidCommand(cmd Command) {
	switch cmd {
	case Play:
		v.DisplayError(v.p.Sprintf(i18n.PlayWhilePlayingKey))
	case Invalid:
		v.DisplayError(v.p.Sprintf(i18n.InvalidCommandKey))
	default:
		v.DisplayError(v.p.Sprintf(i18n.UnknownCommandKey))
	}
}

func (v *TerminalView) PromptForReplay() bool {
	v.DisplayPrompt(v.p.Sprintf(i18n.ReplayPromptKey))
	return v.Input() == Play
}

// Update is called for every dealt card and every new round.
func (v *TerminalView) Update() {
	v.Pause()
	v.println(v.p.Sprintf(i18n.CardDealtKey))
}

func (v *TerminalView) CardDealt() {
	v.Update()
}

func (v *TerminalView) GameOver() {
	v.println(v.p.Sprintf(i18n.GameEndedKey))
}
