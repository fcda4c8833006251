package i18n

import (
	"golang.org/x/text/message"

	"blackjack/internal/game"
)

func init() {
	lang := Swedish

	message.SetString(lang, WelcomeTitleKey, "Hej Black Jack Världen")
	message.SetString(lang, WelcomeHelpKey, "Skriv 'p' för att Spela, 'h' för nytt kort, 's' för att stanna 'q' för att avsluta")
	message.SetString(lang, InputPromptKey, "Ange kommando (p = spela, h = nytt kort, s = stanna, q = avsluta): ")
	message.SetString(lang, InputErrorKey, "Fel vid inläsning av indata: %v")
	message.SetString(lang, DealerHasKey, "Croupiern har:")
	message.SetString(lang, PlayerHasKey, "Spelaren har:")
	message.SetString(lang, ScoreKey, "Poäng: %d")
	message.SetString(lang, GameOverKey, "Slut på spelet:")
	message.SetString(lang, DealerWonKey, "Croupiern vann!")
	message.SetString(lang, PlayerWonKey, "Du vann!")
	message.SetString(lang, ErrorKey, "Fel: %s")
	message.SetString(lang, SummaryTitleKey, "Spelsammanfattning:")
	message.SetString(lang, SummaryPlayerWinsKey, "Spelarens vinster: %d")
	message.SetString(lang, SummaryDealerWinsKey, "Croupierens vinster: %d")
	message.SetString(lang, ThanksKey, "Tack för att du spelade!")
	message.SetString(lang, CardDealtKey, "Ett nytt kort har delats ut, uppdaterar spelet...")
	message.SetString(lang, GameEndedKey, "Spelet är slut.")
	message.SetString(lang, PlayWhilePlayingKey, "Kan inte starta ett nytt spel medan du spelar. Använd 'h', 's' eller 'q'.")
	message.SetString(lang, InvalidCommandKey, "Ogiltigt kommando. Vänligen använd 'h', 's' eller 'q'.")
	message.SetString(lang, UnknownCommandKey, "Okänt kommando.")
	message.SetString(lang, ReplayPromptKey, "Tryck 'p' för att spela igen eller 'q' för att avsluta.")

	message.SetString(lang, CommandPlayKey, "Starta ett nytt spel")
	message.SetString(lang, CommandHitKey, "Be om ett kort till")
	message.SetString(lang, CommandStandKey, "Stanna på nuvarande hand")
	message.SetString(lang, CommandQuitKey, "Avsluta spelet")
	message.SetString(lang, CommandInvalidKey, "Ogiltigt kommando")

	message.SetString(lang, CardNameKey, "%s av %s")
	message.SetString(lang, HiddenCardKey, "Dolt kort")
	setNames(lang,
		[game.ColorCount]string{"Hjärter", "Spader", "Ruter", "Klöver"},
		[game.ValueCount]string{"Två", "Tre", "Fyra", "Fem", "Sex", "Sju", "Åtta", "Nio", "Tio", "Knekt", "Dam", "Kung", "Ess"},
	)

	message.SetString(lang, BotWelcomeKey, "🎰 Välkommen till Blackjack!\n\n/play — ny giv\n/stats — vinster hittills\n/lang en|sv — språk\n/help — regler")
	message.SetString(lang, BotHelpKey, "📖 Kom närmare 21 än croupiern utan att gå över.\n\n• 2-10 räknas som sitt värde\n• Knekt, Dam, Kung räknas som 10\n• Ess räknas som 11 eller 1\n\nCroupiern drar kort tills husets regler säger stopp.")
	message.SetString(lang, BotNoGameKey, "Ingen giv än. Använd /play")
	message.SetString(lang, BotInProgressKey, "En giv pågår redan.")
	message.SetString(lang, BotCannotHitKey, "Du kan inte ta fler kort.")
	message.SetString(lang, BotCardsDealtKey, "🃏 %d kort utdelade")
	message.SetString(lang, BotStatsKey, "📊 Spelarens vinster: %d\nCroupierens vinster: %d")
	message.SetString(lang, BotLangSetKey, "Språket är nu svenska.")
	message.SetString(lang, BotLangUsageKey, "Användning: /lang en|sv")
	message.SetString(lang, BotErrorKey, "❌ Något gick fel. Försök igen senare.")
	message.SetString(lang, BotButtonHitKey, "👊 Kort")
	message.SetString(lang, BotButtonStandKey, "✋ Stanna")
	message.SetString(lang, BotButtonAgainKey, "🔄 Spela igen")
	message.SetString(lang, BotInactiveKey, "Given är slut")
}
