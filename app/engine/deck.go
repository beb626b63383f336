package engine

import (
	"math/rand"

	"github.com/boardwalk/monopoly-backend/app/models"
)

// shuffleCards permutes the deck in place (Fisher-Yates).
func shuffleCards(cards []models.Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// drawCard removes and returns the front card of the requested deck.
// Drawn cards return to the pool via reshuffle when the deck runs out;
// the exception is Get Out of Jail Free, which stays out of the pool
// while a player holds it.
func (e *Engine) drawCard(g *models.GameState, deck models.DeckKind) models.Card {
	var cards *[]models.Card
	if deck == models.DeckChance {
		cards = &g.ChanceCards
	} else {
		cards = &g.CommunityCards
	}

	card := (*cards)[0]
	*cards = (*cards)[1:]

	if card.Effect.Type == models.EffectGetOutOfJail {
		if deck == models.DeckChance {
			g.ChanceJailOut = true
		} else {
			g.CommunityJailOut = true
		}
	}

	if len(*cards) == 0 {
		*cards = e.freshDeck(g, deck)
	}
	return card
}

// freshDeck rebuilds a deck from its full card set, minus a held Get
// Out of Jail Free card, and shuffles it.
func (e *Engine) freshDeck(g *models.GameState, deck models.DeckKind) []models.Card {
	var cards []models.Card
	var jailOut bool
	if deck == models.DeckChance {
		cards = ChanceCards()
		jailOut = g.ChanceJailOut
	} else {
		cards = CommunityChestCards()
		jailOut = g.CommunityJailOut
	}
	if jailOut {
		kept := cards[:0]
		for _, c := range cards {
			if c.Effect.Type != models.EffectGetOutOfJail {
				kept = append(kept, c)
			}
		}
		cards = kept
	}
	shuffleCards(cards, e.rng)
	return cards
}

// returnJailCard puts a used or traded-away Get Out of Jail Free card
// back into a deck's pool; it re-enters play on that deck's next
// reshuffle. When both decks have their card out the Chance one returns
// first.
func returnJailCard(g *models.GameState) {
	if g.ChanceJailOut {
		g.ChanceJailOut = false
	} else if g.CommunityJailOut {
		g.CommunityJailOut = false
	}
}
