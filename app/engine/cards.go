package engine

import "github.com/boardwalk/monopoly-backend/app/models"

// CommunityChestCards returns a fresh copy of the full Community Chest
// deck in canonical order.
func CommunityChestCards() []models.Card {
	return append([]models.Card(nil), communityChestCards...)
}

// ChanceCards returns a fresh copy of the full Chance deck in canonical
// order.
func ChanceCards() []models.Card {
	return append([]models.Card(nil), chanceCards...)
}

var communityChestCards = []models.Card{
	{Id: "cc1", Deck: models.DeckCommunity, Title: "Bank error in your favor", Description: "Collect $200", Effect: models.CardEffect{Type: models.EffectCollect, Value: 200}},
	{Id: "cc2", Deck: models.DeckCommunity, Title: "Doctor's fee", Description: "Pay $50", Effect: models.CardEffect{Type: models.EffectPay, Value: 50}},
	{Id: "cc3", Deck: models.DeckCommunity, Title: "From sale of stock", Description: "You get $50", Effect: models.CardEffect{Type: models.EffectCollect, Value: 50}},
	{Id: "cc4", Deck: models.DeckCommunity, Title: "Get Out of Jail Free", Description: "This card may be kept until needed or sold", Effect: models.CardEffect{Type: models.EffectGetOutOfJail}},
	{Id: "cc5", Deck: models.DeckCommunity, Title: "Go to Jail", Description: "Go directly to Jail, do not pass Go, do not collect $200", Effect: models.CardEffect{Type: models.EffectGoToJail}},
	{Id: "cc6", Deck: models.DeckCommunity, Title: "Grand Opera Night", Description: "Collect $50 from every player for opening night seats", Effect: models.CardEffect{Type: models.EffectCollectFromPlayers, Value: 50}},
	{Id: "cc7", Deck: models.DeckCommunity, Title: "Holiday Fund matures", Description: "Collect $100", Effect: models.CardEffect{Type: models.EffectCollect, Value: 100}},
	{Id: "cc8", Deck: models.DeckCommunity, Title: "Income tax refund", Description: "Collect $20", Effect: models.CardEffect{Type: models.EffectCollect, Value: 20}},
	{Id: "cc9", Deck: models.DeckCommunity, Title: "It's your birthday", Description: "Collect $10 from every player", Effect: models.CardEffect{Type: models.EffectCollectFromPlayers, Value: 10}},
	{Id: "cc10", Deck: models.DeckCommunity, Title: "Life insurance matures", Description: "Collect $100", Effect: models.CardEffect{Type: models.EffectCollect, Value: 100}},
	{Id: "cc11", Deck: models.DeckCommunity, Title: "Hospital fees", Description: "Pay $50", Effect: models.CardEffect{Type: models.EffectPay, Value: 50}},
	{Id: "cc12", Deck: models.DeckCommunity, Title: "School fees", Description: "Pay $50", Effect: models.CardEffect{Type: models.EffectPay, Value: 50}},
	{Id: "cc13", Deck: models.DeckCommunity, Title: "Receive consultancy fee", Description: "Collect $25", Effect: models.CardEffect{Type: models.EffectCollect, Value: 25}},
	{Id: "cc14", Deck: models.DeckCommunity, Title: "You are assessed for street repairs", Description: "$40 per house, $115 per hotel", Effect: models.CardEffect{Type: models.EffectRepairs, PerHouse: 40, PerHotel: 115}},
	{Id: "cc15", Deck: models.DeckCommunity, Title: "You have won second prize in a beauty contest", Description: "Collect $10", Effect: models.CardEffect{Type: models.EffectCollect, Value: 10}},
	{Id: "cc16", Deck: models.DeckCommunity, Title: "You inherit", Description: "Collect $100", Effect: models.CardEffect{Type: models.EffectCollect, Value: 100}},
}

var chanceCards = []models.Card{
	{Id: "ch1", Deck: models.DeckChance, Title: "Advance to Go", Description: "Collect $200", Effect: models.CardEffect{Type: models.EffectAdvanceTo, Value: 0}},
	{Id: "ch2", Deck: models.DeckChance, Title: "Advance to Illinois Avenue", Description: "If you pass Go, collect $200", Effect: models.CardEffect{Type: models.EffectAdvanceTo, Value: 24}},
	{Id: "ch3", Deck: models.DeckChance, Title: "Advance to St. Charles Place", Description: "If you pass Go, collect $200", Effect: models.CardEffect{Type: models.EffectAdvanceTo, Value: 11}},
	{Id: "ch4", Deck: models.DeckChance, Title: "Advance to nearest Utility", Description: "If unowned, you may buy it from the Bank. If owned, throw dice and pay owner 10 times the amount thrown.", Effect: models.CardEffect{Type: models.EffectAdvanceToNearest, Target: models.KindUtility}},
	{Id: "ch5", Deck: models.DeckChance, Title: "Advance to nearest Railroad", Description: "If unowned, you may buy it from the Bank. If owned, pay owner twice the rental to which they are otherwise entitled.", Effect: models.CardEffect{Type: models.EffectAdvanceToNearest, Target: models.KindRailroad}},
	{Id: "ch6", Deck: models.DeckChance, Title: "Bank pays you dividend", Description: "Collect $50", Effect: models.CardEffect{Type: models.EffectCollect, Value: 50}},
	{Id: "ch7", Deck: models.DeckChance, Title: "Get Out of Jail Free", Description: "This card may be kept until needed or sold", Effect: models.CardEffect{Type: models.EffectGetOutOfJail}},
	{Id: "ch8", Deck: models.DeckChance, Title: "Go back 3 spaces", Description: "Move back 3 spaces", Effect: models.CardEffect{Type: models.EffectMoveBack, Value: 3}},
	{Id: "ch9", Deck: models.DeckChance, Title: "Go to Jail", Description: "Go directly to Jail, do not pass Go, do not collect $200", Effect: models.CardEffect{Type: models.EffectGoToJail}},
	{Id: "ch10", Deck: models.DeckChance, Title: "Make general repairs on all your property", Description: "$25 per house, $100 per hotel", Effect: models.CardEffect{Type: models.EffectRepairs, PerHouse: 25, PerHotel: 100}},
	{Id: "ch11", Deck: models.DeckChance, Title: "Speeding fine", Description: "Pay $15", Effect: models.CardEffect{Type: models.EffectPay, Value: 15}},
	{Id: "ch12", Deck: models.DeckChance, Title: "Take a trip to Reading Railroad", Description: "If you pass Go, collect $200", Effect: models.CardEffect{Type: models.EffectAdvanceTo, Value: 5}},
	{Id: "ch13", Deck: models.DeckChance, Title: "Take a walk on the Boardwalk", Description: "Advance to Boardwalk", Effect: models.CardEffect{Type: models.EffectAdvanceTo, Value: 39}},
	{Id: "ch14", Deck: models.DeckChance, Title: "You have been elected Chairman of the Board", Description: "Pay each player $50", Effect: models.CardEffect{Type: models.EffectPayToPlayers, Value: 50}},
	{Id: "ch15", Deck: models.DeckChance, Title: "Your building loan matures", Description: "Collect $150", Effect: models.CardEffect{Type: models.EffectCollect, Value: 150}},
	{Id: "ch16", Deck: models.DeckChance, Title: "You have won a crossword competition", Description: "Collect $100", Effect: models.CardEffect{Type: models.EffectCollect, Value: 100}},
}
