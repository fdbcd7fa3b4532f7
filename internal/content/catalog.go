package content

import "ecoleludique/internal/game"

// Subject identifiers as the client knows them.
const (
	SubjectMaths     = "mathsGame"
	SubjectFrench    = "frenchGame"
	SubjectEnglish   = "englishGame"
	SubjectDiscovery = "discoveryWorldGame"
)

// Game binds one playable activity to its provider and validator. IDs
// are unique within a subject, not globally: "relier" exists for both
// French and English.
type Game struct {
	Subject   string
	ID        string
	Name      string
	Provider  game.Provider
	Validator game.Validator
}

// Catalog is the fixed set of playable games.
type Catalog struct {
	games []Game
	index map[string]int
}

func key(subject, id string) string {
	return subject + "/" + id
}

// NewCatalog builds the full activity catalog.
func NewCatalog() *Catalog {
	games := []Game{
		{
			Subject:   SubjectMaths,
			ID:        "operations",
			Name:      "Les opérations",
			Provider:  ArithmeticProvider{},
			Validator: game.ArithmeticValidator{},
		},
		{
			Subject:   SubjectMaths,
			ID:        "ordre",
			Name:      "Ranger les nombres",
			Provider:  OrderingProvider{Count: 6},
			Validator: game.TotalOrderValidator{},
		},
		{
			Subject:   SubjectMaths,
			ID:        "comparaison",
			Name:      "Comparer les nombres",
			Provider:  ComparisonProvider{},
			Validator: game.ComparisonValidator{},
		},
		{
			Subject:   SubjectMaths,
			ID:        "clock-game",
			Name:      "Lire l'heure",
			Provider:  ClockProvider{},
			Validator: game.ClockValidator{},
		},
		{
			Subject:   SubjectFrench,
			ID:        "ponctuation",
			Name:      "La ponctuation",
			Provider:  PunctuationProvider{},
			Validator: game.SentenceValidator{},
		},
		{
			Subject:   SubjectFrench,
			ID:        "pronoms",
			Name:      "Les pronoms",
			Provider:  PronounProvider{},
			Validator: game.SentenceValidator{},
		},
		{
			Subject:   SubjectFrench,
			ID:        "alphabet",
			Name:      "L'alphabet",
			Provider:  AlphabetProvider{},
			Validator: game.FillInValidator{},
		},
		{
			Subject:   SubjectFrench,
			ID:        "relier",
			Name:      "Relier les conjugaisons",
			Provider:  MatchingProvider{Universe: frenchVerbMatches, Count: 6},
			Validator: game.PairingValidator{},
		},
		{
			Subject:   SubjectEnglish,
			ID:        "relier",
			Name:      "Match the words",
			Provider:  MatchingProvider{Universe: englishMatches, Count: 5},
			Validator: game.PairingValidator{},
		},
		{
			Subject:   SubjectDiscovery,
			ID:        "classification",
			Name:      "La classification",
			Provider:  ClassificationProvider{Universe: discoveryThemes, Count: 5},
			Validator: game.SetMembershipValidator{},
		},
	}

	index := make(map[string]int, len(games))
	for i, g := range games {
		index[key(g.Subject, g.ID)] = i
	}
	return &Catalog{games: games, index: index}
}

// Lookup returns the game registered under a subject and id.
func (c *Catalog) Lookup(subject, id string) (Game, bool) {
	i, ok := c.index[key(subject, id)]
	if !ok {
		return Game{}, false
	}
	return c.games[i], true
}

// Games returns every registered game in registration order.
func (c *Catalog) Games() []Game {
	return append([]Game(nil), c.games...)
}
