package content

import (
	"fmt"
	"math/rand"
	"strings"

	"ecoleludique/internal/game"
)

// frenchVerbMatches is the présent conjugation curriculum: subject
// pronouns on the left, the conjugated form on the right.
var frenchVerbMatches = map[string][]Match{
	"manger": {
		{Word: "je", Target: "mange"},
		{Word: "tu", Target: "manges"},
		{Word: "il,elle", Target: "mange"},
		{Word: "nous", Target: "mangeons"},
		{Word: "vous", Target: "mangez"},
		{Word: "ils,elles", Target: "mangent"},
	},
	"chanter": {
		{Word: "je", Target: "chante"},
		{Word: "tu", Target: "chantes"},
		{Word: "il,elle", Target: "chante"},
		{Word: "nous", Target: "chantons"},
		{Word: "vous", Target: "chantez"},
		{Word: "ils,elles", Target: "chantent"},
	},
	"faire": {
		{Word: "je", Target: "fais"},
		{Word: "tu", Target: "fais"},
		{Word: "il,elle", Target: "fait"},
		{Word: "nous", Target: "faisons"},
		{Word: "vous", Target: "faites"},
		{Word: "ils,elles", Target: "font"},
	},
	"dire": {
		{Word: "je", Target: "dis"},
		{Word: "tu", Target: "dis"},
		{Word: "il,elle", Target: "dit"},
		{Word: "nous", Target: "disons"},
		{Word: "vous", Target: "dites"},
		{Word: "ils,elles", Target: "disent"},
	},
	"venir": {
		{Word: "je", Target: "viens"},
		{Word: "tu", Target: "viens"},
		{Word: "il,elle", Target: "vient"},
		{Word: "nous", Target: "venons"},
		{Word: "vous", Target: "venez"},
		{Word: "ils,elles", Target: "viennent"},
	},
	"dormir": {
		{Word: "je", Target: "dors"},
		{Word: "tu", Target: "dors"},
		{Word: "il,elle", Target: "dort"},
		{Word: "nous", Target: "dormons"},
		{Word: "vous", Target: "dormez"},
		{Word: "ils,elles", Target: "dorment"},
	},
	"vendre": {
		{Word: "je", Target: "vends"},
		{Word: "tu", Target: "vends"},
		{Word: "il,elle", Target: "vend"},
		{Word: "nous", Target: "vendons"},
		{Word: "vous", Target: "vendez"},
		{Word: "ils,elles", Target: "vendent"},
	},
	"parler": {
		{Word: "je", Target: "parle"},
		{Word: "tu", Target: "parles"},
		{Word: "il,elle", Target: "parle"},
		{Word: "nous", Target: "parlons"},
		{Word: "vous", Target: "parlez"},
		{Word: "ils,elles", Target: "parlent"},
	},
	"regarder": {
		{Word: "je", Target: "regarde"},
		{Word: "tu", Target: "regardes"},
		{Word: "il,elle", Target: "regarde"},
		{Word: "nous", Target: "regardons"},
		{Word: "vous", Target: "regardez"},
		{Word: "ils,elles", Target: "regardent"},
	},
	"aimer": {
		{Word: "j'", Target: "aime"},
		{Word: "tu", Target: "aimes"},
		{Word: "il,elle", Target: "aime"},
		{Word: "nous", Target: "aimons"},
		{Word: "vous", Target: "aimez"},
		{Word: "ils,elles", Target: "aiment"},
	},
	"lire": {
		{Word: "je", Target: "lis"},
		{Word: "tu", Target: "lis"},
		{Word: "il,elle", Target: "lit"},
		{Word: "nous", Target: "lisons"},
		{Word: "vous", Target: "lisez"},
		{Word: "ils,elles", Target: "lisent"},
	},
}

// pronounTools are the replacement pronouns offered to the student.
var pronounTools = []string{"il", "elle", "nous", "vous", "ils", "elles"}

// pronounSentences are shown with a subject group to be replaced by a
// pronoun; pronounAccepted holds every valid corrected sentence. The
// accepted set is shared across sentences: correctness is membership in
// the full set, not a per-sentence lookup.
var pronounSentences = []string{
	"Moi et Harry rentrons à Poudlard en septembre.",
	"Ron et moi adorons le Quidditch.",
	"Moi et mes amis aimons les créatures magiques.",
	"Les élèves et toi allez à Pré-au-Lard mercredi soir.",
	"Harry et toi devez étudier à la bibliothèque.",
	"Toi et Neville venez au bal de Noël ensemble.",
	"Papa et maman nous accompagnent à la gare.",
	"Hagrid et Dumbledore discutent de la forêt interdite.",
	"Hermione et Luna parlent de leur prochain examen.",
	"Les filles vont au cours de potions.",
	"Cho Chang lit un livre étrange.",
	"Drago décore le sapin de Noël avec ses amis.",
	"Ginny s'entraîne à lancer des sorts.",
}

var pronounAccepted = []string{
	"nous rentrons à Poudlard en septembre.",
	"nous adorons le Quidditch.",
	"nous aimons les créatures magiques.",
	"vous allez à Pré-au-Lard mercredi soir.",
	"vous devez étudier à la bibliothèque.",
	"vous venez au bal de Noël ensemble.",
	"ils nous accompagnent à la gare.",
	"ils discutent de la forêt interdite.",
	"elles parlent de leur prochain examen.",
	"elles vont au cours de potions.",
	"elle lit un livre étrange.",
	"il décore le sapin de Noël avec ses amis.",
	"elle s'entraîne à lancer des sorts.",
}

// punctuationSentences are stripped of capitals and punctuation; the
// student restores both. punctuationAccepted holds the canonical
// corrected forms, matched exactly.
var punctuationSentences = [][]string{
	{"harry", "mange", "à", "la", "table", "de", "gryffondor", "ron", "lui", "parle", "de", "sa", "dernière", "aventure"},
	{"harry", "dort", "dans", "un", "placard", "sous", "l'escalier", "dudley", "le", "réveille", "en", "sautant", "sur", "les", "marches"},
	{"hermione", "étudie", "dans", "la", "bibliothèque", "harry", "et", "ron", "jouent", "aux", "échecs", "magiques"},
	{"draco", "malfoy", "se", "moque", "de", "harry", "dans", "le", "couloir", "pansy", "parkinson", "rit", "de", "ses", "blagues"},
	{"hagrid", "prend", "soin", "de", "son", "dragon", "harry", "l’aide", "à", "nourrir", "norbert"},
	{"dumbledore", "parle", "aux", "élèves", "dans", "la", "grande", "salle", "harry", "écoute", "attentivement"},
	{"ron", "se", "dispute", "avec", "draco", "pendant", "le", "cours", "de", "potions", "hermione", "essaie", "de", "calmer", "tout", "le", "monde"},
	{"les", "weasley", "décorent", "leur", "sapin", "de", "noël", "harry", "les", "aide", "en", "accrochant", "des", "guirlandes"},
	{"luna", "lovegood", "lit", "un", "livre", "étrange", "harry", "la", "regarde", "en", "se", "demandant", "ce", "qu'elle", "fait"},
	{"neville", "trébuche", "dans", "le", "hall", "ginny", "lui", "tend", "la", "main", "pour", "l’aider"},
	{"harry", "vole", "sur", "son", "balai", "pendant", "le", "match", "de", "quidditch", "cho", "chang", "le", "regarde", "depuis", "les", "gradins"},
}

var punctuationAccepted = []string{
	"Harry mange à la table de Gryffondor, Ron lui parle de sa dernière aventure.",
	"Harry dort dans un placard sous l'escalier, Dudley le réveille en sautant sur les marches.",
	"Hermione étudie dans la bibliothèque, Harry et Ron jouent aux échecs magiques.",
	"Draco Malfoy se moque de Harry dans le couloir, Pansy Parkinson rit de ses blagues.",
	"Hagrid prend soin de son dragon, Harry l’aide à nourrir Norbert.",
	"Dumbledore parle aux élèves dans la grande salle, Harry écoute attentivement.",
	"Ron se dispute avec Draco pendant le cours de potions, Hermione essaie de calmer tout le monde.",
	"Les Weasley décorent leur sapin de Noël, Harry les aide en accrochant des guirlandes.",
	"Luna Lovegood lit un livre étrange, Harry la regarde en se demandant ce qu'elle fait.",
	"Neville trébuche dans le hall, Ginny lui tend la main pour l’aider.",
	"Harry vole sur son balai pendant le match de Quidditch, Cho Chang le regarde depuis les gradins.",
}

// PronounProvider shows a sentence whose subject group must be replaced
// by the right pronoun. Tools are offered as items.
type PronounProvider struct{}

func (PronounProvider) NextPrompt(previousTheme string, period int) (*game.Prompt, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}

	sentence := pronounSentences[rand.Intn(len(pronounSentences))]
	items := make([]game.Item, 0, len(pronounTools))
	for _, tool := range pronounTools {
		items = append(items, game.Item{ID: tool, Display: tool})
	}

	return &game.Prompt{
		Kind:     game.KindSentence,
		Items:    items,
		Sentence: sentence,
		Accepted: append([]string(nil), pronounAccepted...),
	}, nil
}

// PunctuationProvider shows a sentence with capitals and punctuation
// stripped; the student restores them word by word.
type PunctuationProvider struct{}

func (PunctuationProvider) NextPrompt(previousTheme string, period int) (*game.Prompt, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}

	words := punctuationSentences[rand.Intn(len(punctuationSentences))]
	items := make([]game.Item, 0, len(words))
	for i, w := range words {
		items = append(items, game.Item{ID: fmt.Sprintf("w%d", i), Display: w})
	}

	return &game.Prompt{
		Kind:     game.KindSentence,
		Items:    items,
		Sentence: strings.Join(words, " "),
		Accepted: append([]string(nil), punctuationAccepted...),
	}, nil
}

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// AlphabetProvider shows the alphabet with three to seven letters blanked
// out to be filled back in.
type AlphabetProvider struct{}

func (AlphabetProvider) NextPrompt(previousTheme string, period int) (*game.Prompt, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}

	missing := 3 + rand.Intn(5)
	blanked := make(map[int]bool, missing)
	for len(blanked) < missing {
		blanked[rand.Intn(len(alphabet))] = true
	}

	items := make([]game.Item, 0, len(alphabet))
	blanks := make(map[string]string, missing)
	for i, letter := range alphabet {
		id := fmt.Sprintf("l%d", i)
		display := string(letter)
		if blanked[i] {
			display = ""
			blanks[id] = string(letter)
		}
		items = append(items, game.Item{ID: id, Display: display})
	}

	return &game.Prompt{
		Kind:   game.KindFillIn,
		Items:  items,
		Blanks: blanks,
	}, nil
}
