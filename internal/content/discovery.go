package content

import "ecoleludique/internal/game"

// discoveryThemes is the "découverte du monde" classification curriculum:
// animal habitats, diets, reproduction modes and the living/non-living
// distinction.
var discoveryThemes = map[string]Theme{
	"marin-terrestre-aerien": {
		Categories: []game.Category{
			{Name: "Marin", Definition: "Les créatures marines vivent dans l'eau."},
			{Name: "Terrestre", Definition: "Les animaux terrestres vivent sur terre."},
			{Name: "Aérien", Definition: "Les animaux aériens vivent dans les airs."},
		},
		Entries: []Entry{
			{Word: "requin", Category: "Marin"},
			{Word: "saumon", Category: "Marin"},
			{Word: "baleine", Category: "Marin"},
			{Word: "orque", Category: "Marin"},
			{Word: "phoque", Category: "Marin"},
			{Word: "lion", Category: "Terrestre"},
			{Word: "serpent", Category: "Terrestre"},
			{Word: "chat", Category: "Terrestre"},
			{Word: "poule", Category: "Terrestre"},
			{Word: "vache", Category: "Terrestre"},
			{Word: "aigle", Category: "Aérien"},
			{Word: "mouette", Category: "Aérien"},
			{Word: "corbeau", Category: "Aérien"},
			{Word: "cygne", Category: "Aérien"},
			{Word: "hibou", Category: "Aérien"},
		},
	},
	"carnivore-herbivore-omnivore": {
		Categories: []game.Category{
			{Name: "Carnivore", Definition: "Les carnivores se nourrissent principalement de viande."},
			{Name: "Herbivore", Definition: "Les herbivores se nourrissent principalement de plantes."},
			{Name: "Omnivore", Definition: "Les omnivores mangent à la fois des plantes et des animaux."},
		},
		Entries: []Entry{
			{Word: "lion", Category: "Carnivore"},
			{Word: "tigre", Category: "Carnivore"},
			{Word: "aigle", Category: "Carnivore"},
			{Word: "loup", Category: "Carnivore"},
			{Word: "requin", Category: "Carnivore"},
			{Word: "éléphant", Category: "Herbivore"},
			{Word: "girafe", Category: "Herbivore"},
			{Word: "vache", Category: "Herbivore"},
			{Word: "cheval", Category: "Herbivore"},
			{Word: "baleine", Category: "Herbivore"},
			{Word: "ours", Category: "Omnivore"},
			{Word: "cochon", Category: "Omnivore"},
			{Word: "panda", Category: "Omnivore"},
			{Word: "poulet", Category: "Omnivore"},
			{Word: "serpent", Category: "Omnivore"},
		},
	},
	"ovipare-vivipare": {
		Categories: []game.Category{
			{Name: "Ovipare", Definition: "Les animaux ovipares pondent des œufs qui se développent à l'extérieur du corps."},
			{Name: "Vivipare", Definition: "Les animaux vivipares donnent naissance à des petits déjà formés, développés à l'intérieur du corps."},
		},
		Entries: []Entry{
			{Word: "tortue", Category: "Ovipare"},
			{Word: "serpent", Category: "Ovipare"},
			{Word: "poisson", Category: "Ovipare"},
			{Word: "lézard", Category: "Ovipare"},
			{Word: "oiseau", Category: "Ovipare"},
			{Word: "chat", Category: "Vivipare"},
			{Word: "chien", Category: "Vivipare"},
			{Word: "humain", Category: "Vivipare"},
			{Word: "kangourou", Category: "Vivipare"},
			{Word: "cheval", Category: "Vivipare"},
		},
	},
	"vivant-non-vivant": {
		Categories: []game.Category{
			{Name: "Vivant", Definition: "Les éléments vivants sont ceux qui ont la capacité de croître, de se reproduire et d'effectuer des processus biologiques."},
			{Name: "Non-Vivant", Definition: "Les éléments non vivants ne possèdent pas de telles capacités."},
		},
		Entries: []Entry{
			{Word: "chat", Category: "Vivant"},
			{Word: "chien", Category: "Vivant"},
			{Word: "arbre", Category: "Vivant"},
			{Word: "oiseau", Category: "Vivant"},
			{Word: "poisson", Category: "Vivant"},
			{Word: "rocher", Category: "Non-Vivant"},
			{Word: "montagne", Category: "Non-Vivant"},
			{Word: "rue", Category: "Non-Vivant"},
			{Word: "voiture", Category: "Non-Vivant"},
			{Word: "bâtiment", Category: "Non-Vivant"},
		},
	},
}
