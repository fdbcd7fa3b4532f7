package credentials

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Word lists for generating kid-friendly French passwords
var adjectives = []string{
	"petit", "grand", "rapide", "malin", "joyeux", "brave", "super", "magique",
	"rigolo", "gentil", "curieux", "agile", "vif", "doux", "fort", "rusé",
	"calme", "fier", "sage", "espiègle", "radieux", "vaillant", "habile", "futé",
}

var nouns = []string{
	"dragon", "tigre", "aigle", "dauphin", "panda", "lion", "loup", "ours",
	"renard", "faucon", "requin", "phénix", "licorne", "fusée", "chevalier", "pirate",
	"robot", "astronaute", "héros", "champion", "explorateur", "magicien", "comète", "tonnerre",
}

// GeneratePassword generates a memorable password in the format
// "adjectif-nom-NN". Students type it themselves, so it stays short and
// pronounceable rather than random characters.
func GeneratePassword() (string, error) {
	adjective, err := randomElement(adjectives)
	if err != nil {
		return "", err
	}

	noun, err := randomElement(nouns)
	if err != nil {
		return "", err
	}

	num, err := rand.Int(rand.Reader, big.NewInt(100))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%s-%02d", adjective, noun, num.Int64()), nil
}

// randomElement picks a random element from a string slice
func randomElement(slice []string) (string, error) {
	if len(slice) == 0 {
		return "", nil
	}

	num, err := rand.Int(rand.Reader, big.NewInt(int64(len(slice))))
	if err != nil {
		return "", err
	}

	return slice[num.Int64()], nil
}
