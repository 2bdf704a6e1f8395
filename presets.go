package anatomy

// DefaultWord is the word shown before the user types anything.
const DefaultWord = "Sphinx"

// Presets are quick-select words that between them show off every feature.
var Presets = []string{"Sphinx", "Quickly", "CAKE", "Jogger", "Raven"}
