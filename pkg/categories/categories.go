package categories

import (
	"fmt"
	"strconv"
	"strings"
)

// foods is the fixed list of 20 popular Myanmar food categories. Each name
// maps 1:1 to an output folder.
var foods = []string{
	"mohinga",           // Traditional fish noodle soup
	"laphet thoke",      // Tea leaf salad
	"shan noodles",      // Shan style noodles
	"mont hin gar",      // Fish soup with rice noodles
	"khow suey",         // Coconut noodle soup
	"nga htamin",        // Fish rice
	"mandalay mee shay", // Mandalay style noodles
	"ohn no khao swe",   // Coconut chicken noodles
	"kyet thar hin",     // Chicken curry
	"wet tha hin",       // Pork curry
	"nga baung doke",    // Fish wrapped in banana leaf
	"mont lone yay paw", // Round glutinous rice balls
	"shwe yin aye",      // Sweet dessert drink
	"faluda",            // Sweet drink with vermicelli
	"htamin thoke",      // Rice salad
	"thoke sone",        // Mixed salad
	"dan bauk",          // Biryani Myanmar style
	"meeshay",           // Rice noodles with sauce
	"nan gyi thoke",     // Thick rice noodle salad
	"mont ti",           // Sweet snack
}

// All returns the full category list in fixed order
func All() []string {
	out := make([]string, len(foods))
	copy(out, foods)
	return out
}

// Count returns the number of categories in the fixed list
func Count() int {
	return len(foods)
}

// Contains reports whether name is one of the fixed categories
func Contains(name string) bool {
	name = Normalize(name)
	for _, f := range foods {
		if f == name {
			return true
		}
	}
	return false
}

// Normalize lowercases and trims a category name
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Resolve turns user input into a category name. Input may be a 1-based
// index into the fixed list or a name. Unknown names are accepted as a
// user-chosen category (the provider search works for any query); only
// empty input and out-of-range indexes are errors.
func Resolve(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("empty category selection")
	}

	if idx, err := strconv.Atoi(input); err == nil {
		if idx < 1 || idx > len(foods) {
			return "", fmt.Errorf("category number %d out of range (1-%d)", idx, len(foods))
		}
		return foods[idx-1], nil
	}

	return Normalize(input), nil
}
