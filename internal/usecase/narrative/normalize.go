package narrative

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"dyflissan/internal/domain/story"
)

// Normalize turns raw player input into a transition token for n.
//
// Binary prompts are lenient: anything containing "j" is yes, otherwise
// anything containing "n" is no. Menus need one of the options exactly; only
// a stray trailing carriage return is dropped. Class nodes never read input.
func Normalize(n *story.Node, input string) (string, bool) {
	switch n.Kind {
	case story.PromptFree:
		return story.TokenAny, true
	case story.PromptBinary:
		answer := cases.Lower(language.Icelandic).String(norm.NFC.String(input))
		if strings.Contains(answer, story.TokenYes) {
			return story.TokenYes, true
		}
		if strings.Contains(answer, story.TokenNo) {
			return story.TokenNo, true
		}
	case story.PromptMenu:
		option := strings.TrimSuffix(input, "\r")
		if slices.Contains(n.Options, option) {
			return option, true
		}
	}
	return "", false
}
