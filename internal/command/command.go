// Package command tokenizes one raw input line into the ordered list of
// semantic commands the processor applies.
//
// Commands are separated by semicolons. A token without a leading semicolon is
// the implicit title filter; a token starting with a semicolon carries a
// one-character discriminator followed by optional text, e.g. ";e notepad.exe".
package command

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Separator splits an input line into command tokens.
const Separator = ";"

// Kind identifies a parsed command.
type Kind int

const (
	Unknown Kind = iota
	Title
	Exe
	Get
	Set
	Limit
	Delete
	Order
)

func (k Kind) String() string {
	switch k {
	case Title:
		return "title"
	case Exe:
		return "exe"
	case Get:
		return "get"
	case Set:
		return "set"
	case Limit:
		return "limit"
	case Delete:
		return "delete"
	case Order:
		return "order"
	default:
		return "unknown"
	}
}

// Command is one parsed command. Word holds the raw discriminator word for
// Unknown commands so callers can suggest a correction.
type Command struct {
	Kind Kind
	Text string
	Word string
}

// Parse tokenizes line into commands in encounter order. A separator as the
// very first character begins the first token rather than producing an empty
// leading one. Discriminators longer than one character parse as Unknown.
func Parse(line string) []Command {
	var cmds []Command
	for _, tok := range tokenize(strings.TrimSpace(line)) {
		if tok == "" {
			continue
		}
		tok = strings.TrimSpace(tok)
		if !strings.HasPrefix(tok, Separator) {
			cmds = append(cmds, Command{Kind: Title, Text: tok})
			continue
		}
		// Spaces between the separator and the command character are allowed.
		tok = strings.TrimLeft(tok[1:], " \t")
		switch {
		case isCommandChar(tok, "t", true):
			cmds = append(cmds, Command{Kind: Title, Text: textAfter(tok)})
		case isCommandChar(tok, "e", true):
			cmds = append(cmds, Command{Kind: Exe, Text: textAfter(tok)})
		case isCommandChar(tok, "g", true):
			cmds = append(cmds, Command{Kind: Get, Text: textAfter(tok)})
		case isCommandChar(tok, "s", true):
			cmds = append(cmds, Command{Kind: Set, Text: textAfter(tok)})
		case isCommandChar(tok, "o", true):
			cmds = append(cmds, Command{Kind: Order, Text: textAfter(tok)})
		case isCommandChar(tok, "l", false):
			cmds = append(cmds, Command{Kind: Limit})
		case isCommandChar(tok, "d", false):
			cmds = append(cmds, Command{Kind: Delete})
		default:
			cmds = append(cmds, Command{Kind: Unknown, Text: textAfter(tok), Word: firstWord(tok)})
		}
	}
	return cmds
}

// tokenize splits on the separator, keeping the separator attached to the
// start of each token after the first.
func tokenize(line string) []string {
	var toks []string
	var tok strings.Builder
	for _, c := range line {
		if c == rune(Separator[0]) && tok.Len() > 0 {
			toks = append(toks, tok.String())
			tok.Reset()
		}
		tok.WriteRune(c)
	}
	return append(toks, tok.String())
}

// isCommandChar reports whether tok is the bare command character, or starts
// the character followed by text when allowText is set.
func isCommandChar(tok, char string, allowText bool) bool {
	if strings.TrimSpace(tok) == char {
		return true
	}
	return allowText && strings.HasPrefix(tok, char+" ")
}

// textAfter returns the remainder of tok after the first whitespace run.
func textAfter(tok string) string {
	i := strings.IndexAny(tok, " \t")
	if i < 0 {
		return ""
	}
	return strings.TrimLeft(tok[i:], " \t")
}

func firstWord(tok string) string {
	fields := strings.Fields(tok)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// discriminators maps the full command words to their single-character forms,
// used only for suggesting a correction on unknown input.
var discriminators = map[string]string{
	"title":  "t",
	"exe":    "e",
	"get":    "g",
	"set":    "s",
	"order":  "o",
	"limit":  "l",
	"delete": "d",
}

// Suggest returns the discriminator character of the command word closest to
// the unknown word, or "" when nothing is plausibly close.
func Suggest(word string) string {
	if word == "" {
		return ""
	}
	word = strings.ToLower(word)
	best := ""
	bestDist := -1
	for full := range discriminators {
		dist := levenshtein.ComputeDistance(word, full)
		if dist > 2 || dist >= len(full) {
			continue
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && full < best) {
			best = full
			bestDist = dist
		}
	}
	if best == "" {
		return ""
	}
	return discriminators[best]
}
