// Package languages holds the fixed set of target languages. The validator,
// the CLI and the web form all read it from here.
package languages

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported target language. Name is what callers pass in and
// what is embedded in the prompt; Tag is its BCP 47 form.
type Language struct {
	Name string
	Tag  language.Tag
}

var supported = [...]Language{
	{Name: "Arabic", Tag: language.Arabic},
	{Name: "Spanish", Tag: language.Spanish},
	{Name: "French", Tag: language.French},
	{Name: "Urdu", Tag: language.Urdu},
	{Name: "Chinese (Simplified)", Tag: language.SimplifiedChinese},
	{Name: "German", Tag: language.German},
}

// All returns the supported languages in display order. The slice is a copy.
func All() []Language {
	out := make([]Language, len(supported))
	copy(out, supported[:])
	return out
}

func Names() []string {
	names := make([]string, len(supported))
	for i, l := range supported {
		names[i] = l.Name
	}
	return names
}

// Lookup finds a language by its exact display name.
func Lookup(name string) (Language, bool) {
	for _, l := range supported {
		if l.Name == name {
			return l, true
		}
	}
	return Language{}, false
}

func IsSupported(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// List renders the supported names for error messages.
func List() string {
	return strings.Join(Names(), ", ")
}
