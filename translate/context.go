package translate

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// TableLanguage is the language of the Braille table of this module.
var TableLanguage = language.English

// Context represents information about the user's environment.
//
// The Braille table is fixed to English, whatever the user's locale is.
// Context lets clients find out if the two match.
type Context struct {
	Locale   string       // IETF locale string, e.g. "en-US"
	Language language.Tag // language of the locale
	Matches  bool         // does the table fit the user's language?
}

var tableMatch = language.NewMatcher([]language.Tag{TableLanguage})

// ContextFromEnvironment detects the user's locale from the environment.
// If no locale can be detected, "en-US" is assumed.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Infof("cannot detect user locale: %v", err)
		userLocale = "en-US"
		T().Infof("assuming default user locale %v", userLocale)
	} else {
		T().Infof("detected user locale %v", userLocale)
	}
	ctx := ContextForLocale(userLocale)
	if !ctx.Matches {
		T().Infof("Braille table is %v, user language is %v", TableLanguage, ctx.Language)
	}
	return ctx
}

// ContextForLocale creates a context for a given locale.
func ContextForLocale(locale string) *Context {
	lang := language.Make(locale)
	_, _, confidence := tableMatch.Match(lang)
	return &Context{
		Locale:   locale,
		Language: lang,
		Matches:  confidence != language.No,
	}
}
