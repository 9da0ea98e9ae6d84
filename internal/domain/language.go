package domain

import "strings"

// Language is one of the target/source languages accepted by DeepL.
type Language int

const (
	Bulgarian Language = iota
	Czech
	Danish
	German
	Greek
	English
	Spanish
	Estonian
	Finnish
	French
	Hungarian
	Italian
	Japanese
	Lithuanian
	Latvian
	Dutch
	Polish
	Portuguese
	Romanian
	Russian
	Slovak
	Slovenian
	Swedish
	Chinese
)

// DefaultTarget is used when a command names no language at all.
const DefaultTarget = English

type languageEntry struct {
	code string
	name string
}

var languageTable = [...]languageEntry{
	Bulgarian:  {code: "BG", name: "Bulgarian"},
	Czech:      {code: "CS", name: "Czech"},
	Danish:     {code: "DA", name: "Danish"},
	German:     {code: "DE", name: "German"},
	Greek:      {code: "EL", name: "Greek"},
	English:    {code: "EN", name: "English"},
	Spanish:    {code: "ES", name: "Spanish"},
	Estonian:   {code: "ET", name: "Estonian"},
	Finnish:    {code: "FI", name: "Finnish"},
	French:     {code: "FR", name: "French"},
	Hungarian:  {code: "HU", name: "Hungarian"},
	Italian:    {code: "IT", name: "Italian"},
	Japanese:   {code: "JA", name: "Japanese"},
	Lithuanian: {code: "LT", name: "Lithuanian"},
	Latvian:    {code: "LV", name: "Latvian"},
	Dutch:      {code: "NL", name: "Dutch"},
	Polish:     {code: "PL", name: "Polish"},
	Portuguese: {code: "PT", name: "Portuguese"},
	Romanian:   {code: "RO", name: "Romanian"},
	Russian:    {code: "RU", name: "Russian"},
	Slovak:     {code: "SK", name: "Slovak"},
	Slovenian:  {code: "SL", name: "Slovenian"},
	Swedish:    {code: "SV", name: "Swedish"},
	Chinese:    {code: "ZH", name: "Chinese"},
}

var languagesByCode = func() map[string]Language {
	m := make(map[string]Language, len(languageTable))
	for i, e := range languageTable {
		m[e.code] = Language(i)
	}
	return m
}()

// ParseLanguage looks up a DeepL code, ignoring case ("en", "EN", "En").
func ParseLanguage(token string) (Language, bool) {
	l, ok := languagesByCode[strings.ToUpper(token)]
	return l, ok
}

// Languages returns every supported language in catalog order.
func Languages() []Language {
	out := make([]Language, len(languageTable))
	for i := range languageTable {
		out[i] = Language(i)
	}
	return out
}

func (l Language) valid() bool {
	return l >= 0 && int(l) < len(languageTable)
}

// Code returns the two-letter DeepL code, or "" for an out-of-range value.
func (l Language) Code() string {
	if !l.valid() {
		return ""
	}
	return languageTable[l].code
}

func (l Language) String() string {
	if !l.valid() {
		return "Unknown"
	}
	return languageTable[l].name
}
