package language

import (
	"fmt"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language — один из трёх поддерживаемых целевых языков.
// Нулевое значение невалидно; получить Language можно только через Parse или константы.
type Language uint8

const (
	invalid Language = iota
	Tamil
	Telugu
	Hindi
)

// Code — короткий код языка, который понимают движки перевода и озвучки.
type Code string

// Source — язык исходного текста, всегда английский.
const Source Code = "en"

type entry struct {
	name string
	code Code
	tag  xlanguage.Tag
}

// реестр неизменяем на всё время жизни процесса
var registry = map[Language]entry{
	Tamil:  {name: "tamil", code: "ta", tag: xlanguage.Tamil},
	Telugu: {name: "telugu", code: "te", tag: xlanguage.Telugu},
	Hindi:  {name: "hindi", code: "hi", tag: xlanguage.Hindi},
}

// All — поддерживаемые языки в фиксированном порядке.
func All() []Language {
	return []Language{Tamil, Telugu, Hindi}
}

// Parse переводит имя из запроса ("tamil", "telugu", "hindi") в Language.
func Parse(name string) (Language, error) {
	for _, l := range All() {
		if registry[l].name == name {
			return l, nil
		}
	}
	return invalid, fmt.Errorf("Unsupported language: %s", name)
}

// ForCode — обратный поиск к CodeFor.
func ForCode(code Code) (Language, bool) {
	for _, l := range All() {
		if registry[l].code == code {
			return l, true
		}
	}
	return invalid, false
}

// CodeFor — код движка для l. Определён для любого валидного языка.
func CodeFor(l Language) Code {
	return registry[l].code
}

func (l Language) Valid() bool {
	_, ok := registry[l]
	return ok
}

func (l Language) String() string {
	if e, ok := registry[l]; ok {
		return e.name
	}
	return fmt.Sprintf("language(%d)", uint8(l))
}

func (l Language) Tag() xlanguage.Tag {
	return registry[l].tag
}

// DisplayName — английское название языка ("Tamil"), для промптов и списка языков.
func (l Language) DisplayName() string {
	e, ok := registry[l]
	if !ok {
		return ""
	}
	if name := display.English.Languages().Name(e.tag); name != "" {
		return name
	}
	return e.name
}

func (l Language) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid language %d", uint8(l))
	}
	return []byte(registry[l].name), nil
}

func (l *Language) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
