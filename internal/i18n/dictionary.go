// Package i18n holds the UI strings shown by the front ends in every
// supported language.
package i18n

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
)

//go:embed translations.yaml
var defaultTranslations []byte

var ErrIncompleteDictionary = errors.New("incomplete dictionary")

// ResultMessages are the closing lines shown for each grade band.
type ResultMessages struct {
	Perfect string `yaml:"perfect"`
	Good    string `yaml:"good"`
	Average string `yaml:"average"`
	Poor    string `yaml:"poor"`
}

// Strings is the set of named UI strings for one language.
type Strings struct {
	Title          string         `yaml:"title"`
	Progress       string         `yaml:"progress"`
	Question       string         `yaml:"question"`
	Of             string         `yaml:"of"`
	FinishTest     string         `yaml:"finish_test"`
	SeveralAnswers string         `yaml:"several_answers"`
	ChooseAnswers  string         `yaml:"choose_answers"`
	Confirm        string         `yaml:"confirm"`
	Correct        string         `yaml:"correct"`
	Incorrect      string         `yaml:"incorrect"`
	TestResults    string         `yaml:"test_results"`
	Result         string         `yaml:"result"`
	CorrectAnswers string         `yaml:"correct_answers"`
	OutOf          string         `yaml:"out_of"`
	DetailedReview string         `yaml:"detailed_review"`
	YourAnswer     string         `yaml:"your_answer"`
	CorrectAnswer  string         `yaml:"correct_answer"`
	TryAgain       string         `yaml:"try_again"`
	SwitchLanguage string         `yaml:"switch_language"`
	AnswerAllFirst string         `yaml:"answer_all_first"`
	ResultMessages ResultMessages `yaml:"result_messages"`
}

// ResultMessage returns the closing line for grade ("perfect", "good",
// "average" or anything else for "poor").
func (s Strings) ResultMessage(grade string) string {
	switch grade {
	case "perfect":
		return s.ResultMessages.Perfect
	case "good":
		return s.ResultMessages.Good
	case "average":
		return s.ResultMessages.Average
	default:
		return s.ResultMessages.Poor
	}
}

func (s Strings) missing() []string {
	fields := map[string]string{
		"title":                   s.Title,
		"progress":                s.Progress,
		"question":                s.Question,
		"of":                      s.Of,
		"finish_test":             s.FinishTest,
		"several_answers":         s.SeveralAnswers,
		"choose_answers":          s.ChooseAnswers,
		"confirm":                 s.Confirm,
		"correct":                 s.Correct,
		"incorrect":               s.Incorrect,
		"test_results":            s.TestResults,
		"result":                  s.Result,
		"correct_answers":         s.CorrectAnswers,
		"out_of":                  s.OutOf,
		"detailed_review":         s.DetailedReview,
		"your_answer":             s.YourAnswer,
		"correct_answer":          s.CorrectAnswer,
		"try_again":               s.TryAgain,
		"switch_language":         s.SwitchLanguage,
		"answer_all_first":        s.AnswerAllFirst,
		"result_messages.perfect": s.ResultMessages.Perfect,
		"result_messages.good":    s.ResultMessages.Good,
		"result_messages.average": s.ResultMessages.Average,
		"result_messages.poor":    s.ResultMessages.Poor,
	}

	var keys []string
	for k, v := range fields {
		if v == "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// Dictionary maps a language to its UI strings. It is read-only after load.
type Dictionary struct {
	strings map[entities.Language]Strings
}

// Default returns the dictionary embedded in the binary.
func Default() (*Dictionary, error) {
	return Parse(defaultTranslations)
}

// Parse decodes a YAML dictionary and checks that every language defines
// every key.
func Parse(data []byte) (*Dictionary, error) {
	var raw map[entities.Language]Strings
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal translations: %w", err)
	}

	for _, lang := range entities.Languages {
		s, ok := raw[lang]
		if !ok {
			return nil, fmt.Errorf("%w: language %s is missing", ErrIncompleteDictionary, lang)
		}
		if keys := s.missing(); len(keys) > 0 {
			return nil, fmt.Errorf("%w: language %s misses %v", ErrIncompleteDictionary, lang, keys)
		}
	}

	return &Dictionary{strings: raw}, nil
}

// Lookup returns the strings of lang.
func (d *Dictionary) Lookup(lang entities.Language) (Strings, error) {
	s, ok := d.strings[lang]
	if !ok {
		return Strings{}, fmt.Errorf("%w: %q", entities.ErrMissingLanguage, lang)
	}
	return s, nil
}

// MustLookup is Lookup for callers that already hold a valid language.
// An unknown language here is a programming error.
func (d *Dictionary) MustLookup(lang entities.Language) Strings {
	s, err := d.Lookup(lang)
	if err != nil {
		panic(err)
	}
	return s
}
