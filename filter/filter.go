// Package filter selects characters with expr-lang expressions.
//
// Expressions see the character's fields by name (Name, Gender, BirthYear,
// Films, Species, ...) plus a few helpers:
//
//	Gender == "female"
//	len(Films) > 3 and hasSpecies()
//	lower(Name) contains "skywalker"
//	heightCm() > 200 or inFilm(1)
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/swapisort/swapi"
)

// ExprFilter is a compiled filter expression
type ExprFilter struct {
	program *vm.Program
	expr    string
}

// CompileFilter compiles a filter expression
func CompileFilter(expression string) (*ExprFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	program, err := expr.Compile(expression,
		expr.Env(environment(swapi.Character{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: err.Error(), Err: err}
	}

	return &ExprFilter{
		program: program,
		expr:    expression,
	}, nil
}

// Match evaluates the filter against a character
func (f *ExprFilter) Match(c swapi.Character) (bool, error) {
	result, err := expr.Run(f.program, environment(c))
	if err != nil {
		return false, &EvaluationError{Expression: f.expr, CharacterName: c.Name, Err: err}
	}

	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression:    f.expr,
			CharacterName: c.Name,
			Err:           fmt.Errorf("expression returned %T, not bool", result),
		}
	}
	return matched, nil
}

// String returns the original expression
func (f *ExprFilter) String() string {
	return f.expr
}

// Apply returns the characters matching f, keeping their order.
// A nil filter keeps everything.
func Apply(f *ExprFilter, characters []swapi.Character) ([]swapi.Character, error) {
	if f == nil {
		return characters, nil
	}

	matched := make([]swapi.Character, 0, len(characters))
	for _, c := range characters {
		ok, err := f.Match(c)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// environment exposes a character and the helper functions to an expression
func environment(c swapi.Character) map[string]any {
	return map[string]any{
		"Character": c,

		"Name":      c.Name,
		"Height":    c.Height,
		"Mass":      c.Mass,
		"HairColor": c.HairColor,
		"SkinColor": c.SkinColor,
		"EyeColor":  c.EyeColor,
		"BirthYear": c.BirthYear,
		"Gender":    c.Gender,
		"Homeworld": c.Homeworld,
		"Films":     c.Films,
		"Species":   c.Species,
		"Vehicles":  c.Vehicles,
		"Starships": c.Starships,
		"URL":       c.URL,

		"hasSpecies": func() bool {
			return c.HasSpecies()
		},
		"speciesCount": func() int {
			return len(c.Species)
		},
		"inFilm": func(episode int) bool {
			suffix := "/films/" + strconv.Itoa(episode) + "/"
			for _, film := range c.Films {
				if strings.HasSuffix(film, suffix) {
					return true
				}
			}
			return false
		},
		"heightCm": func() int {
			return parseInt(c.Height)
		},
		"massKg": func() float64 {
			return parseFloat(c.Mass)
		},
	}
}

// SWAPI reports unknown measurements as "unknown" and large ones with commas
func parseInt(s string) int {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0
	}
	return n
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return f
}
