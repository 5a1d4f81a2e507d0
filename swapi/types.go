package swapi

import (
	"encoding/json"
	"fmt"
)

// Character represents a person record from the people listing
type Character struct {
	Name      string   `json:"name"`
	Height    string   `json:"height,omitempty"`
	Mass      string   `json:"mass,omitempty"`
	HairColor string   `json:"hair_color,omitempty"`
	SkinColor string   `json:"skin_color,omitempty"`
	EyeColor  string   `json:"eye_color,omitempty"`
	BirthYear string   `json:"birth_year,omitempty"`
	Gender    string   `json:"gender,omitempty"`
	Homeworld string   `json:"homeworld,omitempty"`
	Films     []string `json:"films"`
	Species   []string `json:"species"`
	Vehicles  []string `json:"vehicles"`
	Starships []string `json:"starships"`
	Created   string   `json:"created,omitempty"`
	Edited    string   `json:"edited,omitempty"`
	URL       string   `json:"url,omitempty"`
}

// UnmarshalJSON decodes a character, requiring a name and defaulting the URL lists to empty
func (c *Character) UnmarshalJSON(data []byte) error {
	type plain Character
	var aux struct {
		plain
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Name == nil {
		return fmt.Errorf("%w: missing name", ErrInvalidCharacter)
	}

	*c = Character(aux.plain)
	c.Name = *aux.Name
	for _, list := range []*[]string{&c.Films, &c.Species, &c.Vehicles, &c.Starships} {
		if *list == nil {
			*list = []string{}
		}
	}
	return nil
}

// HasSpecies reports whether the character references at least one species
func (c *Character) HasSpecies() bool {
	return len(c.Species) > 0
}

// PrimarySpecies returns the first species URL. Later entries are ignored.
func (c *Character) PrimarySpecies() (string, bool) {
	if len(c.Species) == 0 {
		return "", false
	}
	return c.Species[0], true
}

// Species represents a species resource
type Species struct {
	Name            string  `json:"name"`
	Classification  string  `json:"classification,omitempty"`
	Designation     string  `json:"designation,omitempty"`
	AverageHeight   string  `json:"average_height,omitempty"`
	AverageLifespan string  `json:"average_lifespan,omitempty"`
	Language        string  `json:"language,omitempty"`
	Homeworld       *string `json:"homeworld,omitempty"`
	URL             string  `json:"url,omitempty"`
}

// Page represents one page of a paginated listing
type Page struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  []Character `json:"results"`
}

// HasNext checks if there is another page to fetch
func (p *Page) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}
