package domain

import "github.com/gosimple/slug"

// Neighborhood is a named audience unit. ID is the slug of Name.
type Neighborhood struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var neighborhoodNames = []string{
	"Centro",
	"Jardim América",
	"Vila Mariana",
	"Pinheiros",
	"Moema",
	"Santa Cecília",
	"Bela Vista",
	"Perdizes",
}

func defaultNeighborhoods() []Neighborhood {
	out := make([]Neighborhood, 0, len(neighborhoodNames))
	for _, name := range neighborhoodNames {
		out = append(out, Neighborhood{ID: slug.Make(name), Name: name})
	}
	return out
}
