package generator

import (
	"fmt"
	"strings"
)

// Distance is the vector similarity function, named as the vector database expects it on the wire.
type Distance string

// Supported distance metrics.
const (
	Cosine Distance = "Cosine"
	Euclid Distance = "Euclid"
	Dot    Distance = "Dot"
)

// Distances lists the supported metrics in display order.
func Distances() []Distance {
	return []Distance{Cosine, Euclid, Dot}
}

// IsValid checks if the distance is one of the supported values.
func (d Distance) IsValid() bool {
	return d == Cosine || d == Euclid || d == Dot
}

// Label returns the human-readable name.
func (d Distance) Label() string {
	switch d {
	case Euclid:
		return "Euclidean"
	case Dot:
		return "Dot Product"
	default:
		return string(d)
	}
}

// ParseDistance accepts a wire name or a label, case-insensitively.
func ParseDistance(s string) (Distance, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Distances() {
		if v == strings.ToLower(string(d)) || v == strings.ToLower(d.Label()) {
			return d, nil
		}
	}
	if v == "dot_product" || v == "dotproduct" {
		return Dot, nil
	}
	return "", fmt.Errorf("unsupported distance metric %q (want Cosine, Euclidean or Dot)", s)
}
