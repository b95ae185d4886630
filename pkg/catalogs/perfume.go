package catalogs

import (
	"github.com/scentmap/scentmap/pkg/errors"
)

// NoteType represents the temporal phase of a scent note.
type NoteType string

// Note phases in evaporation order.
const (
	NoteTypeTop    NoteType = "top"    // First impression, evaporates quickest
	NoteTypeMiddle NoteType = "middle" // Heart of the composition
	NoteTypeBase   NoteType = "base"   // Longest lasting foundation
)

// String returns the string representation of a NoteType.
func (t NoteType) String() string {
	return string(t)
}

// Valid reports whether the note type is a known value.
func (t NoteType) Valid() bool {
	switch t {
	case NoteTypeTop, NoteTypeMiddle, NoteTypeBase:
		return true
	}
	return false
}

// NoteFamily represents a categorical scent classification used for filtering.
type NoteFamily string

// Note family classifications.
const (
	NoteFamilyFloral   NoteFamily = "floral"
	NoteFamilyWoody    NoteFamily = "woody"
	NoteFamilyOriental NoteFamily = "oriental"
	NoteFamilyFresh    NoteFamily = "fresh"
	NoteFamilyFruity   NoteFamily = "fruity"
	NoteFamilyCitrus   NoteFamily = "citrus"
	NoteFamilySpicy    NoteFamily = "spicy"
	NoteFamilyAquatic  NoteFamily = "aquatic"
	NoteFamilyGourmand NoteFamily = "gourmand"
	NoteFamilyGreen    NoteFamily = "green"
	NoteFamilyLeather  NoteFamily = "leather"
	NoteFamilyAmber    NoteFamily = "amber"
)

// String returns the string representation of a NoteFamily.
func (f NoteFamily) String() string {
	return string(f)
}

// Valid reports whether the note family is a known value.
func (f NoteFamily) Valid() bool {
	for _, known := range NoteFamilies() {
		if f == known {
			return true
		}
	}
	return false
}

// NoteFamilies returns every note family classification. The enumeration is
// static, not derived from data presence in any particular dataset.
func NoteFamilies() []NoteFamily {
	return []NoteFamily{
		NoteFamilyFloral,
		NoteFamilyWoody,
		NoteFamilyOriental,
		NoteFamilyFresh,
		NoteFamilyFruity,
		NoteFamilyCitrus,
		NoteFamilySpicy,
		NoteFamilyAquatic,
		NoteFamilyGourmand,
		NoteFamilyGreen,
		NoteFamilyLeather,
		NoteFamilyAmber,
	}
}

// Gender represents the gender classification of a perfume.
type Gender string

// Gender classifications.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"
)

// String returns the string representation of a Gender.
func (g Gender) String() string {
	return string(g)
}

// Valid reports whether the gender is a known value.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnisex:
		return true
	}
	return false
}

// Genders returns every gender classification.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderUnisex}
}

// Concentration represents the fragrance oil concentration of a perfume.
type Concentration string

// Concentrations from strongest to lightest.
const (
	ConcentrationParfum        Concentration = "parfum"          // 15-40% oil
	ConcentrationEauDeParfum   Concentration = "eau_de_parfum"   // 10-20% oil
	ConcentrationEauDeToilette Concentration = "eau_de_toilette" // 5-15% oil
	ConcentrationEauDeCologne  Concentration = "eau_de_cologne"  // 2-5% oil
	ConcentrationEauFraiche    Concentration = "eau_fraiche"     // 1-3% oil
)

// String returns the string representation of a Concentration.
func (c Concentration) String() string {
	return string(c)
}

// Valid reports whether the concentration is a known value.
func (c Concentration) Valid() bool {
	switch c {
	case ConcentrationParfum, ConcentrationEauDeParfum, ConcentrationEauDeToilette,
		ConcentrationEauDeCologne, ConcentrationEauFraiche:
		return true
	}
	return false
}

// Note represents a single scent descriptor with a temporal phase and a
// family classification. Notes are embedded in a Perfume and have no
// independent identity.
type Note struct {
	Name   string     `json:"name" yaml:"name"`
	Type   NoteType   `json:"type" yaml:"type"`
	Family NoteFamily `json:"family" yaml:"family"`
}

// Perfume represents a catalog item with brand, scent notes, and commercial
// attributes. A Perfume embeds a full Brand snapshot rather than a live
// reference; later edits to brand data do not propagate to existing records.
// Records are immutable after dataset construction.
type Perfume struct {
	ID            string        `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	Brand         Brand         `json:"brand" yaml:"brand"`
	Year          int           `json:"year,omitempty" yaml:"year,omitempty"`
	Gender        Gender        `json:"gender" yaml:"gender"`
	Concentration Concentration `json:"concentration" yaml:"concentration"`
	Notes         []Note        `json:"notes" yaml:"notes"` // ordered, non-empty
	Description   string        `json:"description" yaml:"description"`
	Image         string        `json:"image" yaml:"image"`
	Price         *float64      `json:"price,omitempty" yaml:"price,omitempty"`
	Rating        *float64      `json:"rating,omitempty" yaml:"rating,omitempty"` // 0..5
	ReviewCount   *int          `json:"review_count,omitempty" yaml:"review_count,omitempty"`
}

// Validate checks the perfume's structural invariants.
func (p *Perfume) Validate() error {
	if p.ID == "" {
		return errors.NewValidationError("id", p.ID, "must not be empty")
	}
	if p.Name == "" {
		return errors.NewValidationError("name", p.Name, "must not be empty")
	}
	if !p.Gender.Valid() {
		return errors.NewValidationError("gender", p.Gender, "unknown gender")
	}
	if !p.Concentration.Valid() {
		return errors.NewValidationError("concentration", p.Concentration, "unknown concentration")
	}
	if len(p.Notes) == 0 {
		return errors.NewValidationError("notes", nil, "must not be empty")
	}
	for _, note := range p.Notes {
		if !note.Type.Valid() {
			return errors.NewValidationError("notes", note.Type, "unknown note type")
		}
		if !note.Family.Valid() {
			return errors.NewValidationError("notes", note.Family, "unknown note family")
		}
	}
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
		return errors.NewValidationError("rating", *p.Rating, "must be within [0, 5]")
	}
	return nil
}
