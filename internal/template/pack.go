package template

import "fmt"

// Standard is the name of the default template pack.
const Standard = "standard"

// Pack is a versioned set of template bodies, one per category.
// Packs are immutable after construction; bodies are versioned with the
// binary, so a wording update requires a rebuild.
type Pack struct {
	name   string
	bodies map[Category]string
}

// packOrder defines the canonical order for PackNames().
var packOrder = []string{Standard}

// packs maps pack names to their registered packs.
var packs = map[string]*Pack{
	Standard: mustPack(Standard, map[Category]string{
		ZoneConcept:   zoneConceptBody,
		Consciousness: consciousnessBody,
		Guidance:      guidanceBody,
		Comprehensive: comprehensiveBody,
	}),
}

// mustPack builds a pack, panicking unless every category has a non-empty
// body. Use only for package-level pack registration.
func mustPack(name string, bodies map[Category]string) *Pack {
	for _, c := range categoryOrder {
		if bodies[c] == "" {
			panic(fmt.Sprintf("template pack %q missing body for category %q", name, c))
		}
	}
	return &Pack{name: name, bodies: bodies}
}

// DefaultPack returns the standard pack.
func DefaultPack() *Pack {
	return packs[Standard]
}

// SelectPack returns the named pack.
// Returns ErrUnknownPack if the name is not registered.
func SelectPack(name string) (*Pack, error) {
	p, ok := packs[name]
	if !ok {
		return nil, fmt.Errorf("unknown template pack %q: %w", name, ErrUnknownPack)
	}
	return p, nil
}

// PackNames returns the registered pack names in stable order.
func PackNames() []string {
	result := make([]string, len(packOrder))
	copy(result, packOrder)
	return result
}

// Name returns the pack's name.
func (p *Pack) Name() string {
	return p.name
}

// Render returns the fixed body for the category.
// Rendering cannot fail for the four declared categories; an unregistered
// category yields an empty string.
func (p *Pack) Render(c Category) string {
	return p.bodies[c]
}
