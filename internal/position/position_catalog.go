package position

// Position is a named placement on a garment where a logo may be applied.
type Position struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// The 7 canonical garment positions. The set is fixed; products select from
// it, they never extend it.
var canonical = []Position{
	{Name: "Left Breast", Image: "/images/positions/left-breast.png"},
	{Name: "Right Breast", Image: "/images/positions/right-breast.png"},
	{Name: "Centre Chest", Image: "/images/positions/centre-chest.png"},
	{Name: "Large Back", Image: "/images/positions/large-back.png"},
	{Name: "Nape of Neck", Image: "/images/positions/nape-of-neck.png"},
	{Name: "Left Sleeve", Image: "/images/positions/left-sleeve.png"},
	{Name: "Right Sleeve", Image: "/images/positions/right-sleeve.png"},
}

var byName = func() map[string]Position {
	m := make(map[string]Position, len(canonical))
	for _, p := range canonical {
		m[p.Name] = p
	}
	return m
}()

// All returns the canonical positions in display order.
func All() []Position {
	out := make([]Position, len(canonical))
	copy(out, canonical)
	return out
}

// Get looks up a canonical position by name.
func Get(name string) (Position, bool) {
	p, ok := byName[name]
	return p, ok
}

// Valid reports whether name is one of the canonical positions.
func Valid(name string) bool {
	_, ok := byName[name]
	return ok
}
