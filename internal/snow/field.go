package snow

// Field owns a fixed population of crystals. Crystals are never added or removed
// after Spawn; the ones that fall out of view are recycled in place.
type Field struct {
	Crystals []Crystal
	Col      RGB
	rng      *Rand
}

func NewField(seed uint64) *Field {
	return &Field{
		Col: White,
		rng: NewRand(seed),
	}
}

// Spawn replaces the population with count crystals placed above the viewport,
// Y in [-height, 0), so the first frames fill in from the top.
func (f *Field) Spawn(count int, vp Viewport) {
	if count < 0 {
		count = 0
	}
	f.Crystals = make([]Crystal, 0, count)
	for i := 0; i < count; i++ {
		x := f.rng.RangeF(0, vp.W())
		y := f.rng.RangeF(-vp.H(), 0)
		f.Crystals = append(f.Crystals, NewCrystal(f.rng, x, y))
	}
}

// Advance steps every crystal by one frame and returns how many were recycled.
func (f *Field) Advance(vp Viewport) int {
	recycled := 0
	for i := range f.Crystals {
		if f.Crystals[i].Fall(f.rng, vp) {
			recycled++
		}
	}
	return recycled
}

func (f *Field) Render(d LineDrawer) {
	for i := range f.Crystals {
		f.Crystals[i].Draw(d, f.Col)
	}
}

// Len returns the population size.
func (f *Field) Len() int { return len(f.Crystals) }
