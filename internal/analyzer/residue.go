package analyzer

// Residue identifies the equivalence class of a bit total modulo 8.
// Exactly eight implementations exist, one per class; the unexported
// method keeps the set closed.
type Residue interface {
	// Class reports the residue class, 0 through 7.
	Class() uint

	residue()
}

// ByteAligned is the capability carried by residue classes whose totals fill
// a whole number of bytes. Only the class-0 residue implements it; for every
// other class the capability is absent and the gate rejects.
type ByteAligned interface {
	Residue

	byteAligned()
}

type (
	mod0 struct{}
	mod1 struct{}
	mod2 struct{}
	mod3 struct{}
	mod4 struct{}
	mod5 struct{}
	mod6 struct{}
	mod7 struct{}
)

func (mod0) Class() uint { return 0 }
func (mod1) Class() uint { return 1 }
func (mod2) Class() uint { return 2 }
func (mod3) Class() uint { return 3 }
func (mod4) Class() uint { return 4 }
func (mod5) Class() uint { return 5 }
func (mod6) Class() uint { return 6 }
func (mod7) Class() uint { return 7 }

func (mod0) residue() {}
func (mod1) residue() {}
func (mod2) residue() {}
func (mod3) residue() {}
func (mod4) residue() {}
func (mod5) residue() {}
func (mod6) residue() {}
func (mod7) residue() {}

func (mod0) byteAligned() {}

// Mod0 through Mod7 are the eight residue classes.
var (
	Mod0 Residue = mod0{}
	Mod1 Residue = mod1{}
	Mod2 Residue = mod2{}
	Mod3 Residue = mod3{}
	Mod4 Residue = mod4{}
	Mod5 Residue = mod5{}
	Mod6 Residue = mod6{}
	Mod7 Residue = mod7{}
)

// residues is the fixed classification table, indexed by total % 8.
var residues = [8]Residue{Mod0, Mod1, Mod2, Mod3, Mod4, Mod5, Mod6, Mod7}

// Classify maps a total bit-width to its residue class. Total function:
// every non-negative total maps to exactly one class, and
// Classify(t) == Classify(t+8).
func Classify(total uint) Residue {
	return residues[total%8]
}

// Aligned reports whether the residue holds the ByteAligned capability.
func Aligned(r Residue) bool {
	_, ok := r.(ByteAligned)
	return ok
}
