package control

import "github.com/san-kum/moldyn/internal/system"

// Rewrap folds every molecule's center of mass back into the primary
// simulation cell. Molecules are translated whole, so individual particles
// may still lie outside the cell.
type Rewrap struct {
	nopLifecycle
}

func NewRewrap() *Rewrap {
	return &Rewrap{}
}

func (*Rewrap) Control(sys *system.System) {
	for i := range sys.Molecules() {
		sys.WrapMolecule(i)
	}
}
