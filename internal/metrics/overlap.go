package metrics

import "github.com/san-kum/ballsim/internal/world"

// Overlap tracks the deepest ball/ball penetration observed. The single-pass
// resolver leaves some residual overlap in dense piles; this measures it.
type Overlap struct {
	name    string
	deepest float64
}

func NewOverlap() *Overlap {
	return &Overlap{name: "max_overlap"}
}

func (o *Overlap) Name() string { return o.name }

func (o *Overlap) Observe(w world.World) {
	if d := w.MaxOverlap(); d > o.deepest {
		o.deepest = d
	}
}

func (o *Overlap) Value() float64 { return o.deepest }

func (o *Overlap) Reset() { o.deepest = 0 }
