// Package transform implements the coordinate transforms T that turn "match cost saved along a
// path" into a plain componentwise-dominance relation in the plane.
//
// Every Func in this package is pure: it closes over the potential function P but otherwise
// only depends on its (i, j) arguments. The contour set (internal/contour) operates entirely in
// the transformed coordinates returned here and never looks at (i, j) directly.
package transform

// Point is a transformed coordinate. The contour set treats Point values as elements of
// (Z ∪ {-inf, +inf})^2 ordered componentwise; Dominates implements that order.
type Point struct {
	A, B int
}

// Dominates reports whether p is componentwise >= q, i.e. whether p can be reached from (the
// region associated with) q without loss of the dominance relation the chosen transform
// establishes.
func Dominates(p, q Point) bool {
	return p.A >= q.A && p.B >= q.B
}

// Add returns p shifted by (da, db) on both axes; used to compute p + len(p)*(1,1) when placing
// an arrow into the contour set.
func (p Point) Add(da, db int) Point {
	return Point{p.A + da, p.B + db}
}

// PotentialFunc returns P(i), the seed-loss upper bound from row i onwards. It is supplied by
// internal/seed.Index.Potential.
type PotentialFunc func(i int) int

// Func maps an edit-graph vertex (i, j) to its transformed coordinates.
type Func func(i, j int) Point

// SH is the transform for the unordered seed heuristic: dominance is replaced by "row of v >=
// row of u". Folding both axes onto the row collapses the general 2D dominance test
// in internal/contour to exactly that 1D comparison, so the same contour machinery can serve all
// three heuristic variants.
func SH(PotentialFunc) Func {
	return func(i, j int) Point {
		return Point{i, i}
	}
}

// CSH is the ordered transform without a gap-cost lower bound: T(i,j) = (j-i, P(i)).
func CSH(P PotentialFunc) Func {
	return func(i, j int) Point {
		return Point{j - i, P(i)}
	}
}

// GCSH is the ordered transform with a linear gap-cost lower bound:
// T(i,j) = (i-j-P(i), j-i-P(i)).
//
// The gap-cost lemma |Δi - Δj| <= P(u) - P(v) is exactly the condition that dominance in this
// transform implies reachability.
func GCSH(P PotentialFunc) Func {
	return func(i, j int) Point {
		p := P(i)
		return Point{i - j - p, j - i - p}
	}
}

// Of returns the transform for a named heuristic variant. name must be one of "SH", "CSH",
// "GCSH"; any other value panics, since callers always pick from a closed, validated set
// (config.Heuristic).
func Of(name string, P PotentialFunc) Func {
	switch name {
	case "SH":
		return SH(P)
	case "CSH":
		return CSH(P)
	case "GCSH":
		return GCSH(P)
	default:
		panic("transform: unknown variant " + name)
	}
}
