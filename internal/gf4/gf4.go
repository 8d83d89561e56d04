package gf4

// GF4 is the field {0, 1, α, α+1} with α² = α+1, represented by the
// integers 0..3 (0, 1, 2, 3 respectively). Multiplication and division
// are precomputed lookup tables, the same shape a table-driven
// GF(256) implementation uses for its log/exp tables, just small
// enough here to store the products directly rather than via
// logarithms.
type GF4 struct{}

// New returns the GF(4) field instance. It has no state, so every call
// returns an equivalent, stateless value.
func New() GF4 { return GF4{} }

// mulTable[a][b] = a*b in GF(4).
var mulTable = [4][4]Elem{
	{0, 0, 0, 0},
	{0, 1, 2, 3},
	{0, 2, 3, 1},
	{0, 3, 1, 2},
}

// divTable[a][b-1] = a/b in GF(4), for b in {1, 2, 3}.
var divTable = [4][3]Elem{
	{0, 0, 0},
	{1, 3, 2},
	{2, 1, 3},
	{3, 2, 1},
}

func (GF4) Zero() Elem { return 0 }
func (GF4) One() Elem  { return 1 }

func (GF4) IsZero(a Elem) bool { return a == 0 }
func (GF4) IsOne(a Elem) bool  { return a == 1 }

// Add returns a+b, which in characteristic two is the XOR of the
// integer representations.
func (GF4) Add(a, b Elem) Elem { return a ^ b }

// Sub equals Add in characteristic two.
func (f GF4) Sub(a, b Elem) Elem { return f.Add(a, b) }

func (GF4) Mul(a, b Elem) Elem { return mulTable[a][b] }

func (GF4) Div(a, b Elem) (Elem, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return divTable[a][b-1], nil
}

// NonzeroElements returns {1, α, α+1} in ascending integer-representation
// order. The decoder's tie-breaking convention depends on this order
// being fixed and deterministic across calls.
func (GF4) NonzeroElements() []Elem { return []Elem{1, 2, 3} }

func (GF4) Max() Elem { return 3 }

func (GF4) String(a Elem) string {
	switch a {
	case 0:
		return "0"
	case 1:
		return "1"
	case 2:
		return "a"
	case 3:
		return "a+1"
	default:
		return "?"
	}
}

var _ Field = GF4{}
