package fabric

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/katalvlaran/aoc2018/grid"
	"github.com/katalvlaran/aoc2018/input"
	"github.com/katalvlaran/aoc2018/seq"
)

var (
	// ErrMalformedClaim indicates text that is not "#id @ x,y: wxh".
	ErrMalformedClaim = errors.New("fabric: malformed claim")

	// ErrNoClaims indicates an empty claim list.
	ErrNoClaims = input.Invalid("fabric: no claims")

	// ErrEmptyClaim indicates a claim with zero width or height.
	ErrEmptyClaim = input.Invalid("fabric: claim has zero area")

	// ErrSheetTooLarge indicates claims reaching beyond a grid.MaxCells sheet.
	ErrSheetTooLarge = input.Invalid("fabric: sheet too large")

	// ErrNoIntactClaim indicates every claim overlaps another.
	ErrNoIntactClaim = input.Invalid("fabric: every claim overlaps another")
)

var claimRx = regexp.MustCompile(`^#(\d+) @ (\d+),(\d+): (\d+)x(\d+)$`)

// Rect is an axis-aligned rectangle covering [X, X+W) × [Y, Y+H).
type Rect struct {
	X, Y, W, H int
}

// Intersects reports whether r and o share at least one square inch.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Claim is one elf's rectangle.
type Claim struct {
	ID   int
	Rect Rect
}

// ParseClaim parses "#id @ x,y: wxh".
func ParseClaim(s string) (Claim, error) {
	m := claimRx.FindStringSubmatch(s)
	if m == nil {
		return Claim{}, &input.ParseError{Text: s, Err: ErrMalformedClaim}
	}
	var v [5]int
	for i := range v {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Claim{}, &input.ParseError{Text: s, Err: fmt.Errorf("%w: %v", ErrMalformedClaim, err)}
		}
		v[i] = n
	}

	return Claim{ID: v[0], Rect: Rect{X: v[1], Y: v[2], W: v[3], H: v[4]}}, nil
}

// ParseClaims parses one claim per line, stopping at the first error.
func ParseClaims(lines []string) ([]Claim, error) {
	claims := make([]Claim, 0, len(lines))
	for i, line := range lines {
		c, err := ParseClaim(line)
		if err != nil {
			return nil, input.AtLine(err, i+1)
		}
		claims = append(claims, c)
	}

	return claims, nil
}

// Coverage returns a sheet just large enough for every claim, each cell
// holding the number of claims covering it.
func Coverage(claims []Claim) (*grid.Grid[int], error) {
	if len(claims) == 0 {
		return nil, ErrNoClaims
	}
	w, h := 0, 0
	for _, c := range claims {
		if c.Rect.W < 1 || c.Rect.H < 1 {
			return nil, fmt.Errorf("claim #%d: %w", c.ID, ErrEmptyClaim)
		}
		// Each field below MaxCells keeps the sums from wrapping.
		if max(c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H) >= grid.MaxCells {
			return nil, fmt.Errorf("claim #%d: %w", c.ID, ErrSheetTooLarge)
		}
		w, h = max(w, c.Rect.X+c.Rect.W), max(h, c.Rect.Y+c.Rect.H)
	}
	sheet, err := grid.New[int](w, h)
	if errors.Is(err, grid.ErrTooLarge) {
		return nil, fmt.Errorf("%w: %w", ErrSheetTooLarge, err)
	}
	if err != nil {
		return nil, err
	}
	inc := func(n int) int { return n + 1 }
	for _, c := range claims {
		for y := c.Rect.Y; y < c.Rect.Y+c.Rect.H; y++ {
			for x := c.Rect.X; x < c.Rect.X+c.Rect.W; x++ {
				if err := sheet.Update(x, y, inc); err != nil {
					return nil, err
				}
			}
		}
	}

	return sheet, nil
}

// Overlap counts square inches within two or more claims.
func Overlap(claims []Claim) (int, error) {
	sheet, err := Coverage(claims)
	if err != nil {
		return 0, err
	}

	return sheet.Count(func(n int) bool { return n > 1 }), nil
}

// Intact returns the first claim, in input order, whose every square inch is
// covered by that claim alone.
func Intact(claims []Claim) (Claim, error) {
	sheet, err := Coverage(claims)
	if err != nil {
		return Claim{}, err
	}
	for _, c := range claims {
		if alone(sheet, c.Rect) {
			return c, nil
		}
	}

	return Claim{}, ErrNoIntactClaim
}

func alone(sheet *grid.Grid[int], r Rect) bool {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if n, _ := sheet.At(x, y); n != 1 {
				return false
			}
		}
	}

	return true
}

// Conflicts returns every pair of intersecting claims.
func Conflicts(claims []Claim) []seq.Pair[Claim] {
	return seq.EveryPair(claims, func(a, b Claim) bool { return a.Rect.Intersects(b.Rect) })
}
