package shape

import "github.com/matzehuels/drawshop/pkg/errors"

// Area sums the area of every leaf of a perfect drawing. Circles contribute
// πr², rectangles their signed area and lines nothing. A hand-drawn drawing
// is rejected with INVALID_ARGUMENT.
func Area(d *Drawing) (float64, error) {
	if d == nil {
		return 0, errors.New(errors.ErrCodeInvalidArgument, "drawing must not be nil")
	}
	if d.Style() != StylePerfect {
		return 0, errors.New(errors.ErrCodeInvalidArgument, "please use a perfect drawing")
	}
	var total float64
	err := Accept(d, func(s Shape) error {
		p, ok := s.(Perfect)
		if !ok {
			return errors.New(errors.ErrCodeInvalidArgument, "%s has no exact area; please use a perfect drawing", s.Kind())
		}
		total += p.Area()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}
