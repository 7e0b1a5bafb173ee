package md2docx

import (
	"fmt"
	"time"

	"github.com/alnah/go-md2docx/internal/dateutil"
)

var zeroTime time.Time

// ResolveDate handles "auto" and "auto:FORMAT" syntax for date values.
//   - "auto" → t in YYYY-MM-DD format
//   - "auto:FORMAT" → t in a token format (e.g., "auto:DD/MM/YYYY")
//   - "auto:preset" → t using a named preset (iso, european, us, long, short)
//   - any other value → returned unchanged
//
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, dddd, ddd. Text in [brackets]
// is literal.
func ResolveDate(value string, t time.Time) (string, error) {
	s, err := dateutil.Resolve(value, t)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return s, nil
}
