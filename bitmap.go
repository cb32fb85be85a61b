package primesieve

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap returns the primes not exceeding n as a compressed roaring
// bitmap. This is the natural representation for downstream set algebra
// over prime membership (intersections with candidate sets, rank/select
// queries) without materializing the slice on the consumer side.
func (ps *PrimeSieve) Bitmap(ctx context.Context, n int) (*roaring.Bitmap, error) {
	primes, err := ps.Primes(ctx, n)
	if err != nil {
		return nil, err
	}

	rb := roaring.New()
	for _, p := range primes {
		rb.Add(uint32(p))
	}
	return rb, nil
}
