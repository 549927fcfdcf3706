package zillow

import (
	"context"
	"os"
)

// Fixture serves one recorded lookup body from disk for every address.
// Handy for local development without spending API quota.
type Fixture struct {
	Path string
}

func (f Fixture) Property(ctx context.Context, _ string) (RawProperty, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	return DecodeRecord(b)
}
