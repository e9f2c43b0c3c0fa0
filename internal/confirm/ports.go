package confirm

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name HeightClient . HeightClient
type HeightClient interface {
	BlockNumber(ctx context.Context) (uint64, error)
}
