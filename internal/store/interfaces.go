package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Pinger is implemented by [DB].
type Pinger interface {
	Ping(ctx context.Context) error
}
