package service

import (
	"context"

	"chirpmap/internal/domain/entity"
)

// FlyToSink receives fly-to instructions for the map-rendering collaborator.
type FlyToSink interface {
	// FlyTo delivers one instruction. Delivery failures are reported but never fatal.
	FlyTo(ctx context.Context, instruction *entity.FlyToInstruction) error

	// Close releases any resources held by the sink
	Close() error
}
