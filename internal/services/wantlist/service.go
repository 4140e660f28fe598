package wantlist

import (
	"context"
	"log/slog"

	"github.com/jtarrant/wanttogo/internal/model"
	"github.com/jtarrant/wanttogo/internal/storage"
)

// Service manages per-user want-to-go lists.
//
// Adds go through the storage layer's append-if-absent primitive, so two
// concurrent adds for the same user cannot lose an entry the way a
// read-modify-write of the whole list would.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new want-list Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Add appends place to the user's want-to-go list if it is not already there.
// Returns model.ErrUserNotFound for unknown users and model.ErrAlreadyWanted
// when the place is already on the list (in which case nothing is written).
//
// The place code is stored as given, even when it is outside the catalog;
// unknown codes simply never surface in List output.
func (s *Service) Add(ctx context.Context, username string, place model.DestinationCode) error {
	if err := s.storage.AddWantToGo(ctx, username, place); err != nil {
		return err
	}

	s.logger.Info("destination added to want-to-go list",
		slog.String("username", username),
		slog.String("place", string(place)),
	)
	return nil
}

// List returns the user's want-to-go list mapped to catalog entries, in
// insertion order. Stored codes outside the catalog are dropped silently.
func (s *Service) List(ctx context.Context, username string) ([]model.Destination, error) {
	codes, err := s.storage.GetWantToGoList(ctx, username)
	if err != nil {
		return nil, err
	}

	out := make([]model.Destination, 0, len(codes))
	for _, code := range codes {
		if dest, ok := model.LookupDestination(code); ok {
			out = append(out, dest)
		}
	}
	return out, nil
}
