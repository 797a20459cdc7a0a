package upload

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Service pushes room photos to Cloudinary and records the resulting URL.
type Service struct {
	cld   *cloudinary.Cloudinary
	rooms RoomRepository
	cache RoomCache
}

// NewService builds the upload service from a cloudinary:// URL. An empty
// URL returns a nil service; the handler treats that as uploads disabled.
func NewService(cloudinaryURL string, rooms RoomRepository, cache RoomCache) (*Service, error) {
	if cloudinaryURL == "" {
		return nil, nil
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}

	return &Service{cld: cld, rooms: rooms, cache: cache}, nil
}

// UploadRoomImage stores the image under the rooms/ folder and points the
// room at its secure URL.
func (s *Service) UploadRoomImage(ctx context.Context, roomID int64, src io.Reader) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:   "rooms",
		PublicID: fmt.Sprintf("room-%d-%s", roomID, uuid.NewString()[:8]),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}

	if err := s.rooms.UpdateImageURL(ctx, roomID, resp.SecureURL); err != nil {
		return "", err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return resp.SecureURL, nil
}
