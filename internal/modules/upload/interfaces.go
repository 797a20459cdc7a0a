package upload

import "context"

type RoomRepository interface {
	UpdateImageURL(ctx context.Context, id int64, imageURL string) error
}

type RoomCache interface {
	Invalidate(ctx context.Context)
}
