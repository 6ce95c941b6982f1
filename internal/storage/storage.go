package storage

import (
	"context"
	"io"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage_mocks.go -package=mocks

// Folder tags name the blob store destination for each upload kind.
const (
	FolderPlayers      = "players"
	FolderTeamLogos    = "team-logos"
	FolderPlayerImages = "player-images"
)

// Uploader is the boundary to the external blob store. Implementations take a
// raw file payload and a destination folder tag and return a durable public
// URL. Calls are bounded by the context deadline supplied by the caller.
type Uploader interface {
	Upload(ctx context.Context, folder, filename string, file io.Reader) (string, error)
}
