package upload

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"KecPortal/internal/config"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Storage writes uploaded blobs to disk under generated names. Callers
// never choose the stored filename; only the original extension
// survives.
type Storage struct {
	dir string
}

func NewStorage(lc fx.Lifecycle, cfg *config.Config) *Storage {
	s := &Storage{dir: cfg.UploadsDir}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := os.MkdirAll(s.dir, 0o755); err != nil {
				return err
			}
			log.Println("Uploads directory ready:", s.dir)
			return nil
		},
	})
	return s
}

func (s *Storage) Save(ext string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return name, nil
}
