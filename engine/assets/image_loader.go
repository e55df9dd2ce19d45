package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Dir is the root asset directory. Textures live in Dir/textures and
// shaders in Dir/shaders.
var Dir = "assets"

// LoadImage decodes a PNG, JPEG, BMP or WebP texture. The result is handed
// to gfx.NewTexture or Texture.Image as-is; conversion to RGBA8 and the
// vertical flip happen at upload.
func LoadImage(relPath string) (image.Image, error) {
	path := filepath.Join(Dir, "textures", relPath)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	return img, nil
}
