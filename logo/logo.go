// Package logo requests a generated coin logo once and stores it beside the save file.
package logo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Prompt describes the coin artwork
const Prompt = `A professional high-tech digital currency logo for a coin named "Obsidian". ` +
	`The icon features a dark, faceted obsidian gemstone at the center with glowing purple and indigo ` +
	`circuit-board patterns etched into its surface. A silver metallic Greek Omega symbol is prominently ` +
	`integrated into the gem. The style is 3D, sleek, premium crypto asset, cinematic lighting, dark ` +
	`futuristic background, 4k resolution.`

// BaseName is the stored logo file name without extension
const BaseName = "obsidian_logo"

// ErrNoImage is returned when a response carries no image part
var ErrNoImage = errors.New("response contained no image")

// Image is raw encoded image bytes with their MIME type
type Image struct {
	Data     []byte
	MIMEType string
}

// Generator produces one logo image
type Generator interface {
	Generate(ctx context.Context) (Image, error)
}

// Extension maps a MIME type to a file extension
func Extension(mime string) string {
	switch strings.ToLower(strings.TrimSpace(mime)) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

// Save writes img into dir and returns its path
func Save(dir string, img Image) (string, error) {
	if len(img.Data) == 0 {
		return "", ErrNoImage
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create logo directory: %w", err)
	}

	path := filepath.Join(dir, BaseName+Extension(img.MIMEType))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, img.Data, 0o644); err != nil {
		return "", fmt.Errorf("write logo: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("store logo: %w", err)
	}
	return path, nil
}

// Ensure generates and stores a logo unless current already names a readable file
// Returns the stored path, or "" when nothing new was stored; failures are logged only
func Ensure(ctx context.Context, gen Generator, dir, current string, logger *zap.Logger) string {
	if logger == nil {
		logger = zap.NewNop()
	}
	if current != "" {
		if _, err := os.Stat(current); err == nil {
			return ""
		}
		logger.Info("stored logo missing, regenerating", zap.String("path", current))
	}
	if gen == nil {
		return ""
	}

	img, err := gen.Generate(ctx)
	if err != nil {
		logger.Warn("logo generation failed", zap.Error(err))
		return ""
	}
	path, err := Save(dir, img)
	if err != nil {
		logger.Warn("logo save failed", zap.Error(err))
		return ""
	}
	logger.Info("logo generated", zap.String("path", path), zap.Int("bytes", len(img.Data)))
	return path
}
