package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extensiones de imagen aceptadas para productos.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ImageStore guarda imágenes de producto en disco con nombre direccionado por
// contenido (sha256 + extensión original): subir dos veces el mismo archivo
// no duplica nada y el nombre es seguro para servir estático.
type ImageStore struct {
	dir string
}

// NewImageStore crea el directorio de medios si no existe.
func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de medios: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

// Dir devuelve el directorio raíz de medios (para servirlo estático).
func (s *ImageStore) Dir() string { return s.dir }

// Save persiste la imagen y devuelve el nombre de archivo almacenado.
func (s *ImageStore) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("extensión de imagen no soportada: %q", ext)
	}

	tmp, err := os.CreateTemp(s.dir, "upload-*")
	if err != nil {
		return "", fmt.Errorf("crear archivo temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(tmp, h), r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("escribir imagen: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("cerrar archivo temporal: %w", err)
	}

	name := hex.EncodeToString(h.Sum(nil))[:32] + ext
	final := filepath.Join(s.dir, name)
	if _, err := os.Stat(final); err == nil {
		return name, nil // mismo contenido ya almacenado
	}
	if err := os.Rename(tmp.Name(), final); err != nil {
		return "", fmt.Errorf("mover imagen: %w", err)
	}
	return name, nil
}
