// Package storage guarda las imágenes de producto en el filesystem local,
// bajo una jerarquía por fecha para evitar directorios con miles de archivos.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain"
)

// Extensiones aceptadas para imágenes de producto.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ImageStore persiste imágenes bajo root/productos/YYYY/MM/DD/.
type ImageStore struct {
	root    string
	maxSize int64
}

// NewImageStore construye el store. maxSize en bytes (0 = sin límite).
func NewImageStore(root string, maxSize int64) *ImageStore {
	return &ImageStore{root: root, maxSize: maxSize}
}

// Save escribe la imagen del producto y devuelve la ruta relativa al root
// (la que se persiste en products.image_path). Valida extensión y tamaño.
func (s *ImageStore) Save(productID, originalName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: extensión de imagen no permitida: %s", domain.ErrInvalidInput, ext)
	}
	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return "", fmt.Errorf("%w: imagen supera el tamaño máximo (%d bytes)", domain.ErrInvalidInput, s.maxSize)
	}

	now := time.Now()
	relDir := filepath.Join("productos", now.Format("2006"), now.Format("01"), now.Format("02"))
	if err := os.MkdirAll(filepath.Join(s.root, relDir), 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de imágenes: %w", err)
	}

	relPath := filepath.Join(relDir, "producto_"+productID+ext)
	if err := os.WriteFile(filepath.Join(s.root, relPath), data, 0o644); err != nil {
		return "", fmt.Errorf("escribir imagen: %w", err)
	}
	return relPath, nil
}

// Delete elimina la imagen si existe; que no exista no es error.
func (s *ImageStore) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, relPath))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar imagen: %w", err)
	}
	return nil
}

// AbsPath devuelve la ruta absoluta de una imagen guardada (para servirla).
func (s *ImageStore) AbsPath(relPath string) string {
	return filepath.Join(s.root, relPath)
}
