package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coopmarket/coopmarket-api/internal/application/ports"
)

var _ ports.ImageStore = (*LocalImageStore)(nil)

// LocalImageStore guarda imágenes en disco bajo baseDir/<categoría>/ y devuelve
// rutas relativas "uploads/<categoría>/<archivo>" para persistir en la entidad.
// baseDir se sirve estáticamente como /uploads.
type LocalImageStore struct {
	baseDir string
}

// NewLocalImageStore crea el almacén local de imágenes.
func NewLocalImageStore(baseDir string) *LocalImageStore {
	return &LocalImageStore{baseDir: baseDir}
}

// Save escribe el archivo subido con un nombre timestamp+uuid para evitar
// colisiones y devuelve la ruta relativa bajo uploads.
func (s *LocalImageStore) Save(file *multipart.FileHeader, category string) (string, error) {
	dir := filepath.Join(s.baseDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de uploads: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.NewString(), ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("abrir archivo subido: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("crear archivo destino: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("escribir imagen: %w", err)
	}

	return filepath.ToSlash(filepath.Join("uploads", category, name)), nil
}

// Delete elimina una imagen previamente guardada. Ignora rutas vacías y
// archivos ya inexistentes.
func (s *LocalImageStore) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}
	// La entidad guarda "uploads/<categoría>/<archivo>"; en disco vive bajo baseDir.
	rel := strings.TrimPrefix(filepath.ToSlash(relPath), "uploads/")
	full := filepath.Join(s.baseDir, filepath.FromSlash(rel))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar imagen: %w", err)
	}
	return nil
}
