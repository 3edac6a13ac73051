package usecase

import (
	"fmt"
	"mime/multipart"
	"net/mail"
	"path/filepath"
	"strings"

	"github.com/coopmarket/coopmarket-api/internal/domain"
)

// maxImageSize límite de subida de imágenes: 2 MiB.
const maxImageSize = 2 << 20

// Extensiones aceptadas por entidad. Productos y usuarios admiten gif; cooperativas no.
var (
	cooperativeImageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}
	productImageExts     = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true}
	userImageExts        = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true}
)

// validEmail valida el formato del email (la unicidad la garantiza la DB).
func validEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// validateImage acumula errores de tipo y tamaño del archivo subido en vErr.
// file nil significa "sin imagen" y no es un error.
func validateImage(vErr *domain.ValidationError, file *multipart.FileHeader, allowed map[string]bool) {
	if file == nil {
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowed[ext] {
		exts := make([]string, 0, len(allowed))
		for e := range allowed {
			exts = append(exts, strings.TrimPrefix(e, "."))
		}
		vErr.Add("image", fmt.Sprintf("The image must be a file of type: %s.", strings.Join(sortedExts(exts), ", ")))
	}
	if file.Size > maxImageSize {
		vErr.Add("image", "The image may not be greater than 2048 kilobytes.")
	}
}

// sortedExts devuelve las extensiones en el orden canónico del contrato de API.
func sortedExts(exts []string) []string {
	order := []string{"jpg", "jpeg", "png", "gif"}
	out := make([]string, 0, len(exts))
	for _, o := range order {
		for _, e := range exts {
			if e == o {
				out = append(out, e)
			}
		}
	}
	return out
}
