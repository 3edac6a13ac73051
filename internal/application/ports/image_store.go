package ports

import "mime/multipart"

// Categorías de almacenamiento de imágenes; cada entidad guarda bajo su propio directorio.
const (
	ImageCategoryCooperatives = "cooperatives"
	ImageCategoryProducts     = "products"
	ImageCategoryUsers        = "users"
)

// ImageStore guarda y elimina imágenes subidas. Save asigna un nombre resistente
// a colisiones y devuelve la ruta relativa a registrar en la entidad.
// Delete es best-effort: el llamador decide si el fallo se propaga o solo se loguea.
type ImageStore interface {
	Save(file *multipart.FileHeader, category string) (string, error)
	Delete(relPath string) error
}
