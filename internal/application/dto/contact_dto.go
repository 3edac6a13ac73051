package dto

// ContactRequest mensaje del formulario público de contacto. Si CooperativeID
// viene vacío el correo se envía a la dirección de contacto del sitio.
type ContactRequest struct {
	CooperativeID string `json:"cooperative_id" form:"cooperative_id"`
	Name          string `json:"name" form:"name"`
	Email         string `json:"email" form:"email"`
	Subject       string `json:"subject" form:"subject"`
	Message       string `json:"message" form:"message"`
}
