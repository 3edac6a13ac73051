package ports

// ContactMessage correo saliente generado por el formulario de contacto.
// ReplyTo lleva el email del visitante para que la cooperativa pueda responder.
type ContactMessage struct {
	To      string
	ReplyTo string
	Name    string
	Subject string
	Body    string
}

// Mailer envía correos del formulario de contacto (implementado sobre SMTP).
type Mailer interface {
	Send(msg ContactMessage) error
}
