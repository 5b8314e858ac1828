package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/unrolled/secure"
)

// SecurityHeaders aplica cabeceras de seguridad (unrolled/secure) a todas las respuestas.
// En desarrollo se omiten HSTS y la redirección a HTTPS.
func SecurityHeaders(development bool) fiber.Handler {
	mw := secure.New(secure.Options{
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		BrowserXssFilter:     true,
		ReferrerPolicy:       "strict-origin-when-cross-origin",
		STSSeconds:           31536000,
		STSIncludeSubdomains: true,
		SSLProxyHeaders:      map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:        development,
	})
	return adaptor.HTTPMiddleware(mw.Handler)
}
