// Package webhook verifica la autenticidad de las notificaciones entrantes de las plataformas
// (Xero, Dear) mediante HMAC-SHA256 codificado en base64.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Sign calcula base64(HMAC-SHA256(secret, body)).
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify indica si provided es la firma exacta de body con secret.
// Nunca falla: firma vacía, cualquier otra codificación o secreto vacío devuelven false.
func Verify(body []byte, provided, secret string) bool {
	if provided == "" || secret == "" {
		return false
	}
	// Se comparan las codificaciones: el decodificador base64 tolera bits sobrantes y saltos de línea.
	return hmac.Equal([]byte(provided), []byte(Sign(body, secret)))
}
