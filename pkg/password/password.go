package password

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Derivación PBKDF2-HMAC-SHA512 con salt aleatorio por usuario.
// Hash y salt se almacenan como base64 en columnas separadas; verificar
// recalcula la derivación con el salt guardado y compara en tiempo constante.
const (
	saltBytes  = 64
	keyBytes   = 64
	iterations = 120_000
)

// Hash genera un salt criptográficamente aleatorio y deriva el hash del password.
// Devuelve (hash, salt) en base64, nunca el password en claro.
func Hash(plain string) (hash, salt string, err error) {
	rawSalt := make([]byte, saltBytes)
	if _, err := rand.Read(rawSalt); err != nil {
		return "", "", fmt.Errorf("generar salt: %w", err)
	}
	rawHash := pbkdf2.Key([]byte(plain), rawSalt, iterations, keyBytes, sha512.New)
	return base64.StdEncoding.EncodeToString(rawHash),
		base64.StdEncoding.EncodeToString(rawSalt), nil
}

// Verify recalcula la derivación con el salt almacenado y compara contra el hash
// almacenado en tiempo constante. Salt o hash corruptos cuentan como no-match.
func Verify(plain, storedHash, storedSalt string) bool {
	rawSalt, err := base64.StdEncoding.DecodeString(storedSalt)
	if err != nil {
		return false
	}
	rawHash, err := base64.StdEncoding.DecodeString(storedHash)
	if err != nil {
		return false
	}
	derived := pbkdf2.Key([]byte(plain), rawSalt, iterations, keyBytes, sha512.New)
	return hmac.Equal(derived, rawHash)
}
