package session

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier puerto de verificación de credenciales. El login delega aquí en
// lugar de comparar passwords por sí mismo, de modo que un proveedor de identidad
// externo pueda sustituir a bcrypt sin tocar el contrato de la sesión.
type CredentialVerifier interface {
	Verify(passwordHash, password string) error
}

// BcryptVerifier implementación por defecto sobre hashes bcrypt.
type BcryptVerifier struct{}

// Verify compara el password en claro contra el hash almacenado.
func (BcryptVerifier) Verify(passwordHash, password string) error {
	if passwordHash == "" {
		return errors.New("hash de password vacío")
	}
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
}

// HashPassword genera un hash bcrypt (fixtures de demostración y seeds).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
