package password

import "golang.org/x/crypto/bcrypt"

// Cost factor fijo para bcrypt (equivalente a 10 rondas).
const Cost = bcrypt.DefaultCost

// Hash deriva un digest bcrypt a partir del password en claro.
// El digest incluye su propia sal aleatoria.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compara el password en claro contra el digest almacenado.
// Cualquier mismatch (incluido un digest malformado o vacío) devuelve false, nunca error:
// el caller no debe poder distinguir por qué falló la verificación.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
