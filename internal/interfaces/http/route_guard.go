package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Libreria-api/internal/domain/entity"
	"github.com/jhoicas/Libreria-api/pkg/jwt"
)

// Destinos del route guard.
const (
	SignInPath = "/auth/signin"
	HomePath   = "/"
)

// Session sesión resuelta por request. El valor cero es la sesión anónima.
type Session struct {
	UserID string
	Email  string
	Role   string
}

// Anonymous indica ausencia de sesión válida.
func (s Session) Anonymous() bool {
	return s.UserID == ""
}

// Decision resultado del route guard para un request.
type Decision int

const (
	DecisionAllow Decision = iota
	DecisionRedirectToSignIn
	DecisionRedirectToHome
)

// Decide evalúa (path, sesión) contra los prefijos protegidos. Se evalúa fresco en
// cada request, sin cachear decisiones:
//   - prefijo protegido + anónimo        -> redirect a sign-in (con retorno)
//   - prefijo protegido + rol != ADMIN   -> redirect a home, sin explicar por qué
//   - cualquier otro caso                -> allow
func Decide(path string, sess Session, protectedPrefixes []string) Decision {
	protected := false
	for _, p := range protectedPrefixes {
		if strings.HasPrefix(path, p) {
			protected = true
			break
		}
	}
	if !protected {
		return DecisionAllow
	}
	if sess.Anonymous() {
		return DecisionRedirectToSignIn
	}
	if sess.Role != entity.RoleAdmin {
		return DecisionRedirectToHome
	}
	return DecisionAllow
}

// ResolveSession verifica el token (Bearer o cookie) y devuelve la sesión.
// Cualquier falla de verificación produce la sesión anónima, nunca un error:
// para el caller, token inválido y ausencia de token son lo mismo.
func ResolveSession(c *fiber.Ctx, jwtSecret, cookieName string) Session {
	tokenString := extractToken(c, cookieName)
	if tokenString == "" {
		return Session{}
	}
	claims, err := jwt.Parse(jwtSecret, tokenString)
	if err != nil {
		return Session{}
	}
	return Session{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}
}

// RouteGuard protege los prefijos dados (el área /admin). Anónimo se redirige a
// sign-in conservando el path original como callbackUrl; autenticado sin rol
// ADMIN se redirige a home. El resto pasa sin modificar y con los claims en Locals.
func RouteGuard(jwtSecret, cookieName string, protectedPrefixes ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := ResolveSession(c, jwtSecret, cookieName)
		switch Decide(c.Path(), sess, protectedPrefixes) {
		case DecisionRedirectToSignIn:
			return c.Redirect(SignInPath+"?callbackUrl="+url.QueryEscape(c.Path()), fiber.StatusFound)
		case DecisionRedirectToHome:
			return c.Redirect(HomePath, fiber.StatusFound)
		}
		if !sess.Anonymous() {
			c.Locals(LocalUserID, sess.UserID)
			c.Locals(LocalEmail, sess.Email)
			c.Locals(LocalRole, sess.Role)
		}
		return c.Next()
	}
}
