// FILE: internal/pkg/serverutils/admin.go
package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AdminAllowlist decides admin access from email alone. There is no role
// column; dropping an email from ADMIN_EMAILS revokes access on the next
// request.
type AdminAllowlist struct {
	emails map[string]struct{}
}

// NewAdminAllowlist parses a comma-separated email list. Entries are trimmed
// and lowercased; empty entries are ignored.
func NewAdminAllowlist(csv string) *AdminAllowlist {
	emails := make(map[string]struct{})
	for _, e := range strings.Split(csv, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			emails[e] = struct{}{}
		}
	}
	return &AdminAllowlist{emails: emails}
}

func (a *AdminAllowlist) IsAdmin(email string) bool {
	_, ok := a.emails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

// AdminMiddleware requires JwtMiddleware to have run first so the email
// claim is in Locals.
func AdminMiddleware(allowlist *AdminAllowlist) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		email, _ := ctx.Locals("user_email").(string)
		if email == "" || !allowlist.IsAdmin(email) {
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(fiber.StatusForbidden, "Admin access required"))
		}
		return ctx.Next()
	}
}
