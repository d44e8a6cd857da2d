package middleware

import "github.com/gin-gonic/gin"

// subjectKey is the key used to store the authenticated token subject in the
// request context. Using a custom type prevents collisions.
const subjectKey = contextKey("subject")

// GetSubjectFromContext retrieves the authenticated token subject. The
// dashboard has a single shared access key, so the subject identifies the
// household rather than an individual user.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(subjectKey); v != nil {
		subject, ok := v.(string)
		return subject, ok
	}
	return "", false
}
