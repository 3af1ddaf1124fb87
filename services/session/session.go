package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	uuid "github.com/satori/go.uuid"
	"github.com/urfave/cli"

	"github.com/vibeflow-io/web-api/services/common"
)

const sessionIDKey = "session-id"

// RegisterHandler installs a cookie session and assigns every browser a
// stable id used to key its view state.
func RegisterHandler(c *cli.Context, r *gin.Engine) {
	Register(r, c.String(common.SessionSecretFlag))
}

func Register(r *gin.Engine, secret string) {
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("session", store))
	r.Use(ensureSessionID)
}

func ensureSessionID(c *gin.Context) {
	s := sessions.Default(c)
	if id, ok := s.Get(sessionIDKey).(string); ok && id != "" {
		c.Next()
		return
	}
	s.Set(sessionIDKey, uuid.NewV4().String())
	_ = s.Save()
	c.Next()
}

// GetID returns the current session id, empty when no session middleware ran.
func GetID(c *gin.Context) string {
	s := sessions.Default(c)
	if id, ok := s.Get(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
