package utils

import (
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const oauthStateKey = "oauth_state"

// NewOAuthState generates a random state value and stores it in the session
func NewOAuthState(c *gin.Context) (string, error) {
	state := uuid.New().String()
	session := sessions.Default(c)
	session.Set(oauthStateKey, state)
	if err := session.Save(); err != nil {
		return "", fmt.Errorf("failed to save oauth state: %v", err)
	}
	return state, nil
}

// ConsumeOAuthState verifies the callback state against the session and clears it
func ConsumeOAuthState(c *gin.Context, state string) bool {
	session := sessions.Default(c)
	saved, ok := session.Get(oauthStateKey).(string)
	session.Delete(oauthStateKey)
	_ = session.Save()
	return ok && saved != "" && saved == state
}

// CheckSessionStore verifies the session store is usable
func CheckSessionStore(c *gin.Context) error {
	session := sessions.Default(c)
	session.Set("test", "test")
	if err := session.Save(); err != nil {
		return fmt.Errorf("session store check failed: %v", err)
	}
	session.Delete("test")
	return session.Save()
}
