package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ria-dsouza/shelflife/config"
	"github.com/ria-dsouza/shelflife/models"
	"github.com/ria-dsouza/shelflife/utils"
)

// GoogleUserInfo is the profile payload returned by Google's userinfo endpoint
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

// GoogleLogin redirects the user to Google's consent screen
func GoogleLogin(c *gin.Context) {
	state, err := utils.NewOAuthState(c)
	if err != nil {
		utils.LogError("Failed to create OAuth state: %v", err)
		utils.InternalServerError(c, "Failed to start Google login", err.Error())
		return
	}
	url := config.GoogleOAuthConfig.AuthCodeURL(state)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback completes the Google OAuth flow, creating an account
// on first login
func GoogleCallback(c *gin.Context) {
	if !utils.ConsumeOAuthState(c, c.Query("state")) {
		utils.LogError("OAuth state mismatch")
		utils.BadRequest(c, "Invalid OAuth state", nil)
		return
	}

	code := c.Query("code")
	if code == "" {
		utils.BadRequest(c, "No code provided", nil)
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(c, code)
	if err != nil {
		utils.LogError("Failed to exchange OAuth code: %v", err)
		utils.InternalServerError(c, "Failed to exchange token", err.Error())
		return
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		utils.InternalServerError(c, "Failed to get user info", err.Error())
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.InternalServerError(c, "Failed to read response", err.Error())
		return
	}

	var googleUser GoogleUserInfo
	if err := json.Unmarshal(data, &googleUser); err != nil {
		utils.InternalServerError(c, "Failed to parse user info", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", googleUser.Email).First(&user).Error; err != nil {
		// First Google login creates the account
		user = models.User{
			Username:    googleUsername(googleUser.Email),
			Email:       googleUser.Email,
			GoogleID:    googleUser.ID,
			LastLoginAt: time.Now(),
		}
		if err := utils.CreateUser(&user); err != nil {
			utils.LogError("Failed to create Google user: %v", err)
			utils.InternalServerError(c, "Failed to create account", err.Error())
			return
		}
		utils.LogInfo("Created account for Google user: %s", googleUser.Email)
	} else {
		user.LastLoginAt = time.Now()
		if user.GoogleID == "" {
			user.GoogleID = googleUser.ID
		}
		if err := utils.UpdateUser(&user); err != nil {
			utils.LogError("Failed to update Google user: %v", err)
		}
	}

	jwtToken, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for Google user: %v", err)
		utils.InternalServerError(c, "Failed to generate token", err.Error())
		return
	}

	utils.LogInfo("Google login successful: %s", user.Email)
	utils.Success(c, "Login successful", gin.H{
		"token": jwtToken,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// googleUsername derives a username from the Google account email
func googleUsername(email string) string {
	name := strings.SplitN(email, "@", 2)[0]
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return '_'
	}, name)
	if len(name) < 3 {
		name = name + "_user"
	}
	if len(name) > 20 {
		name = name[:20]
	}
	return name
}
