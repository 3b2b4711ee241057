package controllers

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ria-dsouza/shelflife/models"
	"github.com/ria-dsouza/shelflife/utils"
)

// DemoLogin logs the caller into the shared demo account without
// credentials. The demo account must exist (seeded by the reset script).
func DemoLogin(c *gin.Context) {
	utils.LogInfo("DemoLogin called")

	demoEmail := os.Getenv("DEMO_EMAIL")
	if demoEmail == "" {
		utils.LogError("DEMO_EMAIL not configured")
		utils.NotFound(c, "Demo account is not available")
		return
	}

	user, err := utils.GetUserByEmail(demoEmail)
	if err != nil {
		utils.LogError("Demo user not found: %v", err)
		utils.NotFound(c, "Demo account is not available")
		return
	}

	user.LastLoginAt = time.Now()
	if err := utils.UpdateUser(user); err != nil {
		utils.LogError("Failed to update demo user login time: %v", err)
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.LogError("Failed to generate token for demo user: %v", err)
		utils.InternalServerError(c, "Failed to generate token", err.Error())
		return
	}

	utils.LogInfo("Demo login issued for user %d", user.ID)
	utils.Success(c, "Demo login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"is_demo":  true,
		},
	})
}

// EnsureDemoUser creates the demo account at startup if it is configured
// and missing
func EnsureDemoUser() error {
	demoEmail := os.Getenv("DEMO_EMAIL")
	if demoEmail == "" {
		return nil
	}

	if _, err := utils.GetUserByEmail(demoEmail); err == nil {
		return nil
	}

	password, err := utils.HashPassword(utils.GenerateOTP() + "Aa1")
	if err != nil {
		return err
	}

	demo := models.User{
		Username: "demo",
		Email:    demoEmail,
		Password: password,
		IsDemo:   true,
	}
	if err := utils.CreateUser(&demo); err != nil {
		return err
	}

	utils.LogInfo("Created demo user %d", demo.ID)
	return nil
}
