package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ria-dsouza/shelflife/utils"
)

// ForgotPassword emails a reset OTP to the account's address. The
// response does not reveal whether the address is registered.
func ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", "Please provide an email address")
		return
	}

	user, err := utils.GetUserByEmail(req.Email)
	if err != nil {
		utils.LogInfo("Password reset requested for unknown email: %s", req.Email)
		utils.Success(c, "If the email is registered, a reset code has been sent", nil)
		return
	}

	otp := utils.GenerateOTP()
	user.ResetOTP = otp
	user.ResetExpires = time.Now().Add(15 * time.Minute)
	if err := utils.UpdateUser(user); err != nil {
		utils.LogError("Failed to store reset OTP for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to process request", nil)
		return
	}

	if err := utils.SendPasswordResetOTP(user.Email, otp); err != nil {
		utils.LogError("Failed to send reset email to %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to send reset email", nil)
		return
	}

	utils.LogInfo("Password reset code sent to %s", user.Email)
	utils.Success(c, "If the email is registered, a reset code has been sent", nil)
}

// ResetPassword sets a new password given a valid reset OTP
func ResetPassword(c *gin.Context) {
	var req struct {
		Email           string `json:"email" binding:"required,email"`
		OTP             string `json:"otp" binding:"required"`
		Password        string `json:"password" binding:"required"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", "Please provide email, otp, and new password")
		return
	}

	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}
	if req.Password != req.ConfirmPassword {
		utils.BadRequest(c, "Passwords do not match", "Password and confirm password must be the same.")
		return
	}

	user, err := utils.GetUserByEmail(req.Email)
	if err != nil {
		utils.LogError("Password reset failed - user not found: %s", req.Email)
		utils.BadRequest(c, "Invalid or expired reset code", nil)
		return
	}

	if user.ResetOTP == "" || user.ResetOTP != req.OTP || time.Now().After(user.ResetExpires) {
		utils.LogError("Password reset failed - invalid or expired OTP for %s", req.Email)
		utils.BadRequest(c, "Invalid or expired reset code", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash new password: %v", err)
		utils.InternalServerError(c, "Failed to reset password", nil)
		return
	}

	user.Password = hashed
	user.ResetOTP = ""
	user.ResetExpires = time.Time{}
	if err := utils.UpdateUser(user); err != nil {
		utils.LogError("Failed to save new password for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to reset password", nil)
		return
	}

	utils.LogInfo("Password reset successful for %s", user.Email)
	utils.Success(c, "Password reset successful", nil)
}

// ChangePassword updates the password for the authenticated user
func ChangePassword(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", "Please provide current and new password")
		return
	}

	if !utils.CheckPassword(req.CurrentPassword, user.Password) {
		utils.Unauthorized(c, "Current password is incorrect")
		return
	}

	if valid, msg := utils.ValidatePassword(req.NewPassword); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		utils.BadRequest(c, "Passwords do not match", "New password and confirm password must be the same.")
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.LogError("Failed to hash new password: %v", err)
		utils.InternalServerError(c, "Failed to change password", nil)
		return
	}

	if err := utils.UpdateUserPassword(user.ID, hashed); err != nil {
		utils.LogError("Failed to save new password for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to change password", nil)
		return
	}

	utils.LogInfo("Password changed for user %d", user.ID)
	utils.Success(c, "Password changed successfully", nil)
}
