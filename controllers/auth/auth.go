package authController

import (
	"log"
	"time"

	"lms/config"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	authValidator "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func (h *AuthController) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Check if email already exists
	if err := h.DB.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	verificationToken, err := middleware.GenerateEmailToken(reqData.Email)
	if err != nil {
		log.Printf("Error generating verification token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	// Optional profile image
	profileImage := ""
	if file, err := c.FormFile("profileImage"); err == nil && file != nil {
		profileImage, err = utils.SaveUploadedFile(file, utils.ProfileDir)
		if err != nil {
			log.Printf("Error saving profile image: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save profile image!", nil)
		}
	}

	newUser := models.User{
		Name:              reqData.Name,
		Email:             reqData.Email,
		Password:          string(hashedPassword),
		Role:              reqData.Role,
		Status:            models.UserActive,
		Bio:               reqData.Bio,
		Phone:             reqData.Phone,
		DateOfBirth:       reqData.DateOfBirth,
		Gender:            reqData.Gender,
		Country:           reqData.Country,
		ProfileImage:      profileImage,
		VerificationToken: verificationToken,
	}

	if err := h.DB.Create(&newUser).Error; err != nil {
		utils.DeleteUploadedFile(utils.ProfileDir, profileImage)
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	go func(email, name, token string) {
		if err := utils.SendVerificationEmail(email, name, token); err != nil {
			log.Printf("Error sending verification email to %s: %v", email, err)
		}
	}(newUser.Email, newUser.Name, verificationToken)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully. Please verify your email.", fiber.Map{
		"user":              newUser,
		"profile_image_url": utils.FileURL(utils.ProfileDir, newUser.ProfileImage),
	})
}

func (h *AuthController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Unknown email and wrong password get the same response so the endpoint
	// cannot be used to probe which addresses hold accounts.
	var user models.User
	if err := h.DB.Where("email = ? AND status = ?", reqData.Email, models.UserActive).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	// A failed timestamp write must not fail the login.
	go func(id uint) {
		now := time.Now()
		if err := h.DB.Model(&models.User{}).Where("id = ?", id).Update("last_login", now).Error; err != nil {
			log.Printf("Error saving last login time: %v", err)
		}
	}(user.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (h *AuthController) VerifyEmail(c *fiber.Ctx) error {
	tokenString := c.Query("token")
	if tokenString == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Verification token is required!", nil)
	}

	email, err := middleware.ParseEmailToken(tokenString)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired verification token!", nil)
	}

	// Single use: the stored token must still match, then it is cleared.
	var user models.User
	if err := h.DB.Where("email = ? AND verification_token = ?", email, tokenString).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired verification token!", nil)
	}

	user.IsEmailVerified = true
	user.VerificationToken = ""
	if err := h.DB.Save(&user).Error; err != nil {
		log.Printf("Error verifying email for %s: %v", email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify email!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Email verified successfully!", nil)
}
