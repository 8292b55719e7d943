package authController

import (
	"log"

	"lms/middleware"
	"lms/models"
	"lms/utils"
	authValidator "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func (h *AuthController) GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := h.DB.Where("id = ? AND status <> ?", userID, models.UserDeleted).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"user":              user,
		"profile_image_url": utils.FileURL(utils.ProfileDir, user.ProfileImage),
	})
}

func (h *AuthController) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*authValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := h.DB.Where("id = ? AND status <> ?", userID, models.UserDeleted).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	newImage := ""
	if file, err := c.FormFile("profileImage"); err == nil && file != nil {
		newImage, err = utils.SaveUploadedFile(file, utils.ProfileDir)
		if err != nil {
			log.Printf("Error saving profile image: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save profile image!", nil)
		}
	}

	oldImage := user.ProfileImage

	if reqData.Name != "" {
		user.Name = reqData.Name
	}
	if reqData.Bio != "" {
		user.Bio = reqData.Bio
	}
	if reqData.Phone != "" {
		user.Phone = reqData.Phone
	}
	if reqData.DateOfBirth != "" {
		user.DateOfBirth = reqData.DateOfBirth
	}
	if reqData.Gender != "" {
		user.Gender = reqData.Gender
	}
	if reqData.Country != "" {
		user.Country = reqData.Country
	}
	if newImage != "" {
		user.ProfileImage = newImage
	}

	if err := h.DB.Save(&user).Error; err != nil {
		utils.DeleteUploadedFile(utils.ProfileDir, newImage)
		log.Printf("Error updating profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	if newImage != "" && oldImage != "" {
		utils.DeleteUploadedFile(utils.ProfileDir, oldImage)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", fiber.Map{
		"user":              user,
		"profile_image_url": utils.FileURL(utils.ProfileDir, user.ProfileImage),
	})
}
