package instructorController

import (
	"log"

	"lms/middleware"
	"lms/models"
	"lms/utils"
	instructorValidator "lms/validators/instructor"

	"github.com/gofiber/fiber/v2"
)

func materialSubDir(materialType string) string {
	if materialType == models.MaterialVideo {
		return utils.VideoDir
	}
	return utils.DocumentDir
}

// CreateMaterial attaches a material to one of the caller's own courses.
// Videos and documents carry an uploaded file, other types inline content.
func (h *InstructorController) CreateMaterial(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	if _, ok := h.ownCourse(c, courseID); !ok {
		return nil
	}

	reqData, ok := c.Locals("validatedMaterial").(*instructorValidator.MaterialRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	filePath := ""
	switch reqData.Type {
	case models.MaterialVideo:
		file, err := c.FormFile("video")
		if err != nil || file == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A video file is required for video materials!", nil)
		}
		filePath, err = utils.SaveUploadedFile(file, utils.VideoDir)
		if err != nil {
			log.Printf("Error saving video: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save video!", nil)
		}
	case models.MaterialDocument:
		file, err := c.FormFile("document")
		if err != nil || file == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A document file is required for document materials!", nil)
		}
		filePath, err = utils.SaveUploadedFile(file, utils.DocumentDir)
		if err != nil {
			log.Printf("Error saving document: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save document!", nil)
		}
	}

	material := models.CourseMaterial{
		CourseID:    uint(courseID),
		Title:       reqData.Title,
		Description: reqData.Description,
		Type:        reqData.Type,
		FilePath:    filePath,
		Content:     reqData.Content,
		OrderIndex:  reqData.OrderIndex,
		IsPreview:   reqData.IsPreview,
	}

	if err := h.DB.Create(&material).Error; err != nil {
		utils.DeleteUploadedFile(materialSubDir(reqData.Type), filePath)
		log.Printf("Error creating material: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Material created successfully!", material)
}

// UpdateMaterial updates a material on one of the caller's own courses
func (h *InstructorController) UpdateMaterial(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	materialID, err := c.ParamsInt("materialId")
	if err != nil || materialID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid material id!", nil)
	}

	if _, ok := h.ownCourse(c, courseID); !ok {
		return nil
	}

	var material models.CourseMaterial
	if err := h.DB.Where("id = ? AND course_id = ? AND is_deleted = ?", materialID, courseID, false).
		First(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}

	reqData, ok := c.Locals("validatedMaterial").(*instructorValidator.MaterialRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		material.Title = reqData.Title
	}
	if reqData.Description != "" {
		material.Description = reqData.Description
	}
	if reqData.Content != "" {
		material.Content = reqData.Content
	}
	if reqData.OrderIndex > 0 {
		material.OrderIndex = reqData.OrderIndex
	}
	material.IsPreview = reqData.IsPreview

	if err := h.DB.Save(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material updated successfully!", material)
}

// DeleteMaterial removes a material and its stored file
func (h *InstructorController) DeleteMaterial(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	materialID, err := c.ParamsInt("materialId")
	if err != nil || materialID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid material id!", nil)
	}

	if _, ok := h.ownCourse(c, courseID); !ok {
		return nil
	}

	var material models.CourseMaterial
	if err := h.DB.Where("id = ? AND course_id = ? AND is_deleted = ?", materialID, courseID, false).
		First(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}

	material.IsDeleted = true
	if err := h.DB.Save(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete material!", nil)
	}

	if material.FilePath != "" {
		utils.DeleteUploadedFile(materialSubDir(material.Type), material.FilePath)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material deleted successfully!", nil)
}
