package handlers

import (
	"taalpal/internal/models"
	"taalpal/internal/repository"
	"taalpal/internal/service"
	"taalpal/internal/utils"

	"github.com/gin-gonic/gin"
)

type TestHandler struct {
	Service *service.TestService
}

func NewTestHandler(s *service.TestService) *TestHandler {
	return &TestHandler{Service: s}
}

func (h *TestHandler) ListTests(c *gin.Context) {
	filter := repository.TestFilter{
		Type:  c.Query("type"),
		Level: c.Query("level"),
	}
	tests, err := h.Service.ListTests(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "")
		return
	}
	utils.SuccessResponse(c, tests)
}

func (h *TestHandler) GetTest(c *gin.Context) {
	test, err := h.Service.GetTest(c.Request.Context(), c.Param("testId"))
	if err != nil {
		respondError(c, err, "Test not found")
		return
	}
	utils.SuccessResponse(c, test)
}

type submitTestRequest struct {
	UserID  string                   `json:"userId" binding:"required"`
	Answers []models.SubmittedAnswer `json:"answers" binding:"required"`
}

func (h *TestHandler) SubmitTest(c *gin.Context) {
	var req submitTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "userId and answers are required")
		return
	}
	result, err := h.Service.Submit(c.Request.Context(), c.Param("testId"), req.UserID, req.Answers)
	if err != nil {
		respondError(c, err, "Test not found")
		return
	}
	utils.CreatedResponse(c, result)
}

func (h *TestHandler) GetResultsByTest(c *gin.Context) {
	results, err := h.Service.GetResultsByTest(c.Request.Context(), c.Param("testId"))
	if err != nil {
		respondError(c, err, "Test not found")
		return
	}
	if results == nil {
		results = []models.TestResult{}
	}
	utils.SuccessResponse(c, results)
}

func (h *TestHandler) GetResultsByUser(c *gin.Context) {
	results, err := h.Service.GetResultsByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err, "")
		return
	}
	if results == nil {
		results = []models.TestResult{}
	}
	utils.SuccessResponse(c, results)
}
