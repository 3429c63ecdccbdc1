package handlers

import (
	"taalpal/internal/models"
	"taalpal/internal/progress"
	"taalpal/internal/service"
	"taalpal/internal/utils"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	Service *service.ProgressService
}

func NewProgressHandler(s *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{Service: s}
}

func (h *ProgressHandler) GetProgress(c *gin.Context) {
	p, err := h.Service.GetProgress(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err, "No progress recorded for this user")
		return
	}
	utils.SuccessResponse(c, p)
}

type completeLessonBody struct {
	TopicID   string `json:"topicId" binding:"required"`
	TopicType string `json:"topicType" binding:"required"`
	LessonID  string `json:"lessonId" binding:"required"`
	Score     int    `json:"score"`
	TimeSpent int    `json:"timeSpent"`
}

// CompleteLesson is the generic completion endpoint: the topic type is
// part of the payload instead of the route.
func (h *ProgressHandler) CompleteLesson(c *gin.Context) {
	var req completeLessonBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "topicId, topicType and lessonId are required")
		return
	}
	snapshot, err := h.Service.CompleteLesson(c.Request.Context(), c.Param("userId"), progress.LessonCompletion{
		TopicID:   req.TopicID,
		TopicType: req.TopicType,
		LessonID:  req.LessonID,
		Score:     req.Score,
		TimeSpent: req.TimeSpent,
	})
	if err != nil {
		respondError(c, err, "")
		return
	}
	utils.SuccessResponse(c, snapshot)
}

// RecordActivity marks the user active today for streak counting.
func (h *ProgressHandler) RecordActivity(c *gin.Context) {
	p, err := h.Service.RecordActivity(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err, "")
		return
	}
	utils.SuccessResponse(c, gin.H{
		"streakDays":     p.StreakDays,
		"lastActiveDate": p.LastActiveDate,
	})
}

func (h *ProgressHandler) UpdatePreferences(c *gin.Context) {
	var prefs models.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	p, err := h.Service.UpdatePreferences(c.Request.Context(), c.Param("userId"), prefs)
	if err != nil {
		respondError(c, err, "")
		return
	}
	utils.SuccessResponse(c, p.Preferences)
}
