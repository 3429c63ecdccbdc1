package handlers

import (
	"strconv"

	"taalpal/internal/models"
	"taalpal/internal/progress"
	"taalpal/internal/repository"
	"taalpal/internal/service"
	"taalpal/internal/utils"

	"github.com/gin-gonic/gin"
)

type GrammarHandler struct {
	Service  *service.GrammarService
	Progress *service.ProgressService
}

func NewGrammarHandler(s *service.GrammarService, p *service.ProgressService) *GrammarHandler {
	return &GrammarHandler{Service: s, Progress: p}
}

func (h *GrammarHandler) ListTopics(c *gin.Context) {
	filter := repository.ContentFilter{
		Category: c.Query("category"),
		Level:    c.Query("level"),
	}
	topics, err := h.Service.ListTopics(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "")
		return
	}
	utils.SuccessResponse(c, topics)
}

func (h *GrammarHandler) GetTopic(c *gin.Context) {
	topic, err := h.Service.GetTopic(c.Request.Context(), c.Param("topicId"))
	if err != nil {
		respondError(c, err, "Grammar topic not found")
		return
	}
	utils.SuccessResponse(c, topic)
}

func (h *GrammarHandler) GetLesson(c *gin.Context) {
	order, err := strconv.Atoi(c.Param("order"))
	if err != nil {
		utils.BadRequestResponse(c, "Lesson order must be a number")
		return
	}
	lesson, err := h.Service.GetLesson(c.Request.Context(), c.Param("topicId"), order)
	if err != nil {
		respondError(c, err, "Lesson not found")
		return
	}
	utils.SuccessResponse(c, lesson)
}

type completeLessonRequest struct {
	UserID    string `json:"userId" binding:"required"`
	LessonID  string `json:"lessonId" binding:"required"`
	Score     int    `json:"score"`
	TimeSpent int    `json:"timeSpent"`
}

// CompleteLesson records a grammar lesson completion and hands back the
// topic snapshot the UI renders its progress bar from.
func (h *GrammarHandler) CompleteLesson(c *gin.Context) {
	var req completeLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "userId and lessonId are required")
		return
	}
	snapshot, err := h.Progress.CompleteLesson(c.Request.Context(), req.UserID, progress.LessonCompletion{
		TopicID:   c.Param("topicId"),
		TopicType: models.TopicTypeGrammar,
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

func (h *GrammarHandler) CreateTopic(c *gin.Context) {
	var topic models.GrammarTopic
	if err := c.ShouldBindJSON(&topic); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	if topic.TopicID == "" || topic.Title == "" {
		utils.BadRequestResponse(c, "topicId and title are required")
		return
	}
	if err := h.Service.CreateTopic(c.Request.Context(), &topic); err != nil {
		respondError(c, err, "")
		return
	}
	utils.CreatedResponse(c, topic)
}

func (h *GrammarHandler) UpdateTopic(c *gin.Context) {
	var topic models.GrammarTopic
	if err := c.ShouldBindJSON(&topic); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	if topic.Title == "" {
		utils.BadRequestResponse(c, "title is required")
		return
	}
	if err := h.Service.UpdateTopic(c.Request.Context(), c.Param("topicId"), &topic); err != nil {
		respondError(c, err, "Grammar topic not found")
		return
	}
	utils.SuccessResponse(c, topic)
}
