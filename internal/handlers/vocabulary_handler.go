package handlers

import (
	"taalpal/internal/models"
	"taalpal/internal/progress"
	"taalpal/internal/repository"
	"taalpal/internal/service"
	"taalpal/internal/utils"

	"github.com/gin-gonic/gin"
)

type VocabularyHandler struct {
	Service  *service.VocabularyService
	Progress *service.ProgressService
}

func NewVocabularyHandler(s *service.VocabularyService, p *service.ProgressService) *VocabularyHandler {
	return &VocabularyHandler{Service: s, Progress: p}
}

func (h *VocabularyHandler) ListTopics(c *gin.Context) {
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

func (h *VocabularyHandler) GetTopic(c *gin.Context) {
	topic, err := h.Service.GetTopic(c.Request.Context(), c.Param("topicId"))
	if err != nil {
		respondError(c, err, "Vocabulary topic not found")
		return
	}
	utils.SuccessResponse(c, topic)
}

func (h *VocabularyHandler) GetWords(c *gin.Context) {
	words, err := h.Service.GetWords(c.Request.Context(), c.Param("topicId"))
	if err != nil {
		respondError(c, err, "Vocabulary topic not found")
		return
	}
	utils.SuccessResponse(c, words)
}

// CompleteLesson records a study unit of a vocabulary topic. Vocabulary
// "lessons" are caller-defined study units (word batches), tracked by
// whatever identifier the client supplies.
func (h *VocabularyHandler) CompleteLesson(c *gin.Context) {
	var req completeLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "userId and lessonId are required")
		return
	}
	snapshot, err := h.Progress.CompleteLesson(c.Request.Context(), req.UserID, progress.LessonCompletion{
		TopicID:   c.Param("topicId"),
		TopicType: models.TopicTypeVocabulary,
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

func (h *VocabularyHandler) CreateTopic(c *gin.Context) {
	var topic models.VocabularyTopic
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

func (h *VocabularyHandler) UpdateTopic(c *gin.Context) {
	var topic models.VocabularyTopic
	if err := c.ShouldBindJSON(&topic); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	if topic.Title == "" {
		utils.BadRequestResponse(c, "title is required")
		return
	}
	if err := h.Service.UpdateTopic(c.Request.Context(), c.Param("topicId"), &topic); err != nil {
		respondError(c, err, "Vocabulary topic not found")
		return
	}
	utils.SuccessResponse(c, topic)
}
