package handler

import (
	"github.com/gofiber/fiber/v2"

	"craftify/internal/domain"
	"craftify/internal/dto"
	"craftify/internal/middleware"
	"craftify/internal/service"
)

// ContentHandler serves the course, mindmap, quiz and video endpoints.
type ContentHandler struct {
	courses  service.CourseService
	quizzes  service.QuizService
	mindmaps service.MindmapService
	videos   service.VideoService
}

func NewContentHandler(
	courses service.CourseService,
	quizzes service.QuizService,
	mindmaps service.MindmapService,
	videos service.VideoService,
) *ContentHandler {
	return &ContentHandler{
		courses:  courses,
		quizzes:  quizzes,
		mindmaps: mindmaps,
		videos:   videos,
	}
}

var errUnvalidatedBody = domain.NewInternalError("request body was not validated", nil)

// GenerateCourse godoc
// @Summary Generate a course
// @Description Generates a module-wise course for a topic and difficulty level. The generated content is validated before it is returned.
// @Tags content
// @Accept json
// @Produce json
// @Param request body dto.CourseRequest true "Topic and difficulty"
// @Success 200 {object} domain.Course
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /generate-course/ [post]
func (h *ContentHandler) GenerateCourse(c *fiber.Ctx) error {
	req := middleware.ValidatedBody[dto.CourseRequest](c)
	if req == nil {
		return errUnvalidatedBody
	}

	course, err := h.courses.GenerateCourse(c.UserContext(), req.Topic, req.Difficulty)
	if err != nil {
		return err
	}
	return c.JSON(course)
}

// GenerateMindmap godoc
// @Summary Generate a mindmap
// @Description Derives a root/module/topic tree from a course object, or from a JSON string holding one. Modules without a title are skipped.
// @Tags content
// @Accept json
// @Produce json
// @Param request body domain.Course true "Course"
// @Success 200 {object} domain.MindmapNode
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /generate-mindmap/ [post]
func (h *ContentHandler) GenerateMindmap(c *fiber.Ctx) error {
	var course any
	if err := c.App().Config().JSONDecoder(c.Body(), &course); err != nil {
		return domain.NewInvalidInputError([]string{"request body must be valid JSON"})
	}

	root, err := h.mindmaps.GenerateMindmap(c.UserContext(), course)
	if err != nil {
		return err
	}
	return c.JSON(root)
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Generates a multiple-choice quiz for a topic.
// @Tags content
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Topic"
// @Success 200 {object} domain.Quiz
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /generate-quiz/ [post]
func (h *ContentHandler) GenerateQuiz(c *fiber.Ctx) error {
	req := middleware.ValidatedBody[dto.QuizRequest](c)
	if req == nil {
		return errUnvalidatedBody
	}

	quiz, err := h.quizzes.GenerateQuiz(c.UserContext(), req.Topic)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// GetVideo godoc
// @Summary Find a video
// @Description Returns the first embeddable, medium-length YouTube video for a topic.
// @Tags content
// @Accept json
// @Produce json
// @Param request body dto.VideoRequest true "Topic"
// @Success 200 {object} dto.VideoResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /get-video/ [post]
func (h *ContentHandler) GetVideo(c *fiber.Ctx) error {
	req := middleware.ValidatedBody[dto.VideoRequest](c)
	if req == nil {
		return errUnvalidatedBody
	}

	video, err := h.videos.GetVideo(c.UserContext(), req.Topic)
	if err != nil {
		return err
	}
	return c.JSON(video)
}
