package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edugestion/school-records/internal/core/ports"
)

type CourseHandler struct {
	courses ports.CourseService
}

func NewCourseHandler(courses ports.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

type courseRequest struct {
	Name        string `json:"name"        validate:"required,min=3,max=150"`
	Code        string `json:"code"        validate:"required,min=3,max=20"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Credits     int    `json:"credits"     validate:"omitempty,gte=1,lte=10"`
	Instructor  string `json:"instructor"  validate:"required,min=3,max=150"`
	Term        string `json:"term"        validate:"required,min=4,max=20"`
	Capacity    int    `json:"capacity"    validate:"omitempty,gte=1,lte=100"`
}

func (r courseRequest) toInput() ports.CourseInput {
	return ports.CourseInput{
		Name:        r.Name,
		Code:        r.Code,
		Description: r.Description,
		Credits:     r.Credits,
		Instructor:  r.Instructor,
		Term:        r.Term,
		Capacity:    r.Capacity,
	}
}

// List returns every course record.
//
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Router       /cursos [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.courses.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", courses)
}

// Get returns a single course by id.
//
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /cursos/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.courses.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", course)
}

// Create adds a new course record.
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      courseRequest  true  "Course details"
// @Success      201   {object}  Response
// @Failure      400   {object}  Response
// @Router       /cursos [post]
func (h *CourseHandler) Create(c echo.Context) error {
	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	course, err := h.courses.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "course created successfully", course)
}

// Update replaces an existing course record.
//
// @Summary      Update a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Course id"
// @Param        body  body      courseRequest  true  "Course details"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Failure      404   {object}  Response
// @Router       /cursos/{id} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	course, err := h.courses.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "course updated successfully", course)
}

// Delete removes a course record.
//
// @Summary      Delete a course
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /cursos/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	if err := h.courses.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "course deleted successfully", nil)
}
