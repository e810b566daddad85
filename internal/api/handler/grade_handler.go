package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edugestion/school-records/internal/core/ports"
)

type GradeHandler struct {
	grades ports.GradeService
}

func NewGradeHandler(grades ports.GradeService) *GradeHandler {
	return &GradeHandler{grades: grades}
}

type gradeRequest struct {
	StudentID string  `json:"student_id" validate:"required"`
	CourseID  string  `json:"course_id"  validate:"required"`
	Score     float64 `json:"score"      validate:"gte=0,lte=100"`
	Term      string  `json:"term"       validate:"required,min=4,max=20"`
	EvalType  string  `json:"eval_type"  validate:"required,oneof=partial final project homework exam"`
	Notes     string  `json:"notes"      validate:"omitempty,max=500"`
}

func (r gradeRequest) toInput() ports.GradeInput {
	return ports.GradeInput{
		StudentID: r.StudentID,
		CourseID:  r.CourseID,
		Score:     r.Score,
		Term:      r.Term,
		EvalType:  r.EvalType,
		Notes:     r.Notes,
	}
}

// List returns every grade record.
//
// @Summary      List grades
// @Tags         grades
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Router       /calificaciones [get]
func (h *GradeHandler) List(c echo.Context) error {
	grades, err := h.grades.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", grades)
}

// Get returns a single grade by id.
//
// @Summary      Get a grade
// @Tags         grades
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Grade id"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /calificaciones/{id} [get]
func (h *GradeHandler) Get(c echo.Context) error {
	grade, err := h.grades.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", grade)
}

// Create adds a new grade; the referenced student and course must exist.
//
// @Summary      Create a grade
// @Tags         grades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      gradeRequest  true  "Grade details"
// @Success      201   {object}  Response
// @Failure      400   {object}  Response
// @Failure      404   {object}  Response
// @Router       /calificaciones [post]
func (h *GradeHandler) Create(c echo.Context) error {
	var req gradeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	grade, err := h.grades.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "grade created successfully", grade)
}

// Update replaces an existing grade record.
//
// @Summary      Update a grade
// @Tags         grades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Grade id"
// @Param        body  body      gradeRequest  true  "Grade details"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Failure      404   {object}  Response
// @Router       /calificaciones/{id} [put]
func (h *GradeHandler) Update(c echo.Context) error {
	var req gradeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	grade, err := h.grades.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "grade updated successfully", grade)
}

// Delete removes a grade record.
//
// @Summary      Delete a grade
// @Tags         grades
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Grade id"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /calificaciones/{id} [delete]
func (h *GradeHandler) Delete(c echo.Context) error {
	if err := h.grades.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "grade deleted successfully", nil)
}
