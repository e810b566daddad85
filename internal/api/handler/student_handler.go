package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edugestion/school-records/internal/core/ports"
)

type StudentHandler struct {
	students ports.StudentService
}

func NewStudentHandler(students ports.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

type studentRequest struct {
	FirstName    string `json:"first_name"    validate:"required,min=2,max=100"`
	LastName     string `json:"last_name"     validate:"required,min=2,max=100"`
	Email        string `json:"email"         validate:"required,email"`
	BirthDate    string `json:"birth_date"    validate:"required,datetime=2006-01-02"`
	EnrollmentID string `json:"enrollment_id" validate:"required,min=5,max=20"`
	Phone        string `json:"phone"         validate:"omitempty,max=15"`
	Address      string `json:"address"       validate:"omitempty,max=255"`
}

func (r studentRequest) toInput() ports.StudentInput {
	return ports.StudentInput{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		BirthDate:    r.BirthDate,
		EnrollmentID: r.EnrollmentID,
		Phone:        r.Phone,
		Address:      r.Address,
	}
}

// List returns every student record.
//
// @Summary      List students
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Router       /estudiantes [get]
func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.students.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", students)
}

// Get returns a single student by id.
//
// @Summary      Get a student
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Student id"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /estudiantes/{id} [get]
func (h *StudentHandler) Get(c echo.Context) error {
	student, err := h.students.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", student)
}

// Create adds a new student record.
//
// @Summary      Create a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      studentRequest  true  "Student details"
// @Success      201   {object}  Response
// @Failure      400   {object}  Response
// @Router       /estudiantes [post]
func (h *StudentHandler) Create(c echo.Context) error {
	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	student, err := h.students.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "student created successfully", student)
}

// Update replaces an existing student record.
//
// @Summary      Update a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Student id"
// @Param        body  body      studentRequest  true  "Student details"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Failure      404   {object}  Response
// @Router       /estudiantes/{id} [put]
func (h *StudentHandler) Update(c echo.Context) error {
	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	student, err := h.students.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "student updated successfully", student)
}

// Delete removes a student record.
//
// @Summary      Delete a student
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Student id"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /estudiantes/{id} [delete]
func (h *StudentHandler) Delete(c echo.Context) error {
	if err := h.students.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "student deleted successfully", nil)
}
