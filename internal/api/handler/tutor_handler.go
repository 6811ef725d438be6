package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vetcare/clinic-api/internal/core/ports"
)

// TutorHandler exposes the pet-owner CRUD.
type TutorHandler struct {
	tutorService ports.TutorService
}

func NewTutorHandler(tutorService ports.TutorService) *TutorHandler {
	return &TutorHandler{tutorService: tutorService}
}

// Create registers a new tutor.
//
// @Summary      Create a tutor
// @Tags         tutores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      tutorRequest  true  "Tutor details"
// @Success      201   {object}  tutorMessageResponse
// @Failure      400   {object}  map[string]string
// @Router       /index/tutores [post]
func (h *TutorHandler) Create(c echo.Context) error {
	var req tutorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tutor, err := h.tutorService.Create(c.Request().Context(), ports.TutorInput{
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, tutorMessageResponse{
		Message: "tutor created successfully",
		Tutor:   tutor,
	})
}

// List returns all tutors ordered by id.
//
// @Summary      List tutors
// @Tags         tutores
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  tutorListResponse
// @Router       /index/tutores [get]
func (h *TutorHandler) List(c echo.Context) error {
	tutors, err := h.tutorService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tutorListResponse{Tutors: tutors})
}

// Update mutates a tutor.
//
// @Summary      Update a tutor
// @Tags         tutores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Tutor id"
// @Param        body  body      updateTutorRequest  true  "Fields to update"
// @Success      200   {object}  tutorMessageResponse
// @Failure      404   {object}  map[string]string
// @Router       /index/tutores/{id} [put]
func (h *TutorHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateTutorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tutor, err := h.tutorService.Update(c.Request().Context(), id, ports.TutorInput{
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tutorMessageResponse{
		Message: "tutor updated successfully",
		Tutor:   tutor,
	})
}

// Delete removes a tutor.
//
// @Summary      Delete a tutor
// @Tags         tutores
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Tutor id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /index/tutores/{id} [delete]
func (h *TutorHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.tutorService.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "tutor deleted successfully"})
}
