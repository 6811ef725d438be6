package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vetcare/clinic-api/internal/core/ports"
)

// DoctorHandler exposes the staff directory CRUD. Mutations sit behind the
// admin/veterinarian RBAC gate in the router.
type DoctorHandler struct {
	doctorService ports.DoctorService
}

func NewDoctorHandler(doctorService ports.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService}
}

// Create registers a new doctor.
//
// @Summary      Create a doctor
// @Tags         doctores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      doctorRequest  true  "Doctor details"
// @Success      201   {object}  doctorMessageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /index/doctores [post]
func (h *DoctorHandler) Create(c echo.Context) error {
	var req doctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doctor, err := h.doctorService.Create(c.Request().Context(), ports.DoctorInput{
		Name:      req.Name,
		LastName:  req.LastName,
		Specialty: req.Specialty,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, doctorMessageResponse{
		Message: "doctor created successfully",
		Doctor:  doctor,
	})
}

// List returns all doctors ordered by id.
//
// @Summary      List doctors
// @Tags         doctores
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  doctorListResponse
// @Router       /index/doctores [get]
func (h *DoctorHandler) List(c echo.Context) error {
	doctors, err := h.doctorService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctorListResponse{Doctors: doctors})
}

// Update mutates a doctor.
//
// @Summary      Update a doctor
// @Tags         doctores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Doctor id"
// @Param        body  body      updateDoctorRequest  true  "Fields to update"
// @Success      200   {object}  doctorMessageResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /index/doctores/{id} [put]
func (h *DoctorHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateDoctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doctor, err := h.doctorService.Update(c.Request().Context(), id, ports.DoctorInput{
		Name:      req.Name,
		LastName:  req.LastName,
		Specialty: req.Specialty,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, doctorMessageResponse{
		Message: "doctor updated successfully",
		Doctor:  doctor,
	})
}

// Delete removes a doctor.
//
// @Summary      Delete a doctor
// @Tags         doctores
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Doctor id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /index/doctores/{id} [delete]
func (h *DoctorHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.doctorService.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "doctor deleted successfully"})
}
