package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vetcare/clinic-api/internal/core/ports"
)

// PatientHandler exposes the pet CRUD.
type PatientHandler struct {
	patientService ports.PatientService
}

func NewPatientHandler(patientService ports.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

// Create registers a new patient for an existing tutor.
//
// @Summary      Create a patient
// @Tags         pacientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      patientRequest  true  "Patient details"
// @Success      201   {object}  patientMessageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /index/pacientes [post]
func (h *PatientHandler) Create(c echo.Context) error {
	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patient, err := h.patientService.Create(c.Request().Context(), ports.PatientInput{
		Name:       req.Name,
		Species:    req.Species,
		Breed:      req.Breed,
		Age:        req.Age,
		Sterilized: req.Sterilized,
		Sex:        req.Sex,
		TutorID:    req.TutorID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, patientMessageResponse{
		Message: "patient created successfully",
		Patient: patient,
	})
}

// List returns all patients with their tutors embedded.
//
// @Summary      List patients
// @Tags         pacientes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  patientListResponse
// @Router       /index/pacientes [get]
func (h *PatientHandler) List(c echo.Context) error {
	patients, err := h.patientService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patientListResponse{Patients: patients})
}

// ListByTutor returns the patients owned by one tutor.
//
// @Summary      List a tutor's patients
// @Tags         pacientes
// @Produce      json
// @Security     BearerAuth
// @Param        tutor_id  path      int  true  "Tutor id"
// @Success      200       {object}  patientListResponse
// @Failure      404       {object}  map[string]string
// @Router       /index/pacientes/tutor/{tutor_id} [get]
func (h *PatientHandler) ListByTutor(c echo.Context) error {
	tutorID, err := pathID(c, "tutor_id")
	if err != nil {
		return err
	}

	patients, err := h.patientService.ListByTutor(c.Request().Context(), tutorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patientListResponse{Patients: patients})
}

// Update mutates a patient.
//
// @Summary      Update a patient
// @Tags         pacientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Patient id"
// @Param        body  body      updatePatientRequest  true  "Fields to update"
// @Success      200   {object}  patientMessageResponse
// @Failure      404   {object}  map[string]string
// @Router       /index/pacientes/{id} [put]
func (h *PatientHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updatePatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patient, err := h.patientService.Update(c.Request().Context(), id, ports.PatientInput{
		Name:       req.Name,
		Species:    req.Species,
		Breed:      req.Breed,
		Age:        req.Age,
		Sterilized: req.Sterilized,
		Sex:        req.Sex,
		TutorID:    req.TutorID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, patientMessageResponse{
		Message: "patient updated successfully",
		Patient: patient,
	})
}

// Delete removes a patient.
//
// @Summary      Delete a patient
// @Tags         pacientes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Patient id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /index/pacientes/{id} [delete]
func (h *PatientHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.patientService.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "patient deleted successfully"})
}
