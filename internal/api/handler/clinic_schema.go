package handler

import "github.com/vetcare/clinic-api/internal/core/domain"

// --- Tutors ---

type tutorRequest struct {
	Name     string `json:"nombre"    validate:"required"`
	LastName string `json:"apellido"  validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Phone    string `json:"telefono"  validate:"omitempty"`
	Address  string `json:"direccion" validate:"omitempty"`
}

type updateTutorRequest struct {
	Name     string `json:"nombre"`
	LastName string `json:"apellido"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"telefono"`
	Address  string `json:"direccion"`
}

type tutorMessageResponse struct {
	Message string        `json:"mensaje"`
	Tutor   *domain.Tutor `json:"tutor"`
}

type tutorListResponse struct {
	Tutors []domain.Tutor `json:"tutores"`
}

// --- Patients ---

type patientRequest struct {
	Name       string `json:"nombre"       validate:"required"`
	Species    string `json:"especie"      validate:"omitempty"`
	Breed      string `json:"raza"         validate:"omitempty"`
	Age        int    `json:"edad"         validate:"omitempty,gte=0"`
	Sterilized bool   `json:"esterilizado"`
	Sex        string `json:"sexo"         validate:"omitempty,oneof=macho hembra"`
	TutorID    int64  `json:"tutor_id"     validate:"required,gt=0"`
}

type updatePatientRequest struct {
	Name       string `json:"nombre"`
	Species    string `json:"especie"`
	Breed      string `json:"raza"`
	Age        int    `json:"edad"     validate:"omitempty,gte=0"`
	Sterilized bool   `json:"esterilizado"`
	Sex        string `json:"sexo"     validate:"omitempty,oneof=macho hembra"`
	TutorID    int64  `json:"tutor_id" validate:"omitempty,gt=0"`
}

type patientMessageResponse struct {
	Message string          `json:"mensaje"`
	Patient *domain.Patient `json:"paciente"`
}

type patientListResponse struct {
	Patients []domain.Patient `json:"pacientes"`
}

// --- Doctors ---

type doctorRequest struct {
	Name      string `json:"nombre"       validate:"required"`
	LastName  string `json:"apellido"     validate:"required"`
	Specialty string `json:"especialidad" validate:"omitempty"`
	Email     string `json:"email"        validate:"required,email"`
	Phone     string `json:"telefono"     validate:"omitempty"`
}

type updateDoctorRequest struct {
	Name      string `json:"nombre"`
	LastName  string `json:"apellido"`
	Specialty string `json:"especialidad"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"telefono"`
}

type doctorMessageResponse struct {
	Message string         `json:"mensaje"`
	Doctor  *domain.Doctor `json:"doctor"`
}

type doctorListResponse struct {
	Doctors []domain.Doctor `json:"doctores"`
}
