package httptransport

import "time"

type CreateRequestRequest struct {
	EmployeeID      string     `json:"employee_id"`
	EmployeeName    string     `json:"employee_name"`
	EmployeeContact string     `json:"employee_contact,omitempty"`
	ManagerID       string     `json:"manager_id"`
	ManagerName     string     `json:"manager_name"`
	Kind            string     `json:"kind"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty"`
}

type SubmitProofRequest struct {
	MediaKind string `json:"media_kind"`
	Reference string `json:"reference"`
}

type RespondRequest struct {
	Approved bool   `json:"approved"`
	Comment  string `json:"comment,omitempty"`
}

type SubmittedProofDTO struct {
	MediaKind   string    `json:"media_kind"`
	Reference   string    `json:"reference"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type ManagerResponseDTO struct {
	Decision    string    `json:"decision"`
	Comment     string    `json:"comment,omitempty"`
	RespondedAt time.Time `json:"responded_at"`
}

type VerificationRequestDTO struct {
	RequestID       string              `json:"request_id"`
	EmployeeID      string              `json:"employee_id"`
	EmployeeName    string              `json:"employee_name"`
	EmployeeContact string              `json:"employee_contact,omitempty"`
	ManagerID       string              `json:"manager_id"`
	ManagerName     string              `json:"manager_name"`
	Kind            string              `json:"kind"`
	Title           string              `json:"title"`
	Description     string              `json:"description,omitempty"`
	RequestedAt     time.Time           `json:"requested_at"`
	Deadline        *time.Time          `json:"deadline,omitempty"`
	Status          string              `json:"status"`
	Proof           *SubmittedProofDTO  `json:"proof,omitempty"`
	Response        *ManagerResponseDTO `json:"response,omitempty"`
}

type ListRequestsResponse struct {
	Requests []VerificationRequestDTO `json:"requests"`
}

type ExpireOverdueResponse struct {
	Expired int `json:"expired"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
