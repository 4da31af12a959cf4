package dto

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate"`
	// Empty means unassigned on create. On update an empty value means
	// "leave unchanged" instead; see UpdateTaskRequest.
	EmployeeID string `json:"employeeId"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *string `json:"dueDate"`
	// Absent or empty leaves the assignment unchanged; this asymmetry with
	// create is deliberate and matches the existing clients.
	EmployeeID *string `json:"employeeId"`
}
