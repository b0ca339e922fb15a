package main

import "time"

type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"` // bcrypt hash, never the plaintext
	Role     string `json:"role"`     // admin, manager, worker
}

type Worker struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	EmployeeID   string `json:"employee_id"`
	Department   string `json:"department"`
	Contact      string `json:"contact"`
	AssignedArea string `json:"assigned_area"`
}

// SafetyViolation rows are written by the external detection service;
// this API only reads them.
type SafetyViolation struct {
	ID             int       `json:"id"`
	CameraLocation string    `json:"camera_location"`
	DetectedGear   string    `json:"detected_gear"`
	MissingGear    string    `json:"missing_gear"`
	Timestamp      time.Time `json:"timestamp"`
}
