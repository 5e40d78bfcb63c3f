package model

import "time"

// Department enumerates the academic departments a user can belong to.
// The values are stored verbatim in the `users.department` column.
type Department string

const (
	DepartmentCE   Department = "CE"
	DepartmentIT   Department = "IT"
	DepartmentENTC Department = "ENTC"
	DepartmentECE  Department = "ECE"
	DepartmentAIDS Department = "AIDS"
)

// Valid reports whether d is one of the known departments.
func (d Department) Valid() bool {
	switch d {
	case DepartmentCE, DepartmentIT, DepartmentENTC, DepartmentECE, DepartmentAIDS:
		return true
	}
	return false
}

// User represents a row in the `users` table. PasswordHash is never
// serialized; response payloads carry every other field as-is.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – optional display name.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password (excluded from JSON).
//  Department   – academic department (CE/IT/ENTC/ECE/AIDS).
//  Year         – current academic year.
//  PassoutYear  – expected graduation year.
//  Roll         – roll number.
//  Hours        – accumulated activity hours, zero at registration.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64     `json:"id"`
	Name         string     `json:"name,omitempty"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Department   Department `json:"department"`
	Year         int        `json:"year"`
	PassoutYear  int        `json:"passoutYear"`
	Roll         int        `json:"roll"`
	Hours        int        `json:"hours"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
