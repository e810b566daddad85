package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username or email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user inactive")
	ErrInvalidRole        = errors.New("invalid role")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")

	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")

	ErrStudentNotFound = errors.New("student not found")
	ErrStudentExists   = errors.New("student email or enrollment id already registered")
	ErrCourseNotFound  = errors.New("course not found")
	ErrCourseExists    = errors.New("course code already registered")
	ErrGradeNotFound   = errors.New("grade not found")
	ErrInvalidEvalType = errors.New("invalid evaluation type")
)
