package domain

type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleDoctor    UserRole = "doctor"
	UserRoleRegistrar UserRole = "registrar"
)
