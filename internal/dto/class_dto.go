package dto

// AssignClassRequest attaches a user to a class.
type AssignClassRequest struct {
	UserID  string `json:"userId" validate:"required"`
	ClassID string `json:"classId" validate:"required,min=1"`
}

// ClassProfessor identifies the professor teaching a class.
type ClassProfessor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ClassMember is one student listed on the class details page.
type ClassMember struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// ClassDetailsResponse describes a class roster for its members.
type ClassDetailsResponse struct {
	ClassName string          `json:"className"`
	Professor *ClassProfessor `json:"professor,omitempty"`
	Students  []ClassMember   `json:"students"`
}
