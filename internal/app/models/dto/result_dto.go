package dto

// CreateResultRequest is the payload for result creation and update.
// Scores are pointers so a legitimate 0 survives the required check;
// both bounds are inclusive.
type CreateResultRequest struct {
	StudentID    int64    `json:"studentId" binding:"required" example:"1"`
	CourseID     int64    `json:"courseId" binding:"required" example:"1"`
	MidtermScore *float64 `json:"midtermScore" binding:"required,min=0,max=100" example:"80"`
	FinalScore   *float64 `json:"finalScore" binding:"required,min=0,max=100" example:"90"`
	Year         int      `json:"year" binding:"required,min=1,max=4" example:"3"`
	Semester     string   `json:"semester" binding:"required,oneof=FALL SPRING" example:"FALL"`
}

// UpdateResultRequest overwrites the scores and term of an existing result.
// The bound student and course are immutable.
type UpdateResultRequest struct {
	MidtermScore *float64 `json:"midtermScore" binding:"required,min=0,max=100" example:"80"`
	FinalScore   *float64 `json:"finalScore" binding:"required,min=0,max=100" example:"90"`
	Year         int      `json:"year" binding:"required,min=1,max=4" example:"3"`
	Semester     string   `json:"semester" binding:"required,oneof=FALL SPRING" example:"FALL"`
}

// ResultResponse is the read model for results
type ResultResponse struct {
	ID           int64   `json:"id" example:"1"`
	StudentID    int64   `json:"studentId" example:"1"`
	StudentName  string  `json:"studentName" example:"Jane Smith"`
	CourseID     int64   `json:"courseId" example:"1"`
	CourseCode   string  `json:"courseCode" example:"CS101"`
	CourseTitle  string  `json:"courseTitle" example:"Introduction to Programming"`
	MidtermScore float64 `json:"midtermScore" example:"80"`
	FinalScore   float64 `json:"finalScore" example:"90"`
	TotalScore   float64 `json:"totalScore" example:"86"`
	Grade        string  `json:"grade" example:"A+"`
	Year         int     `json:"year" example:"3"`
	Semester     string  `json:"semester" example:"FALL"`
}
