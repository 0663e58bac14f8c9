package services

import (
	"github.com/weerawi/University-Course-Management-System/internal/app/models"
	"github.com/weerawi/University-Course-Management-System/internal/app/models/dto"
)

func toUserResponse(user *models.User, hasStudentProfile bool) *dto.UserResponse {
	return &dto.UserResponse{
		ID:                user.ID,
		Email:             user.Email,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		Role:              string(user.RoleType),
		Enabled:           user.IsActive,
		HasStudentProfile: hasStudentProfile,
	}
}

func toStudentResponse(student *models.Student) *dto.StudentResponse {
	resp := &dto.StudentResponse{
		ID:              student.ID,
		StudentNumber:   student.StudentNumber,
		Department:      student.Department,
		Year:            student.YearOfStudy,
		UserID:          student.UserID,
		EnrolledCourses: student.EnrolledCourses,
	}
	if student.User != nil {
		resp.FirstName = student.User.FirstName
		resp.LastName = student.User.LastName
		resp.Email = student.User.Email
	}
	return resp
}

func toCourseResponse(course *models.Course) *dto.CourseResponse {
	resp := &dto.CourseResponse{
		ID:               course.ID,
		Code:             course.Code,
		Title:            course.Title,
		Description:      course.Description,
		Credits:          course.Credits,
		Capacity:         course.Capacity,
		EnrolledStudents: course.EnrolledCount,
		InstructorID:     course.InstructorID,
	}
	if course.Instructor != nil {
		resp.InstructorName = course.Instructor.FullName()
	}
	return resp
}

func toCourseResponses(courses []*models.Course) []*dto.CourseResponse {
	responses := make([]*dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, toCourseResponse(course))
	}
	return responses
}

func toStudentResponses(students []*models.Student) []*dto.StudentResponse {
	responses := make([]*dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, toStudentResponse(student))
	}
	return responses
}

func toResultResponse(result *models.Result) *dto.ResultResponse {
	resp := &dto.ResultResponse{
		ID:           result.ID,
		StudentID:    result.StudentID,
		CourseID:     result.CourseID,
		MidtermScore: result.MidtermScore,
		FinalScore:   result.FinalScore,
		TotalScore:   result.TotalScore,
		Grade:        result.Grade,
		Year:         result.Year,
		Semester:     string(result.Semester),
	}
	if result.Student != nil && result.Student.User != nil {
		resp.StudentName = result.Student.User.FullName()
	}
	if result.Course != nil {
		resp.CourseCode = result.Course.Code
		resp.CourseTitle = result.Course.Title
	}
	return resp
}

func toResultResponses(results []*models.Result) []*dto.ResultResponse {
	responses := make([]*dto.ResultResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, toResultResponse(result))
	}
	return responses
}
