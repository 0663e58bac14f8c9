package services

import (
	"context"

	"github.com/weerawi/University-Course-Management-System/internal/app/models"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/apperrors"
)

// In-memory store fakes backing the service tests. They mirror the conflict
// semantics the real repositories derive from database constraints.

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*models.User{}, nextID: 1}
}

func (s *fakeUserStore) add(user *models.User) *models.User {
	if user.ID == 0 {
		user.ID = s.nextID
		s.nextID++
	} else if user.ID >= s.nextID {
		s.nextID = user.ID + 1
	}
	s.users[user.ID] = user
	return user
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	s.add(user)
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *fakeUserStore) GetAll(_ context.Context) ([]*models.User, error) {
	var users []*models.User
	for _, u := range s.users {
		users = append(users, u)
	}
	return users, nil
}

func (s *fakeUserStore) GetByRole(_ context.Context, role models.RoleType) ([]*models.User, error) {
	var users []*models.User
	for _, u := range s.users {
		if u.RoleType == role {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *fakeUserStore) GetUnassignedStudentUsers(_ context.Context) ([]*models.User, error) {
	return s.GetByRole(context.Background(), models.RoleStudent)
}

func (s *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) Update(_ context.Context, user *models.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) UpdatePassword(_ context.Context, id int64, hashedPassword string) error {
	user, ok := s.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Password = hashedPassword
	return nil
}

func (s *fakeUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *fakeUserStore) CountByRole(_ context.Context, role models.RoleType) (int64, error) {
	var count int64
	for _, u := range s.users {
		if u.RoleType == role {
			count++
		}
	}
	return count, nil
}

type fakeStudentStore struct {
	students map[int64]*models.Student
	users    *fakeUserStore
	nextID   int64
}

func newFakeStudentStore(users *fakeUserStore) *fakeStudentStore {
	return &fakeStudentStore{students: map[int64]*models.Student{}, users: users, nextID: 1}
}

func (s *fakeStudentStore) add(student *models.Student) *models.Student {
	if student.ID == 0 {
		student.ID = s.nextID
		s.nextID++
	} else if student.ID >= s.nextID {
		s.nextID = student.ID + 1
	}
	s.students[student.ID] = student
	return student
}

func (s *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	for _, existing := range s.students {
		if existing.StudentNumber == student.StudentNumber {
			return apperrors.ErrStudentNumberExists
		}
		if existing.UserID == student.UserID {
			return apperrors.ErrUserHasStudentProfile
		}
	}
	s.add(student)
	return nil
}

func (s *fakeStudentStore) CreateWithUser(ctx context.Context, user *models.User, student *models.Student) error {
	// All-or-nothing like the transactional repository path
	for _, u := range s.users.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	for _, existing := range s.students {
		if existing.StudentNumber == student.StudentNumber {
			return apperrors.ErrStudentNumberExists
		}
	}
	s.users.add(user)
	student.UserID = user.ID
	student.User = user
	s.add(student)
	return nil
}

func (s *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (s *fakeStudentStore) GetByUserID(_ context.Context, userID int64) (*models.Student, error) {
	for _, student := range s.students {
		if student.UserID == userID {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentProfileMissing
}

func (s *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	var students []*models.Student
	for _, student := range s.students {
		students = append(students, student)
	}
	return students, nil
}

func (s *fakeStudentStore) ExistsByStudentNumber(_ context.Context, number string) (bool, error) {
	for _, student := range s.students {
		if student.StudentNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStudentStore) ExistsByUserID(_ context.Context, userID int64) (bool, error) {
	for _, student := range s.students {
		if student.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	if _, ok := s.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	s.students[student.ID] = student
	return nil
}

func (s *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(s.students, id)
	return nil
}

func (s *fakeStudentStore) Count(_ context.Context) (int64, error) {
	return int64(len(s.students)), nil
}

type fakeCourseStore struct {
	courses     map[int64]*models.Course
	enrollments *fakeEnrollmentStore
	results     *fakeResultStore
	nextID      int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: map[int64]*models.Course{}, nextID: 1}
}

func (s *fakeCourseStore) add(course *models.Course) *models.Course {
	if course.ID == 0 {
		course.ID = s.nextID
		s.nextID++
	} else if course.ID >= s.nextID {
		s.nextID = course.ID + 1
	}
	s.courses[course.ID] = course
	return course
}

func (s *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	for _, existing := range s.courses {
		if existing.Code == course.Code {
			return apperrors.ErrCourseCodeExists
		}
	}
	s.add(course)
	return nil
}

func (s *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (s *fakeCourseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	var courses []*models.Course
	for _, course := range s.courses {
		courses = append(courses, course)
	}
	return courses, nil
}

func (s *fakeCourseStore) GetByInstructorID(_ context.Context, instructorID int64) ([]*models.Course, error) {
	var courses []*models.Course
	for _, course := range s.courses {
		if course.InstructorID != nil && *course.InstructorID == instructorID {
			courses = append(courses, course)
		}
	}
	return courses, nil
}

func (s *fakeCourseStore) CodeExists(_ context.Context, code string) (bool, error) {
	for _, course := range s.courses {
		if course.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCourseStore) HasCoursesByInstructor(_ context.Context, instructorID int64) (bool, error) {
	for _, course := range s.courses {
		if course.InstructorID != nil && *course.InstructorID == instructorID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCourseStore) Update(_ context.Context, course *models.Course) error {
	if _, ok := s.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	s.courses[course.ID] = course
	return nil
}

func (s *fakeCourseStore) ClearInstructor(_ context.Context, instructorID int64) error {
	for _, course := range s.courses {
		if course.InstructorID != nil && *course.InstructorID == instructorID {
			course.InstructorID = nil
			course.Instructor = nil
		}
	}
	return nil
}

func (s *fakeCourseStore) HasEnrollments(_ context.Context, courseID int64) (bool, error) {
	if s.enrollments == nil {
		return false, nil
	}
	for _, e := range s.enrollments.pairs {
		if e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCourseStore) HasResults(_ context.Context, courseID int64) (bool, error) {
	if s.results == nil {
		return false, nil
	}
	for _, r := range s.results.results {
		if r.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(s.courses, id)
	return nil
}

func (s *fakeCourseStore) GetStudents(_ context.Context, _ int64) ([]*models.Student, error) {
	return nil, nil
}

func (s *fakeCourseStore) Count(_ context.Context) (int64, error) {
	return int64(len(s.courses)), nil
}

type fakeEnrollmentStore struct {
	pairs   []models.Enrollment
	courses *fakeCourseStore
	results *fakeResultStore
}

func newFakeEnrollmentStore(courses *fakeCourseStore) *fakeEnrollmentStore {
	return &fakeEnrollmentStore{courses: courses}
}

func (s *fakeEnrollmentStore) Enroll(ctx context.Context, studentID, courseID int64) error {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	var enrolled int
	for _, e := range s.pairs {
		if e.StudentID == studentID && e.CourseID == courseID {
			return apperrors.ErrAlreadyEnrolled
		}
		if e.CourseID == courseID {
			enrolled++
		}
	}
	if enrolled >= course.Capacity {
		return apperrors.ErrCourseFull
	}
	s.pairs = append(s.pairs, models.Enrollment{StudentID: studentID, CourseID: courseID})
	return nil
}

func (s *fakeEnrollmentStore) Drop(ctx context.Context, studentID, courseID int64) error {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return err
	}
	if s.results != nil {
		for _, r := range s.results.results {
			if r.StudentID == studentID && r.CourseID == courseID {
				return apperrors.ErrHasRecordedResult
			}
		}
	}
	for i, e := range s.pairs {
		if e.StudentID == studentID && e.CourseID == courseID {
			s.pairs = append(s.pairs[:i], s.pairs[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotEnrolled
}

func (s *fakeEnrollmentStore) IsEnrolled(_ context.Context, studentID, courseID int64) (bool, error) {
	for _, e := range s.pairs {
		if e.StudentID == studentID && e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeEnrollmentStore) GetCoursesByStudent(ctx context.Context, studentID int64) ([]*models.Course, error) {
	var courses []*models.Course
	for _, e := range s.pairs {
		if e.StudentID == studentID {
			course, err := s.courses.GetByID(ctx, e.CourseID)
			if err != nil {
				return nil, err
			}
			courses = append(courses, course)
		}
	}
	return courses, nil
}

type fakeResultStore struct {
	results map[int64]*models.Result
	nextID  int64
}

func newFakeResultStore() *fakeResultStore {
	return &fakeResultStore{results: map[int64]*models.Result{}, nextID: 1}
}

func (s *fakeResultStore) Create(_ context.Context, result *models.Result) error {
	for _, existing := range s.results {
		if existing.StudentID == result.StudentID && existing.CourseID == result.CourseID &&
			existing.Year == result.Year && existing.Semester == result.Semester {
			return apperrors.ErrDuplicateResult
		}
	}
	result.ID = s.nextID
	s.nextID++
	s.results[result.ID] = result
	return nil
}

func (s *fakeResultStore) GetByID(_ context.Context, id int64) (*models.Result, error) {
	result, ok := s.results[id]
	if !ok {
		return nil, apperrors.ErrResultNotFound
	}
	return result, nil
}

func (s *fakeResultStore) GetAll(_ context.Context) ([]*models.Result, error) {
	var results []*models.Result
	for _, r := range s.results {
		results = append(results, r)
	}
	return results, nil
}

func (s *fakeResultStore) GetByStudentID(_ context.Context, studentID int64) ([]*models.Result, error) {
	var results []*models.Result
	for _, r := range s.results {
		if r.StudentID == studentID {
			results = append(results, r)
		}
	}
	return results, nil
}

func (s *fakeResultStore) GetByCourseID(_ context.Context, courseID int64) ([]*models.Result, error) {
	var results []*models.Result
	for _, r := range s.results {
		if r.CourseID == courseID {
			results = append(results, r)
		}
	}
	return results, nil
}

func (s *fakeResultStore) GetByInstructorID(_ context.Context, _ int64) ([]*models.Result, error) {
	return nil, nil
}

func (s *fakeResultStore) ExistsByStudentID(_ context.Context, studentID int64) (bool, error) {
	for _, r := range s.results {
		if r.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeResultStore) Update(_ context.Context, result *models.Result) error {
	if _, ok := s.results[result.ID]; !ok {
		return apperrors.ErrResultNotFound
	}
	for _, existing := range s.results {
		if existing.ID != result.ID && existing.StudentID == result.StudentID &&
			existing.CourseID == result.CourseID && existing.Year == result.Year &&
			existing.Semester == result.Semester {
			return apperrors.ErrDuplicateResult
		}
	}
	s.results[result.ID] = result
	return nil
}

func (s *fakeResultStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.results[id]; !ok {
		return apperrors.ErrResultNotFound
	}
	delete(s.results, id)
	return nil
}

func (s *fakeResultStore) Count(_ context.Context) (int64, error) {
	return int64(len(s.results)), nil
}

// fixture wires the fakes together the way bootstrap wires the real
// repositories.
type fixture struct {
	users       *fakeUserStore
	students    *fakeStudentStore
	courses     *fakeCourseStore
	enrollments *fakeEnrollmentStore
	results     *fakeResultStore
}

func newFixture() *fixture {
	users := newFakeUserStore()
	students := newFakeStudentStore(users)
	courses := newFakeCourseStore()
	results := newFakeResultStore()
	enrollments := newFakeEnrollmentStore(courses)
	enrollments.results = results
	courses.enrollments = enrollments
	courses.results = results
	return &fixture{
		users:       users,
		students:    students,
		courses:     courses,
		enrollments: enrollments,
		results:     results,
	}
}

func (f *fixture) addStudent(email, number string) (*models.User, *models.Student) {
	user := f.users.add(&models.User{
		Email:     email,
		FirstName: "Test",
		LastName:  "Student",
		RoleType:  models.RoleStudent,
		IsActive:  true,
	})
	student := f.students.add(&models.Student{
		UserID:        user.ID,
		StudentNumber: number,
		Department:    "Computer Science",
		YearOfStudy:   2,
		User:          user,
	})
	return user, student
}

func (f *fixture) addCourse(code string, capacity int) *models.Course {
	return f.courses.add(&models.Course{
		Code:     code,
		Title:    "Course " + code,
		Credits:  3,
		Capacity: capacity,
	})
}
