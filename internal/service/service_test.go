package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/anamikapanwar73/proctored-exam-system/config"
	"github.com/anamikapanwar73/proctored-exam-system/database"
	"github.com/anamikapanwar73/proctored-exam-system/internal/model"
	"github.com/anamikapanwar73/proctored-exam-system/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	users     repository.UserRepository
	questions repository.QuestionRepository
	results   repository.ResultRepository
	auth      AuthService
	admin     AdminExamService
	student   StudentExamService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.NewDatabase(&config.Config{Database: config.Database{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "service.db"),
	}})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	f := &fixture{
		db:        db,
		users:     repository.NewUserRepository(db),
		questions: repository.NewQuestionRepository(db),
		results:   repository.NewResultRepository(db),
	}
	f.auth = NewAuthService(f.users, bcrypt.MinCost)
	f.admin = NewAdminExamService(f.questions, f.results)
	f.student = NewStudentExamService(f.questions, f.results)
	return f
}

func (f *fixture) addQuestion(t *testing.T, text, correct, topic string, options ...string) uint {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.admin.AddQuestion(ctx, text, options, correct, topic))
	all, err := f.questions.FindForExam(ctx)
	require.NoError(t, err)
	return all[len(all)-1].ID
}

func (f *fixture) countResults(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&model.Result{}).Count(&n).Error)
	return n
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	user, err := f.auth.RegisterStudent(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, user.Role)
	assert.NotEqual(t, "s3cret", user.PasswordHash)

	got, err := f.auth.VerifyLogin(ctx, "alice", "s3cret")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, model.RoleStudent, got.Role)
}

func TestVerifyLoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.auth.RegisterStudent(ctx, "alice", "s3cret")
	require.NoError(t, err)

	wrongPassword, errWrong := f.auth.VerifyLogin(ctx, "alice", "nope")
	unknownUser, errUnknown := f.auth.VerifyLogin(ctx, "mallory", "s3cret")

	assert.Nil(t, wrongPassword)
	assert.Nil(t, unknownUser)
	assert.NoError(t, errWrong)
	assert.NoError(t, errUnknown)
}

func TestRegisterStudentValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, tc := range []struct{ user, pass string }{{"", "x"}, {"x", ""}, {"", ""}} {
		_, err := f.auth.RegisterStudent(ctx, tc.user, tc.pass)
		assert.ErrorIs(t, err, ErrMissingCredentials)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestRegisterStudentDuplicateKeepsOriginal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	original, err := f.auth.RegisterStudent(ctx, "alice", "first")
	require.NoError(t, err)

	_, err = f.auth.RegisterStudent(ctx, "alice", "second")
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.ErrorIs(t, err, ErrConflict)

	got, err := f.auth.VerifyLogin(ctx, "alice", "first")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, original.ID, got.ID)

	got, err = f.auth.VerifyLogin(ctx, "alice", "second")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRegisterStudentUsernameIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.auth.RegisterStudent(ctx, "alice", "pw")
	require.NoError(t, err)
	_, err = f.auth.RegisterStudent(ctx, "Alice", "pw")
	assert.NoError(t, err)
}

func TestEnsureDefaultAdminSeedsOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.auth.EnsureDefaultAdmin(ctx, "admin", "adminpassword")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = f.auth.EnsureDefaultAdmin(ctx, "admin2", "other")
	require.NoError(t, err)
	assert.False(t, created)

	admin, err := f.auth.VerifyLogin(ctx, "admin", "adminpassword")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, model.RoleAdmin, admin.Role)
}

func TestAddQuestionRoundTripsOptions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	options := []string{"o1", "o2", "o3", "o4"}
	require.NoError(t, f.admin.AddQuestion(ctx, "2+2?", options, "o2", "math"))

	all, err := f.admin.ListAllQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, options, all[0].Options)
	assert.Equal(t, "o2", all[0].CorrectOption)
	assert.Equal(t, "math", all[0].Topic)
	assert.Equal(t, "2+2?", all[0].QuestionText)
}

func TestAddQuestionIsPermissive(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.admin.AddQuestion(ctx, "q", []string{"a", "b"}, "not an option", ""))

	all, err := f.admin.ListAllQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "not an option", all[0].CorrectOption)
	assert.Equal(t, model.DefaultTopic, all[0].Topic)
}

func TestListAllQuestionsOrderAndCorruptOptions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	bID := f.addQuestion(t, "b", "x", "zoology", "x")
	aID := f.addQuestion(t, "a", "x", "art", "x")
	cID := f.addQuestion(t, "c", "x", "art", "x")
	require.NoError(t, f.db.Exec("UPDATE questions SET options = ? WHERE id = ?", "not json", cID).Error)

	all, err := f.admin.ListAllQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uint{aID, cID, bID}, []uint{all[0].ID, all[1].ID, all[2].ID})
	assert.Nil(t, all[1].Options)
	assert.Equal(t, "not json", all[1].OptionsRaw)
}

func TestDeleteQuestionIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := f.addQuestion(t, "q", "a", "", "a")

	require.NoError(t, f.admin.DeleteQuestion(ctx, id))
	require.NoError(t, f.admin.DeleteQuestion(ctx, id))
	require.NoError(t, f.admin.DeleteQuestion(ctx, 424242))

	all, err := f.admin.ListAllQuestions(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestListExamQuestionsSkipsCorruptOptions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	good := f.addQuestion(t, "good", "a", "", "a", "b")
	bad := f.addQuestion(t, "bad", "a", "", "a", "b")
	require.NoError(t, f.db.Exec("UPDATE questions SET options = ? WHERE id = ?", "[broken", bad).Error)

	exam, err := f.student.ListExamQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, exam, 1)
	assert.Equal(t, good, exam[0].ID)
	assert.Equal(t, []string{"a", "b"}, exam[0].Options)
}

func TestSubmitExamScoring(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user, err := f.auth.RegisterStudent(ctx, "alice", "pw")
	require.NoError(t, err)

	q1 := f.addQuestion(t, "Q1", "B", "", "A", "B", "C", "D")
	q2 := f.addQuestion(t, "Q2", "C", "", "A", "B", "C", "D")

	score, total, err := f.student.SubmitExam(ctx, user.ID, map[uint]string{q1: "B", q2: "X"})
	require.NoError(t, err)
	assert.Equal(t, 1, score)
	assert.Equal(t, 2, total)

	results, err := f.student.ListStudentResults(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Score)
	assert.Equal(t, 2, results[0].TotalQuestions)
	assert.True(t, results[0].Passed)
}

func TestSubmitExamIsExactMatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	q := f.addQuestion(t, "Q", "Paris", "", "Paris", "Rome")

	for _, answer := range []string{"paris", " Paris", "Paris "} {
		score, total, err := f.student.SubmitExam(ctx, 1, map[uint]string{q: answer})
		require.NoError(t, err)
		assert.Equal(t, 0, score, "answer %q", answer)
		assert.Equal(t, 1, total)
	}
}

func TestSubmitExamExcludesUnknownQuestions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	kept := f.addQuestion(t, "kept", "a", "", "a")
	deleted := f.addQuestion(t, "deleted", "a", "", "a")
	require.NoError(t, f.admin.DeleteQuestion(ctx, deleted))

	score, total, err := f.student.SubmitExam(ctx, 1, map[uint]string{kept: "a", deleted: "a", 9999: "a"})
	require.NoError(t, err)
	assert.Equal(t, 1, score)
	assert.Equal(t, 1, total)
}

func TestSubmitExamEmptyAnswersTouchesNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewStudentExamService(nil, nil)

	score, total, err := svc.SubmitExam(ctx, 1, map[uint]string{})
	require.NoError(t, err)
	assert.Equal(t, 0, score)
	assert.Equal(t, 0, total)

	score, total, err = f.student.SubmitExam(ctx, 1, nil)
	require.NoError(t, err)
	assert.Zero(t, score)
	assert.Zero(t, total)
	assert.Zero(t, f.countResults(t))
}

type failingResultRepo struct {
	repository.ResultRepository
	calls int
}

func (r *failingResultRepo) Create(context.Context, *model.Result) error {
	r.calls++
	return errors.New("disk full")
}

func TestSubmitExamReturnsScoreWhenSaveFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	q := f.addQuestion(t, "Q", "a", "", "a", "b")

	failing := &failingResultRepo{}
	svc := NewStudentExamService(f.questions, failing)

	score, total, err := svc.SubmitExam(ctx, 1, map[uint]string{q: "a"})
	require.NoError(t, err)
	assert.Equal(t, 1, score)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, failing.calls)
}

type failingQuestionRepo struct {
	repository.QuestionRepository
}

func (failingQuestionRepo) FindByIDs(context.Context, []uint) ([]model.Question, error) {
	return nil, errors.New("connection refused")
}

func TestSubmitExamReadFailureIsFatal(t *testing.T) {
	svc := NewStudentExamService(failingQuestionRepo{}, &failingResultRepo{})
	_, _, err := svc.SubmitExam(context.Background(), 1, map[uint]string{1: "a"})
	assert.ErrorIs(t, err, ErrStore)
}

func TestResultsAreNewestFirstAndPerUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice, err := f.auth.RegisterStudent(ctx, "alice", "pw")
	require.NoError(t, err)
	bob, err := f.auth.RegisterStudent(ctx, "bob", "pw")
	require.NoError(t, err)
	q := f.addQuestion(t, "Q", "a", "", "a")

	clock := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	svc := NewStudentExamService(f.questions, f.results).(*studentExamService)
	svc.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	for _, sub := range []struct {
		user   uint
		answer string
	}{{alice.ID, "a"}, {bob.ID, "a"}, {alice.ID, "wrong"}} {
		_, _, err := svc.SubmitExam(ctx, sub.user, map[uint]string{q: sub.answer})
		require.NoError(t, err)
	}

	all, err := f.admin.ListAllResults(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"alice", "bob", "alice"}, []string{all[0].Username, all[1].Username, all[2].Username})
	assert.Equal(t, 0, all[0].Score)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].Timestamp.After(all[i-1].Timestamp))
	}

	mine, err := svc.ListStudentResults(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.True(t, mine[0].Timestamp.After(mine[1].Timestamp))
	for _, r := range mine {
		assert.Equal(t, alice.ID, r.UserID)
	}
}
