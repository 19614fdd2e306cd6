package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverly/intake/internal/apperr"
	"github.com/coverly/intake/internal/dto"
	"github.com/coverly/intake/internal/model"
)

func createRequest(email string) dto.ApplicationRequest {
	return dto.ApplicationRequest{
		Name:    "Jane Doe",
		Email:   email,
		Status:  "Submitted",
		Answers: validAnswers(),
	}
}

func TestUserCreateAlwaysStartsSubmitted(t *testing.T) {
	env := setupEnv(t)

	req := createRequest("jane@example.com")
	req.Status = "Approved"
	detail, err := env.apps.CreateApplication(env.user, req)
	require.NoError(t, err)

	assert.Equal(t, "Submitted", detail.Status)
	assert.Equal(t, env.user.ID, detail.UserID)
	if assert.NotNil(t, detail.AssignedUserID) {
		assert.Equal(t, env.user.ID, *detail.AssignedUserID)
	}
}

func TestAdminCreateKeepsRequestedStatusAndAssignee(t *testing.T) {
	env := setupEnv(t)

	req := createRequest("jane@example.com")
	req.Status = "Approved"
	req.AssignedUserID = &env.reviewer.ID

	detail, err := env.apps.CreateApplication(env.admin, req)
	require.NoError(t, err)

	assert.Equal(t, "Approved", detail.Status)
	if assert.NotNil(t, detail.AssignedUserID) {
		assert.Equal(t, env.reviewer.ID, *detail.AssignedUserID)
	}
}

func TestCreateRejectsInvalidAnswers(t *testing.T) {
	env := setupEnv(t)

	req := createRequest("jane@example.com")
	req.Answers = map[string]string{"age": "abc", "isSmoker": "Maybe"}

	_, err := env.apps.CreateApplication(env.user, req)
	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please enter a valid number.", vErr.Fields["answers.age"])
	assert.Equal(t, "Please select a valid option.", vErr.Fields["answers.isSmoker"])

	// Nothing persisted on validation failure.
	var count int64
	env.db.Model(&model.Application{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	env := setupEnv(t)

	_, err := env.apps.CreateApplication(env.user, createRequest("jane@example.com"))
	require.NoError(t, err)

	_, err = env.apps.CreateApplication(env.user, createRequest("jane@example.com"))
	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "This email has already been used.", vErr.Fields["email"])
}

func TestUserUpdateForcesSubmitted(t *testing.T) {
	env := setupEnv(t)

	detail, err := env.apps.CreateApplication(env.user, createRequest("jane@example.com"))
	require.NoError(t, err)

	// Put the application into Needs Update so the owner may edit it.
	adminReq := createRequest("jane@example.com")
	adminReq.Status = "Needs Update"
	adminReq.AssignedUserID = &env.user.ID
	_, err = env.apps.UpdateApplication(env.admin, detail.ID, adminReq)
	require.NoError(t, err)

	userReq := createRequest("jane@example.com")
	userReq.Status = "Approved"
	updated, err := env.apps.UpdateApplication(env.user, detail.ID, userReq)
	require.NoError(t, err)
	assert.Equal(t, "Submitted", updated.Status)
}

func TestReviewerUpdateForcesReviewed(t *testing.T) {
	env := setupEnv(t)

	detail, err := env.apps.CreateApplication(env.user, createRequest("jane@example.com"))
	require.NoError(t, err)

	adminReq := createRequest("jane@example.com")
	adminReq.Status = "Under Review"
	_, err = env.apps.UpdateApplication(env.admin, detail.ID, adminReq)
	require.NoError(t, err)

	reviewerReq := createRequest("jane@example.com")
	reviewerReq.Status = "Approved"
	updated, err := env.apps.UpdateApplication(env.reviewer, detail.ID, reviewerReq)
	require.NoError(t, err)
	assert.Equal(t, "Reviewed", updated.Status)
}

func TestUpdateDeniedOutsideAllowedStates(t *testing.T) {
	env := setupEnv(t)

	detail, err := env.apps.CreateApplication(env.user, createRequest("jane@example.com"))
	require.NoError(t, err)

	// Owner cannot edit while still Submitted.
	_, err = env.apps.UpdateApplication(env.user, detail.ID, createRequest("jane@example.com"))
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	// Reviewer cannot edit before the application is Under Review.
	_, err = env.apps.UpdateApplication(env.reviewer, detail.ID, createRequest("jane@example.com"))
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestSaveAnswersUpsertsInsteadOfDuplicating(t *testing.T) {
	env := setupEnv(t)

	detail, err := env.apps.CreateApplication(env.user, createRequest("jane@example.com"))
	require.NoError(t, err)

	adminReq := createRequest("jane@example.com")
	adminReq.Answers = map[string]string{"age": "31", "isSmoker": "Yes"}
	updated, err := env.apps.UpdateApplication(env.admin, detail.ID, adminReq)
	require.NoError(t, err)

	assert.Equal(t, "31", updated.Answers["age"])
	assert.Equal(t, "Yes", updated.Answers["isSmoker"])

	var count int64
	env.db.Model(&model.ApplicationAnswer{}).Where("application_id = ?", detail.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestStaleAnswersSurviveQuestionDeletion(t *testing.T) {
	env := setupEnv(t)

	detail, err := env.apps.CreateApplication(env.user, createRequest("jane@example.com"))
	require.NoError(t, err)

	var question model.Question
	require.NoError(t, env.db.Where("key = ?", "age").First(&question).Error)
	require.NoError(t, env.questions.DeleteQuestion(question.ID))

	// The stored row is untouched.
	var count int64
	env.db.Model(&model.ApplicationAnswer{}).
		Where("application_id = ? AND question_id = ?", detail.ID, question.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)

	// The deleted question no longer renders.
	fetched, err := env.apps.GetApplication(env.user, detail.ID)
	require.NoError(t, err)
	for _, q := range fetched.Questions {
		assert.NotEqual(t, "age", q.Key)
	}
}

func TestListScopedByRole(t *testing.T) {
	env := setupEnv(t)

	mine, err := env.apps.CreateApplication(env.user, createRequest("jane@example.com"))
	require.NoError(t, err)

	otherReq := createRequest("other@example.com")
	otherReq.Status = "Under Review"
	other, err := env.apps.CreateApplication(env.admin, otherReq)
	require.NoError(t, err)

	adminList, err := env.apps.ListApplications(env.admin)
	require.NoError(t, err)
	assert.Len(t, adminList, 2)

	reviewerList, err := env.apps.ListApplications(env.reviewer)
	require.NoError(t, err)
	require.Len(t, reviewerList, 1)
	assert.Equal(t, other.ID, reviewerList[0].ID)

	userList, err := env.apps.ListApplications(env.user)
	require.NoError(t, err)
	require.Len(t, userList, 1)
	assert.Equal(t, mine.ID, userList[0].ID)
}

func TestViewGatedByPolicy(t *testing.T) {
	env := setupEnv(t)

	detail, err := env.apps.CreateApplication(env.user, createRequest("jane@example.com"))
	require.NoError(t, err)

	// Reviewer cannot view a Submitted application.
	_, err = env.apps.GetApplication(env.reviewer, detail.ID)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	// Owner and admin can.
	_, err = env.apps.GetApplication(env.user, detail.ID)
	assert.NoError(t, err)
	_, err = env.apps.GetApplication(env.admin, detail.ID)
	assert.NoError(t, err)
}

func TestDeleteCascadesToAnswersAndComments(t *testing.T) {
	env := setupEnv(t)

	detail, err := env.apps.CreateApplication(env.user, createRequest("jane@example.com"))
	require.NoError(t, err)

	_, err = env.comments.AddComment(env.reviewer, detail.ID, dto.CommentRequest{Body: "checking"})
	require.NoError(t, err)

	// A stranger cannot delete.
	otherUser := &model.User{ID: 999, Role: model.RoleUser}
	assert.ErrorIs(t, env.apps.DeleteApplication(otherUser, detail.ID), apperr.ErrUnauthorized)

	require.NoError(t, env.apps.DeleteApplication(env.user, detail.ID))

	var apps, answers, comments int64
	env.db.Model(&model.Application{}).Count(&apps)
	env.db.Model(&model.ApplicationAnswer{}).Count(&answers)
	env.db.Model(&model.Comment{}).Count(&comments)
	assert.Zero(t, apps)
	assert.Zero(t, answers)
	assert.Zero(t, comments)
}
