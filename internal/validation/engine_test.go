package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverly/intake/internal/apperr"
	"github.com/coverly/intake/internal/model"
)

type fakeLookup struct {
	takenEmails map[string]uint
	userIDs     map[uint]bool
}

func (f fakeLookup) EmailTaken(email string, excludeID uint) (bool, error) {
	id, ok := f.takenEmails[email]
	if !ok {
		return false, nil
	}
	return id != excludeID, nil
}

func (f fakeLookup) UserExists(id uint) (bool, error) {
	return f.userIDs[id], nil
}

func emptyLookup() fakeLookup {
	return fakeLookup{takenEmails: map[string]uint{}, userIDs: map[uint]bool{}}
}

func registry() []model.Question {
	return []model.Question{
		{ID: 1, Key: "age", Label: "Age", Type: model.QuestionNumber, IsRequired: true},
		{ID: 2, Key: "insuranceType", Label: "Type", Type: model.QuestionSelect, Options: model.StringList{"Health", "Life"}, IsRequired: true},
		{ID: 3, Key: "notes", Label: "Notes", Type: model.QuestionTextarea, IsRequired: false},
	}
}

func validInput() ApplicationInput {
	return ApplicationInput{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Status: "Submitted",
		Answers: map[string]string{
			"age":           "34",
			"insuranceType": "Health",
		},
	}
}

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
	return vErr.Fields
}

func TestValidateApplicationAccepts(t *testing.T) {
	engine := NewEngine()
	normalized, err := engine.ValidateApplication(registry(), validInput(), 0, emptyLookup())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"age": "34", "insuranceType": "Health"}, normalized)
}

func TestNonNumericAnswerFailsAtAnswersPath(t *testing.T) {
	engine := NewEngine()
	in := validInput()
	in.Answers["age"] = "abc"

	_, err := engine.ValidateApplication(registry(), in, 0, emptyLookup())
	assert.Equal(t, "Please enter a valid number.", fields(t, err)["answers.age"])
}

func TestRequiredAnswerMissing(t *testing.T) {
	engine := NewEngine()
	in := validInput()
	delete(in.Answers, "age")

	_, err := engine.ValidateApplication(registry(), in, 0, emptyLookup())
	assert.Equal(t, "This field is required.", fields(t, err)["answers.age"])
}

func TestSelectAnswerMustBeAnOption(t *testing.T) {
	engine := NewEngine()
	in := validInput()
	in.Answers["insuranceType"] = "Pet"

	_, err := engine.ValidateApplication(registry(), in, 0, emptyLookup())
	assert.Equal(t, "Please select a valid option.", fields(t, err)["answers.insuranceType"])
}

func TestValidationIsTotalNotFailFast(t *testing.T) {
	engine := NewEngine()
	in := ApplicationInput{
		Name:   "",
		Email:  "not-an-email",
		Status: "Bogus",
		Answers: map[string]string{
			"age":           "abc",
			"insuranceType": "Pet",
		},
	}

	_, err := engine.ValidateApplication(registry(), in, 0, emptyLookup())
	got := fields(t, err)
	assert.Len(t, got, 5)
	assert.Contains(t, got, "name")
	assert.Contains(t, got, "email")
	assert.Contains(t, got, "status")
	assert.Contains(t, got, "answers.age")
	assert.Contains(t, got, "answers.insuranceType")
}

func TestEmailUniquenessExcludesSelf(t *testing.T) {
	engine := NewEngine()
	lookup := emptyLookup()
	lookup.takenEmails["jane@example.com"] = 42

	_, err := engine.ValidateApplication(registry(), validInput(), 0, lookup)
	assert.Equal(t, "This email has already been used.", fields(t, err)["email"])

	// The same email passes when it belongs to the record being updated.
	_, err = engine.ValidateApplication(registry(), validInput(), 42, lookup)
	assert.NoError(t, err)
}

func TestUnknownAnswerKeysAreDropped(t *testing.T) {
	engine := NewEngine()
	in := validInput()
	in.Answers["removedQuestion"] = "whatever"

	normalized, err := engine.ValidateApplication(registry(), in, 0, emptyLookup())
	require.NoError(t, err)
	assert.NotContains(t, normalized, "removedQuestion")
}

func TestOptionalEmptyAnswerSkipsTypeRule(t *testing.T) {
	engine := NewEngine()
	in := validInput()
	in.Answers["notes"] = ""

	normalized, err := engine.ValidateApplication(registry(), in, 0, emptyLookup())
	require.NoError(t, err)
	assert.Equal(t, "", normalized["notes"])
}

func TestAssignedUserMustExist(t *testing.T) {
	engine := NewEngine()
	missing := uint(99)
	in := validInput()
	in.AssignedUserID = &missing

	_, err := engine.ValidateApplication(registry(), in, 0, emptyLookup())
	assert.Equal(t, "The selected user is invalid.", fields(t, err)["assigned_user_id"])
}

func TestNormalizeOptions(t *testing.T) {
	opts := NormalizeOptions(model.QuestionSelect, " Health , Life ,, Vehicle ")
	assert.Equal(t, model.StringList{"Health", "Life", "Vehicle"}, opts)

	assert.Nil(t, NormalizeOptions(model.QuestionText, "a,b"))
	assert.Nil(t, NormalizeOptions(model.QuestionNumber, "a,b"))
	assert.Nil(t, NormalizeOptions(model.QuestionSelect, " , "))
}
