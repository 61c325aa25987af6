package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xshsama/learntrack/internal/client/models"
)

// fakeCaller records calls and answers them from a canned payload map
// keyed by "METHOD path".
type fakeCaller struct {
	calls     []string
	lastBody  any
	responses map[string]any
	err       error
}

func (f *fakeCaller) answer(method, path string, body, out any) error {
	f.calls = append(f.calls, method+" "+path)
	f.lastBody = body
	if f.err != nil {
		return f.err
	}
	if out == nil {
		return nil
	}
	resp, ok := f.responses[method+" "+path]
	if !ok {
		return nil
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (f *fakeCaller) Get(ctx context.Context, path string, out any) error {
	return f.answer("GET", path, nil, out)
}
func (f *fakeCaller) Post(ctx context.Context, path string, body, out any) error {
	return f.answer("POST", path, body, out)
}
func (f *fakeCaller) Put(ctx context.Context, path string, body, out any) error {
	return f.answer("PUT", path, body, out)
}
func (f *fakeCaller) Delete(ctx context.Context, path string) error {
	return f.answer("DELETE", path, nil, nil)
}

type fakeSession struct {
	token string
	user  *models.UserProfile
	err   error
}

func (f *fakeSession) Login(ctx context.Context, token string, user *models.UserProfile) error {
	f.token = token
	f.user = user
	return f.err
}

func (f *fakeSession) UpdateUser(ctx context.Context, patch models.ProfilePatch) (*models.UserProfile, error) {
	if f.user != nil {
		merged := patch.Apply(*f.user)
		f.user = &merged
	}
	return f.user, f.err
}

func TestAuthService_Login(t *testing.T) {
	caller := &fakeCaller{responses: map[string]any{
		"POST /auth/login": map[string]any{
			"token":    "abc123",
			"userInfo": map[string]string{"username": "alice"},
		},
	}}
	sess := &fakeSession{}
	svc := NewAuthService(caller, sess)

	require.NoError(t, svc.Login(context.Background(), "alice", []byte("pw")))

	assert.Equal(t, []string{"POST /auth/login"}, caller.calls)
	assert.Equal(t, "abc123", sess.token)
	assert.Equal(t, "alice", sess.user.Username)
}

func TestAuthService_LoginWithoutTokenFails(t *testing.T) {
	caller := &fakeCaller{responses: map[string]any{
		"POST /auth/login": map[string]any{"userInfo": map[string]string{"username": "alice"}},
	}}
	svc := NewAuthService(caller, &fakeSession{})

	err := svc.Login(context.Background(), "alice", []byte("pw"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no token")
}

func TestAuthService_Register(t *testing.T) {
	caller := &fakeCaller{}
	svc := NewAuthService(caller, &fakeSession{})

	require.NoError(t, svc.Register(context.Background(), "bob", []byte("pw")))
	assert.Equal(t, []string{"POST /auth/register"}, caller.calls)

	req, ok := caller.lastBody.(credentialsRequest)
	require.True(t, ok)
	assert.Equal(t, "bob", req.Username)
}

func TestProfileService_FetchAndUpdate(t *testing.T) {
	caller := &fakeCaller{responses: map[string]any{
		"GET /profile": map[string]string{"username": "alice", "nickname": "al"},
	}}
	svc := NewProfileService(caller)
	ctx := context.Background()

	user, err := svc.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "al", user.Nickname)

	nick := "allie"
	require.NoError(t, svc.Update(ctx, models.ProfilePatch{Nickname: &nick}))
	assert.Contains(t, caller.calls, "PUT /profile")

	sent, ok := caller.lastBody.(models.ProfilePatch)
	require.True(t, ok)
	assert.Equal(t, "allie", *sent.Nickname)
}

func TestSubjectService_CRUD(t *testing.T) {
	caller := &fakeCaller{responses: map[string]any{
		"GET /api/subjects":   []map[string]any{{"id": 1, "title": "Go"}},
		"GET /api/subjects/1": map[string]any{"id": 1, "title": "Go"},
		"POST /api/subjects":  map[string]any{"id": 2, "title": "Math"},
	}}
	svc := NewSubjectService(caller)
	ctx := context.Background()

	subjects, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, "Go", subjects[0].Title)

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	created, err := svc.Create(ctx, "Math", "numbers")
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)

	require.NoError(t, svc.Delete(ctx, 1))
	assert.Contains(t, caller.calls, "DELETE /api/subjects/1")
}

func TestGoalService_ListFiltersAndProgressBounds(t *testing.T) {
	caller := &fakeCaller{}
	svc := NewGoalService(caller)
	ctx := context.Background()

	_, err := svc.List(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"GET /api/goals?subjectId=7"}, caller.calls)

	require.NoError(t, svc.SetProgress(ctx, 3, 80))
	assert.Contains(t, caller.calls, "PUT /api/goals/3/progress")

	require.Error(t, svc.SetProgress(ctx, 3, 120))
	require.Error(t, svc.SetProgress(ctx, 3, -1))
}

func TestTaskService_KindOperations(t *testing.T) {
	caller := &fakeCaller{responses: map[string]any{
		"PUT /api/tasks/5/steps/2/complete": map[string]any{"id": 5, "completionRate": 50},
		"POST /api/tasks/9/checkin":         map[string]any{"currentStreak": 4, "totalCheckins": 20},
	}}
	svc := NewTaskService(caller)
	ctx := context.Background()

	task, err := svc.CompleteStep(ctx, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, 50, task.CompletionRate)

	habit, err := svc.Checkin(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, 4, habit.CurrentStreak)
}

func TestServices_PropagateCallerErrors(t *testing.T) {
	boom := errors.New("boom")
	caller := &fakeCaller{err: boom}
	ctx := context.Background()

	_, err := NewTaskService(caller).List(ctx, 0)
	assert.ErrorIs(t, err, boom)

	_, err = NewReportService(caller).Weekly(ctx)
	assert.ErrorIs(t, err, boom)

	err = NewAuthService(caller, &fakeSession{}).Login(ctx, "alice", []byte("pw"))
	assert.ErrorIs(t, err, boom)
}
