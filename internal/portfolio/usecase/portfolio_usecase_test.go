package usecase

import (
	"context"
	"testing"
	"time"

	"portfolio-backend/internal/portfolio/domain/model"
	"portfolio-backend/internal/portfolio/domain/repository"
	"portfolio-backend/internal/shared/errors"
	"portfolio-backend/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) FindOne(ctx context.Context, collection string, filter model.Document) (model.Document, error) {
	args := m.Called(ctx, collection, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Document), args.Error(1)
}

func (m *mockStore) FindMany(ctx context.Context, collection string, filter model.Document, sort []repository.SortField, limit int64) ([]model.Document, error) {
	args := m.Called(ctx, collection, filter, sort, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *mockStore) Insert(ctx context.Context, collection string, doc model.Document) (string, error) {
	args := m.Called(ctx, collection, doc)
	return args.String(0), args.Error(1)
}

func (m *mockStore) UpdateByID(ctx context.Context, collection, id string, fields model.Document) (int64, error) {
	args := m.Called(ctx, collection, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) DeleteByID(ctx context.Context, collection, id string) (int64, error) {
	args := m.Called(ctx, collection, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendContactNotification(contact model.ContactCreate, submittedAt time.Time) bool {
	args := m.Called(contact, submittedAt)
	return args.Bool(0)
}

func (m *mockNotifier) SendAutoReply(contact model.ContactCreate) bool {
	args := m.Called(contact)
	return args.Bool(0)
}

func newTestUsecase(t *testing.T) (*PortfolioUsecase, *mockStore, *mockNotifier) {
	t.Helper()
	store := &mockStore{}
	notifier := &mockNotifier{}
	return NewPortfolioUsecase(store, nil, notifier, logger.NewLogger()), store, notifier
}

func strptr(s string) *string { return &s }

func TestGetProfile_NotFound(t *testing.T) {
	uc, store, _ := newTestUsecase(t)
	store.On("FindOne", mock.Anything, ProfilesCollection, model.Document(nil)).
		Return(nil, errors.ErrNotFound)

	_, err := uc.GetProfile(context.Background())
	assert.True(t, errors.IsNotFound(err))
}

func TestUpdateProfile_PatchesOnlyProvidedFields(t *testing.T) {
	uc, store, _ := newTestUsecase(t)
	id := primitive.NewObjectID().Hex()

	store.On("FindOne", mock.Anything, ProfilesCollection, model.Document(nil)).
		Return(model.Document{"_id": id, "name": "Old", "email": "old@x.com"}, nil).Once()

	store.On("UpdateByID", mock.Anything, ProfilesCollection, id, mock.MatchedBy(func(fields model.Document) bool {
		_, hasEmail := fields["email"]
		_, hasUpdated := fields["updated_at"]
		return fields["name"] == "New" && !hasEmail && hasUpdated && len(fields) == 2
	})).Return(int64(1), nil)

	store.On("FindOne", mock.Anything, ProfilesCollection, model.Document{"_id": id}).
		Return(model.Document{"_id": id, "name": "New", "email": "old@x.com"}, nil)

	updated, err := uc.UpdateProfile(context.Background(), model.ProfileUpdate{Name: strptr("New")})
	require.NoError(t, err)
	assert.Equal(t, "New", updated["name"])
	assert.Equal(t, "old@x.com", updated["email"])
}

func TestUpdateProfile_ZeroFieldPatchFails(t *testing.T) {
	uc, store, _ := newTestUsecase(t)
	store.On("FindOne", mock.Anything, ProfilesCollection, model.Document(nil)).
		Return(model.Document{"_id": primitive.NewObjectID().Hex()}, nil)

	_, err := uc.UpdateProfile(context.Background(), model.ProfileUpdate{})
	assert.True(t, errors.IsValidation(err))
	store.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProfile_NoSingletonIs404(t *testing.T) {
	uc, store, _ := newTestUsecase(t)
	store.On("FindOne", mock.Anything, ProfilesCollection, model.Document(nil)).
		Return(nil, errors.ErrNotFound)

	_, err := uc.UpdateProfile(context.Background(), model.ProfileUpdate{Name: strptr("New")})
	assert.True(t, errors.IsNotFound(err))
}

func TestListSkillsGrouped_FirstSeenCategoryOrder(t *testing.T) {
	uc, store, _ := newTestUsecase(t)
	store.On("FindMany", mock.Anything, SkillsCollection, model.Document(nil), []repository.SortField(nil), int64(0)).
		Return([]model.Document{
			{"category": "languages", "name": "TypeScript"},
			{"category": "frontend", "name": "React"},
			{"category": "languages", "name": "Python"},
			{"category": "backend", "name": "Node.js"},
		}, nil)

	groups, err := uc.ListSkillsGrouped(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"languages", "frontend", "backend"}, groups.Categories())
	assert.Equal(t, []string{"TypeScript", "Python"}, groups.Names("languages"))
	assert.Equal(t, []string{"React"}, groups.Names("frontend"))
}

func TestDeleteSkill_MalformedID(t *testing.T) {
	uc, store, _ := newTestUsecase(t)
	store.On("DeleteByID", mock.Anything, SkillsCollection, "not-an-id").
		Return(int64(0), errors.ErrInvalidID)

	err := uc.DeleteSkill(context.Background(), "not-an-id")
	assert.True(t, errors.IsInvalidID(err))
}

func TestDeleteSkill_MissingIs404(t *testing.T) {
	uc, store, _ := newTestUsecase(t)
	id := primitive.NewObjectID().Hex()
	store.On("DeleteByID", mock.Anything, SkillsCollection, id).Return(int64(0), nil)

	err := uc.DeleteSkill(context.Background(), id)
	assert.True(t, errors.IsNotFound(err))
}

func TestListProjects_FilterAndSort(t *testing.T) {
	uc, store, _ := newTestUsecase(t)
	featured := true

	store.On("FindMany", mock.Anything, ProjectsCollection,
		model.Document{"featured": true, "category": "Web"},
		[]repository.SortField{{Key: "created_at", Desc: true}},
		int64(5),
	).Return([]model.Document{{"title": "Apex"}}, nil)

	projects, err := uc.ListProjects(context.Background(), model.ProjectFilter{
		Featured: &featured,
		Category: "Web",
		Limit:    5,
	})
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestListProjects_AllCategoryMeansNoFilter(t *testing.T) {
	uc, store, _ := newTestUsecase(t)

	store.On("FindMany", mock.Anything, ProjectsCollection,
		model.Document{},
		[]repository.SortField{{Key: "created_at", Desc: true}},
		int64(0),
	).Return([]model.Document{}, nil)

	_, err := uc.ListProjects(context.Background(), model.ProjectFilter{Category: "All"})
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestGetProject_ErrorMapping(t *testing.T) {
	uc, store, _ := newTestUsecase(t)

	store.On("FindOne", mock.Anything, ProjectsCollection, model.Document{"_id": "zzz"}).
		Return(nil, errors.ErrInvalidID)
	_, err := uc.GetProject(context.Background(), "zzz")
	assert.True(t, errors.IsInvalidID(err))

	id := primitive.NewObjectID().Hex()
	store.On("FindOne", mock.Anything, ProjectsCollection, model.Document{"_id": id}).
		Return(nil, errors.ErrNotFound)
	_, err = uc.GetProject(context.Background(), id)
	assert.True(t, errors.IsNotFound(err))
}

func TestListEducation_SortWithIDFallback(t *testing.T) {
	uc, store, _ := newTestUsecase(t)

	store.On("FindMany", mock.Anything, EducationCollection, model.Document(nil),
		[]repository.SortField{{Key: "created_at", Desc: true}, {Key: "_id", Desc: true}},
		int64(0),
	).Return([]model.Document{}, nil)

	_, err := uc.ListEducation(context.Background())
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestListExperience_ManualOrderDescending(t *testing.T) {
	uc, store, _ := newTestUsecase(t)

	store.On("FindMany", mock.Anything, ExperienceCollection, model.Document(nil),
		[]repository.SortField{{Key: "order", Desc: true}},
		int64(0),
	).Return([]model.Document{{"order": 3}, {"order": 1}}, nil)

	entries, err := uc.ListExperience(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestCreateSkill_StampsCreatedAt(t *testing.T) {
	uc, store, _ := newTestUsecase(t)
	id := primitive.NewObjectID().Hex()

	store.On("Insert", mock.Anything, SkillsCollection, mock.MatchedBy(func(doc model.Document) bool {
		_, hasCreated := doc["created_at"]
		_, hasUpdated := doc["updated_at"]
		return doc["category"] == "backend" && doc["name"] == "Go" && hasCreated && !hasUpdated
	})).Return(id, nil)
	store.On("FindOne", mock.Anything, SkillsCollection, model.Document{"_id": id}).
		Return(model.Document{"_id": id, "name": "Go"}, nil)

	created, err := uc.CreateSkill(context.Background(), model.SkillCreate{Category: "backend", Name: "Go"})
	require.NoError(t, err)
	assert.Equal(t, id, created["_id"])
}

func TestCreateSkill_ValidatesRequiredFields(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	_, err := uc.CreateSkill(context.Background(), model.SkillCreate{Name: "Go"})
	assert.True(t, errors.IsValidation(err))
}

func TestCreateProject_StampsBothTimestamps(t *testing.T) {
	uc, store, _ := newTestUsecase(t)
	id := primitive.NewObjectID().Hex()

	store.On("Insert", mock.Anything, ProjectsCollection, mock.MatchedBy(func(doc model.Document) bool {
		_, hasCreated := doc["created_at"]
		_, hasUpdated := doc["updated_at"]
		return hasCreated && hasUpdated
	})).Return(id, nil)
	store.On("FindOne", mock.Anything, ProjectsCollection, model.Document{"_id": id}).
		Return(model.Document{"_id": id}, nil)

	_, err := uc.CreateProject(context.Background(), model.ProjectCreate{
		Title:       "Apex",
		Summary:     "s",
		Description: "d",
		Period:      "2024",
		Category:    "Web",
	})
	require.NoError(t, err)
}

func TestCreatePaper_FreeFormButNotEmpty(t *testing.T) {
	uc, store, _ := newTestUsecase(t)
	id := primitive.NewObjectID().Hex()

	_, err := uc.CreatePaper(context.Background(), model.Document{})
	assert.True(t, errors.IsValidation(err))

	store.On("Insert", mock.Anything, PapersCollection, mock.MatchedBy(func(doc model.Document) bool {
		_, hasID := doc["_id"]
		_, hasCreated := doc["created_at"]
		return doc["title"] == "Paper" && !hasID && hasCreated
	})).Return(id, nil)
	store.On("FindOne", mock.Anything, PapersCollection, model.Document{"_id": id}).
		Return(model.Document{"_id": id, "title": "Paper"}, nil)

	created, err := uc.CreatePaper(context.Background(), model.Document{"title": "Paper", "_id": "spoofed"})
	require.NoError(t, err)
	assert.Equal(t, id, created["_id"])
}

func TestSubmitContact_PersistsThenNotifies(t *testing.T) {
	uc, store, notifier := newTestUsecase(t)
	id := primitive.NewObjectID().Hex()
	contact := model.ContactCreate{Name: "A", Email: "a@x.com", Subject: "S", Message: "M"}

	store.On("Insert", mock.Anything, ContactsCollection, mock.MatchedBy(func(doc model.Document) bool {
		_, hasCreated := doc["created_at"]
		return doc["status"] == model.ContactStatusNew && hasCreated
	})).Return(id, nil)
	store.On("FindOne", mock.Anything, ContactsCollection, model.Document{"_id": id}).
		Return(model.Document{"_id": id, "status": "new", "name": "A"}, nil)

	notifier.On("SendContactNotification", contact, mock.Anything).Return(true)
	notifier.On("SendAutoReply", contact).Return(true)

	persisted, err := uc.SubmitContact(context.Background(), contact)
	require.NoError(t, err)
	assert.Equal(t, "new", persisted["status"])
	notifier.AssertExpectations(t)
}

func TestSubmitContact_MailFailureDoesNotFailRequest(t *testing.T) {
	uc, store, notifier := newTestUsecase(t)
	id := primitive.NewObjectID().Hex()
	contact := model.ContactCreate{Name: "A", Email: "a@x.com", Subject: "S", Message: "M"}

	store.On("Insert", mock.Anything, ContactsCollection, mock.Anything).Return(id, nil)
	store.On("FindOne", mock.Anything, ContactsCollection, model.Document{"_id": id}).
		Return(model.Document{"_id": id, "status": "new"}, nil)

	notifier.On("SendContactNotification", contact, mock.Anything).Return(false)
	notifier.On("SendAutoReply", contact).Return(false)

	persisted, err := uc.SubmitContact(context.Background(), contact)
	require.NoError(t, err)
	assert.Equal(t, "new", persisted["status"])
}

func TestSubmitContact_NoNotificationWithoutDurableWrite(t *testing.T) {
	uc, store, notifier := newTestUsecase(t)
	contact := model.ContactCreate{Name: "A", Email: "a@x.com", Subject: "S", Message: "M"}

	store.On("Insert", mock.Anything, ContactsCollection, mock.Anything).
		Return("", assert.AnError)

	_, err := uc.SubmitContact(context.Background(), contact)
	require.Error(t, err)
	notifier.AssertNotCalled(t, "SendContactNotification", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "SendAutoReply", mock.Anything)
}
