package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"portfolio-backend/internal/portfolio/domain/model"
	"portfolio-backend/internal/portfolio/domain/repository"
	"portfolio-backend/internal/shared/errors"
	"portfolio-backend/internal/shared/logger"
)

// Collection names of the portfolio content store.
const (
	ProfilesCollection   = "profiles"
	SkillsCollection     = "skills"
	ProjectsCollection   = "projects"
	ExperienceCollection = "experience"
	EducationCollection  = "education"
	PapersCollection     = "papers"
	ContactsCollection   = "contacts"
)

// PortfolioUsecaseInterface exposes the content operations of the portfolio
// API: singleton profile, skills, projects, experience, education, papers and
// contact messages.
type PortfolioUsecaseInterface interface {
	GetProfile(ctx context.Context) (model.Document, error)
	UpdateProfile(ctx context.Context, update model.ProfileUpdate) (model.Document, error)

	ListSkillsGrouped(ctx context.Context) (*model.SkillGroups, error)
	CreateSkill(ctx context.Context, skill model.SkillCreate) (model.Document, error)
	DeleteSkill(ctx context.Context, id string) error

	ListProjects(ctx context.Context, filter model.ProjectFilter) ([]model.Document, error)
	GetProject(ctx context.Context, id string) (model.Document, error)
	CreateProject(ctx context.Context, project model.ProjectCreate) (model.Document, error)

	ListExperience(ctx context.Context) ([]model.Document, error)
	CreateExperience(ctx context.Context, exp model.ExperienceCreate) (model.Document, error)

	ListEducation(ctx context.Context) ([]model.Document, error)
	CreateEducation(ctx context.Context, edu model.EducationCreate) (model.Document, error)

	ListPapers(ctx context.Context) ([]model.Document, error)
	CreatePaper(ctx context.Context, paper model.Document) (model.Document, error)

	SubmitContact(ctx context.Context, contact model.ContactCreate) (model.Document, error)
	ListContactMessages(ctx context.Context) ([]model.Document, error)
}

// PortfolioUsecase implements the content operations over the document store
// gateway. The list cache is optional; a nil cache disables read-through
// caching without changing behavior.
type PortfolioUsecase struct {
	store    repository.DocumentStore
	cache    repository.ListCache
	notifier NotificationServiceInterface
	log      logger.Logger
}

// NewPortfolioUsecase creates the content usecase.
func NewPortfolioUsecase(store repository.DocumentStore, cache repository.ListCache, notifier NotificationServiceInterface, log logger.Logger) *PortfolioUsecase {
	return &PortfolioUsecase{
		store:    store,
		cache:    cache,
		notifier: notifier,
		log:      log.WithComponent("portfolio"),
	}
}

var newestFirst = []repository.SortField{{Key: "created_at", Desc: true}}

// GetProfile returns the singleton profile document.
func (u *PortfolioUsecase) GetProfile(ctx context.Context) (model.Document, error) {
	profile, err := u.store.FindOne(ctx, ProfilesCollection, nil)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewNotFoundError("Profile")
		}
		return nil, errors.WrapError(err, "failed to load profile")
	}
	return profile, nil
}

// UpdateProfile patches only the provided fields onto the singleton profile
// and always refreshes updated_at.
func (u *PortfolioUsecase) UpdateProfile(ctx context.Context, update model.ProfileUpdate) (model.Document, error) {
	existing, err := u.store.FindOne(ctx, ProfilesCollection, nil)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewNotFoundError("Profile")
		}
		return nil, errors.WrapError(err, "failed to load profile")
	}

	fields := update.Fields()
	if len(fields) == 0 {
		return nil, errors.NewUpdateFailedError()
	}
	fields["updated_at"] = time.Now().UTC()

	id, _ := existing["_id"].(string)
	modified, err := u.store.UpdateByID(ctx, ProfilesCollection, id, fields)
	if err != nil {
		return nil, errors.WrapError(err, "failed to update profile")
	}
	if modified == 0 {
		return nil, errors.NewUpdateFailedError()
	}

	updated, err := u.store.FindOne(ctx, ProfilesCollection, model.Document{"_id": id})
	if err != nil {
		return nil, errors.WrapError(err, "failed to reload profile")
	}
	return updated, nil
}

// ListSkillsGrouped returns skill names grouped by category. Category order
// follows first appearance in the listing, names keep listing order.
func (u *PortfolioUsecase) ListSkillsGrouped(ctx context.Context) (*model.SkillGroups, error) {
	skills, err := u.listCached(ctx, SkillsCollection, "list", func() ([]model.Document, error) {
		return u.store.FindMany(ctx, SkillsCollection, nil, nil, 0)
	})
	if err != nil {
		return nil, errors.WrapError(err, "failed to list skills")
	}

	groups := model.NewSkillGroups()
	for _, skill := range skills {
		category, _ := skill["category"].(string)
		name, _ := skill["name"].(string)
		if category == "" || name == "" {
			continue
		}
		groups.Add(category, name)
	}
	return groups, nil
}

// CreateSkill inserts a skill, stamping created_at.
func (u *PortfolioUsecase) CreateSkill(ctx context.Context, skill model.SkillCreate) (model.Document, error) {
	if err := skill.Validate(); err != nil {
		return nil, err
	}
	return u.insertAndReload(ctx, SkillsCollection, skill.Document(), false)
}

// DeleteSkill removes a skill by identifier.
func (u *PortfolioUsecase) DeleteSkill(ctx context.Context, id string) error {
	deleted, err := u.store.DeleteByID(ctx, SkillsCollection, id)
	if err != nil {
		if errors.IsInvalidID(err) {
			return errors.NewInvalidIDError("skill")
		}
		return errors.WrapError(err, "failed to delete skill")
	}
	if deleted == 0 {
		return errors.NewNotFoundError("Skill")
	}
	u.invalidate(ctx, SkillsCollection)
	return nil
}

// ListProjects returns projects newest first, optionally filtered by the
// featured flag and category. A category of "All" means no category filter.
func (u *PortfolioUsecase) ListProjects(ctx context.Context, filter model.ProjectFilter) ([]model.Document, error) {
	query := model.Document{}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}
	if filter.Category != "" && filter.Category != "All" {
		query["category"] = filter.Category
	}

	signature := fmt.Sprintf("featured=%v&category=%s&limit=%d", filter.Featured != nil && *filter.Featured, filter.Category, filter.Limit)
	if filter.Featured == nil {
		signature = fmt.Sprintf("featured=&category=%s&limit=%d", filter.Category, filter.Limit)
	}

	projects, err := u.listCached(ctx, ProjectsCollection, signature, func() ([]model.Document, error) {
		return u.store.FindMany(ctx, ProjectsCollection, query, newestFirst, filter.Limit)
	})
	if err != nil {
		return nil, errors.WrapError(err, "failed to list projects")
	}
	return projects, nil
}

// GetProject returns a single project by identifier.
func (u *PortfolioUsecase) GetProject(ctx context.Context, id string) (model.Document, error) {
	project, err := u.store.FindOne(ctx, ProjectsCollection, model.Document{"_id": id})
	if err != nil {
		switch {
		case errors.IsInvalidID(err):
			return nil, errors.NewInvalidIDError("project")
		case errors.IsNotFound(err):
			return nil, errors.NewNotFoundError("Project")
		}
		return nil, errors.WrapError(err, "failed to load project")
	}
	return project, nil
}

// CreateProject inserts a project, stamping created_at and updated_at.
func (u *PortfolioUsecase) CreateProject(ctx context.Context, project model.ProjectCreate) (model.Document, error) {
	if err := project.Validate(); err != nil {
		return nil, err
	}
	return u.insertAndReload(ctx, ProjectsCollection, project.Document(), true)
}

// ListExperience returns experience entries by manual order, highest first.
func (u *PortfolioUsecase) ListExperience(ctx context.Context) ([]model.Document, error) {
	entries, err := u.listCached(ctx, ExperienceCollection, "list", func() ([]model.Document, error) {
		return u.store.FindMany(ctx, ExperienceCollection, nil, []repository.SortField{{Key: "order", Desc: true}}, 0)
	})
	if err != nil {
		return nil, errors.WrapError(err, "failed to list experience")
	}
	return entries, nil
}

// CreateExperience inserts an experience entry, stamping created_at.
func (u *PortfolioUsecase) CreateExperience(ctx context.Context, exp model.ExperienceCreate) (model.Document, error) {
	if err := exp.Validate(); err != nil {
		return nil, err
	}
	return u.insertAndReload(ctx, ExperienceCollection, exp.Document(), false)
}

// ListEducation returns education entries newest first. Documents without a
// created_at fall back to identifier order so legacy data still lists
// deterministically.
func (u *PortfolioUsecase) ListEducation(ctx context.Context) ([]model.Document, error) {
	sort := []repository.SortField{
		{Key: "created_at", Desc: true},
		{Key: "_id", Desc: true},
	}
	entries, err := u.listCached(ctx, EducationCollection, "list", func() ([]model.Document, error) {
		return u.store.FindMany(ctx, EducationCollection, nil, sort, 0)
	})
	if err != nil {
		return nil, errors.WrapError(err, "failed to list education")
	}
	return entries, nil
}

// CreateEducation inserts an education entry, stamping created_at.
func (u *PortfolioUsecase) CreateEducation(ctx context.Context, edu model.EducationCreate) (model.Document, error) {
	if err := edu.Validate(); err != nil {
		return nil, err
	}
	return u.insertAndReload(ctx, EducationCollection, edu.Document(), false)
}

// ListPapers returns research papers newest first.
func (u *PortfolioUsecase) ListPapers(ctx context.Context) ([]model.Document, error) {
	papers, err := u.listCached(ctx, PapersCollection, "list", func() ([]model.Document, error) {
		return u.store.FindMany(ctx, PapersCollection, nil, newestFirst, 0)
	})
	if err != nil {
		return nil, errors.WrapError(err, "failed to list papers")
	}
	return papers, nil
}

// CreatePaper inserts a research paper. Papers are free-form documents; only
// an empty payload is rejected.
func (u *PortfolioUsecase) CreatePaper(ctx context.Context, paper model.Document) (model.Document, error) {
	if len(paper) == 0 {
		return nil, errors.NewValidationError("paper payload is required")
	}
	doc := model.Document{}
	for k, v := range paper {
		if k == "_id" || k == "created_at" {
			continue
		}
		doc[k] = v
	}
	return u.insertAndReload(ctx, PapersCollection, doc, false)
}

// SubmitContact persists a contact message with status "new", then attempts
// both email notifications. Notification outcomes are logged only; the
// persisted record is returned regardless.
func (u *PortfolioUsecase) SubmitContact(ctx context.Context, contact model.ContactCreate) (model.Document, error) {
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := contact.Document()
	doc["status"] = model.ContactStatusNew
	doc["created_at"] = now

	id, err := u.store.Insert(ctx, ContactsCollection, doc)
	if err != nil {
		return nil, errors.WrapError(err, "failed to save contact message")
	}
	u.invalidate(ctx, ContactsCollection)

	persisted, err := u.store.FindOne(ctx, ContactsCollection, model.Document{"_id": id})
	if err != nil {
		return nil, errors.WrapError(err, "failed to reload contact message")
	}

	notified := u.notifier.SendContactNotification(contact, now)
	replied := u.notifier.SendAutoReply(contact)
	u.log.Infof("email notifications - notification: %v, auto-reply: %v", notified, replied)

	return persisted, nil
}

// ListContactMessages returns contact messages newest first. Not cached:
// the reader is the operator and expects fresh data.
func (u *PortfolioUsecase) ListContactMessages(ctx context.Context) ([]model.Document, error) {
	messages, err := u.store.FindMany(ctx, ContactsCollection, nil, newestFirst, 0)
	if err != nil {
		return nil, errors.WrapError(err, "failed to list contact messages")
	}
	return messages, nil
}

// insertAndReload stamps timestamps, inserts the document, invalidates the
// collection's cached listings and returns the persisted record.
func (u *PortfolioUsecase) insertAndReload(ctx context.Context, collection string, doc model.Document, mutable bool) (model.Document, error) {
	now := time.Now().UTC()
	doc["created_at"] = now
	if mutable {
		doc["updated_at"] = now
	}

	id, err := u.store.Insert(ctx, collection, doc)
	if err != nil {
		return nil, errors.WrapError(err, "failed to insert document")
	}
	u.invalidate(ctx, collection)

	persisted, err := u.store.FindOne(ctx, collection, model.Document{"_id": id})
	if err != nil {
		return nil, errors.WrapError(err, "failed to reload document")
	}
	return persisted, nil
}

// listCached reads a listing through the cache when one is configured.
// Cache payloads are JSON; a decode failure falls back to the store.
func (u *PortfolioUsecase) listCached(ctx context.Context, collection, signature string, load func() ([]model.Document, error)) ([]model.Document, error) {
	if u.cache == nil {
		return load()
	}

	if payload, ok := u.cache.Get(ctx, collection, signature); ok {
		var docs []model.Document
		if err := json.Unmarshal(payload, &docs); err == nil {
			return docs, nil
		}
	}

	docs, err := load()
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(docs); err == nil {
		u.cache.Set(ctx, collection, signature, payload)
	}
	return docs, nil
}

func (u *PortfolioUsecase) invalidate(ctx context.Context, collection string) {
	if u.cache != nil {
		u.cache.Invalidate(ctx, collection)
	}
}

var _ PortfolioUsecaseInterface = (*PortfolioUsecase)(nil)
