package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) UpdateSkills(ctx context.Context, id string, skills []string) error {
	return m.Called(ctx, id, skills).Error(0)
}

func (m *MockUserRepo) UpdatePhotoURL(ctx context.Context, id string, url string) error {
	return m.Called(ctx, id, url).Error(0)
}

func (m *MockUserRepo) AddEducation(ctx context.Context, edu *domain.Education) error {
	return m.Called(ctx, edu).Error(0)
}

func (m *MockUserRepo) UpdateEducation(ctx context.Context, edu *domain.Education) error {
	return m.Called(ctx, edu).Error(0)
}

func (m *MockUserRepo) DeleteEducation(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockUserRepo) ListEducations(ctx context.Context, userID string) ([]domain.Education, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Education), args.Error(1)
}

func (m *MockUserRepo) AddExperience(ctx context.Context, exp *domain.Experience) error {
	return m.Called(ctx, exp).Error(0)
}

func (m *MockUserRepo) UpdateExperience(ctx context.Context, exp *domain.Experience) error {
	return m.Called(ctx, exp).Error(0)
}

func (m *MockUserRepo) DeleteExperience(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockUserRepo) ListExperiences(ctx context.Context, userID string) ([]domain.Experience, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Experience), args.Error(1)
}

func (m *MockUserRepo) SearchPeople(ctx context.Context, q domain.PersonSearchQuery) ([]domain.PersonResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PersonResult), args.Error(1)
}

type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepo) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

type MockFollowRepo struct {
	mock.Mock
}

func (m *MockFollowRepo) Create(ctx context.Context, followerID, followeeID string) error {
	return m.Called(ctx, followerID, followeeID).Error(0)
}

func (m *MockFollowRepo) Delete(ctx context.Context, followerID, followeeID string) error {
	return m.Called(ctx, followerID, followeeID).Error(0)
}

func (m *MockFollowRepo) Exists(ctx context.Context, followerID, followeeID string) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepo) Followers(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserSummary), args.Error(1)
}

func (m *MockFollowRepo) Following(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserSummary), args.Error(1)
}

// In-memory fakes for state machine tests. The interaction transitions
// depend on prior state, which is awkward to express with mock
// expectations, so these keep real state in maps.

type pairKey struct {
	postID int64
	userID string
}

type fakeInteractionRepo struct {
	mu        sync.Mutex
	states    map[pairKey]domain.ApplicationState
	interests map[pairKey]bool
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{
		states:    make(map[pairKey]domain.ApplicationState),
		interests: make(map[pairKey]bool),
	}
}

func (f *fakeInteractionRepo) GetState(ctx context.Context, postID int64, userID string) (domain.ApplicationState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.states[pairKey{postID, userID}]; ok {
		return s, nil
	}
	return domain.StateNone, nil
}

func (f *fakeInteractionRepo) SetState(ctx context.Context, postID int64, userID string, state domain.ApplicationState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[pairKey{postID, userID}] = state
	return nil
}

func (f *fakeInteractionRepo) ClearState(ctx context.Context, postID int64, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := pairKey{postID, userID}
	if _, ok := f.states[key]; !ok {
		return false, nil
	}
	delete(f.states, key)
	return true, nil
}

func (f *fakeInteractionRepo) ClearStateIf(ctx context.Context, postID int64, userID string, state domain.ApplicationState) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := pairKey{postID, userID}
	if f.states[key] != state {
		return false, nil
	}
	delete(f.states, key)
	return true, nil
}

func (f *fakeInteractionRepo) HasInterest(ctx context.Context, postID int64, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.interests[pairKey{postID, userID}], nil
}

func (f *fakeInteractionRepo) AddInterest(ctx context.Context, postID int64, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.interests[pairKey{postID, userID}] = true
	return nil
}

func (f *fakeInteractionRepo) RemoveInterest(ctx context.Context, postID int64, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.interests, pairKey{postID, userID})
	return nil
}

func (f *fakeInteractionRepo) ListApplicants(ctx context.Context, postID int64) ([]domain.Applicant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Applicant
	for key, state := range f.states {
		if key.postID == postID {
			out = append(out, domain.Applicant{
				User:      domain.UserSummary{ID: key.userID},
				State:     state,
				AppliedAt: time.Now(),
			})
		}
	}
	return out, nil
}

func (f *fakeInteractionRepo) ListInterested(ctx context.Context, postID int64) ([]domain.UserSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.UserSummary
	for key, ok := range f.interests {
		if ok && key.postID == postID {
			out = append(out, domain.UserSummary{ID: key.userID})
		}
	}
	return out, nil
}

// clearPost drops every application and interest row for a post, the way
// the transactional post delete does.
func (f *fakeInteractionRepo) clearPost(postID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key := range f.states {
		if key.postID == postID {
			delete(f.states, key)
		}
	}
	for key := range f.interests {
		if key.postID == postID {
			delete(f.interests, key)
		}
	}
}

func (f *fakeInteractionRepo) stateOf(postID int64, userID string) domain.ApplicationState {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.states[pairKey{postID, userID}]; ok {
		return s
	}
	return domain.StateNone
}

func (f *fakeInteractionRepo) interestedIn(postID int64, userID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.interests[pairKey{postID, userID}]
}

// fakePostRepo keeps posts in memory and, like the SQL repository, derives
// the viewer projection flags from the interaction rows.
type fakePostRepo struct {
	mu           sync.Mutex
	posts        map[int64]*domain.Post
	next         int64
	interactions *fakeInteractionRepo
}

func newFakePostRepo(interactions *fakeInteractionRepo) *fakePostRepo {
	return &fakePostRepo{
		posts:        make(map[int64]*domain.Post),
		interactions: interactions,
	}
}

func (f *fakePostRepo) Create(ctx context.Context, post *domain.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	post.ID = f.next
	copied := *post
	f.posts[post.ID] = &copied
	return nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (f *fakePostRepo) GetViewByID(ctx context.Context, viewerID string, id int64) (*domain.PostView, error) {
	post, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := f.viewFor(*post, viewerID)
	return &view, nil
}

func (f *fakePostRepo) viewFor(post domain.Post, viewerID string) domain.PostView {
	view := domain.PostView{Post: post}
	if f.interactions == nil {
		return view
	}
	switch f.interactions.stateOf(post.ID, viewerID) {
	case domain.StateApplied:
		view.HasApplied = true
	case domain.StateApproved:
		view.IsWorking = true
	case domain.StateDeclined:
		view.IsDeclined = true
	}
	view.IsInterested = f.interactions.interestedIn(post.ID, viewerID)
	return view
}

func (f *fakePostRepo) sortedPosts() []domain.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int64, 0, len(f.posts))
	for id := range f.posts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]domain.Post, 0, len(ids))
	for _, id := range ids {
		out = append(out, *f.posts[id])
	}
	return out
}

func (f *fakePostRepo) Update(ctx context.Context, post *domain.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[post.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *post
	f.posts[post.ID] = &copied
	return nil
}

func (f *fakePostRepo) DeleteCascade(ctx context.Context, id int64) error {
	f.mu.Lock()
	if _, ok := f.posts[id]; !ok {
		f.mu.Unlock()
		return domain.ErrNotFound
	}
	delete(f.posts, id)
	f.mu.Unlock()

	if f.interactions != nil {
		f.interactions.clearPost(id)
	}
	return nil
}

func (f *fakePostRepo) FetchOthers(ctx context.Context, viewerID string, limit, offset int) ([]domain.PostView, int64, error) {
	var views []domain.PostView
	for _, post := range f.sortedPosts() {
		if post.OwnerID != viewerID {
			views = append(views, f.viewFor(post, viewerID))
		}
	}
	return views, int64(len(views)), nil
}

func (f *fakePostRepo) FetchOwned(ctx context.Context, ownerID string, limit, offset int) ([]domain.OwnedPost, int64, error) {
	var posts []domain.OwnedPost
	for _, post := range f.sortedPosts() {
		if post.OwnerID != ownerID {
			continue
		}
		owned := domain.OwnedPost{Post: post}
		if f.interactions != nil {
			applicants, _ := f.interactions.ListApplicants(ctx, post.ID)
			for _, a := range applicants {
				switch a.State {
				case domain.StateApplied:
					owned.PendingCount++
				case domain.StateApproved:
					owned.ApprovedCount++
				}
			}
			interested, _ := f.interactions.ListInterested(ctx, post.ID)
			owned.InterestCount = int64(len(interested))
		}
		posts = append(posts, owned)
	}
	return posts, int64(len(posts)), nil
}

func (f *fakePostRepo) FetchWorking(ctx context.Context, viewerID string, limit, offset int) ([]domain.PostView, int64, error) {
	var views []domain.PostView
	for _, post := range f.sortedPosts() {
		view := f.viewFor(post, viewerID)
		if view.IsWorking {
			views = append(views, view)
		}
	}
	return views, int64(len(views)), nil
}

func (f *fakePostRepo) FetchInteractions(ctx context.Context, viewerID string, limit, offset int) ([]domain.PostView, int64, error) {
	var views []domain.PostView
	for _, post := range f.sortedPosts() {
		view := f.viewFor(post, viewerID)
		if view.HasApplied || view.IsWorking || view.IsDeclined || view.IsInterested {
			views = append(views, view)
		}
	}
	return views, int64(len(views)), nil
}

func (f *fakePostRepo) Search(ctx context.Context, q domain.PostSearchQuery) ([]domain.Post, error) {
	return nil, nil
}
