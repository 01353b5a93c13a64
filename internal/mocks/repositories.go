// Package mocks provides hand-maintained testify mocks for the
// repository and service interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/skabdullah999/Dumurianews24/internal/domain"
	"github.com/skabdullah999/Dumurianews24/internal/repository"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockNewsRepository mocks repository.NewsRepository.
type MockNewsRepository struct {
	mock.Mock
}

// NewMockNewsRepository creates a mock wired to the test's lifecycle.
func NewMockNewsRepository(t testingT) *MockNewsRepository {
	m := &MockNewsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockNewsRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *MockNewsRepository) EXPECT() *MockNewsRepositoryExpecter {
	return &MockNewsRepositoryExpecter{mock: &m.Mock}
}

func (m *MockNewsRepository) List(ctx context.Context, filter repository.NewsFilter) ([]domain.NewsRow, error) {
	ret := m.Called(ctx, filter)
	var rows []domain.NewsRow
	if ret.Get(0) != nil {
		rows = ret.Get(0).([]domain.NewsRow)
	}
	return rows, ret.Error(1)
}

func (m *MockNewsRepository) GetByID(ctx context.Context, id string) (*domain.NewsRow, error) {
	ret := m.Called(ctx, id)
	var row *domain.NewsRow
	if ret.Get(0) != nil {
		row = ret.Get(0).(*domain.NewsRow)
	}
	return row, ret.Error(1)
}

func (m *MockNewsRepository) Insert(ctx context.Context, row *domain.NewsRow) (*domain.NewsRow, error) {
	ret := m.Called(ctx, row)
	var out *domain.NewsRow
	if ret.Get(0) != nil {
		out = ret.Get(0).(*domain.NewsRow)
	}
	return out, ret.Error(1)
}

func (m *MockNewsRepository) Update(ctx context.Context, row *domain.NewsRow) (*domain.NewsRow, error) {
	ret := m.Called(ctx, row)
	var out *domain.NewsRow
	if ret.Get(0) != nil {
		out = ret.Get(0).(*domain.NewsRow)
	}
	return out, ret.Error(1)
}

func (m *MockNewsRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockNewsRepository) Search(ctx context.Context, query string, includeContent bool, limit int) ([]domain.NewsRow, error) {
	ret := m.Called(ctx, query, includeContent, limit)
	var rows []domain.NewsRow
	if ret.Get(0) != nil {
		rows = ret.Get(0).([]domain.NewsRow)
	}
	return rows, ret.Error(1)
}

func (e *MockNewsRepositoryExpecter) List(ctx, filter interface{}) *mock.Call {
	return e.mock.On("List", ctx, filter)
}

func (e *MockNewsRepositoryExpecter) GetByID(ctx, id interface{}) *mock.Call {
	return e.mock.On("GetByID", ctx, id)
}

func (e *MockNewsRepositoryExpecter) Insert(ctx, row interface{}) *mock.Call {
	return e.mock.On("Insert", ctx, row)
}

func (e *MockNewsRepositoryExpecter) Update(ctx, row interface{}) *mock.Call {
	return e.mock.On("Update", ctx, row)
}

func (e *MockNewsRepositoryExpecter) Delete(ctx, id interface{}) *mock.Call {
	return e.mock.On("Delete", ctx, id)
}

func (e *MockNewsRepositoryExpecter) Search(ctx, query, includeContent, limit interface{}) *mock.Call {
	return e.mock.On("Search", ctx, query, includeContent, limit)
}

// MockCategoryRepository mocks repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func NewMockCategoryRepository(t testingT) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockCategoryRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *MockCategoryRepository) EXPECT() *MockCategoryRepositoryExpecter {
	return &MockCategoryRepositoryExpecter{mock: &m.Mock}
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	ret := m.Called(ctx)
	var categories []domain.Category
	if ret.Get(0) != nil {
		categories = ret.Get(0).([]domain.Category)
	}
	return categories, ret.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	ret := m.Called(ctx, id)
	var category *domain.Category
	if ret.Get(0) != nil {
		category = ret.Get(0).(*domain.Category)
	}
	return category, ret.Error(1)
}

func (m *MockCategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	ret := m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

func (m *MockCategoryRepository) Insert(ctx context.Context, category domain.Category) (*domain.Category, error) {
	ret := m.Called(ctx, category)
	var out *domain.Category
	if ret.Get(0) != nil {
		out = ret.Get(0).(*domain.Category)
	}
	return out, ret.Error(1)
}

func (m *MockCategoryRepository) Rename(ctx context.Context, id, name string) (*domain.Category, error) {
	ret := m.Called(ctx, id, name)
	var out *domain.Category
	if ret.Get(0) != nil {
		out = ret.Get(0).(*domain.Category)
	}
	return out, ret.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (e *MockCategoryRepositoryExpecter) List(ctx interface{}) *mock.Call {
	return e.mock.On("List", ctx)
}

func (e *MockCategoryRepositoryExpecter) GetByID(ctx, id interface{}) *mock.Call {
	return e.mock.On("GetByID", ctx, id)
}

func (e *MockCategoryRepositoryExpecter) Exists(ctx, id interface{}) *mock.Call {
	return e.mock.On("Exists", ctx, id)
}

func (e *MockCategoryRepositoryExpecter) Insert(ctx, category interface{}) *mock.Call {
	return e.mock.On("Insert", ctx, category)
}

func (e *MockCategoryRepositoryExpecter) Rename(ctx, id, name interface{}) *mock.Call {
	return e.mock.On("Rename", ctx, id, name)
}

func (e *MockCategoryRepositoryExpecter) Delete(ctx, id interface{}) *mock.Call {
	return e.mock.On("Delete", ctx, id)
}

// MockCommentRepository mocks repository.CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func NewMockCommentRepository(t testingT) *MockCommentRepository {
	m := &MockCommentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockCommentRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *MockCommentRepository) EXPECT() *MockCommentRepositoryExpecter {
	return &MockCommentRepositoryExpecter{mock: &m.Mock}
}

func (m *MockCommentRepository) ListApproved(ctx context.Context, newsID string) ([]domain.Comment, error) {
	ret := m.Called(ctx, newsID)
	var comments []domain.Comment
	if ret.Get(0) != nil {
		comments = ret.Get(0).([]domain.Comment)
	}
	return comments, ret.Error(1)
}

func (m *MockCommentRepository) ListAll(ctx context.Context) ([]domain.Comment, error) {
	ret := m.Called(ctx)
	var comments []domain.Comment
	if ret.Get(0) != nil {
		comments = ret.Get(0).([]domain.Comment)
	}
	return comments, ret.Error(1)
}

func (m *MockCommentRepository) Insert(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	ret := m.Called(ctx, comment)
	var out *domain.Comment
	if ret.Get(0) != nil {
		out = ret.Get(0).(*domain.Comment)
	}
	return out, ret.Error(1)
}

func (m *MockCommentRepository) Approve(ctx context.Context, id string) (*domain.Comment, error) {
	ret := m.Called(ctx, id)
	var out *domain.Comment
	if ret.Get(0) != nil {
		out = ret.Get(0).(*domain.Comment)
	}
	return out, ret.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (e *MockCommentRepositoryExpecter) ListApproved(ctx, newsID interface{}) *mock.Call {
	return e.mock.On("ListApproved", ctx, newsID)
}

func (e *MockCommentRepositoryExpecter) ListAll(ctx interface{}) *mock.Call {
	return e.mock.On("ListAll", ctx)
}

func (e *MockCommentRepositoryExpecter) Insert(ctx, comment interface{}) *mock.Call {
	return e.mock.On("Insert", ctx, comment)
}

func (e *MockCommentRepositoryExpecter) Approve(ctx, id interface{}) *mock.Call {
	return e.mock.On("Approve", ctx, id)
}

func (e *MockCommentRepositoryExpecter) Delete(ctx, id interface{}) *mock.Call {
	return e.mock.On("Delete", ctx, id)
}

// MockAdminUserRepository mocks repository.AdminUserRepository.
type MockAdminUserRepository struct {
	mock.Mock
}

func NewMockAdminUserRepository(t testingT) *MockAdminUserRepository {
	m := &MockAdminUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockAdminUserRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *MockAdminUserRepository) EXPECT() *MockAdminUserRepositoryExpecter {
	return &MockAdminUserRepositoryExpecter{mock: &m.Mock}
}

func (m *MockAdminUserRepository) Count(ctx context.Context) (int, error) {
	ret := m.Called(ctx)
	return ret.Int(0), ret.Error(1)
}

func (m *MockAdminUserRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	ret := m.Called(ctx, email)
	var user *domain.AdminUser
	if ret.Get(0) != nil {
		user = ret.Get(0).(*domain.AdminUser)
	}
	return user, ret.Error(1)
}

func (m *MockAdminUserRepository) Insert(ctx context.Context, user *domain.AdminUser) error {
	return m.Called(ctx, user).Error(0)
}

func (e *MockAdminUserRepositoryExpecter) Count(ctx interface{}) *mock.Call {
	return e.mock.On("Count", ctx)
}

func (e *MockAdminUserRepositoryExpecter) GetByEmail(ctx, email interface{}) *mock.Call {
	return e.mock.On("GetByEmail", ctx, email)
}

func (e *MockAdminUserRepositoryExpecter) Insert(ctx, user interface{}) *mock.Call {
	return e.mock.On("Insert", ctx, user)
}

// MockSessionRepository mocks repository.SessionRepository.
type MockSessionRepository struct {
	mock.Mock
}

func NewMockSessionRepository(t testingT) *MockSessionRepository {
	m := &MockSessionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockSessionRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *MockSessionRepository) EXPECT() *MockSessionRepositoryExpecter {
	return &MockSessionRepositoryExpecter{mock: &m.Mock}
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, token string) (*domain.Session, error) {
	ret := m.Called(ctx, token)
	var session *domain.Session
	if ret.Get(0) != nil {
		session = ret.Get(0).(*domain.Session)
	}
	return session, ret.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockSessionRepository) DeleteForUser(ctx context.Context, adminUserID string) error {
	return m.Called(ctx, adminUserID).Error(0)
}

func (e *MockSessionRepositoryExpecter) Create(ctx, session interface{}) *mock.Call {
	return e.mock.On("Create", ctx, session)
}

func (e *MockSessionRepositoryExpecter) Get(ctx, token interface{}) *mock.Call {
	return e.mock.On("Get", ctx, token)
}

func (e *MockSessionRepositoryExpecter) Delete(ctx, token interface{}) *mock.Call {
	return e.mock.On("Delete", ctx, token)
}

func (e *MockSessionRepositoryExpecter) DeleteForUser(ctx, adminUserID interface{}) *mock.Call {
	return e.mock.On("DeleteForUser", ctx, adminUserID)
}
