package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/skabdullah999/Dumurianews24/internal/domain"
	"github.com/skabdullah999/Dumurianews24/internal/service"
)

// MockContentServiceInterface mocks service.ContentServiceInterface.
type MockContentServiceInterface struct {
	mock.Mock
}

func NewMockContentServiceInterface(t testingT) *MockContentServiceInterface {
	m := &MockContentServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockContentServiceInterfaceExpecter struct {
	mock *mock.Mock
}

func (m *MockContentServiceInterface) EXPECT() *MockContentServiceInterfaceExpecter {
	return &MockContentServiceInterfaceExpecter{mock: &m.Mock}
}

func (m *MockContentServiceInterface) GetLatestNews(ctx context.Context) []domain.NewsItem {
	ret := m.Called(ctx)
	var items []domain.NewsItem
	if ret.Get(0) != nil {
		items = ret.Get(0).([]domain.NewsItem)
	}
	return items
}

func (m *MockContentServiceInterface) GetAllNews(ctx context.Context) []domain.NewsItem {
	ret := m.Called(ctx)
	var items []domain.NewsItem
	if ret.Get(0) != nil {
		items = ret.Get(0).([]domain.NewsItem)
	}
	return items
}

func (m *MockContentServiceInterface) GetBreakingNews(ctx context.Context) []domain.NewsItem {
	ret := m.Called(ctx)
	var items []domain.NewsItem
	if ret.Get(0) != nil {
		items = ret.Get(0).([]domain.NewsItem)
	}
	return items
}

func (m *MockContentServiceInterface) GetNewsByCategory(ctx context.Context, categoryID string) []domain.NewsItem {
	ret := m.Called(ctx, categoryID)
	var items []domain.NewsItem
	if ret.Get(0) != nil {
		items = ret.Get(0).([]domain.NewsItem)
	}
	return items
}

func (m *MockContentServiceInterface) GetNewsByID(ctx context.Context, id string) *domain.NewsItem {
	ret := m.Called(ctx, id)
	var item *domain.NewsItem
	if ret.Get(0) != nil {
		item = ret.Get(0).(*domain.NewsItem)
	}
	return item
}

func (m *MockContentServiceInterface) AddNews(ctx context.Context, input service.NewsInput) *domain.NewsItem {
	ret := m.Called(ctx, input)
	var item *domain.NewsItem
	if ret.Get(0) != nil {
		item = ret.Get(0).(*domain.NewsItem)
	}
	return item
}

func (m *MockContentServiceInterface) UpdateNews(ctx context.Context, id string, input service.NewsInput) *domain.NewsItem {
	ret := m.Called(ctx, id, input)
	var item *domain.NewsItem
	if ret.Get(0) != nil {
		item = ret.Get(0).(*domain.NewsItem)
	}
	return item
}

func (m *MockContentServiceInterface) DeleteNews(ctx context.Context, id string) bool {
	return m.Called(ctx, id).Bool(0)
}

func (m *MockContentServiceInterface) GetCategories(ctx context.Context) []domain.Category {
	ret := m.Called(ctx)
	var categories []domain.Category
	if ret.Get(0) != nil {
		categories = ret.Get(0).([]domain.Category)
	}
	return categories
}

func (m *MockContentServiceInterface) AddCategory(ctx context.Context, name string) (*domain.Category, error) {
	ret := m.Called(ctx, name)
	var category *domain.Category
	if ret.Get(0) != nil {
		category = ret.Get(0).(*domain.Category)
	}
	return category, ret.Error(1)
}

func (m *MockContentServiceInterface) UpdateCategory(ctx context.Context, id, name string) *domain.Category {
	ret := m.Called(ctx, id, name)
	var category *domain.Category
	if ret.Get(0) != nil {
		category = ret.Get(0).(*domain.Category)
	}
	return category
}

func (m *MockContentServiceInterface) DeleteCategory(ctx context.Context, id string) bool {
	return m.Called(ctx, id).Bool(0)
}

func (e *MockContentServiceInterfaceExpecter) GetLatestNews(ctx interface{}) *mock.Call {
	return e.mock.On("GetLatestNews", ctx)
}

func (e *MockContentServiceInterfaceExpecter) GetAllNews(ctx interface{}) *mock.Call {
	return e.mock.On("GetAllNews", ctx)
}

func (e *MockContentServiceInterfaceExpecter) GetBreakingNews(ctx interface{}) *mock.Call {
	return e.mock.On("GetBreakingNews", ctx)
}

func (e *MockContentServiceInterfaceExpecter) GetNewsByCategory(ctx, categoryID interface{}) *mock.Call {
	return e.mock.On("GetNewsByCategory", ctx, categoryID)
}

func (e *MockContentServiceInterfaceExpecter) GetNewsByID(ctx, id interface{}) *mock.Call {
	return e.mock.On("GetNewsByID", ctx, id)
}

func (e *MockContentServiceInterfaceExpecter) AddNews(ctx, input interface{}) *mock.Call {
	return e.mock.On("AddNews", ctx, input)
}

func (e *MockContentServiceInterfaceExpecter) UpdateNews(ctx, id, input interface{}) *mock.Call {
	return e.mock.On("UpdateNews", ctx, id, input)
}

func (e *MockContentServiceInterfaceExpecter) DeleteNews(ctx, id interface{}) *mock.Call {
	return e.mock.On("DeleteNews", ctx, id)
}

func (e *MockContentServiceInterfaceExpecter) GetCategories(ctx interface{}) *mock.Call {
	return e.mock.On("GetCategories", ctx)
}

func (e *MockContentServiceInterfaceExpecter) AddCategory(ctx, name interface{}) *mock.Call {
	return e.mock.On("AddCategory", ctx, name)
}

func (e *MockContentServiceInterfaceExpecter) UpdateCategory(ctx, id, name interface{}) *mock.Call {
	return e.mock.On("UpdateCategory", ctx, id, name)
}

func (e *MockContentServiceInterfaceExpecter) DeleteCategory(ctx, id interface{}) *mock.Call {
	return e.mock.On("DeleteCategory", ctx, id)
}

// MockSearchServiceInterface mocks service.SearchServiceInterface.
type MockSearchServiceInterface struct {
	mock.Mock
}

func NewMockSearchServiceInterface(t testingT) *MockSearchServiceInterface {
	m := &MockSearchServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockSearchServiceInterfaceExpecter struct {
	mock *mock.Mock
}

func (m *MockSearchServiceInterface) EXPECT() *MockSearchServiceInterfaceExpecter {
	return &MockSearchServiceInterfaceExpecter{mock: &m.Mock}
}

func (m *MockSearchServiceInterface) SearchNews(ctx context.Context, query string) []domain.NewsItem {
	ret := m.Called(ctx, query)
	var items []domain.NewsItem
	if ret.Get(0) != nil {
		items = ret.Get(0).([]domain.NewsItem)
	}
	return items
}

func (m *MockSearchServiceInterface) SuggestNews(ctx context.Context, query string) []domain.Suggestion {
	ret := m.Called(ctx, query)
	var suggestions []domain.Suggestion
	if ret.Get(0) != nil {
		suggestions = ret.Get(0).([]domain.Suggestion)
	}
	return suggestions
}

func (e *MockSearchServiceInterfaceExpecter) SearchNews(ctx, query interface{}) *mock.Call {
	return e.mock.On("SearchNews", ctx, query)
}

func (e *MockSearchServiceInterfaceExpecter) SuggestNews(ctx, query interface{}) *mock.Call {
	return e.mock.On("SuggestNews", ctx, query)
}

// MockCommentServiceInterface mocks service.CommentServiceInterface.
type MockCommentServiceInterface struct {
	mock.Mock
}

func NewMockCommentServiceInterface(t testingT) *MockCommentServiceInterface {
	m := &MockCommentServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockCommentServiceInterfaceExpecter struct {
	mock *mock.Mock
}

func (m *MockCommentServiceInterface) EXPECT() *MockCommentServiceInterfaceExpecter {
	return &MockCommentServiceInterfaceExpecter{mock: &m.Mock}
}

func (m *MockCommentServiceInterface) GetComments(ctx context.Context, newsID string) []domain.Comment {
	ret := m.Called(ctx, newsID)
	var comments []domain.Comment
	if ret.Get(0) != nil {
		comments = ret.Get(0).([]domain.Comment)
	}
	return comments
}

func (m *MockCommentServiceInterface) GetAllComments(ctx context.Context) []domain.Comment {
	ret := m.Called(ctx)
	var comments []domain.Comment
	if ret.Get(0) != nil {
		comments = ret.Get(0).([]domain.Comment)
	}
	return comments
}

func (m *MockCommentServiceInterface) AddComment(ctx context.Context, newsID, name, text string) *domain.Comment {
	ret := m.Called(ctx, newsID, name, text)
	var comment *domain.Comment
	if ret.Get(0) != nil {
		comment = ret.Get(0).(*domain.Comment)
	}
	return comment
}

func (m *MockCommentServiceInterface) ApproveComment(ctx context.Context, id string) *domain.Comment {
	ret := m.Called(ctx, id)
	var comment *domain.Comment
	if ret.Get(0) != nil {
		comment = ret.Get(0).(*domain.Comment)
	}
	return comment
}

func (m *MockCommentServiceInterface) DeleteComment(ctx context.Context, id string) bool {
	return m.Called(ctx, id).Bool(0)
}

func (e *MockCommentServiceInterfaceExpecter) GetComments(ctx, newsID interface{}) *mock.Call {
	return e.mock.On("GetComments", ctx, newsID)
}

func (e *MockCommentServiceInterfaceExpecter) GetAllComments(ctx interface{}) *mock.Call {
	return e.mock.On("GetAllComments", ctx)
}

func (e *MockCommentServiceInterfaceExpecter) AddComment(ctx, newsID, name, text interface{}) *mock.Call {
	return e.mock.On("AddComment", ctx, newsID, name, text)
}

func (e *MockCommentServiceInterfaceExpecter) ApproveComment(ctx, id interface{}) *mock.Call {
	return e.mock.On("ApproveComment", ctx, id)
}

func (e *MockCommentServiceInterfaceExpecter) DeleteComment(ctx, id interface{}) *mock.Call {
	return e.mock.On("DeleteComment", ctx, id)
}

// MockAuthServiceInterface mocks service.AuthServiceInterface.
type MockAuthServiceInterface struct {
	mock.Mock
}

func NewMockAuthServiceInterface(t testingT) *MockAuthServiceInterface {
	m := &MockAuthServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockAuthServiceInterfaceExpecter struct {
	mock *mock.Mock
}

func (m *MockAuthServiceInterface) EXPECT() *MockAuthServiceInterfaceExpecter {
	return &MockAuthServiceInterfaceExpecter{mock: &m.Mock}
}

func (m *MockAuthServiceInterface) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	ret := m.Called(ctx, email, password)
	var session *domain.Session
	if ret.Get(0) != nil {
		session = ret.Get(0).(*domain.Session)
	}
	return session, ret.Error(1)
}

func (m *MockAuthServiceInterface) Logout(ctx context.Context, token string) {
	m.Called(ctx, token)
}

func (m *MockAuthServiceInterface) CheckSession(ctx context.Context, token string) bool {
	return m.Called(ctx, token).Bool(0)
}

func (m *MockAuthServiceInterface) Signup(ctx context.Context, email, password string) error {
	return m.Called(ctx, email, password).Error(0)
}

func (m *MockAuthServiceInterface) Subscribe() (<-chan bool, func()) {
	ret := m.Called()
	var ch <-chan bool
	if ret.Get(0) != nil {
		ch = ret.Get(0).(<-chan bool)
	}
	var cancel func()
	if ret.Get(1) != nil {
		cancel = ret.Get(1).(func())
	}
	return ch, cancel
}

func (e *MockAuthServiceInterfaceExpecter) Login(ctx, email, password interface{}) *mock.Call {
	return e.mock.On("Login", ctx, email, password)
}

func (e *MockAuthServiceInterfaceExpecter) Logout(ctx, token interface{}) *mock.Call {
	return e.mock.On("Logout", ctx, token)
}

func (e *MockAuthServiceInterfaceExpecter) CheckSession(ctx, token interface{}) *mock.Call {
	return e.mock.On("CheckSession", ctx, token)
}

func (e *MockAuthServiceInterfaceExpecter) Signup(ctx, email, password interface{}) *mock.Call {
	return e.mock.On("Signup", ctx, email, password)
}

func (e *MockAuthServiceInterfaceExpecter) Subscribe() *mock.Call {
	return e.mock.On("Subscribe")
}

// MockEditorServiceInterface mocks service.EditorServiceInterface.
type MockEditorServiceInterface struct {
	mock.Mock
}

func NewMockEditorServiceInterface(t testingT) *MockEditorServiceInterface {
	m := &MockEditorServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockEditorServiceInterfaceExpecter struct {
	mock *mock.Mock
}

func (m *MockEditorServiceInterface) EXPECT() *MockEditorServiceInterfaceExpecter {
	return &MockEditorServiceInterfaceExpecter{mock: &m.Mock}
}

func (m *MockEditorServiceInterface) PublishNews(ctx context.Context, input service.PublishInput) (*domain.NewsItem, error) {
	ret := m.Called(ctx, input)
	var item *domain.NewsItem
	if ret.Get(0) != nil {
		item = ret.Get(0).(*domain.NewsItem)
	}
	return item, ret.Error(1)
}

func (e *MockEditorServiceInterfaceExpecter) PublishNews(ctx, input interface{}) *mock.Call {
	return e.mock.On("PublishNews", ctx, input)
}

// MockMediaStore mocks mediastore.Store.
type MockMediaStore struct {
	mock.Mock
}

func NewMockMediaStore(t testingT) *MockMediaStore {
	m := &MockMediaStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockMediaStoreExpecter struct {
	mock *mock.Mock
}

func (m *MockMediaStore) EXPECT() *MockMediaStoreExpecter {
	return &MockMediaStoreExpecter{mock: &m.Mock}
}

func (m *MockMediaStore) Save(key string, r io.Reader) (string, error) {
	ret := m.Called(key, r)
	return ret.String(0), ret.Error(1)
}

func (e *MockMediaStoreExpecter) Save(key, r interface{}) *mock.Call {
	return e.mock.On("Save", key, r)
}
