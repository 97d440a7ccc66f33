// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_test
//

// Package account_test is a generated GoMock package.
package account_test

import (
	context "context"
	entities "parcel-service/internal/entities"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// AddReview mocks base method.
func (m *MockRepository) AddReview(ctx context.Context, reviewModifyEntity entities.ReviewModify) (*entities.Review, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddReview", ctx, reviewModifyEntity)
	ret0, _ := ret[0].(*entities.Review)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddReview indicates an expected call of AddReview.
func (mr *MockRepositoryMockRecorder) AddReview(ctx, reviewModifyEntity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddReview", reflect.TypeOf((*MockRepository)(nil).AddReview), ctx, reviewModifyEntity)
}

// ApplyCounterDelta mocks base method.
func (m *MockRepository) ApplyCounterDelta(ctx context.Context, delta entities.CounterDelta) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplyCounterDelta", ctx, delta)
	ret0, _ := ret[0].(error)
	return ret0
}

// ApplyCounterDelta indicates an expected call of ApplyCounterDelta.
func (mr *MockRepositoryMockRecorder) ApplyCounterDelta(ctx, delta any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyCounterDelta", reflect.TypeOf((*MockRepository)(nil).ApplyCounterDelta), ctx, delta)
}

// ConsumeFreeDelivery mocks base method.
func (m *MockRepository) ConsumeFreeDelivery(ctx context.Context, id int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ConsumeFreeDelivery", ctx, id)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ConsumeFreeDelivery indicates an expected call of ConsumeFreeDelivery.
func (mr *MockRepositoryMockRecorder) ConsumeFreeDelivery(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ConsumeFreeDelivery", reflect.TypeOf((*MockRepository)(nil).ConsumeFreeDelivery), ctx, id)
}

// Create mocks base method.
func (m *MockRepository) Create(ctx context.Context, accountModifyEntity entities.AccountModify) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, accountModifyEntity)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockRepositoryMockRecorder) Create(ctx, accountModifyEntity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRepository)(nil).Create), ctx, accountModifyEntity)
}

// GetByID mocks base method.
func (m *MockRepository) GetByID(ctx context.Context, id int64) (*entities.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*entities.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRepository)(nil).GetByID), ctx, id)
}

// ListReviews mocks base method.
func (m *MockRepository) ListReviews(ctx context.Context, accountID int64) ([]entities.Review, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListReviews", ctx, accountID)
	ret0, _ := ret[0].([]entities.Review)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListReviews indicates an expected call of ListReviews.
func (mr *MockRepositoryMockRecorder) ListReviews(ctx, accountID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListReviews", reflect.TypeOf((*MockRepository)(nil).ListReviews), ctx, accountID)
}

// Update mocks base method.
func (m *MockRepository) Update(ctx context.Context, accountModifyEntity entities.AccountModify) (*entities.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, accountModifyEntity)
	ret0, _ := ret[0].(*entities.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Update indicates an expected call of Update.
func (mr *MockRepositoryMockRecorder) Update(ctx, accountModifyEntity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRepository)(nil).Update), ctx, accountModifyEntity)
}

// MockParcelStats is a mock of ParcelStats interface.
type MockParcelStats struct {
	ctrl     *gomock.Controller
	recorder *MockParcelStatsMockRecorder
}

// MockParcelStatsMockRecorder is the mock recorder for MockParcelStats.
type MockParcelStatsMockRecorder struct {
	mock *MockParcelStats
}

// NewMockParcelStats creates a new mock instance.
func NewMockParcelStats(ctrl *gomock.Controller) *MockParcelStats {
	mock := &MockParcelStats{ctrl: ctrl}
	mock.recorder = &MockParcelStatsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockParcelStats) EXPECT() *MockParcelStatsMockRecorder {
	return m.recorder
}

// CountActiveByDeliverer mocks base method.
func (m *MockParcelStats) CountActiveByDeliverer(ctx context.Context, delivererID int64) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountActiveByDeliverer", ctx, delivererID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountActiveByDeliverer indicates an expected call of CountActiveByDeliverer.
func (mr *MockParcelStatsMockRecorder) CountActiveByDeliverer(ctx, delivererID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountActiveByDeliverer", reflect.TypeOf((*MockParcelStats)(nil).CountActiveByDeliverer), ctx, delivererID)
}

// CountOpenRequestsByDeliverer mocks base method.
func (m *MockParcelStats) CountOpenRequestsByDeliverer(ctx context.Context, delivererID int64) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountOpenRequestsByDeliverer", ctx, delivererID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountOpenRequestsByDeliverer indicates an expected call of CountOpenRequestsByDeliverer.
func (mr *MockParcelStatsMockRecorder) CountOpenRequestsByDeliverer(ctx, delivererID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountOpenRequestsByDeliverer", reflect.TypeOf((*MockParcelStats)(nil).CountOpenRequestsByDeliverer), ctx, delivererID)
}

// MockTxManager is a mock of TxManager interface.
type MockTxManager struct {
	ctrl     *gomock.Controller
	recorder *MockTxManagerMockRecorder
}

// MockTxManagerMockRecorder is the mock recorder for MockTxManager.
type MockTxManagerMockRecorder struct {
	mock *MockTxManager
}

// NewMockTxManager creates a new mock instance.
func NewMockTxManager(ctrl *gomock.Controller) *MockTxManager {
	mock := &MockTxManager{ctrl: ctrl}
	mock.recorder = &MockTxManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxManager) EXPECT() *MockTxManagerMockRecorder {
	return m.recorder
}

// Do mocks base method.
func (m *MockTxManager) Do(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Do", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Do indicates an expected call of Do.
func (mr *MockTxManagerMockRecorder) Do(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Do", reflect.TypeOf((*MockTxManager)(nil).Do), ctx, fn)
}
