// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
//

// Package notification_test is a generated GoMock package.
package notification_test

import (
	context "context"
	entities "parcel-service/internal/entities"
	notification "parcel-service/internal/service/notification"
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

// Create mocks base method.
func (m *MockRepository) Create(ctx context.Context, notificationModifyEntity entities.NotificationModify) (*entities.Notification, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, notificationModifyEntity)
	ret0, _ := ret[0].(*entities.Notification)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockRepositoryMockRecorder) Create(ctx, notificationModifyEntity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRepository)(nil).Create), ctx, notificationModifyEntity)
}

// ListByRecipient mocks base method.
func (m *MockRepository) ListByRecipient(ctx context.Context, recipientID int64) ([]entities.Notification, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByRecipient", ctx, recipientID)
	ret0, _ := ret[0].([]entities.Notification)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByRecipient indicates an expected call of ListByRecipient.
func (mr *MockRepositoryMockRecorder) ListByRecipient(ctx, recipientID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByRecipient", reflect.TypeOf((*MockRepository)(nil).ListByRecipient), ctx, recipientID)
}

// MockPush is a mock of Push interface.
type MockPush struct {
	ctrl     *gomock.Controller
	recorder *MockPushMockRecorder
}

// MockPushMockRecorder is the mock recorder for MockPush.
type MockPushMockRecorder struct {
	mock *MockPush
}

// NewMockPush creates a new mock instance.
func NewMockPush(ctrl *gomock.Controller) *MockPush {
	mock := &MockPush{ctrl: ctrl}
	mock.recorder = &MockPushMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPush) EXPECT() *MockPushMockRecorder {
	return m.recorder
}

// Send mocks base method.
func (m *MockPush) Send(ctx context.Context, recipientID int64, title, body string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Send", ctx, recipientID, title, body)
	ret0, _ := ret[0].(error)
	return ret0
}

// Send indicates an expected call of Send.
func (mr *MockPushMockRecorder) Send(ctx, recipientID, title, body any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Send", reflect.TypeOf((*MockPush)(nil).Send), ctx, recipientID, title, body)
}

// MockHandlerFactory is a mock of HandlerFactory interface.
type MockHandlerFactory struct {
	ctrl     *gomock.Controller
	recorder *MockHandlerFactoryMockRecorder
}

// MockHandlerFactoryMockRecorder is the mock recorder for MockHandlerFactory.
type MockHandlerFactoryMockRecorder struct {
	mock *MockHandlerFactory
}

// NewMockHandlerFactory creates a new mock instance.
func NewMockHandlerFactory(ctrl *gomock.Controller) *MockHandlerFactory {
	mock := &MockHandlerFactory{ctrl: ctrl}
	mock.recorder = &MockHandlerFactoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHandlerFactory) EXPECT() *MockHandlerFactoryMockRecorder {
	return m.recorder
}

// GetHandler mocks base method.
func (m *MockHandlerFactory) GetHandler(kind entities.ParcelEventKind) (notification.RenderFn, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetHandler", kind)
	ret0, _ := ret[0].(notification.RenderFn)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetHandler indicates an expected call of GetHandler.
func (mr *MockHandlerFactoryMockRecorder) GetHandler(kind any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetHandler", reflect.TypeOf((*MockHandlerFactory)(nil).GetHandler), kind)
}
