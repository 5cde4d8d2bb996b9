// Package mock contains hand-written gomock doubles for interfaces
// that cross package boundaries, following the same
// EXPECT()/Return()-style calling convention mockgen generates.
package mock

import (
	"context"
	"reflect"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/reddit-archive/activity-service/pkg/storeclient"
)

// MockClient is a mock of the storeclient.Client interface.
type MockClient struct {
	ctrl     *gomock.Controller
	recorder *MockClientMockRecorder
}

// MockClientMockRecorder is the recorder for MockClient.
type MockClientMockRecorder struct {
	mock *MockClient
}

// NewMockClient constructs a MockClient.
func NewMockClient(ctrl *gomock.Controller) *MockClient {
	mock := &MockClient{ctrl: ctrl}
	mock.recorder = &MockClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected
// calls.
func (m *MockClient) EXPECT() *MockClientMockRecorder {
	return m.recorder
}

func (m *MockClient) Ping(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Ping", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockClientMockRecorder) Ping(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Ping", reflect.TypeOf((*MockClient)(nil).Ping), ctx)
}

func (m *MockClient) MGet(ctx context.Context, keys ...string) ([]*string, error) {
	m.ctrl.T.Helper()
	varargs := []interface{}{ctx}
	for _, k := range keys {
		varargs = append(varargs, k)
	}
	ret := m.ctrl.Call(m, "MGet", varargs...)
	ret0, _ := ret[0].([]*string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockClientMockRecorder) MGet(ctx interface{}, keys ...interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]interface{}{ctx}, keys...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MGet", reflect.TypeOf((*MockClient)(nil).MGet), varargs...)
}

func (m *MockClient) PFCount(ctx context.Context, keys ...string) (int64, error) {
	m.ctrl.T.Helper()
	varargs := []interface{}{ctx}
	for _, k := range keys {
		varargs = append(varargs, k)
	}
	ret := m.ctrl.Call(m, "PFCount", varargs...)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockClientMockRecorder) PFCount(ctx interface{}, keys ...interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]interface{}{ctx}, keys...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PFCount", reflect.TypeOf((*MockClient)(nil).PFCount), varargs...)
}

func (m *MockClient) NewBatch(ctx context.Context) storeclient.Batch {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NewBatch", ctx)
	ret0, _ := ret[0].(storeclient.Batch)
	return ret0
}

func (mr *MockClientMockRecorder) NewBatch(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NewBatch", reflect.TypeOf((*MockClient)(nil).NewBatch), ctx)
}

// MockBatch is a mock of the storeclient.Batch interface.
type MockBatch struct {
	ctrl     *gomock.Controller
	recorder *MockBatchMockRecorder
}

// MockBatchMockRecorder is the recorder for MockBatch.
type MockBatchMockRecorder struct {
	mock *MockBatch
}

// NewMockBatch constructs a MockBatch.
func NewMockBatch(ctrl *gomock.Controller) *MockBatch {
	mock := &MockBatch{ctrl: ctrl}
	mock.recorder = &MockBatchMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected
// calls.
func (m *MockBatch) EXPECT() *MockBatchMockRecorder {
	return m.recorder
}

func (m *MockBatch) PFAdd(key, member string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "PFAdd", key, member)
}

func (mr *MockBatchMockRecorder) PFAdd(key, member interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PFAdd", reflect.TypeOf((*MockBatch)(nil).PFAdd), key, member)
}

func (m *MockBatch) ExpireAt(key string, at time.Time) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ExpireAt", key, at)
}

func (mr *MockBatchMockRecorder) ExpireAt(key, at interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExpireAt", reflect.TypeOf((*MockBatch)(nil).ExpireAt), key, at)
}

func (m *MockBatch) SetEx(key, value string, ttl time.Duration) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetEx", key, value, ttl)
}

func (mr *MockBatchMockRecorder) SetEx(key, value, ttl interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetEx", reflect.TypeOf((*MockBatch)(nil).SetEx), key, value, ttl)
}

func (m *MockBatch) PFCount(keys ...string) storeclient.IntResult {
	m.ctrl.T.Helper()
	varargs := make([]interface{}, len(keys))
	for i, k := range keys {
		varargs[i] = k
	}
	ret := m.ctrl.Call(m, "PFCount", varargs...)
	ret0, _ := ret[0].(storeclient.IntResult)
	return ret0
}

func (mr *MockBatchMockRecorder) PFCount(keys ...interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PFCount", reflect.TypeOf((*MockBatch)(nil).PFCount), keys...)
}

func (m *MockBatch) Execute(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Execute", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockBatchMockRecorder) Execute(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Execute", reflect.TypeOf((*MockBatch)(nil).Execute), ctx)
}

// FixedIntResult is a simple storeclient.IntResult for tests that
// don't need the full mock machinery to stub a PFCount result.
type FixedIntResult struct {
	Count int64
	Err   error
}

// Result returns the fixed count and error.
func (f FixedIntResult) Result() (int64, error) {
	return f.Count, f.Err
}
